package utils

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadEnvironment loads variables from .env files in the current directory and
// next to the executable. Variables already set in the process win. It returns
// the files that were loaded so the caller can log them once logging is up.
func LoadEnvironment() []string {
	candidates := []string{".env"}

	if execPath, err := os.Executable(); err == nil {
		envPath := filepath.Join(filepath.Dir(execPath), ".env")
		if abs, err := filepath.Abs(".env"); err != nil || abs != envPath {
			candidates = append(candidates, envPath)
		}
	}

	var loaded []string
	for _, path := range candidates {
		if err := godotenv.Load(path); err == nil {
			loaded = append(loaded, path)
		}
	}

	return loaded
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path == "~" || (len(path) > 1 && path[:2] == "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
