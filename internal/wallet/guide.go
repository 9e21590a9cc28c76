package wallet

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/samber/lo"

	"github.com/kelsos/sui-wallet/internal/logger"
)

// KnownWallet is a browser wallet extension offered in the install guide
type KnownWallet struct {
	Name        string
	ExtensionID string
	Link        string
}

var KnownWallets = []KnownWallet{
	{
		Name:        "Suiet",
		ExtensionID: "khpkpbbcccdmmclmpigdgddabeilkdpd",
		Link:        "https://chromewebstore.google.com/detail/suiet-sui-wallet/khpkpbbcccdmmclmpigdgddabeilkdpd",
	},
	{
		Name:        "Slush",
		ExtensionID: "opcgpfmipidbgpenhmajoajpbobppdil",
		Link:        "https://chromewebstore.google.com/detail/slush-%E2%80%94-a-sui-wallet/opcgpfmipidbgpenhmajoajpbobppdil",
	},
	{
		Name:        "Binance Wallet",
		ExtensionID: "cadiboklkpojfamcoggejbbdjcoiljjk",
		Link:        "https://chromewebstore.google.com/detail/binance-wallet/cadiboklkpojfamcoggejbbdjcoiljjk",
	},
}

// Detected is a wallet extension found in a browser profile
type Detected struct {
	Name    string
	Profile string
}

// GuideEntry is one line of the install guide
type GuideEntry struct {
	KnownWallet
	Installed bool
}

// Guide is the install guide shown while no wallet is connected
type Guide struct {
	Entries         []GuideEntry
	ChromeInstalled bool
}

// Detector finds wallet extensions installed in Chrome profiles
type Detector struct {
	Root string
}

// NewDetector creates a detector for the default Chrome user data directory
func NewDetector() *Detector {
	root, err := ChromeUserDataDir()
	if err != nil {
		logger.Warn("Could not locate Chrome data: %v", err)
	}
	return &Detector{Root: root}
}

// ChromeUserDataDir returns the Chrome user data directory in an OS-independent way
func ChromeUserDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("LOCALAPPDATA"); appData != "" {
			return filepath.Join(appData, "Google", "Chrome", "User Data"), nil
		}
		return filepath.Join(homeDir, "AppData", "Local", "Google", "Chrome", "User Data"), nil
	case "darwin":
		return filepath.Join(homeDir, "Library", "Application Support", "Google", "Chrome"), nil
	default:
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "google-chrome"), nil
		}
		return filepath.Join(homeDir, ".config", "google-chrome"), nil
	}
}

// ChromeInstalled reports whether the Chrome data directory exists
func (d *Detector) ChromeInstalled() bool {
	if d.Root == "" {
		return false
	}
	info, err := os.Stat(d.Root)
	return err == nil && info.IsDir()
}

// Enumerate calls filter once per known wallet found in any profile. A wallet
// is accepted when filter returns true; the accepted wallets are returned.
func (d *Detector) Enumerate(filter func(Detected) bool) []Detected {
	if !d.ChromeInstalled() {
		return nil
	}

	var accepted []Detected
	for _, w := range KnownWallets {
		matches, err := filepath.Glob(filepath.Join(d.Root, "*", "Extensions", w.ExtensionID))
		if err != nil || len(matches) == 0 {
			continue
		}

		found := Detected{Name: w.Name, Profile: filepath.Base(filepath.Dir(filepath.Dir(matches[0])))}
		logger.Debug("Found %s extension in profile %s", w.Name, found.Profile)
		if filter(found) {
			accepted = append(accepted, found)
		}
	}
	return accepted
}

// BuildGuide marks each known wallet as installed when the detector reports it
func BuildGuide(d *Detector) Guide {
	installed := map[string]bool{}
	d.Enumerate(func(w Detected) bool {
		installed[w.Name] = true
		return true
	})

	return Guide{
		Entries: lo.Map(KnownWallets, func(w KnownWallet, _ int) GuideEntry {
			return GuideEntry{KnownWallet: w, Installed: installed[w.Name]}
		}),
		ChromeInstalled: d.ChromeInstalled(),
	}
}
