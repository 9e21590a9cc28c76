package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/kelsos/sui-wallet/internal/utils"
)

const (
	DefaultBackendURL    = "http://localhost:4000"
	DefaultRPCURL        = "https://fullnode.testnet.sui.io:443"
	DefaultRequiredChain = "sui:testnet"
	DefaultExplorerTxURL = "https://suiscan.xyz/testnet/tx"
	DefaultObjectID      = "0xeeb34a78eaf4ae873c679db294296778676de4a335f222856716d1ad6ed54e45"
	DefaultConfigDir     = "~/.sui/sui_config"
)

// Config holds all application configuration
type Config struct {
	// Backend API settings
	BackendURL     string
	BackendTimeout time.Duration

	// Chain settings
	RPCURL        string
	RequiredChain string
	ExplorerTxURL string
	ObjectID      string
	GasBudget     uint64

	// Wallet settings
	ConfigDir  string
	PrivateKey string
	ActiveEnv  string

	// Confirmation polling
	ConfirmRetries int
	ConfirmDelay   time.Duration

	// UI settings
	ItemsPerPage int
}

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	return &Config{
		BackendURL:     DefaultBackendURL,
		BackendTimeout: 10 * time.Second,
		RPCURL:         DefaultRPCURL,
		RequiredChain:  DefaultRequiredChain,
		ExplorerTxURL:  DefaultExplorerTxURL,
		ObjectID:       DefaultObjectID,
		GasBudget:      10_000_000,
		ConfigDir:      DefaultConfigDir,
		ConfirmRetries: 10,
		ConfirmDelay:   time.Second,
		ItemsPerPage:   10,
	}
}

// LoadFromEnvironment loads configuration from environment variables.
// Values that fail to parse keep their current setting.
func (c *Config) LoadFromEnvironment() {
	if v := os.Getenv("SUI_BACKEND_URL"); v != "" {
		c.BackendURL = v
	}

	if v := os.Getenv("SUI_BACKEND_TIMEOUT"); v != "" {
		if ms, err := cast.ToInt64E(v); err == nil {
			c.BackendTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	if v := os.Getenv("SUI_RPC_URL"); v != "" {
		c.RPCURL = v
	}

	if v := os.Getenv("SUI_REQUIRED_CHAIN"); v != "" {
		c.RequiredChain = v
	}

	if v := os.Getenv("SUI_EXPLORER_TX_URL"); v != "" {
		c.ExplorerTxURL = v
	}

	if v := os.Getenv("SUI_OBJECT_ID"); v != "" {
		c.ObjectID = v
	}

	if v := os.Getenv("SUI_GAS_BUDGET"); v != "" {
		if budget, err := cast.ToUint64E(v); err == nil {
			c.GasBudget = budget
		}
	}

	if v := os.Getenv("SUI_CONFIG_DIR"); v != "" {
		c.ConfigDir = v
	}

	c.PrivateKey = os.Getenv("SUI_PRIVATE_KEY")
	c.ActiveEnv = os.Getenv("SUI_ACTIVE_ENV")

	if v := os.Getenv("SUI_CONFIRM_RETRIES"); v != "" {
		if r, err := cast.ToIntE(v); err == nil {
			c.ConfirmRetries = r
		}
	}

	if v := os.Getenv("SUI_CONFIRM_DELAY"); v != "" {
		if ms, err := cast.ToInt64E(v); err == nil {
			c.ConfirmDelay = time.Duration(ms) * time.Millisecond
		}
	}

	if v := os.Getenv("SUI_ITEMS_PER_PAGE"); v != "" {
		if n, err := cast.ToIntE(v); err == nil {
			c.ItemsPerPage = n
		}
	}
}

// APIBaseURL returns the backend base URL with the /api prefix
func (c *Config) APIBaseURL() string {
	return strings.TrimRight(c.BackendURL, "/") + "/api"
}

// KeystorePath returns the location of the Sui keystore file
func (c *Config) KeystorePath() string {
	return filepath.Join(utils.ExpandHome(c.ConfigDir), "sui.keystore")
}

// ClientConfigPath returns the location of the Sui client.yaml file
func (c *Config) ClientConfigPath() string {
	return filepath.Join(utils.ExpandHome(c.ConfigDir), "client.yaml")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	for name, raw := range map[string]string{
		"backend URL":  c.BackendURL,
		"RPC URL":      c.RPCURL,
		"explorer URL": c.ExplorerTxURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got: %q", name, raw)
		}
	}

	if c.BackendTimeout <= 0 {
		return fmt.Errorf("backend timeout must be positive, got: %s", c.BackendTimeout)
	}

	if !strings.Contains(c.RequiredChain, ":") {
		return fmt.Errorf("required chain must look like <namespace>:<network>, got: %q", c.RequiredChain)
	}

	if c.ObjectID == "" {
		return fmt.Errorf("object id cannot be empty")
	}

	if c.GasBudget == 0 {
		return fmt.Errorf("gas budget must be positive")
	}

	if c.ConfirmRetries < 0 {
		return fmt.Errorf("confirm retries must be non-negative, got: %d", c.ConfirmRetries)
	}

	if c.ItemsPerPage <= 0 {
		return fmt.Errorf("items per page must be positive, got: %d", c.ItemsPerPage)
	}

	return nil
}
