package wallet

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/kelsos/sui-wallet/internal/logger"
)

// LoadKeystore reads a Sui keystore file: a JSON array of base64 keys.
// Keys of other signature schemes are skipped.
func LoadKeystore(path string) ([]*Keypair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keystore: %w", err)
	}

	var entries []string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse keystore %s: %w", path, err)
	}

	keys := make([]*Keypair, 0, len(entries))
	for i, entry := range entries {
		kp, err := ParsePrivateKey(entry)
		if err != nil {
			logger.Warn("Skipping keystore entry %d: %v", i, err)
			continue
		}
		keys = append(keys, kp)
	}

	return keys, nil
}

// Env is a network entry of client.yaml
type Env struct {
	Alias string `yaml:"alias"`
	RPC   string `yaml:"rpc"`
}

// ClientConfig is the subset of the Sui CLI client.yaml the connector needs
type ClientConfig struct {
	Keystore struct {
		File string `yaml:"File"`
	} `yaml:"keystore"`
	Envs          []Env  `yaml:"envs"`
	ActiveEnv     string `yaml:"active_env"`
	ActiveAddress string `yaml:"active_address"`
}

// LoadClientConfig reads client.yaml. A missing file yields an empty config.
func LoadClientConfig(path string) (*ClientConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &ClientConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read client config: %w", err)
	}

	var cfg ClientConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse client config %s: %w", path, err)
	}
	return &cfg, nil
}

// RPCFor returns the RPC URL of the env with the given alias
func (c *ClientConfig) RPCFor(alias string) (string, bool) {
	for _, env := range c.Envs {
		if env.Alias == alias {
			return env.RPC, true
		}
	}
	return "", false
}
