package wallet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/kelsos/sui-wallet/internal/config"
	"github.com/kelsos/sui-wallet/internal/logger"
	"github.com/kelsos/sui-wallet/internal/models"
	"github.com/kelsos/sui-wallet/internal/sui"
)

// DefaultEnv is used when neither the environment nor client.yaml names one
const DefaultEnv = "testnet"

var (
	ErrNotConnected = errors.New("wallet not connected")
	ErrNoKeys       = errors.New("no ed25519 keys found")
)

// Node is the fullnode the connector signs for
type Node interface {
	ChainIdentifier(ctx context.Context) (string, error)
	Execute(ctx context.Context, txBytes string, signatures []string) (*models.ExecuteResult, error)
}

// Connector exposes a local Sui key as the connected wallet account
type Connector struct {
	cfg  *config.Config
	node Node

	mu     sync.RWMutex
	active *Keypair
	env    string
}

// NewConnector creates a disconnected connector
func NewConnector(cfg *config.Config, node Node) *Connector {
	return &Connector{cfg: cfg, node: node}
}

// ActiveEnv returns the env alias from the environment, then client.yaml,
// then DefaultEnv
func ActiveEnv(cfg *config.Config, clientCfg *ClientConfig) string {
	return lo.CoalesceOrEmpty(cfg.ActiveEnv, clientCfg.ActiveEnv, DefaultEnv)
}

// ResolveRPC points cfg.RPCURL at the client.yaml RPC of the active env.
// An explicitly given RPC URL is kept.
func ResolveRPC(cfg *config.Config, explicit bool) error {
	if explicit {
		return nil
	}

	clientCfg, err := LoadClientConfig(cfg.ClientConfigPath())
	if err != nil {
		return err
	}

	env := ActiveEnv(cfg, clientCfg)
	if rpc, ok := clientCfg.RPCFor(env); ok && rpc != "" {
		logger.Debug("Using %s RPC %s from client config", env, rpc)
		cfg.RPCURL = rpc
	}
	return nil
}

// Connect loads the signing key. SUI_PRIVATE_KEY wins over the keystore;
// otherwise the keystore key matching the client.yaml active address is used,
// falling back to the first key. The reported network is the one the RPC
// endpoint serves.
func (c *Connector) Connect(ctx context.Context) (*models.Account, error) {
	clientCfg, err := LoadClientConfig(c.cfg.ClientConfigPath())
	if err != nil {
		return nil, err
	}

	key, err := c.resolveKey(clientCfg)
	if err != nil {
		return nil, err
	}

	env := c.networkFor(ctx, ActiveEnv(c.cfg, clientCfg))

	c.mu.Lock()
	c.active = key
	c.env = env
	c.mu.Unlock()

	logger.Info("Connected %s on %s", key.Address(), env)

	account, _ := c.CurrentAccount()
	return account, nil
}

func (c *Connector) resolveKey(clientCfg *ClientConfig) (*Keypair, error) {
	if c.cfg.PrivateKey != "" {
		return ParsePrivateKey(c.cfg.PrivateKey)
	}

	path := lo.CoalesceOrEmpty(clientCfg.Keystore.File, c.cfg.KeystorePath())
	keys, err := LoadKeystore(path)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoKeys, path)
	}

	if clientCfg.ActiveAddress != "" {
		if key, ok := lo.Find(keys, func(k *Keypair) bool {
			return strings.EqualFold(k.Address(), clientCfg.ActiveAddress)
		}); ok {
			return key, nil
		}
		logger.Warn("Active address %s not in keystore, using first key", clientCfg.ActiveAddress)
	}

	return keys[0], nil
}

// networkFor asks the node which chain it serves. The configured label only
// names networks without a fixed chain identifier, like devnet or localnet.
func (c *Connector) networkFor(ctx context.Context, label string) string {
	id, err := c.node.ChainIdentifier(ctx)
	if err != nil {
		logger.Warn("Could not identify the network of %s: %v", c.cfg.RPCURL, err)
		return sui.UnknownNetwork
	}

	if network, ok := sui.NetworkForChainID(id); ok {
		if network != label {
			logger.Warn("%s serves %s, not %s", c.cfg.RPCURL, network, label)
		}
		return network
	}

	if sui.IsKnownNetwork(label) {
		logger.Warn("%s serves chain %s, not %s", c.cfg.RPCURL, id, label)
		return sui.UnknownNetwork
	}
	return label
}

// Disconnect forgets the active key
func (c *Connector) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = nil
	c.env = ""
}

// CurrentAccount returns the connected account, if any
func (c *Connector) CurrentAccount() (*models.Account, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.active == nil {
		return nil, false
	}
	return &models.Account{
		Address: c.active.Address(),
		Chains:  []string{"sui:" + c.env},
	}, true
}

// SignAndExecute signs the transaction with the active key and submits it
func (c *Connector) SignAndExecute(ctx context.Context, txBytes string) (*models.ExecuteResult, error) {
	c.mu.RLock()
	key := c.active
	c.mu.RUnlock()

	if key == nil {
		return nil, ErrNotConnected
	}

	signature, err := key.SignTransaction(txBytes)
	if err != nil {
		return nil, err
	}

	result, err := c.node.Execute(ctx, txBytes, []string{signature})
	if err != nil {
		return nil, err
	}

	if result.Effects != nil && result.Effects.Status.Status == models.ExecutionFailure {
		return result, fmt.Errorf("transaction %s failed: %s", result.Digest, result.Effects.Status.Error)
	}

	return result, nil
}
