package sui

import (
	"context"
	"fmt"
)

const (
	MainnetChainID = "35834a8a"
	TestnetChainID = "4c78adac"
)

// UnknownNetwork is reported for nodes whose chain identifier is not a
// well-known network
const UnknownNetwork = "unknown"

var knownNetworks = map[string]string{
	MainnetChainID: "mainnet",
	TestnetChainID: "testnet",
}

// ChainIdentifier returns the identifier of the chain the node serves, the
// first four bytes of the genesis checkpoint digest in hex
func (c *Client) ChainIdentifier(ctx context.Context) (string, error) {
	var id string
	if _, err := c.call(ctx, &id, "sui_getChainIdentifier"); err != nil {
		return "", fmt.Errorf("failed to get chain identifier: %w", err)
	}
	return id, nil
}

// NetworkForChainID maps a chain identifier to its network name
func NetworkForChainID(id string) (string, bool) {
	network, ok := knownNetworks[id]
	return network, ok
}

// IsKnownNetwork reports whether network has a fixed chain identifier
func IsKnownNetwork(network string) bool {
	for _, known := range knownNetworks {
		if known == network {
			return true
		}
	}
	return false
}
