package models

import "strings"

// Account is the wallet account exposed by the connector. The first chain is
// the active one.
type Account struct {
	Address string   `json:"address"`
	Chains  []string `json:"chains"`
}

// ActiveChain returns the chain identifier the account is currently on
func (a *Account) ActiveChain() string {
	if a == nil || len(a.Chains) == 0 {
		return ""
	}
	return a.Chains[0]
}

// ChainName returns the human name of a chain identifier such as
// "sui:testnet" -> "TESTNET"
func ChainName(chain string) string {
	parts := strings.Split(chain, ":")
	if len(parts) >= 2 {
		return strings.ToUpper(parts[1])
	}
	return strings.ToUpper(chain)
}
