package models

import "strings"

// SuiCoinType is the fully-qualified type of the native coin
const SuiCoinType = "0x2::sui::SUI"

// CoinEntry is a non-native coin held by an address. Balance is the
// smallest-unit integer as a decimal string.
type CoinEntry struct {
	CoinType string `json:"coinType"`
	Balance  string `json:"balance"`
}

// DisplayName derives a short name from the coin type: the third "::"
// segment when present, otherwise the raw type
func (c CoinEntry) DisplayName() string {
	return CoinTypeName(c.CoinType)
}

func CoinTypeName(coinType string) string {
	parts := strings.Split(coinType, "::")
	if len(parts) >= 3 {
		return parts[2]
	}
	return coinType
}

// AddressBalance is the backend response for GET /api/balance/{address}
type AddressBalance struct {
	Address    string      `json:"address"`
	SuiBalance string      `json:"suiBalance"`
	OtherCoins []CoinEntry `json:"otherCoins"`
}

// ChainBalance is the fullnode response for suix_getBalance
type ChainBalance struct {
	CoinType        string `json:"coinType"`
	CoinObjectCount int    `json:"coinObjectCount"`
	TotalBalance    string `json:"totalBalance"`
}

// Coin is a single coin object owned by an address
type Coin struct {
	CoinType     string `json:"coinType"`
	CoinObjectID string `json:"coinObjectId"`
	Version      string `json:"version"`
	Digest       string `json:"digest"`
	Balance      string `json:"balance"`
}

// CoinPage is one page of suix_getCoins
type CoinPage struct {
	Data        []Coin  `json:"data"`
	NextCursor  *string `json:"nextCursor"`
	HasNextPage bool    `json:"hasNextPage"`
}
