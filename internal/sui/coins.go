package sui

import (
	"context"
	"fmt"

	"github.com/kelsos/sui-wallet/internal/models"
)

// maxCoinPages bounds coin enumeration for addresses holding many objects
const maxCoinPages = 10

// GetBalance returns the total balance of coinType owned by owner
func (c *Client) GetBalance(ctx context.Context, owner, coinType string) (*models.ChainBalance, error) {
	var balance models.ChainBalance
	if _, err := c.call(ctx, &balance, "suix_getBalance", owner, coinType); err != nil {
		return nil, fmt.Errorf("failed to get balance of %s: %w", owner, err)
	}
	return &balance, nil
}

// GetCoins returns one page of coin objects of coinType owned by owner
func (c *Client) GetCoins(ctx context.Context, owner, coinType string, cursor *string, limit int) (*models.CoinPage, error) {
	var page models.CoinPage
	if _, err := c.call(ctx, &page, "suix_getCoins", owner, coinType, cursor, limit); err != nil {
		return nil, fmt.Errorf("failed to get coins of %s: %w", owner, err)
	}
	return &page, nil
}

// AllCoins enumerates coin objects of coinType owned by owner
func (c *Client) AllCoins(ctx context.Context, owner, coinType string) ([]models.Coin, error) {
	var coins []models.Coin
	var cursor *string

	for page := 0; page < maxCoinPages; page++ {
		result, err := c.GetCoins(ctx, owner, coinType, cursor, 50)
		if err != nil {
			return nil, err
		}
		coins = append(coins, result.Data...)

		if !result.HasNextPage || result.NextCursor == nil {
			break
		}
		cursor = result.NextCursor
	}

	return coins, nil
}
