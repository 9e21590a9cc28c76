package sui

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"

	"github.com/kelsos/sui-wallet/internal/logger"
	"github.com/kelsos/sui-wallet/internal/models"
)

// maxInputCoins is the protocol limit on coins merged into one PaySui
const maxInputCoins = 255

var (
	ErrNoCoins          = errors.New("no SUI coin found")
	ErrExecutionFailure = errors.New("transaction execution failed")
)

// BuildTransfer builds an unsigned transaction that splits amount MIST off
// the sender's gas coin and transfers it to recipient. The sender's largest
// SUI coin pays for gas and the rest are merged into it.
func (c *Client) BuildTransfer(ctx context.Context, sender, recipient string, amount uint64) (string, error) {
	coins, err := c.AllCoins(ctx, sender, models.SuiCoinType)
	if err != nil {
		return "", err
	}
	if len(coins) == 0 {
		return "", ErrNoCoins
	}

	balances := make(map[string]decimal.Decimal, len(coins))
	for _, coin := range coins {
		balance, err := decimal.NewFromString(coin.Balance)
		if err != nil {
			return "", fmt.Errorf("coin %s has malformed balance %q: %w", coin.CoinObjectID, coin.Balance, err)
		}
		balances[coin.CoinObjectID] = balance
	}

	sort.SliceStable(coins, func(i, j int) bool {
		return balances[coins[i].CoinObjectID].GreaterThan(balances[coins[j].CoinObjectID])
	})
	if len(coins) > maxInputCoins {
		coins = coins[:maxInputCoins]
	}

	inputCoins := lo.Map(coins, func(coin models.Coin, _ int) string {
		return coin.CoinObjectID
	})

	var tx models.TransactionBytes
	_, err = c.call(ctx, &tx, "unsafe_paySui",
		sender,
		inputCoins,
		[]string{recipient},
		[]string{strconv.FormatUint(amount, 10)},
		strconv.FormatUint(c.gasBudget, 10),
	)
	if err != nil {
		return "", fmt.Errorf("failed to build transfer: %w", err)
	}

	logger.Debug("Built transfer of %d MIST from %s to %s using %d coins", amount, sender, recipient, len(inputCoins))
	return tx.TxBytes, nil
}

// DryRun simulates a transaction without committing it. A failed
// simulation is reported as an error carrying the node's reason.
func (c *Client) DryRun(ctx context.Context, txBytes string) (*models.DryRunResult, error) {
	raw, err := c.call(ctx, nil, "sui_dryRunTransactionBlock", txBytes)
	if err != nil {
		return nil, fmt.Errorf("dry run failed: %w", err)
	}

	effects := gjson.GetBytes(raw, "effects")
	result := &models.DryRunResult{
		Status: models.ExecutionStatus{
			Status: effects.Get("status.status").String(),
			Error:  effects.Get("status.error").String(),
		},
		GasUsed: models.GasCostSummary{
			ComputationCost:         effects.Get("gasUsed.computationCost").String(),
			StorageCost:             effects.Get("gasUsed.storageCost").String(),
			StorageRebate:           effects.Get("gasUsed.storageRebate").String(),
			NonRefundableStorageFee: effects.Get("gasUsed.nonRefundableStorageFee").String(),
		},
	}

	if result.Status.Status == models.ExecutionFailure {
		return result, fmt.Errorf("%w: %s", ErrExecutionFailure, result.Status.Error)
	}

	return result, nil
}

// Execute submits a signed transaction and waits for local execution
func (c *Client) Execute(ctx context.Context, txBytes string, signatures []string) (*models.ExecuteResult, error) {
	options := map[string]bool{"showEffects": true}

	var result models.ExecuteResult
	if _, err := c.call(ctx, &result, "sui_executeTransactionBlock", txBytes, signatures, options, "WaitForLocalExecution"); err != nil {
		return nil, fmt.Errorf("failed to execute transaction: %w", err)
	}

	if result.Effects != nil && result.Effects.Status.Status == models.ExecutionFailure {
		return &result, fmt.Errorf("%w: %s", ErrExecutionFailure, result.Effects.Status.Error)
	}

	logger.Info("Transaction %s executed", result.Digest)
	return &result, nil
}

// WaitForTransaction polls the fullnode until the transaction is indexed
func (c *Client) WaitForTransaction(ctx context.Context, digest string) (*models.TransactionBlock, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.confirmDelay
	b.MaxInterval = 10 * time.Second

	operation := func() (*models.TransactionBlock, error) {
		var block models.TransactionBlock
		if _, err := c.call(ctx, &block, "sui_getTransactionBlock", digest, map[string]bool{}); err != nil {
			return nil, err
		}
		return &block, nil
	}

	notify := func(err error, next time.Duration) {
		logger.Debug("Transaction %s not confirmed yet (%v), retrying in %v", digest, err, next)
	}

	block, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(max(c.confirmRetries, 1))),
		backoff.WithNotify(notify),
	)
	if err != nil {
		return nil, fmt.Errorf("transaction %s not confirmed: %w", digest, err)
	}

	return block, nil
}
