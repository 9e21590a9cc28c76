package services

import (
	"context"

	"github.com/kelsos/sui-wallet/internal/logger"
	"github.com/kelsos/sui-wallet/internal/models"
	"github.com/kelsos/sui-wallet/internal/units"
	"github.com/kelsos/sui-wallet/internal/wallet"
)

// BalanceError is shown in place of a balance that could not be fetched
const BalanceError = "Error"

// AccountProvider reports the connected wallet account
type AccountProvider interface {
	CurrentAccount() (*models.Account, bool)
}

// BalanceReader reads on-chain balances
type BalanceReader interface {
	GetBalance(ctx context.Context, owner, coinType string) (*models.ChainBalance, error)
}

// AccountSnapshot is the state of the wallet connection panel
type AccountSnapshot struct {
	Connected bool
	ChainName string
	Address   string
	Balance   string
	Guide     wallet.Guide
}

// AccountService builds the wallet connection panel state
type AccountService struct {
	wallet   AccountProvider
	chain    BalanceReader
	detector *wallet.Detector
}

func NewAccountService(provider AccountProvider, chain BalanceReader, detector *wallet.Detector) *AccountService {
	return &AccountService{wallet: provider, chain: chain, detector: detector}
}

// Snapshot returns the connected account and its SUI balance, or the
// install guide when no wallet is connected
func (s *AccountService) Snapshot(ctx context.Context) AccountSnapshot {
	account, ok := s.wallet.CurrentAccount()
	if !ok {
		return AccountSnapshot{Guide: wallet.BuildGuide(s.detector)}
	}

	return AccountSnapshot{
		Connected: true,
		ChainName: models.ChainName(account.ActiveChain()),
		Address:   account.Address,
		Balance:   s.Balance(ctx, account.Address),
	}
}

// Balance returns the SUI balance of owner with 9 decimals, or BalanceError
func (s *AccountService) Balance(ctx context.Context, owner string) string {
	balance, err := s.chain.GetBalance(ctx, owner, models.SuiCoinType)
	if err != nil {
		logger.Error("Failed to fetch balance of %s: %v", owner, err)
		return BalanceError
	}

	formatted, err := units.FormatMist(balance.TotalBalance)
	if err != nil {
		logger.Error("Invalid balance for %s: %v", owner, err)
		return BalanceError
	}
	return formatted
}
