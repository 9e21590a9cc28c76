package transfer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/kelsos/sui-wallet/internal/config"
	"github.com/kelsos/sui-wallet/internal/logger"
	"github.com/kelsos/sui-wallet/internal/models"
	"github.com/kelsos/sui-wallet/internal/units"
)

var (
	ErrNoCoins             = errors.New("no SUI coin found")
	ErrEstimateUnavailable = errors.New("can't calculate gas")
	ErrInsufficientBalance = errors.New("not enough SUI")
	ErrBusy                = errors.New("a transfer is already in progress")
)

// Chain is the blockchain client used by transfers
type Chain interface {
	GetBalance(ctx context.Context, owner, coinType string) (*models.ChainBalance, error)
	GetCoins(ctx context.Context, owner, coinType string, cursor *string, limit int) (*models.CoinPage, error)
	BuildTransfer(ctx context.Context, sender, recipient string, amount uint64) (string, error)
	DryRun(ctx context.Context, txBytes string) (*models.DryRunResult, error)
	WaitForTransaction(ctx context.Context, digest string) (*models.TransactionBlock, error)
}

// Wallet signs and submits transactions for the connected account
type Wallet interface {
	AccountProvider
	SignAndExecute(ctx context.Context, txBytes string) (*models.ExecuteResult, error)
}

// Receipt is the confirmation of a submitted transfer
type Receipt struct {
	Digest      string
	ExplorerURL string
}

// Service runs dry runs and transfers from the connected wallet
type Service struct {
	chain         Chain
	wallet        Wallet
	requiredChain string
	explorerURL   string
	log           zerolog.Logger

	mu       sync.Mutex
	busy     bool
	state    State
	observer Observer
}

func NewService(cfg *config.Config, chain Chain, wallet Wallet) *Service {
	return &Service{
		chain:         chain,
		wallet:        wallet,
		requiredChain: cfg.RequiredChain,
		explorerURL:   cfg.ExplorerTxURL,
		log:           logger.With("transfer"),
	}
}

// Observe registers fn to receive state changes
func (s *Service) Observe(fn Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observer = fn
}

func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Busy reports whether a transfer is in flight
func (s *Service) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

func (s *Service) publish(state State) {
	s.mu.Lock()
	s.state = state
	observer := s.observer
	s.mu.Unlock()

	if observer != nil {
		observer(state)
	}
}

func (s *Service) acquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return false
	}
	s.busy = true
	return true
}

func (s *Service) release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
}

// DryRun validates req and returns the simulated gas cost in SUI
func (s *Service) DryRun(ctx context.Context, req Request) (decimal.Decimal, error) {
	v, err := Validate(s.wallet, s.requiredChain, req)
	if err != nil {
		return decimal.Zero, err
	}
	return s.estimate(ctx, v)
}

func (s *Service) estimate(ctx context.Context, v *Validated) (decimal.Decimal, error) {
	txBytes, err := s.chain.BuildTransfer(ctx, v.Sender, v.Recipient, v.AmountMist)
	if err != nil {
		return decimal.Zero, err
	}

	result, err := s.chain.DryRun(ctx, txBytes)
	if err != nil {
		return decimal.Zero, err
	}

	gas, err := EstimateGas(result.GasUsed)
	if err != nil {
		return decimal.Zero, err
	}

	s.log.Debug().Str("sender", v.Sender).Str("gas", gas.String()).Msg("Dry run completed")
	return gas, nil
}

// Transfer sends req.Amount SUI to req.Recipient after checking that the
// balance covers the amount plus GasSafetyMultiplier times the estimated gas.
// Only one transfer runs at a time; a concurrent call returns ErrBusy.
func (s *Service) Transfer(ctx context.Context, req Request) (receipt *Receipt, err error) {
	if !s.acquire() {
		return nil, ErrBusy
	}
	defer s.release()
	defer func() {
		if err != nil {
			s.log.Error().Err(err).Str("recipient", req.Recipient).Msg("Transfer failed")
			s.publish(State{Phase: Failed, Err: err})
		}
	}()

	s.publish(State{Phase: Validating})
	v, err := Validate(s.wallet, s.requiredChain, req)
	if err != nil {
		return nil, err
	}

	s.publish(State{Phase: Estimating})
	coins, err := s.chain.GetCoins(ctx, v.Sender, models.SuiCoinType, nil, 1)
	if err != nil {
		return nil, err
	}
	if len(coins.Data) == 0 {
		return nil, ErrNoCoins
	}

	gas, err := s.estimate(ctx, v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEstimateUnavailable, err)
	}

	required := Reserve(gas).Add(v.Amount)
	balance, err := s.chain.GetBalance(ctx, v.Sender, models.SuiCoinType)
	if err != nil {
		return nil, err
	}
	available, err := units.FromMist(balance.TotalBalance)
	if err != nil {
		return nil, err
	}
	if available.LessThan(required) {
		return nil, fmt.Errorf("%w, recommend %s SUI", ErrInsufficientBalance, units.FormatSui(required))
	}

	s.publish(State{Phase: Submitting})
	txBytes, err := s.chain.BuildTransfer(ctx, v.Sender, v.Recipient, v.AmountMist)
	if err != nil {
		return nil, err
	}

	result, err := s.wallet.SignAndExecute(ctx, txBytes)
	if err != nil {
		return nil, err
	}

	receipt = &Receipt{
		Digest:      result.Digest,
		ExplorerURL: ExplorerURL(s.explorerURL, result.Digest),
	}

	s.log.Info().
		Str("digest", receipt.Digest).
		Str("amount", units.FormatSui(v.Amount)).
		Str("gas", gas.String()).
		Msg("Transfer submitted")
	s.publish(State{Phase: Succeeded, Digest: receipt.Digest})

	return receipt, nil
}

// Confirm waits until the transfer is indexed by the fullnode
func (s *Service) Confirm(ctx context.Context, digest string) (*models.TransactionBlock, error) {
	return s.chain.WaitForTransaction(ctx, digest)
}

// ExplorerURL links a transaction digest on the explorer
func ExplorerURL(base, digest string) string {
	return strings.TrimRight(base, "/") + "/" + digest
}
