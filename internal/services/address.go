package services

import (
	"context"
	"strings"
	"sync"

	"github.com/kelsos/sui-wallet/internal/logger"
	"github.com/kelsos/sui-wallet/internal/models"
	"github.com/kelsos/sui-wallet/internal/pagination"
)

// QueryFailed prefixes errors caused by transport failures
const QueryFailed = "query failed"

// BalanceBackend is the backend used for address lookups
type BalanceBackend interface {
	GetAddressBalance(ctx context.Context, address string) (*models.AddressBalance, *models.APIError, error)
}

// AddressResult is what the address panel displays. Exactly one of Balance
// and Error is set once a lookup has completed.
type AddressResult struct {
	Balance *models.AddressBalance
	Error   *models.APIError
}

// AddressLookupService queries balances by address and pages the coin list
type AddressLookupService struct {
	backend BalanceBackend

	mu     sync.Mutex
	result AddressResult
	page   pagination.State
}

// NewAddressLookupService creates a new address lookup service
func NewAddressLookupService(backend BalanceBackend, itemsPerPage int) *AddressLookupService {
	return &AddressLookupService{
		backend: backend,
		page:    pagination.New(itemsPerPage, 0),
	}
}

// Lookup queries the backend for address. An empty address is a no-op and
// returns false. Backend and transport failures end up in the result.
func (s *AddressLookupService) Lookup(ctx context.Context, address string) (AddressResult, bool) {
	address = strings.TrimSpace(address)
	if address == "" {
		return s.Result(), false
	}

	logger.Info("Looking up balance of %s", address)
	balance, apiErr, err := s.backend.GetAddressBalance(ctx, address)

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case err != nil:
		logger.Error("Balance lookup for %s failed: %v", address, err)
		s.result = AddressResult{Error: &models.APIError{Error: QueryFailed + ": " + err.Error()}}
	case apiErr != nil:
		s.result = AddressResult{Error: apiErr}
	default:
		s.result = AddressResult{Balance: balance}
		s.page = s.page.Reset(len(balance.OtherCoins))
	}

	return s.result, true
}

// Result returns the last lookup result
func (s *AddressLookupService) Result() AddressResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Pagination returns the page state of the coin list
func (s *AddressLookupService) Pagination() pagination.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// Page returns the coins on the current page
func (s *AddressLookupService) Page() []models.CoinEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result.Balance == nil {
		return nil
	}
	return pagination.Slice(s.result.Balance.OtherCoins, s.page)
}

// GoTo moves to page, clamped into the valid range
func (s *AddressLookupService) GoTo(page int) pagination.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = s.page.GoTo(page)
	return s.page
}

// SetItemsPerPage changes the page size and returns to page 1
func (s *AddressLookupService) SetItemsPerPage(n int) pagination.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = s.page.SetItemsPerPage(n)
	return s.page
}
