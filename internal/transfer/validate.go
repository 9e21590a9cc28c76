package transfer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kelsos/sui-wallet/internal/models"
	"github.com/kelsos/sui-wallet/internal/units"
)

var (
	ErrWalletNotConnected = errors.New("wallet not connected")
	ErrWrongNetwork       = errors.New("wrong network")
	ErrMissingInput       = errors.New("recipient and amount are required")
	ErrInvalidAmount      = errors.New("invalid amount")
)

// AccountProvider reports the connected wallet account
type AccountProvider interface {
	CurrentAccount() (*models.Account, bool)
}

// Request is a transfer of Amount SUI (human scale) to Recipient
type Request struct {
	Recipient string
	Amount    string
}

// Validated is a request that passed every precondition
type Validated struct {
	Sender     string
	Recipient  string
	Amount     decimal.Decimal
	AmountMist uint64
}

// Validate checks the preconditions shared by dry runs and transfers. It
// makes no network calls.
func Validate(provider AccountProvider, requiredChain string, req Request) (*Validated, error) {
	account, ok := provider.CurrentAccount()
	if !ok || account == nil {
		return nil, ErrWalletNotConnected
	}

	if active := account.ActiveChain(); active != requiredChain {
		return nil, fmt.Errorf("%w: connected to %s, switch to %s",
			ErrWrongNetwork, models.ChainName(active), models.ChainName(requiredChain))
	}

	recipient := strings.TrimSpace(req.Recipient)
	amount := strings.TrimSpace(req.Amount)
	if recipient == "" || amount == "" {
		return nil, ErrMissingInput
	}

	parsed, err := units.ParseSui(amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	mist, err := units.DecimalToMist(parsed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	if mist == 0 {
		return nil, fmt.Errorf("%w: amount must be greater than zero", ErrInvalidAmount)
	}

	return &Validated{
		Sender:     account.Address,
		Recipient:  recipient,
		Amount:     parsed,
		AmountMist: mist,
	}, nil
}
