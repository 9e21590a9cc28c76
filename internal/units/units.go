package units

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Decimals is the number of fractional digits between MIST and SUI
const Decimals int32 = 9

var (
	ErrEmptyAmount     = errors.New("amount is empty")
	ErrNegativeAmount  = errors.New("amount must not be negative")
	ErrTooManyDecimals = fmt.Errorf("amount has more than %d decimal places", Decimals)
	ErrAmountOverflow  = errors.New("amount does not fit in u64")
)

// ParseSui parses a human-scale SUI amount
func ParseSui(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return decimal.Zero, ErrEmptyAmount
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	return d, nil
}

// ToMist converts a human-scale SUI amount to its smallest-unit integer.
// The conversion is exact; amounts with more than 9 fractional digits are rejected.
func ToMist(amount string) (uint64, error) {
	d, err := ParseSui(amount)
	if err != nil {
		return 0, err
	}
	return DecimalToMist(d)
}

// DecimalToMist converts a SUI decimal to MIST
func DecimalToMist(d decimal.Decimal) (uint64, error) {
	if d.IsNegative() {
		return 0, ErrNegativeAmount
	}

	mist := d.Shift(Decimals)
	if !mist.IsInteger() {
		return 0, ErrTooManyDecimals
	}

	value := mist.BigInt()
	if !value.IsUint64() {
		return 0, ErrAmountOverflow
	}
	return value.Uint64(), nil
}

// FromMist converts a smallest-unit integer string to SUI
func FromMist(mist string) (decimal.Decimal, error) {
	mist = strings.TrimSpace(mist)
	if mist == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(mist)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid MIST value %q: %w", mist, err)
	}
	return d.Shift(-Decimals), nil
}

// MistDecimal parses a smallest-unit integer string, treating empty as zero
func MistDecimal(mist string) (decimal.Decimal, error) {
	if strings.TrimSpace(mist) == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(mist))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid MIST value %q: %w", mist, err)
	}
	return d, nil
}

// FormatSui renders a SUI amount with exactly 9 fractional digits
func FormatSui(d decimal.Decimal) string {
	return d.StringFixed(Decimals)
}

// FormatMist renders a smallest-unit integer string as SUI with 9 decimals
func FormatMist(mist string) (string, error) {
	d, err := FromMist(mist)
	if err != nil {
		return "", err
	}
	return FormatSui(d), nil
}
