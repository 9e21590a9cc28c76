package transfer

import (
	"github.com/shopspring/decimal"

	"github.com/kelsos/sui-wallet/internal/models"
	"github.com/kelsos/sui-wallet/internal/units"
)

// GasSafetyMultiplier is applied to the dry-run estimate to reserve gas
const GasSafetyMultiplier = 2

// EstimateGas returns the total gas of a simulated transaction in SUI:
// computation + storage - rebate + non-refundable storage fee
func EstimateGas(gas models.GasCostSummary) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, part := range []struct {
		value string
		sign  int64
	}{
		{gas.ComputationCost, 1},
		{gas.StorageCost, 1},
		{gas.StorageRebate, -1},
		{gas.NonRefundableStorageFee, 1},
	} {
		d, err := units.MistDecimal(part.value)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(d.Mul(decimal.NewFromInt(part.sign)))
	}
	return total.Shift(-units.Decimals), nil
}

// Reserve returns the gas to keep aside for a transfer
func Reserve(estimate decimal.Decimal) decimal.Decimal {
	return estimate.Mul(decimal.NewFromInt(GasSafetyMultiplier))
}
