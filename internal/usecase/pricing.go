package usecase

import "github.com/shopspring/decimal"

// ComputeCharge is (rate - discount) * nights. A discount larger than the
// rate yields a negative total; no rounding is applied.
func ComputeCharge(rate, discount decimal.Decimal, nights int) decimal.Decimal {
	return rate.Sub(discount).Mul(decimal.NewFromInt(int64(nights)))
}
