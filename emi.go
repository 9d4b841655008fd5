package finman

import (
	"math"

	"github.com/shopspring/decimal"
)

// ComputeEMI returns the fixed monthly installment for a loan.
//
// The monthly rate is r = annualRate / 12 / 100 and n = tenureYears * 12.
// For r == 0 the installment is the even split principal / n. Otherwise the
// standard amortization formula applies:
//
//	EMI = P * r * (1+r)^n / ((1+r)^n - 1)
//
// The compounding factor is computed in float64, the monetary result in
// decimal, rounded to 2 decimal places half away from zero.
//
// ComputeEMI is pure and deterministic. It has no failure mode of its own:
// principal > 0 and tenureYears > 0 are enforced by the caller (AddLoan).
func ComputeEMI(principal Money, annualRate Percent, tenureYears int) Money {
	months := tenureYears * 12
	monthlyRate := float64(annualRate) / 12 / 100

	if monthlyRate == 0 {
		// Zero-interest: even split.
		even := principal.value.Div(decimal.NewFromInt(int64(months)))
		return Money{value: even.Round(2)}
	}

	factor := math.Pow(1+monthlyRate, float64(months))
	emi := principal.value.
		Mul(decimal.NewFromFloat(monthlyRate * factor / (factor - 1)))
	return Money{value: emi.Round(2)}
}
