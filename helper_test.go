package finman

import "github.com/soniya-kolvekar/finman/date"

// amt is a helper for tests to create money from a float const.
func amt(v float64) Money { return M(v) }

// d is a helper for tests to create a date from a const string.
func d(s string) date.Date { return date.MustParse(s) }

// newTestLedger returns a ledger pre-funded with income and a Food budget.
func newTestLedger() *Ledger {
	l := NewLedger()
	if err := l.AddIncome(amt(5000), "salary", d("2025-01-01")); err != nil {
		panic(err)
	}
	if err := l.SetBudget("Food", amt(1000)); err != nil {
		panic(err)
	}
	return l
}
