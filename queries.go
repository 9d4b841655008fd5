package finman

import "fmt"

// Derivation queries. All of them are read-only, deterministic, and
// side-effect-free projections over the ledger.

// TotalIncome returns the sum of all income amounts, zero for an empty ledger.
func (l *Ledger) TotalIncome() Money {
	var total Money
	for _, in := range l.income {
		total = total.Add(in.Amount)
	}
	return total
}

// TotalExpenses returns the sum of all expense amounts, zero for an empty ledger.
func (l *Ledger) TotalExpenses() Money {
	var total Money
	for _, e := range l.expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// RemainingBudget returns the remaining allocation for a category.
func (l *Ledger) RemainingBudget(category string) (Money, error) {
	m, ok := l.budget[category]
	if !ok {
		return Money{}, fmt.Errorf("budget category %q: %w", category, ErrNotFound)
	}
	return m, nil
}

// GoalProgress is the projection of a single savings goal.
type GoalProgress struct {
	Name      string
	Target    Money
	Saved     Money
	Remaining Money // Target - Saved, negative when over-saved.
}

// GoalProgress returns the progress projection for a named goal.
func (l *Ledger) GoalProgress(name string) (GoalProgress, error) {
	g, ok := l.goals[name]
	if !ok {
		return GoalProgress{}, fmt.Errorf("goal %q: %w", name, ErrNotFound)
	}
	return GoalProgress{Name: name, Target: g.Target, Saved: g.Saved, Remaining: g.Remaining()}, nil
}

// Summary is a one-screen projection of a whole ledger.
type Summary struct {
	Balance          Money
	TotalIncome      Money
	TotalExpenses    Money
	InvestedAmount   Money // sum of invested amounts
	InvestmentsValue Money // sum of current values
	OutstandingLoans Money // sum of remaining loan amounts
	OutstandingDebts Money // sum of unpaid debt amounts
	Goals            []GoalProgress
}

// Summarize computes the summary projection.
func (l *Ledger) Summarize() Summary {
	s := Summary{
		Balance:       l.balance,
		TotalIncome:   l.TotalIncome(),
		TotalExpenses: l.TotalExpenses(),
	}
	for _, inv := range l.investments {
		s.InvestedAmount = s.InvestedAmount.Add(inv.Amount)
		s.InvestmentsValue = s.InvestmentsValue.Add(inv.CurrentValue)
	}
	for _, loan := range l.loans {
		s.OutstandingLoans = s.OutstandingLoans.Add(loan.Remaining)
	}
	for _, debt := range l.debts {
		s.OutstandingDebts = s.OutstandingDebts.Add(debt.Remaining())
	}
	for _, name := range l.GoalNames() {
		g := l.goals[name]
		s.Goals = append(s.Goals, GoalProgress{Name: name, Target: g.Target, Saved: g.Saved, Remaining: g.Remaining()})
	}
	return s
}
