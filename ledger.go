package finman

import (
	"fmt"
	"slices"
	"sort"

	"github.com/soniya-kolvekar/finman/date"
)

// Ledger is one user's full set of financial records. All mutations are
// all-or-nothing: inputs are validated before any field changes, so a failed
// operation leaves the ledger untouched.
type Ledger struct {
	balance     Money
	income      []Income
	expenses    []Expense
	budget      map[string]Money
	goals       map[string]Goal
	investments []Investment
	loans       []Loan
	debts       []Debt
}

// NewLedger creates an empty ledger, as owned by a freshly registered user.
func NewLedger() *Ledger {
	return &Ledger{
		budget: make(map[string]Money),
		goals:  make(map[string]Goal),
	}
}

// ensureContainers defaults nil maps, so that ledgers decoded from older
// documents missing optional fields behave like new ones.
func (l *Ledger) ensureContainers() {
	if l.budget == nil {
		l.budget = make(map[string]Money)
	}
	if l.goals == nil {
		l.goals = make(map[string]Goal)
	}
}

// Read accessors. Slices are cloned: the ledger is mutated only through its
// operations.

// Balance returns the running balance, accrued by income records.
func (l *Ledger) Balance() Money { return l.balance }

func (l *Ledger) Incomes() []Income         { return slices.Clone(l.income) }
func (l *Ledger) Expenses() []Expense       { return slices.Clone(l.expenses) }
func (l *Ledger) Investments() []Investment { return slices.Clone(l.investments) }
func (l *Ledger) Loans() []Loan             { return slices.Clone(l.loans) }
func (l *Ledger) Debts() []Debt             { return slices.Clone(l.debts) }

// Budget returns the remaining allocation for a category.
func (l *Ledger) Budget(category string) (Money, bool) {
	m, ok := l.budget[category]
	return m, ok
}

// BudgetCategories returns all budgeted category names, sorted.
func (l *Ledger) BudgetCategories() []string {
	cats := make([]string, 0, len(l.budget))
	for c := range l.budget {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

// Goal returns the goal registered under that name.
func (l *Ledger) Goal(name string) (Goal, bool) {
	g, ok := l.goals[name]
	return g, ok
}

// GoalNames returns all goal names, sorted.
func (l *Ledger) GoalNames() []string {
	names := make([]string, 0, len(l.goals))
	for n := range l.goals {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Mutation operations.

// AddIncome appends an income record and accrues the balance.
// A zero date defaults to today.
func (l *Ledger) AddIncome(amount Money, source string, on date.Date) error {
	if !amount.IsPositive() {
		return fmt.Errorf("income amount must be positive, got %s: %w", amount, ErrValidation)
	}
	if on.IsZero() {
		on = date.Today()
	}
	l.income = append(l.income, Income{Amount: amount, Source: source, Date: on})
	l.balance = l.balance.Add(amount)
	return nil
}

// BudgetStatus reports how an expense interacted with the budget of its
// category.
type BudgetStatus int

const (
	// BudgetApplied: the category had enough allocation, which was decremented.
	BudgetApplied BudgetStatus = iota
	// InsufficientBudget: the category allocation was smaller than the
	// expense. The expense is recorded but the budget is left untouched,
	// partial deduction is not performed.
	InsufficientBudget
	// NoBudgetForCategory: the category has no allocation at all.
	NoBudgetForCategory
)

func (s BudgetStatus) String() string {
	switch s {
	case BudgetApplied:
		return "applied"
	case InsufficientBudget:
		return "insufficient budget"
	case NoBudgetForCategory:
		return "no budget for category"
	default:
		return "unknown"
	}
}

// AddExpense appends an expense record, then draws it against the category
// budget if one exists and suffices. The expense never debits the balance.
// A zero date defaults to today.
func (l *Ledger) AddExpense(category string, amount Money, description string, on date.Date) (BudgetStatus, error) {
	if category == "" {
		return 0, fmt.Errorf("expense category is missing: %w", ErrValidation)
	}
	if !amount.IsPositive() {
		return 0, fmt.Errorf("expense amount must be positive, got %s: %w", amount, ErrValidation)
	}
	if on.IsZero() {
		on = date.Today()
	}
	l.expenses = append(l.expenses, Expense{Category: category, Amount: amount, Description: description, Date: on})

	allocated, ok := l.budget[category]
	switch {
	case !ok:
		return NoBudgetForCategory, nil
	case allocated.GreaterThanOrEqual(amount):
		l.budget[category] = allocated.Sub(amount)
		return BudgetApplied, nil
	default:
		return InsufficientBudget, nil
	}
}

// SetBudget sets the allocation for a category, overwriting any prior value.
// Last write wins, regardless of outstanding expenses against it.
func (l *Ledger) SetBudget(category string, amount Money) error {
	if category == "" {
		return fmt.Errorf("budget category is missing: %w", ErrValidation)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("budget amount must be positive, got %s: %w", amount, ErrValidation)
	}
	l.budget[category] = amount
	return nil
}

// SetGoal creates a goal with zero savings, or overwrites the target of an
// existing goal keeping its accumulated savings.
func (l *Ledger) SetGoal(name string, target Money) error {
	if name == "" {
		return fmt.Errorf("goal name is missing: %w", ErrValidation)
	}
	if !target.IsPositive() {
		return fmt.Errorf("goal target must be positive, got %s: %w", target, ErrValidation)
	}
	g := l.goals[name] // zero value for a new goal
	g.Target = target
	l.goals[name] = g
	return nil
}

// AddSavings accrues savings towards an existing goal. Saving above the
// target is permitted.
func (l *Ledger) AddSavings(name string, amount Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("savings amount must be positive, got %s: %w", amount, ErrValidation)
	}
	g, ok := l.goals[name]
	if !ok {
		return fmt.Errorf("goal %q: %w", name, ErrNotFound)
	}
	g.Saved = g.Saved.Add(amount)
	l.goals[name] = g
	return nil
}

// AddInvestment appends an investment whose current value starts at the
// invested amount.
func (l *Ledger) AddInvestment(investmentType string, amount Money, start date.Date) error {
	if investmentType == "" {
		return fmt.Errorf("investment type is missing: %w", ErrValidation)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("investment amount must be positive, got %s: %w", amount, ErrValidation)
	}
	if start.IsZero() {
		start = date.Today()
	}
	l.investments = append(l.investments, Investment{
		ID:           newID(),
		Type:         investmentType,
		Amount:       amount,
		StartDate:    start,
		CurrentValue: amount,
	})
	return nil
}

// UpdateInvestmentValue sets the current value of the investment at the given
// zero-based index. The new value is recorded as given, even when lower than
// the invested amount or negative.
func (l *Ledger) UpdateInvestmentValue(index int, newValue Money) error {
	if index < 0 || index >= len(l.investments) {
		return fmt.Errorf("investment %d of %d: %w", index+1, len(l.investments), ErrInvalidSelection)
	}
	l.investments[index].CurrentValue = newValue
	return nil
}

// AddLoan appends a loan. The EMI is computed here, exactly once; loans have
// no edit operation, so it is never recomputed.
func (l *Ledger) AddLoan(name string, principal Money, rate Percent, tenureYears int) (Loan, error) {
	if name == "" {
		return Loan{}, fmt.Errorf("loan name is missing: %w", ErrValidation)
	}
	if !principal.IsPositive() {
		return Loan{}, fmt.Errorf("loan principal must be positive, got %s: %w", principal, ErrValidation)
	}
	if rate < 0 {
		return Loan{}, fmt.Errorf("loan rate must not be negative, got %s: %w", rate, ErrValidation)
	}
	if tenureYears <= 0 {
		return Loan{}, fmt.Errorf("loan tenure must be positive, got %d years: %w", tenureYears, ErrValidation)
	}
	loan := Loan{
		ID:          newID(),
		Name:        name,
		Principal:   principal,
		Rate:        rate,
		TenureYears: tenureYears,
		EMI:         ComputeEMI(principal, rate, tenureYears),
		Remaining:   principal,
	}
	l.loans = append(l.loans, loan)
	return loan, nil
}

// PayLoan records a payment towards the loan at the given zero-based index.
// A payment exactly equal to the remaining amount is accepted and zeroes it;
// anything above is rejected without mutation. Returns the updated loan.
func (l *Ledger) PayLoan(index int, amount Money) (Loan, error) {
	if index < 0 || index >= len(l.loans) {
		return Loan{}, fmt.Errorf("loan %d of %d: %w", index+1, len(l.loans), ErrInvalidSelection)
	}
	if !amount.IsPositive() {
		return Loan{}, fmt.Errorf("payment amount must be positive, got %s: %w", amount, ErrValidation)
	}
	loan := &l.loans[index]
	if amount.GreaterThan(loan.Remaining) {
		return Loan{}, fmt.Errorf("payment %s on loan %q with %s remaining: %w",
			amount, loan.Name, loan.Remaining, ErrPaymentExceedsBalance)
	}
	loan.Remaining = loan.Remaining.Sub(amount)
	return *loan, nil
}

// AddDebt appends a debt with nothing paid yet. The due date may be unset.
func (l *Ledger) AddDebt(name string, amount Money, due date.Date) error {
	if name == "" {
		return fmt.Errorf("debt name is missing: %w", ErrValidation)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("debt amount must be positive, got %s: %w", amount, ErrValidation)
	}
	l.debts = append(l.debts, Debt{
		ID:      newID(),
		Name:    name,
		Amount:  amount,
		DueDate: due,
		Paid:    M(0),
	})
	return nil
}

// PayDebt records a payment towards the debt at the given zero-based index.
// The paid amount never exceeds the debt amount. Returns the updated debt.
func (l *Ledger) PayDebt(index int, amount Money) (Debt, error) {
	if index < 0 || index >= len(l.debts) {
		return Debt{}, fmt.Errorf("debt %d of %d: %w", index+1, len(l.debts), ErrInvalidSelection)
	}
	if !amount.IsPositive() {
		return Debt{}, fmt.Errorf("payment amount must be positive, got %s: %w", amount, ErrValidation)
	}
	debt := &l.debts[index]
	if amount.GreaterThan(debt.Remaining()) {
		return Debt{}, fmt.Errorf("payment %s on debt %q with %s remaining: %w",
			amount, debt.Name, debt.Remaining(), ErrPaymentExceedsBalance)
	}
	debt.Paid = debt.Paid.Add(amount)
	return *debt, nil
}
