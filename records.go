package finman

import (
	"github.com/oklog/ulid/v2"

	"github.com/soniya-kolvekar/finman/date"
)

// newID returns a new sortable unique identifier for a positional record.
// Positional records (investments, loans, debts) are displayed by ordinal but
// carry a stable id, so a future delete operation cannot shift references.
func newID() string { return ulid.Make().String() }

// Income is a single income record. Income is the only record that accrues
// the ledger balance.
type Income struct {
	Amount Money     `json:"amount"`
	Source string    `json:"source"`
	Date   date.Date `json:"date"`
}

// Expense is a single expense record. Recording an expense draws against the
// budget of its category, never against the balance.
type Expense struct {
	Category    string    `json:"category"`
	Amount      Money     `json:"amount"`
	Description string    `json:"description,omitempty"`
	Date        date.Date `json:"date"`
}

// Goal is a savings target. Goals are keyed by name in the ledger; Saved only
// grows, and is kept when the target is overwritten.
type Goal struct {
	Target Money `json:"target_amount"`
	Saved  Money `json:"current_savings"`
}

// Remaining returns Target - Saved. It may be negative when the goal is
// over-saved; it is intentionally not clamped.
func (g Goal) Remaining() Money { return g.Target.Sub(g.Saved) }

// Investment is a single investment record. CurrentValue starts equal to the
// invested Amount and is updated independently afterwards.
type Investment struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Amount       Money     `json:"amount"`
	StartDate    date.Date `json:"start_date"`
	CurrentValue Money     `json:"current_value"`
}

// Loan is an amortized loan. EMI is computed exactly once at creation and
// never recomputed; Remaining only decreases, with floor zero.
type Loan struct {
	ID          string  `json:"id"`
	Name        string  `json:"loan_name"`
	Principal   Money   `json:"loan_amount"`
	Rate        Percent `json:"interest_rate"`
	TenureYears int     `json:"tenure"`
	EMI         Money   `json:"emi"`
	Remaining   Money   `json:"remaining_amount"`
}

// Debt is a borrowed amount with a due date. Paid only grows and is capped at
// Amount.
type Debt struct {
	ID      string    `json:"id"`
	Name    string    `json:"debt_name"`
	Amount  Money     `json:"debt_amount"`
	DueDate date.Date `json:"due_date"`
	Paid    Money     `json:"paid_amount"`
}

// Remaining returns the outstanding unpaid amount of the debt.
func (d Debt) Remaining() Money { return d.Amount.Sub(d.Paid) }
