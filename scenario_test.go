package finman

import (
	"bytes"
	"errors"
	"testing"
)

// TestFullSession walks through a whole user session: registration, funding,
// budgeting, spending, borrowing, repaying, and persisting.
func TestFullSession(t *testing.T) {
	s := NewStore()

	u, err := s.Register("alice", "pw1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := s.Register("alice", "pw2"); !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("duplicate registration error = %v, want ErrDuplicateUser", err)
	}
	if _, err := s.Authenticate("alice", "pw1"); err != nil {
		t.Fatalf("Authenticate: %v", err)
	}

	l := u.Ledger()
	if err := l.AddIncome(amt(5000), "salary", d("2025-01-01")); err != nil {
		t.Fatalf("AddIncome: %v", err)
	}
	if got := l.Balance(); !got.Equal(amt(5000)) {
		t.Fatalf("Balance = %s, want 5000", got)
	}

	if err := l.SetBudget("Food", amt(1000)); err != nil {
		t.Fatalf("SetBudget: %v", err)
	}
	status, err := l.AddExpense("Food", amt(300), "groceries", d("2025-01-10"))
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	if status != BudgetApplied {
		t.Fatalf("status = %v, want BudgetApplied", status)
	}
	if got, _ := l.Budget("Food"); !got.Equal(amt(700)) {
		t.Fatalf("Budget(Food) = %s, want 700", got)
	}
	if got := l.Balance(); !got.Equal(amt(5000)) {
		t.Fatalf("Balance = %s, want 5000 (expenses never debit the balance)", got)
	}

	loan, err := l.AddLoan("Home Loan", amt(120000), 10, 1)
	if err != nil {
		t.Fatalf("AddLoan: %v", err)
	}
	if !loan.EMI.Equal(amt(10549.91)) {
		t.Fatalf("EMI = %s, want 10549.91", loan.EMI)
	}
	loan, err = l.PayLoan(0, loan.EMI)
	if err != nil {
		t.Fatalf("PayLoan: %v", err)
	}
	if !loan.Remaining.Equal(amt(109450.09)) {
		t.Fatalf("Remaining = %s, want 109450.09", loan.Remaining)
	}

	// Persist and reload: the whole session survives.
	var buf bytes.Buffer
	if err := EncodeStore(&buf, s); err != nil {
		t.Fatalf("EncodeStore: %v", err)
	}
	back, err := DecodeStore(&buf)
	if err != nil {
		t.Fatalf("DecodeStore: %v", err)
	}
	u2, err := back.Authenticate("alice", "pw1")
	if err != nil {
		t.Fatalf("Authenticate after reload: %v", err)
	}
	l2 := u2.Ledger()
	if got := l2.Balance(); !got.Equal(amt(5000)) {
		t.Errorf("reloaded Balance = %s, want 5000", got)
	}
	if got, _ := l2.Budget("Food"); !got.Equal(amt(700)) {
		t.Errorf("reloaded Budget(Food) = %s, want 700", got)
	}
	if got := l2.Loans()[0].Remaining; !got.Equal(amt(109450.09)) {
		t.Errorf("reloaded Remaining = %s, want 109450.09", got)
	}
}
