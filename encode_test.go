package finman

import (
	"bytes"
	"strings"
	"testing"

	"github.com/soniya-kolvekar/finman/date"
)

// newTestStore builds a store with one user exercising every record kind.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	u, err := s.Register("alice", "pw1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	l := u.Ledger()
	l.AddIncome(amt(5000), "salary", d("2025-01-01"))
	l.SetBudget("Food", amt(1000))
	l.AddExpense("Food", amt(300), "groceries", d("2025-01-10"))
	l.SetGoal("Vacation", amt(2000))
	l.AddSavings("Vacation", amt(450))
	l.AddInvestment("Stocks", amt(2000), d("2025-01-02"))
	l.AddLoan("Home Loan", amt(120000), 10, 1)
	l.AddDebt("Credit Card", amt(600), d("2025-06-30"))
	return s
}

// TestStoreRoundTrip checks the serialization law: decode(encode(s)) is
// identical to s, and a second encode yields the same bytes.
func TestStoreRoundTrip(t *testing.T) {
	s := newTestStore(t)

	var first bytes.Buffer
	if err := EncodeStore(&first, s); err != nil {
		t.Fatalf("EncodeStore: %v", err)
	}

	back, err := DecodeStore(bytes.NewReader(first.Bytes()))
	if err != nil {
		t.Fatalf("DecodeStore: %v", err)
	}

	var second bytes.Buffer
	if err := EncodeStore(&second, back); err != nil {
		t.Fatalf("EncodeStore: %v", err)
	}
	if first.String() != second.String() {
		t.Errorf("round trip is not stable:\nfirst:\n%s\nsecond:\n%s", first.String(), second.String())
	}

	u, err := back.User("alice")
	if err != nil {
		t.Fatalf("User: %v", err)
	}
	l := u.Ledger()
	if !l.Balance().Equal(amt(5000)) {
		t.Errorf("Balance = %s, want 5000", l.Balance())
	}
	if got, _ := l.Budget("Food"); !got.Equal(amt(700)) {
		t.Errorf("Budget(Food) = %s, want 700", got)
	}
	g, _ := l.Goal("Vacation")
	if !g.Saved.Equal(amt(450)) {
		t.Errorf("Goal saved = %s, want 450", g.Saved)
	}
	if got := l.Loans()[0].EMI; !got.Equal(amt(10549.91)) {
		t.Errorf("Loan EMI = %s, want 10549.91", got)
	}
	if got := l.Loans()[0].ID; got != s.users["alice"].ledger.loans[0].ID {
		t.Errorf("Loan id changed accross round trip: %q", got)
	}
}

// TestDecodeStore_legacyDocument loads a version 0 document: no version or
// currency field, plaintext password, missing optional containers, records
// without ids.
func TestDecodeStore_legacyDocument(t *testing.T) {
	doc := `{
    "users": {
        "bob": {
            "password": "secret",
            "income": [{"amount": 1200, "source": "salary", "date": "2024-12-01"}],
            "expenses": [],
            "balance": 1200,
            "loans": [{"loan_name": "Old Loan", "loan_amount": 1000, "interest_rate": 0, "tenure": 1, "emi": 83.33, "remaining_amount": 400}]
        }
    }
}`
	s, err := DecodeStore(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeStore: %v", err)
	}
	u, err := s.User("bob")
	if err != nil {
		t.Fatalf("User: %v", err)
	}
	l := u.Ledger()

	// Missing containers default to empty and are usable.
	if err := l.SetBudget("Food", amt(100)); err != nil {
		t.Errorf("SetBudget on migrated ledger: %v", err)
	}
	if err := l.SetGoal("Vacation", amt(500)); err != nil {
		t.Errorf("SetGoal on migrated ledger: %v", err)
	}
	if got := len(l.Investments()); got != 0 {
		t.Errorf("len(Investments) = %d, want 0", got)
	}
	if got := len(l.Debts()); got != 0 {
		t.Errorf("len(Debts) = %d, want 0", got)
	}

	// Loan state survives and gets a generated id.
	loan := l.Loans()[0]
	if !loan.Remaining.Equal(amt(400)) {
		t.Errorf("Remaining = %s, want 400", loan.Remaining)
	}
	if loan.ID == "" {
		t.Error("migrated loan has no id")
	}

	// Plaintext credential still authenticates.
	if _, err := s.Authenticate("bob", "secret"); err != nil {
		t.Errorf("Authenticate legacy user: %v", err)
	}

	// The re-encoded document is versioned and hash-protected.
	var buf bytes.Buffer
	if err := EncodeStore(&buf, s); err != nil {
		t.Fatalf("EncodeStore: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"version": 1`) {
		t.Errorf("encoded document has no version:\n%s", out)
	}
	if strings.Contains(out, `"password": "secret"`) {
		t.Errorf("plaintext password survived the save:\n%s", out)
	}
}

// TestStoreRoundTrip_debtWithoutDueDate records a debt with no due date, the
// way the CLI does when the flag is omitted, and checks the saved document
// loads back.
func TestStoreRoundTrip_debtWithoutDueDate(t *testing.T) {
	s := NewStore()
	u, err := s.Register("alice", "pw1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := u.Ledger().AddDebt("Credit Card", amt(100), date.Date{}); err != nil {
		t.Fatalf("AddDebt: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeStore(&buf, s); err != nil {
		t.Fatalf("EncodeStore: %v", err)
	}
	back, err := DecodeStore(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("DecodeStore: %v", err)
	}
	l, _ := back.User("alice")
	debt := l.Ledger().Debts()[0]
	if !debt.DueDate.IsZero() {
		t.Errorf("DueDate = %v, want unset", debt.DueDate)
	}
	if !debt.Amount.Equal(amt(100)) {
		t.Errorf("Amount = %s, want 100", debt.Amount)
	}
}

func TestDecodeStore_newerVersion(t *testing.T) {
	_, err := DecodeStore(strings.NewReader(`{"version": 99, "users": {}}`))
	if err == nil {
		t.Fatal("DecodeStore accepted a document from the future")
	}
}
