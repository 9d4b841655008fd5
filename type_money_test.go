package finman

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestMoney_arithmetic(t *testing.T) {
	a := amt(100.10)
	b := amt(0.20)
	if got := a.Add(b); !got.Equal(amt(100.30)) {
		t.Errorf("Add = %s, want 100.30", got)
	}
	if got := a.Sub(b); !got.Equal(amt(99.90)) {
		t.Errorf("Sub = %s, want 99.90", got)
	}
	// Exact decimal arithmetic: no float drift on repeated addition.
	sum := M(0)
	for i := 0; i < 10; i++ {
		sum = sum.Add(amt(0.1))
	}
	if !sum.Equal(amt(1)) {
		t.Errorf("10 * 0.1 = %s, want 1", sum)
	}
}

func TestMoney_comparisons(t *testing.T) {
	if !amt(1).LessThan(amt(2)) || amt(2).LessThan(amt(1)) {
		t.Error("LessThan is wrong")
	}
	if !amt(2).GreaterThanOrEqual(amt(2)) {
		t.Error("GreaterThanOrEqual is wrong on equality")
	}
	if !amt(-1).IsNegative() || !amt(1).IsPositive() || !M(0).IsZero() {
		t.Error("sign predicates are wrong")
	}
}

func TestMoney_Round2(t *testing.T) {
	if got := amt(10.555).Round2(); !got.Equal(amt(10.56)) {
		t.Errorf("Round2(10.555) = %s, want 10.56 (half away from zero)", got)
	}
	if got := amt(-10.555).Round2(); !got.Equal(amt(-10.56)) {
		t.Errorf("Round2(-10.555) = %s, want -10.56", got)
	}
}

func TestMoney_Format(t *testing.T) {
	if got := amt(1234.56).Format("USD"); got != "$1,234.56" {
		t.Errorf("Format(USD) = %q", got)
	}
	if got := amt(1000).Format("INR"); !strings.Contains(got, "₹") {
		t.Errorf("Format(INR) = %q, want the rupee symbol", got)
	}
}

func TestMoney_JSON(t *testing.T) {
	b, err := json.Marshal(amt(1234.56))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	// Amounts are persisted as plain JSON numbers.
	if string(b) != "1234.56" {
		t.Errorf("Marshal = %s, want 1234.56", b)
	}
	var back Money
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !back.Equal(amt(1234.56)) {
		t.Errorf("round trip = %s", back)
	}
}
