package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNew_normalizes(t *testing.T) {
	// Day overflow normalizes to the next month.
	d := New(2025, time.January, 32)
	if got, want := d.String(), "2025-02-01"; got != want {
		t.Errorf("New(2025, 1, 32) = %q, want %q", got, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2025-01-02", want: "2025-01-02"},
		{in: "2025-1-2", want: "2025-01-02"}, // permissive read format
		{in: "not-a-date", wantErr: true},
		{in: "2025/01/02", wantErr: true},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got.String() != tc.want {
			t.Errorf("Parse(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := MustParse("2025-07-31")
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"2025-07-31"` {
		t.Errorf("Marshal = %s, want %q", b, `"2025-07-31"`)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

// TestZeroDate checks that an unset date survives serialization: it formats
// as the empty string and unmarshals back to the zero value.
func TestZeroDate(t *testing.T) {
	var zero Date
	if got := zero.String(); got != "" {
		t.Errorf("zero date String() = %q, want empty", got)
	}
	b, err := json.Marshal(zero)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `""` {
		t.Errorf("Marshal = %s, want %q", b, `""`)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !back.IsZero() {
		t.Errorf("round trip = %v, want zero date", back)
	}
}

func TestBeforeAfterAdd(t *testing.T) {
	d := New(2025, time.March, 1)
	if !d.Before(d.Add(1)) {
		t.Errorf("%v should be before %v", d, d.Add(1))
	}
	if !d.Add(1).After(d) {
		t.Errorf("%v should be after %v", d.Add(1), d)
	}
	if got := New(2025, time.February, 28).Add(1); got != New(2025, time.March, 1) {
		t.Errorf("Add accross month = %v", got)
	}
}
