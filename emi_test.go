package finman

import (
	"testing"
)

func TestComputeEMI(t *testing.T) {
	tests := []struct {
		name      string
		principal Money
		rate      Percent
		years     int
		want      Money
	}{
		{
			name:      "standard one year loan",
			principal: amt(120000),
			rate:      10,
			years:     1,
			want:      amt(10549.91),
		},
		{
			name:      "twenty year home loan",
			principal: amt(1000000),
			rate:      8.5,
			years:     20,
			want:      amt(8678.23),
		},
		{
			name:      "zero rate splits evenly",
			principal: amt(120000),
			rate:      0,
			years:     1,
			want:      amt(10000),
		},
		{
			name:      "zero rate with fractional split",
			principal: amt(1000),
			rate:      0,
			years:     1,
			want:      amt(83.33),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeEMI(tc.principal, tc.rate, tc.years)
			if !got.Equal(tc.want) {
				t.Errorf("ComputeEMI(%s, %s, %dy) = %s, want %s", tc.principal, tc.rate, tc.years, got, tc.want)
			}
		})
	}
}

// TestComputeEMI_zeroRate checks EMI(P, 0, y) == P / (y*12) across tenures.
func TestComputeEMI_zeroRate(t *testing.T) {
	for years := 1; years <= 30; years++ {
		principal := amt(360000)
		got := ComputeEMI(principal, 0, years)
		want := M(360000.0 / float64(years*12)).Round2()
		if !got.Equal(want) {
			t.Errorf("ComputeEMI(%s, 0, %dy) = %s, want %s", principal, years, got, want)
		}
	}
}

// TestComputeEMI_amortizes checks that with a positive rate, paying the EMI
// every month repays at least the principal over the tenure.
func TestComputeEMI_amortizes(t *testing.T) {
	cases := []struct {
		principal Money
		rate      Percent
		years     int
	}{
		{amt(120000), 10, 1},
		{amt(50000), 1, 5},
		{amt(2500000), 9.25, 25},
		{amt(999.99), 18, 2},
	}
	for _, tc := range cases {
		emi := ComputeEMI(tc.principal, tc.rate, tc.years)
		total := M(0)
		for i := 0; i < tc.years*12; i++ {
			total = total.Add(emi)
		}
		if total.LessThan(tc.principal) {
			t.Errorf("ComputeEMI(%s, %s, %dy): total repaid %s is less than principal", tc.principal, tc.rate, tc.years, total)
		}
	}
}
