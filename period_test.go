package superstock

import (
	"errors"
	"testing"
)

func TestParseMonth(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2024-01", want: "2024-01-31"},
		{in: "2024-02", want: "2024-02-29"}, // leap year
		{in: "2023-02", want: "2023-02-28"},
		{in: "2024-12", want: "2024-12-31"},
		{in: "2024-4", want: "2024-04-30"}, // lenient form
		{in: "2024", wantErr: true},
		{in: "2024-13", wantErr: true},
		{in: "january", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMonth(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidDate) {
					t.Fatalf("ParseMonth(%q) error = %v, want %v", tc.in, err, ErrInvalidDate)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMonth(%q) unexpected error: %v", tc.in, err)
			}
			if got != MustParse(tc.want) {
				t.Errorf("ParseMonth(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseYear(t *testing.T) {
	got, err := ParseYear("2024")
	if err != nil {
		t.Fatalf("ParseYear() unexpected error: %v", err)
	}
	if got != MustParse("2024-12-31") {
		t.Errorf("ParseYear(2024) = %s, want 2024-12-31", got)
	}

	if _, err := ParseYear("24"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("ParseYear(24) error = %v, want %v", err, ErrInvalidDate)
	}
}

func TestHorizon_Sales(t *testing.T) {
	l := newTestLedger(
		lot(1, "apple", "2024-01-01", "0.50", "2030-01-01"),
		lot(2, "apple", "2024-01-01", "0.50", "2030-01-01"),
	)
	l.AppendSale(Sale{ID: 10, BoughtID: 1, SellDate: MustParse("2024-01-10"), SellPrice: price("1")})
	l.AppendSale(Sale{ID: 11, BoughtID: 2, SellDate: MustParse("2024-02-10"), SellPrice: price("1")})

	if got := len(On(MustParse("2024-02-10")).Sales(l)); got != 1 {
		t.Errorf("exact horizon selected %d sales, want 1", got)
	}
	if got := len(Through(MustParse("2024-02-29")).Sales(l)); got != 2 {
		t.Errorf("cumulative horizon selected %d sales, want 2", got)
	}
}
