package superstock

import (
	"fmt"
	"time"
)

// Period resolution maps a day/month/year selector to the single end date
// used by the temporal queries. A "month" or "year" selector resolves to the
// last calendar day of that period; the revenue and profit reports then
// cover everything sold through that day.

// ParseMonth parses a "YYYY-MM" selector and returns the last calendar day
// of that month.
func ParseMonth(str string) (Date, error) {
	on, err := time.Parse("2006-1", str)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q want format %q", ErrInvalidDate, str, "2006-01")
	}
	y, m, _ := on.Date()
	// Day zero of the next month is the last day of this one.
	return NewDate(y, m+1, 0), nil
}

// ParseYear parses a "YYYY" selector and returns December 31 of that year.
func ParseYear(str string) (Date, error) {
	on, err := time.Parse("2006", str)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q want format %q", ErrInvalidDate, str, "2006")
	}
	return NewDate(on.Year(), time.December, 31), nil
}

// Horizon selects the set of sales a report covers. Exact restricts the
// report to sales dated exactly End; otherwise the report is cumulative and
// covers every sale dated on or before End. Month and year selectors are
// cumulative through the period's last day, not an isolated slice.
type Horizon struct {
	End   Date
	Exact bool
}

// On returns a Horizon covering exactly the given day.
func On(d Date) Horizon { return Horizon{End: d, Exact: true} }

// Through returns a cumulative Horizon covering all sales up to the given day.
func Through(d Date) Horizon { return Horizon{End: d} }

// Sales returns the sales of the ledger selected by the horizon.
func (h Horizon) Sales(l *Ledger) []Sale {
	if h.Exact {
		return l.SalesOn(h.End)
	}
	return l.SalesThrough(h.End)
}
