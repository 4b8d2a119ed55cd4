package superstock

import "errors"

// Sentinel errors returned by the ledger, the clock and the reports. They
// are checked with errors.Is; callers wrap them with additional context.
var (
	// ErrInvalidDate is returned when a date-bearing argument is malformed.
	ErrInvalidDate = errors.New("invalid date")

	// ErrNotInStock is returned when no purchase lot exists for the
	// requested product name.
	ErrNotInStock = errors.New("not in stock")

	// ErrExpired is returned when the first unsold matching lot expired
	// before the sale date.
	ErrExpired = errors.New("expired")

	// ErrAlreadySold is returned when every matching lot already has a sale.
	ErrAlreadySold = errors.New("already sold")

	// ErrDanglingReference is returned when a sale references a purchase id
	// that is absent from the purchase log. This indicates store corruption.
	ErrDanglingReference = errors.New("dangling purchase reference")

	// ErrStorage is returned when reading or appending a data file fails.
	ErrStorage = errors.New("storage failure")
)
