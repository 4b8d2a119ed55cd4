package superstock

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Clock is the simulated current date. The persisted file is the sole
// source of truth: every mutation writes it back, so subsequent invocations
// observe the new value. Without a persisted value the clock reads as the
// real system date.
type Clock struct {
	path string
}

// NewClock returns a clock persisted at the given file path.
func NewClock(path string) *Clock { return &Clock{path: path} }

// Now returns the persisted current date, or the real system date if none
// was ever persisted. It never writes.
func (c *Clock) Now() (Date, error) {
	raw, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Today(), nil
	}
	if err != nil {
		return Date{}, fmt.Errorf("%w: reading clock file %q: %v", ErrStorage, c.path, err)
	}
	d, err := ParseDate(strings.TrimSpace(string(raw)))
	if err != nil {
		return Date{}, fmt.Errorf("clock file %q: %w", c.path, err)
	}
	return d, nil
}

// Set overwrites the persisted current date with an absolute value.
func (c *Clock) Set(d Date) error {
	if err := os.WriteFile(c.path, []byte(d.String()), 0644); err != nil {
		return fmt.Errorf("%w: writing clock file %q: %v", ErrStorage, c.path, err)
	}
	return nil
}

// Advance moves the persisted current date by the given number of days and
// returns the new value. Days may be negative to rewind, or zero, which
// still re-persists the current value.
func (c *Clock) Advance(days int) (Date, error) {
	now, err := c.Now()
	if err != nil {
		return Date{}, err
	}
	next := now.Add(days)
	if err := c.Set(next); err != nil {
		return Date{}, err
	}
	return next, nil
}

// Reset re-synchronizes the simulated clock with the real system date.
func (c *Clock) Reset() (Date, error) {
	now := Today()
	if err := c.Set(now); err != nil {
		return Date{}, err
	}
	return now, nil
}
