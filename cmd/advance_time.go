package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/google/subcommands"
	"github.com/jdevries/superstock"
)

type advanceTimeCmd struct {
	reset   bool
	setDate string
}

func (*advanceTimeCmd) Name() string     { return "advance-time" }
func (*advanceTimeCmd) Synopsis() string { return "advance, set or reset the simulated date" }
func (*advanceTimeCmd) Usage() string {
	return `super advance-time [<days>] [--reset] [--set-date <date>]

  Moves the simulated clock. A positional day count advances (or, negative,
  rewinds) the current date. --reset re-synchronizes with the real system
  date and --set-date jumps to an absolute date; both take precedence over
  a day count, and only one mode applies per invocation.
`
}

func (c *advanceTimeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.reset, "reset", false, "Reset the simulated date to the real system date")
	f.StringVar(&c.setDate, "set-date", "", "Set the simulated date to a specific value (YYYY-MM-DD)")
}

func (c *advanceTimeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	clock := appClock()

	if c.reset {
		now, err := clock.Reset()
		if err != nil {
			return fail(err)
		}
		fmt.Printf("OK: Date reset to the current date (%s).\n", now)
		return subcommands.ExitSuccess
	}

	if c.setDate != "" {
		d, err := superstock.ParseDate(c.setDate)
		if err != nil {
			return fail(err)
		}
		if err := clock.Set(d); err != nil {
			return fail(err)
		}
		fmt.Printf("OK: Date set to %s.\n", d)
		return subcommands.ExitSuccess
	}

	days := 0
	if f.NArg() > 0 {
		n, err := strconv.Atoi(f.Arg(0))
		if err != nil {
			return fail(fmt.Errorf("invalid day count %q: %w", f.Arg(0), err))
		}
		days = n
	}
	now, err := clock.Advance(days)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("OK: Time advanced by %d days. Current date is now %s.\n", days, now)
	return subcommands.ExitSuccess
}
