package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/jdevries/superstock"
	"github.com/jdevries/superstock/renderer"
)

type inventoryCmd struct {
	now       bool
	yesterday bool
	date      string
}

func (*inventoryCmd) Name() string     { return "inventory" }
func (*inventoryCmd) Synopsis() string { return "view the inventory, now or at a past date" }
func (*inventoryCmd) Usage() string {
	return `super inventory [--now | --yesterday | --date <date>]

  Lists every unsold lot bought on or before the chosen date. Defaults to
  the current simulated date.
`
}

func (c *inventoryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.now, "now", false, "Inventory as of the current simulated date")
	f.BoolVar(&c.yesterday, "yesterday", false, "Inventory as of yesterday")
	f.StringVar(&c.date, "date", "", "Inventory as of a specific date (YYYY-MM-DD)")
}

func (c *inventoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf, err := c.asOf()
	if err != nil {
		return fail(err)
	}
	ledger, err := decodeLedger()
	if err != nil {
		return fail(err)
	}

	report := superstock.NewInventoryReport(ledger, asOf)
	printMarkdown(renderer.Inventory(report))
	return subcommands.ExitSuccess
}

// asOf resolves the query date from the flags, defaulting to the clock date.
func (c *inventoryCmd) asOf() (superstock.Date, error) {
	switch {
	case c.date != "":
		return superstock.ParseDate(c.date)
	case c.yesterday:
		now, err := appClock().Now()
		if err != nil {
			return superstock.Date{}, err
		}
		return now.Add(-1), nil
	default: // --now and the absence of any flag are the same.
		return appClock().Now()
	}
}
