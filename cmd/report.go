package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/jdevries/superstock"
	"github.com/jdevries/superstock/renderer"
)

// periodFlags are the date selectors shared by the revenue and profit
// reports. Exactly one selector applies; absent any, the report covers the
// current simulated date.
type periodFlags struct {
	today     bool
	yesterday bool
	date      string
	month     string
	year      string
}

func (p *periodFlags) addFlags(f *flag.FlagSet, noun string) {
	f.BoolVar(&p.today, "today", false, noun+" so far today")
	f.BoolVar(&p.yesterday, "yesterday", false, noun+" from yesterday")
	f.StringVar(&p.date, "date", "", noun+" for a specific day (YYYY-MM-DD)")
	f.StringVar(&p.month, "month", "", noun+" for a specific month (YYYY-MM)")
	f.StringVar(&p.year, "year", "", noun+" for a specific year (YYYY)")
}

// horizon resolves the selectors into the report horizon. An explicit
// --date is an exact-day report; every other selector is cumulative through
// the period's last day.
func (p *periodFlags) horizon() (superstock.Horizon, error) {
	switch {
	case p.date != "":
		d, err := superstock.ParseDate(p.date)
		if err != nil {
			return superstock.Horizon{}, err
		}
		return superstock.On(d), nil
	case p.month != "":
		d, err := superstock.ParseMonth(p.month)
		if err != nil {
			return superstock.Horizon{}, err
		}
		return superstock.Through(d), nil
	case p.year != "":
		d, err := superstock.ParseYear(p.year)
		if err != nil {
			return superstock.Horizon{}, err
		}
		return superstock.Through(d), nil
	case p.yesterday:
		now, err := appClock().Now()
		if err != nil {
			return superstock.Horizon{}, err
		}
		return superstock.Through(now.Add(-1)), nil
	default: // --today and the absence of any flag are the same.
		now, err := appClock().Now()
		if err != nil {
			return superstock.Horizon{}, err
		}
		return superstock.Through(now), nil
	}
}

// --- Revenue Report Command ---

type revenueCmd struct {
	periodFlags
}

func (*revenueCmd) Name() string     { return "report-revenue" }
func (*revenueCmd) Synopsis() string { return "revenue report for a day, month or year" }
func (*revenueCmd) Usage() string {
	return `super report-revenue [--today | --yesterday | --date <date> | --month <ym> | --year <y>]

  Prints the total revenue for the selected period and a per-product chart.
  Month and year reports are cumulative through the period's last day.
`
}

func (c *revenueCmd) SetFlags(f *flag.FlagSet) { c.addFlags(f, "Revenue") }

func (c *revenueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	h, err := c.horizon()
	if err != nil {
		return fail(err)
	}
	ledger, err := decodeLedger()
	if err != nil {
		return fail(err)
	}

	report := superstock.NewRevenueReport(ledger, h)
	printMarkdown(renderer.Revenue(report))
	return subcommands.ExitSuccess
}

// --- Profit Report Command ---

type profitCmd struct {
	periodFlags
}

func (*profitCmd) Name() string     { return "report-profit" }
func (*profitCmd) Synopsis() string { return "profit report for a day, month or year" }
func (*profitCmd) Usage() string {
	return `super report-profit [--today | --yesterday | --date <date> | --month <ym> | --year <y>]

  Prints per-sale profit rows (sell price minus the matched lot's cost) and
  the total. Month and year reports are cumulative through the period's
  last day.
`
}

func (c *profitCmd) SetFlags(f *flag.FlagSet) { c.addFlags(f, "Profit") }

func (c *profitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	h, err := c.horizon()
	if err != nil {
		return fail(err)
	}
	ledger, err := decodeLedger()
	if err != nil {
		return fail(err)
	}

	report := superstock.NewProfitReport(ledger, h)
	printMarkdown(renderer.Profit(report))
	return subcommands.ExitSuccess
}
