package renderer

import (
	"github.com/jdevries/superstock"
)

// Profit renders the profit report as a markdown table with a total.
func Profit(report *superstock.ProfitReport) string {
	r := newRenderer()
	if report.Horizon.Exact {
		r.Printf("# Profit on %s\n\n", report.Horizon.End)
	} else {
		r.Printf("# Profit through %s\n\n", report.Horizon.End)
	}

	r.Printf("| Product Name | Sold Price | Cost | Profit |\n")
	r.Printf("|:---|---:|---:|---:|\n")
	for _, line := range report.Lines {
		r.Printf("| %s | %s | %s | %s |\n",
			line.ProductName, line.SellPrice, line.Cost, line.Profit)
	}
	r.Printf("\nTotal profit: **%s**\n", report.Total)
	return r.String()
}
