package renderer

import (
	"github.com/jdevries/superstock"
)

// Revenue renders the revenue report: the per-sale chart and the total.
func Revenue(report *superstock.RevenueReport) string {
	r := newRenderer()
	if report.Horizon.Exact {
		r.Printf("# Revenue on %s\n\n", report.Horizon.End)
	} else {
		r.Printf("# Revenue through %s\n\n", report.Horizon.End)
	}

	if len(report.Lines) > 0 {
		max := 0.0
		for _, line := range report.Lines {
			if v, _ := line.Revenue.Amount().Float64(); v > max {
				max = v
			}
		}
		r.Printf("| Product | Revenue | |\n")
		r.Printf("|:---|---:|:---|\n")
		for _, line := range report.Lines {
			v, _ := line.Revenue.Amount().Float64()
			r.Printf("| %s | %s | %s |\n", line.ProductName, line.Revenue, bar(v, max))
		}
		r.Printf("\n")
	}

	r.Printf("Total revenue: **%s**\n", report.Total)
	return r.String()
}
