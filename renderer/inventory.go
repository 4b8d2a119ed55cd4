package renderer

import (
	"github.com/jdevries/superstock"
)

// Inventory renders the inventory report as a markdown table.
func Inventory(report *superstock.InventoryReport) string {
	r := newRenderer()
	r.Printf("# Inventory as of %s\n\n", report.AsOf)

	if len(report.Lines) == 0 {
		r.Printf("No inventory at %s.\n", report.AsOf)
		return r.String()
	}

	r.Printf("| Product Name | Count | Buy Price | Expiration Date | Buy Date |\n")
	r.Printf("|:---|---:|---:|:---|:---|\n")
	for _, line := range report.Lines {
		r.Printf("| %s | %d | %s | %s | %s |\n",
			line.ProductName, line.Count, line.BuyPrice, line.ExpirationDate, line.BuyDate)
	}
	return r.String()
}
