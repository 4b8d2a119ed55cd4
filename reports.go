package superstock

// Report builders are pure functions from query results to display-ready
// rows and aggregates. They own no ledger logic beyond the joins they need.

// InventoryLine is one display row of the inventory report. Each purchase
// is a single physical unit, so the count is always 1.
type InventoryLine struct {
	ProductName    string
	Count          int
	BuyPrice       Money
	ExpirationDate Date
	BuyDate        Date
}

// InventoryReport lists the unsold lots bought on or before AsOf.
type InventoryReport struct {
	AsOf  Date
	Lines []InventoryLine
}

// NewInventoryReport builds the inventory report as of the given date.
func NewInventoryReport(l *Ledger, asOf Date) *InventoryReport {
	r := &InventoryReport{AsOf: asOf}
	for _, p := range l.InventoryAsOf(asOf) {
		r.Lines = append(r.Lines, InventoryLine{
			ProductName:    p.ProductName,
			Count:          1,
			BuyPrice:       M(p.BuyPrice),
			ExpirationDate: p.ExpirationDate,
			BuyDate:        p.BuyDate,
		})
	}
	return r
}

// RevenueLine is a product-name/revenue pair for one sale, used for the
// per-product chart.
type RevenueLine struct {
	ProductName string
	Revenue     Money
}

// RevenueReport sums the sell prices over the horizon's sale set. The total
// covers every selected sale; the chart lines only cover sales whose lot
// resolves in the purchase log.
type RevenueReport struct {
	Horizon Horizon
	Total   Money
	Lines   []RevenueLine
}

// NewRevenueReport builds the revenue report for the given horizon.
func NewRevenueReport(l *Ledger, h Horizon) *RevenueReport {
	r := &RevenueReport{Horizon: h}
	for _, s := range h.Sales(l) {
		r.Total = r.Total.Add(M(s.SellPrice))
		p, err := l.PurchaseOf(s)
		if err != nil {
			continue
		}
		r.Lines = append(r.Lines, RevenueLine{
			ProductName: p.ProductName,
			Revenue:     M(s.SellPrice),
		})
	}
	return r
}

// ProfitLine is one row of the profit report: per sale, the sell price, the
// matched lot's cost, and their difference.
type ProfitLine struct {
	ProductName string
	SellPrice   Money
	Cost        Money
	Profit      Money
}

// ProfitReport lists per-sale profit rows and their running total. A sale
// whose lot does not resolve in the purchase log is dropped from the report
// rather than surfaced; the skip count is kept for observation.
type ProfitReport struct {
	Horizon Horizon
	Total   Money
	Lines   []ProfitLine

	skipped int
}

// Skipped returns the number of sales dropped because their purchase lot
// could not be resolved.
func (r *ProfitReport) Skipped() int { return r.skipped }

// NewProfitReport builds the profit report for the given horizon.
func NewProfitReport(l *Ledger, h Horizon) *ProfitReport {
	r := &ProfitReport{Horizon: h}
	for _, s := range h.Sales(l) {
		p, err := l.PurchaseOf(s)
		if err != nil {
			r.skipped++
			continue
		}
		profit := M(s.SellPrice).Sub(M(p.BuyPrice))
		r.Total = r.Total.Add(profit)
		r.Lines = append(r.Lines, ProfitLine{
			ProductName: p.ProductName,
			SellPrice:   M(s.SellPrice),
			Cost:        M(p.BuyPrice),
			Profit:      profit,
		})
	}
	return r
}
