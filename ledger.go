package superstock

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is a single lot: one physical unit of a product bought on a
// given date. Purchases are immutable once appended.
type Purchase struct {
	ID             int64           `json:"id"`
	ProductName    string          `json:"product_name"`
	BuyDate        Date            `json:"buy_date"`
	BuyPrice       decimal.Decimal `json:"buy_price"`
	ExpirationDate Date            `json:"expiration_date"`
}

// MarshalJSON keeps the persisted field order canonical.
func (p Purchase) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", p.ID)
	w.Append("product_name", p.ProductName)
	w.Append("buy_date", p.BuyDate)
	w.Append("buy_price", p.BuyPrice)
	w.Append("expiration_date", p.ExpirationDate)
	return w.MarshalJSON()
}

// Sale debits exactly one purchase lot. A lot, once sold, cannot be sold
// again; the matching engine enforces this, not the store.
type Sale struct {
	ID        int64           `json:"id"`
	BoughtID  int64           `json:"bought_id"`
	SellDate  Date            `json:"sell_date"`
	SellPrice decimal.Decimal `json:"sell_price"`
}

// MarshalJSON keeps the persisted field order canonical.
func (s Sale) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", s.ID)
	w.Append("bought_id", s.BoughtID)
	w.Append("sell_date", s.SellDate)
	w.Append("sell_price", s.SellPrice)
	return w.MarshalJSON()
}

// Ledger holds the two append-only logs in insertion order, with indexes to
// resolve lots by id and to tell sold lots apart.
type Ledger struct {
	purchases []Purchase
	sales     []Sale

	purchaseByID map[int64]int // purchase id -> index in purchases
	saleByLot    map[int64]int // bought_id -> index in sales
	maxID        int64         // highest id seen across both logs
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		purchaseByID: make(map[int64]int),
		saleByLot:    make(map[int64]int),
	}
}

// AppendPurchase adds a purchase record, preserving insertion order.
func (l *Ledger) AppendPurchase(p Purchase) {
	l.purchaseByID[p.ID] = len(l.purchases)
	l.purchases = append(l.purchases, p)
	if p.ID > l.maxID {
		l.maxID = p.ID
	}
}

// AppendSale adds a sale record, preserving insertion order.
func (l *Ledger) AppendSale(s Sale) {
	l.saleByLot[s.BoughtID] = len(l.sales)
	l.sales = append(l.sales, s)
	if s.ID > l.maxID {
		l.maxID = s.ID
	}
}

// Purchases returns all purchase records in insertion order.
func (l *Ledger) Purchases() []Purchase { return slices.Clone(l.purchases) }

// Sales returns all sale records in insertion order.
func (l *Ledger) Sales() []Sale { return slices.Clone(l.sales) }

// NewID allocates a record id. Ids are seeded from the unix clock and bumped
// past the highest id already in the ledger, so several records created in
// the same second stay unique.
func (l *Ledger) NewID() int64 {
	id := time.Now().Unix()
	if id <= l.maxID {
		id = l.maxID + 1
	}
	l.maxID = id
	return id
}

// IsSold reports whether the purchase lot already has a sale record.
func (l *Ledger) IsSold(boughtID int64) bool {
	_, ok := l.saleByLot[boughtID]
	return ok
}

// Sell matches a sale against a concrete purchase lot and records it.
//
// The scan is a greedy first-fit over insertion order: among the lots whose
// product name matches exactly, the first unsold one decides the whole
// operation. If that lot expired before asOf the sale fails with ErrExpired
// without trying later lots. With no matching lot at all it fails with
// ErrNotInStock, and with every matching lot sold it fails ErrAlreadySold.
// On success the new sale is appended to the ledger and returned together
// with the matched lot.
func (l *Ledger) Sell(productName string, sellPrice decimal.Decimal, asOf Date) (Sale, Purchase, error) {
	found := false
	for _, p := range l.purchases {
		if p.ProductName != productName {
			continue
		}
		found = true
		if l.IsSold(p.ID) {
			continue
		}
		if p.ExpirationDate.Before(asOf) {
			return Sale{}, Purchase{}, fmt.Errorf("product %q: %w", productName, ErrExpired)
		}
		s := Sale{
			ID:        l.NewID(),
			BoughtID:  p.ID,
			SellDate:  asOf,
			SellPrice: sellPrice,
		}
		l.AppendSale(s)
		return s, p, nil
	}
	if !found {
		return Sale{}, Purchase{}, fmt.Errorf("product %q: %w", productName, ErrNotInStock)
	}
	return Sale{}, Purchase{}, fmt.Errorf("product %q: %w", productName, ErrAlreadySold)
}

// InventoryAsOf returns every purchase bought on or before the given date
// that has no sale record, in insertion order. Expired-but-unsold lots are
// not excluded: expiration is a sale precondition, not an inventory filter.
func (l *Ledger) InventoryAsOf(d Date) []Purchase {
	var inv []Purchase
	for _, p := range l.purchases {
		if !p.BuyDate.After(d) && !l.IsSold(p.ID) {
			inv = append(inv, p)
		}
	}
	return inv
}

// SalesOn returns the sales dated exactly d, in insertion order.
func (l *Ledger) SalesOn(d Date) []Sale {
	var out []Sale
	for _, s := range l.sales {
		if s.SellDate == d {
			out = append(out, s)
		}
	}
	return out
}

// SalesThrough returns every sale dated on or before d, in insertion order.
// Period reports constrain d to the period's last day, so a month or year
// report covers the whole history up to that day.
func (l *Ledger) SalesThrough(d Date) []Sale {
	var out []Sale
	for _, s := range l.sales {
		if !s.SellDate.After(d) {
			out = append(out, s)
		}
	}
	return out
}

// PurchaseOf resolves the purchase lot a sale debited. A sale whose
// bought_id has no matching purchase fails with ErrDanglingReference;
// given the append-only invariants this only happens on store corruption.
func (l *Ledger) PurchaseOf(s Sale) (Purchase, error) {
	i, ok := l.purchaseByID[s.BoughtID]
	if !ok {
		return Purchase{}, fmt.Errorf("sale %d references purchase %d: %w", s.ID, s.BoughtID, ErrDanglingReference)
	}
	return l.purchases[i], nil
}
