package superstock

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DisplayCurrency is the currency code used to format amounts in reports.
// Prices in the logs are bare decimals; the currency is a display setting.
var DisplayCurrency = "EUR"

// Money represents a monetary value as an exact decimal amount.
type Money struct {
	value decimal.Decimal
}

// M builds a Money from a decimal amount.
func M(value decimal.Decimal) Money { return Money{value: value} }

// ParsePrice parses a decimal price from its textual form.
func ParsePrice(str string) (Money, error) {
	d, err := decimal.NewFromString(str)
	if err != nil {
		return Money{}, err
	}
	return Money{value: d}, nil
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal { return m.value }

func (m Money) Add(n Money) Money     { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money     { return Money{value: m.value.Sub(n.value)} }
func (m Money) Equal(n Money) bool    { return m.value.Equal(n.value) }
func (m Money) IsZero() bool          { return m.value.IsZero() }
func (m Money) IsNegative() bool      { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool { return m.value.LessThan(n.value) }

// String formats the amount in the display currency, e.g. "€0.50".
func (m Money) String() string {
	// The money constructor is the only way to get a never-nil currency.
	cur := money.New(0, DisplayCurrency).Currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}
