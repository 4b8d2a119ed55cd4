package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/jdevries/superstock"
)

// --- Buy Command ---

type buyCmd struct {
	productName    string
	price          string
	expirationDate string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "buy a product lot at the current simulated date" }
func (*buyCmd) Usage() string {
	return `super buy --product-name <name> --price <price> --expiration-date <date>

  Appends a purchase lot to the ledger, dated at the current simulated date.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.productName, "product-name", "", "Name of the product")
	f.StringVar(&c.price, "price", "", "Price of the product")
	f.StringVar(&c.expirationDate, "expiration-date", "", "Expiration date of the product (YYYY-MM-DD)")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.productName == "" || c.price == "" || c.expirationDate == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	price, err := superstock.ParsePrice(c.price)
	if err != nil {
		return fail(fmt.Errorf("invalid price %q: %w", c.price, err))
	}
	expiration, err := superstock.ParseDate(c.expirationDate)
	if err != nil {
		return fail(err)
	}

	now, err := appClock().Now()
	if err != nil {
		return fail(err)
	}
	// The ledger is loaded to allocate an id unique across all records
	// ever appended.
	ledger, err := decodeLedger()
	if err != nil {
		return fail(err)
	}

	p := superstock.Purchase{
		ID:             ledger.NewID(),
		ProductName:    c.productName,
		BuyDate:        now,
		BuyPrice:       price.Amount(),
		ExpirationDate: expiration,
	}
	if err := appendRecord(*boughtFile, p); err != nil {
		return fail(err)
	}

	fmt.Println("OK")
	fmt.Printf("Product %q (ID: %d) bought for %s on %s. Expires on %s.\n",
		p.ProductName, p.ID, price, p.BuyDate, p.ExpirationDate)
	return subcommands.ExitSuccess
}

// --- Sell Command ---

type sellCmd struct {
	productName string
	price       string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell one lot of a product at the current simulated date" }
func (*sellCmd) Usage() string {
	return `super sell --product-name <name> --price <price>

  Matches the sale against the first unsold lot of the product and appends
  a sale record. Fails if the product is not in stock, expired, or every
  lot is already sold.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.productName, "product-name", "", "Name of the product")
	f.StringVar(&c.price, "price", "", "Price at which the product is sold")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.productName == "" || c.price == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	price, err := superstock.ParsePrice(c.price)
	if err != nil {
		return fail(fmt.Errorf("invalid price %q: %w", c.price, err))
	}

	now, err := appClock().Now()
	if err != nil {
		return fail(err)
	}
	ledger, err := decodeLedger()
	if err != nil {
		return fail(err)
	}

	sale, lot, err := ledger.Sell(c.productName, price.Amount(), now)
	if err != nil {
		return fail(err)
	}
	if err := appendRecord(*soldFile, sale); err != nil {
		return fail(err)
	}

	fmt.Printf("OK: Product %q (ID: %d) sold for %s.\n", lot.ProductName, lot.ID, price)
	return subcommands.ExitSuccess
}
