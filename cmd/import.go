package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
	"github.com/jdevries/superstock"
)

// importCmd bulk-appends purchase lots from a supplier JSON price list.
type importCmd struct {
	file string
	path string
}

func (*importCmd) Name() string { return "import-purchases" }
func (*importCmd) Synopsis() string {
	return "bulk-import purchase lots from a supplier JSON price list"
}
func (*importCmd) Usage() string {
	return `super import-purchases -i <file> [-path <jsonpath>]

  Reads a JSON price list and appends one purchase lot per entry, dated at
  the current simulated date. The JSONPath selector must yield objects with
  "name", "price" and "expiration" fields, e.g.:

    super import-purchases -i pricelist.json -path '$.products[*]'
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "i", "", "input file")
	f.StringVar(&c.path, "path", "$[*]", "JSONPath selector for the price list entries")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "-i argument is required")
		return subcommands.ExitUsageError
	}

	raw, err := os.ReadFile(c.file)
	if err != nil {
		return fail(fmt.Errorf("cannot read file %q: %w", c.file, err))
	}
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return fail(fmt.Errorf("invalid JSON in %q: %w", c.file, err))
	}

	jval, err := jsonpath.Get(c.path, jobj)
	if err != nil {
		return fail(fmt.Errorf("invalid selector %q: %w", c.path, err))
	}
	// jsonpath returns either a list of matches or a single one; normalize
	// to a list.
	entries, ok := jval.([]any)
	if !ok {
		entries = []any{jval}
	}

	now, err := appClock().Now()
	if err != nil {
		return fail(err)
	}
	ledger, err := decodeLedger()
	if err != nil {
		return fail(err)
	}

	count := 0
	for i, entry := range entries {
		p, err := purchaseFromEntry(entry, now, ledger.NewID())
		if err != nil {
			return fail(fmt.Errorf("entry %d: %w", i, err))
		}
		if err := appendRecord(*boughtFile, p); err != nil {
			return fail(err)
		}
		ledger.AppendPurchase(p)
		count++
	}

	fmt.Printf("OK: Imported %d purchases from %q.\n", count, c.file)
	return subcommands.ExitSuccess
}

// purchaseFromEntry converts one price list entry into a purchase lot.
func purchaseFromEntry(entry any, buyDate superstock.Date, id int64) (superstock.Purchase, error) {
	obj, ok := entry.(map[string]any)
	if !ok {
		return superstock.Purchase{}, fmt.Errorf("want an object, got %T", entry)
	}
	name, ok := obj["name"].(string)
	if !ok || name == "" {
		return superstock.Purchase{}, fmt.Errorf("missing or invalid %q field", "name")
	}
	price, err := priceOf(obj["price"])
	if err != nil {
		return superstock.Purchase{}, err
	}
	sexp, ok := obj["expiration"].(string)
	if !ok {
		return superstock.Purchase{}, fmt.Errorf("missing or invalid %q field", "expiration")
	}
	expiration, err := superstock.ParseDate(sexp)
	if err != nil {
		return superstock.Purchase{}, err
	}
	return superstock.Purchase{
		ID:             id,
		ProductName:    name,
		BuyDate:        buyDate,
		BuyPrice:       price.Amount(),
		ExpirationDate: expiration,
	}, nil
}

// priceOf accepts the price either as a JSON number or as a string.
func priceOf(v any) (superstock.Money, error) {
	switch p := v.(type) {
	case float64:
		return superstock.ParsePrice(fmt.Sprintf("%v", p))
	case string:
		return superstock.ParsePrice(p)
	default:
		return superstock.Money{}, fmt.Errorf("missing or invalid %q field", "price")
	}
}
