package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
	"github.com/jdevries/superstock"
)

// setupApp points the app files into a fresh temp directory and pins the
// simulated clock, so command tests are hermetic and deterministic.
func setupApp(t *testing.T, clockDate string) {
	t.Helper()
	dir := t.TempDir()
	*boughtFile = filepath.Join(dir, "bought.jsonl")
	*soldFile = filepath.Join(dir, "sold.jsonl")
	*timeFile = filepath.Join(dir, "current_time.txt")
	if err := appClock().Set(superstock.MustParse(clockDate)); err != nil {
		t.Fatal(err)
	}
}

func execute(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parsing flags for %s: %v", c.Name(), err)
	}
	return c.Execute(context.Background(), f)
}

func TestBuyThenSell(t *testing.T) {
	setupApp(t, "2024-01-01")

	if got := execute(t, &buyCmd{}, "--product-name", "apple", "--price", "0.50", "--expiration-date", "2030-01-01"); got != subcommands.ExitSuccess {
		t.Fatalf("buy exited %v, want success", got)
	}

	ledger, err := decodeLedger()
	if err != nil {
		t.Fatal(err)
	}
	purchases := ledger.Purchases()
	if len(purchases) != 1 {
		t.Fatalf("purchase log has %d records, want 1", len(purchases))
	}
	if purchases[0].BuyDate != superstock.MustParse("2024-01-01") {
		t.Errorf("purchase dated %s, want the clock date 2024-01-01", purchases[0].BuyDate)
	}

	if got := execute(t, &sellCmd{}, "--product-name", "apple", "--price", "1.00"); got != subcommands.ExitSuccess {
		t.Fatalf("sell exited %v, want success", got)
	}

	ledger, err = decodeLedger()
	if err != nil {
		t.Fatal(err)
	}
	sales := ledger.Sales()
	if len(sales) != 1 {
		t.Fatalf("sale log has %d records, want 1", len(sales))
	}
	if sales[0].BoughtID != purchases[0].ID {
		t.Errorf("sale references lot %d, want %d", sales[0].BoughtID, purchases[0].ID)
	}
}

func TestSellWithoutStockFails(t *testing.T) {
	setupApp(t, "2024-01-01")

	if got := execute(t, &sellCmd{}, "--product-name", "ghost", "--price", "1.00"); got != subcommands.ExitFailure {
		t.Fatalf("sell exited %v, want failure", got)
	}
	ledger, err := decodeLedger()
	if err != nil {
		t.Fatal(err)
	}
	if got := len(ledger.Sales()); got != 0 {
		t.Errorf("failed sell appended %d sale records, want 0", got)
	}
}

func TestAdvanceTimePrecedence(t *testing.T) {
	setupApp(t, "2024-01-01")

	// A positional day count advances the clock.
	if got := execute(t, &advanceTimeCmd{}, "2"); got != subcommands.ExitSuccess {
		t.Fatalf("advance-time exited %v, want success", got)
	}
	if now, _ := appClock().Now(); now != superstock.MustParse("2024-01-03") {
		t.Errorf("clock = %s, want 2024-01-03", now)
	}

	// --set-date wins over a positional day count.
	if got := execute(t, &advanceTimeCmd{}, "--set-date", "2025-06-01", "5"); got != subcommands.ExitSuccess {
		t.Fatalf("advance-time exited %v, want success", got)
	}
	if now, _ := appClock().Now(); now != superstock.MustParse("2025-06-01") {
		t.Errorf("clock = %s, want 2025-06-01", now)
	}

	// --reset wins over everything.
	if got := execute(t, &advanceTimeCmd{}, "--reset", "--set-date", "2025-06-01"); got != subcommands.ExitSuccess {
		t.Fatalf("advance-time exited %v, want success", got)
	}
	if now, _ := appClock().Now(); now != superstock.Today() {
		t.Errorf("clock = %s, want today", now)
	}
}

func TestPeriodFlagsHorizon(t *testing.T) {
	setupApp(t, "2024-03-15")

	testCases := []struct {
		name      string
		flags     periodFlags
		wantEnd   string
		wantExact bool
	}{
		{name: "default is the clock date", flags: periodFlags{}, wantEnd: "2024-03-15"},
		{name: "today", flags: periodFlags{today: true}, wantEnd: "2024-03-15"},
		{name: "yesterday", flags: periodFlags{yesterday: true}, wantEnd: "2024-03-14"},
		{name: "explicit date is exact", flags: periodFlags{date: "2024-02-10"}, wantEnd: "2024-02-10", wantExact: true},
		{name: "month resolves to its last day", flags: periodFlags{month: "2024-02"}, wantEnd: "2024-02-29"},
		{name: "year resolves to december 31", flags: periodFlags{year: "2023"}, wantEnd: "2023-12-31"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, err := tc.flags.horizon()
			if err != nil {
				t.Fatalf("horizon() failed: %v", err)
			}
			if h.End != superstock.MustParse(tc.wantEnd) {
				t.Errorf("horizon end = %s, want %s", h.End, tc.wantEnd)
			}
			if h.Exact != tc.wantExact {
				t.Errorf("horizon exact = %v, want %v", h.Exact, tc.wantExact)
			}
		})
	}

	t.Run("malformed date", func(t *testing.T) {
		p := periodFlags{date: "02-10-2024"}
		if _, err := p.horizon(); err == nil {
			t.Errorf("horizon() on a malformed date succeeded, want error")
		}
	})
}

func TestImportPurchases(t *testing.T) {
	setupApp(t, "2024-01-01")

	pricelist := filepath.Join(t.TempDir(), "pricelist.json")
	payload := `{"products":[
		{"name":"orange","price":0.8,"expiration":"2026-01-01"},
		{"name":"lemon","price":"0.6","expiration":"2026-02-01"}
	]}`
	if err := os.WriteFile(pricelist, []byte(payload), 0644); err != nil {
		t.Fatal(err)
	}

	if got := execute(t, &importCmd{}, "-i", pricelist, "-path", "$.products[*]"); got != subcommands.ExitSuccess {
		t.Fatalf("import-purchases exited %v, want success", got)
	}

	ledger, err := decodeLedger()
	if err != nil {
		t.Fatal(err)
	}
	purchases := ledger.Purchases()
	if len(purchases) != 2 {
		t.Fatalf("imported %d purchases, want 2", len(purchases))
	}
	if purchases[0].ProductName != "orange" || purchases[1].ProductName != "lemon" {
		t.Errorf("imported products %q, %q; want orange, lemon", purchases[0].ProductName, purchases[1].ProductName)
	}
	if purchases[0].ID == purchases[1].ID {
		t.Errorf("imported purchases share id %d", purchases[0].ID)
	}
	if purchases[0].BuyDate != superstock.MustParse("2024-01-01") {
		t.Errorf("imported purchase dated %s, want the clock date", purchases[0].BuyDate)
	}
}

func TestInventoryAsOfFlags(t *testing.T) {
	setupApp(t, "2024-03-15")

	testCases := []struct {
		name string
		cmd  inventoryCmd
		want string
	}{
		{name: "default", cmd: inventoryCmd{}, want: "2024-03-15"},
		{name: "now", cmd: inventoryCmd{now: true}, want: "2024-03-15"},
		{name: "yesterday", cmd: inventoryCmd{yesterday: true}, want: "2024-03-14"},
		{name: "explicit date", cmd: inventoryCmd{date: "2024-01-01"}, want: "2024-01-01"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.cmd.asOf()
			if err != nil {
				t.Fatalf("asOf() failed: %v", err)
			}
			if got != superstock.MustParse(tc.want) {
				t.Errorf("asOf() = %s, want %s", got, tc.want)
			}
		})
	}
}
