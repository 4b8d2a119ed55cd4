// Package cmd implements the CLI application to manage the inventory ledger.
package cmd

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/jdevries/superstock"
	"github.com/jdevries/superstock/docs"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "ledger")
	c.Register(&sellCmd{}, "ledger")
	c.Register(&importCmd{}, "ledger")

	c.Register(&inventoryCmd{}, "reports")
	c.Register(&revenueCmd{}, "reports")
	c.Register(&profitCmd{}, "reports")

	c.Register(&advanceTimeCmd{}, "time")

	c.Register(&topicCmd{}, "documentation")
}

// As a CLI application the process is short lived, so globals are ok.

var boughtFile = flag.String("bought-file", "bought.jsonl", "Path to the purchase log (JSONL format)")
var soldFile = flag.String("sold-file", "sold.jsonl", "Path to the sale log (JSONL format)")
var timeFile = flag.String("time-file", "current_time.txt", "Path to the simulated clock file")

// welcomeFile marks that the first-run welcome message was already shown.
const welcomeFile = "welcome_shown.txt"

// appClock returns the simulated clock backed by the app time file.
func appClock() *superstock.Clock { return superstock.NewClock(*timeFile) }

// decodeLedger loads both logs into a ledger. A log file that was never
// written reads as empty.
func decodeLedger() (*superstock.Ledger, error) {
	bought, err := readLog(*boughtFile)
	if err != nil {
		return nil, err
	}
	sold, err := readLog(*soldFile)
	if err != nil {
		return nil, err
	}
	return superstock.DecodeLedger(bought, sold)
}

// readLog reads a log file, substituting an empty stream when the file does
// not exist yet.
func readLog(filename string) (io.Reader, error) {
	raw, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, log file does not exist, reading an empty log instead:", filename)
		return bytes.NewReader(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading log file %q: %v", superstock.ErrStorage, filename, err)
	}
	return bytes.NewReader(raw), nil
}

// appendRecord durably appends one record line to the given log file.
func appendRecord(filename string, rec interface{ MarshalJSON() ([]byte, error) }) error {
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: opening log file %q: %v", superstock.ErrStorage, filename, err)
	}
	defer f.Close()
	return superstock.EncodeRecord(f, rec)
}

// fail surfaces an error at the command boundary. Nothing crosses it.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	return subcommands.ExitFailure
}

// Welcome prints the first-run welcome topic once, then leaves a marker file
// so later invocations stay quiet. Deleting the marker shows it again.
func Welcome() {
	if _, err := os.Stat(welcomeFile); err == nil {
		return
	}
	doc, err := docs.GetTopic("welcome")
	if err != nil {
		return
	}
	printMarkdown(doc)
	os.WriteFile(welcomeFile, []byte("Delete this file to see the welcome message again.\n"), 0644)
}

// printMarkdown renders markdown for the terminal. If rendering fails the
// raw markdown is still printed.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
