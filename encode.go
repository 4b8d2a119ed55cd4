package superstock

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The two logs persist as JSONL: one record per line, append-only, never
// rewritten. Decoding a stream that was never written yields an empty log.

// DecodePurchases decodes the purchase log from a stream of JSONL data.
func DecodePurchases(r io.Reader) ([]Purchase, error) {
	var out []Purchase
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}
		var p Purchase
		if err := json.Unmarshal(line, &p); err != nil {
			return nil, fmt.Errorf("could not decode purchase line %q: %w", string(line), err)
		}
		out = append(out, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading purchase log: %v", ErrStorage, err)
	}
	return out, nil
}

// DecodeSales decodes the sale log from a stream of JSONL data.
func DecodeSales(r io.Reader) ([]Sale, error) {
	var out []Sale
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var s Sale
		if err := json.Unmarshal(line, &s); err != nil {
			return nil, fmt.Errorf("could not decode sale line %q: %w", string(line), err)
		}
		out = append(out, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading sale log: %v", ErrStorage, err)
	}
	return out, nil
}

// DecodeLedger assembles a ledger from the two log streams.
func DecodeLedger(bought, sold io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	purchases, err := DecodePurchases(bought)
	if err != nil {
		return nil, err
	}
	for _, p := range purchases {
		ledger.AppendPurchase(p)
	}
	sales, err := DecodeSales(sold)
	if err != nil {
		return nil, err
	}
	for _, s := range sales {
		ledger.AppendSale(s)
	}
	return ledger, nil
}

// EncodeRecord marshals a single record and writes it as one JSONL line.
func EncodeRecord(w io.Writer, rec json.Marshaler) error {
	data, err := rec.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("%w: writing record: %v", ErrStorage, err)
	}
	return nil
}
