// Package feed is the boundary collaborator (spec §1: "thin collaborator"):
// CSV ingestion and output formatting. It has no opinion on matching — it
// only turns rows into RawOrders and events back into rows.
package feed

import (
	"encoding/csv"
	"fmt"
	"io"
)

// RawOrder is one input row, columns verbatim as text (spec §6): OrderID,
// Symbol, Price, Side, OrderQuantity. Parsing/validation belongs to the
// Admission Filter (internal/engine), not here — this package never
// rejects a row, it only reports read/shape errors.
type RawOrder struct {
	OrderID  string
	Symbol   string
	Price    string
	Side     string
	Quantity string
}

const expectedColumns = 5

// ReadAll reads the header row and every data row from r, in file order.
// A short or malformed row is a fatal, malformed-input error per spec §7 —
// the whole run is abandoned rather than trusting partial input.
func ReadAll(r io.Reader) ([]RawOrder, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // we check width ourselves for a clearer error

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("feed: empty input, expected a header row")
		}
		return nil, fmt.Errorf("feed: reading header: %w", err)
	}
	if len(header) < expectedColumns {
		return nil, fmt.Errorf("feed: header has %d columns, want at least %d", len(header), expectedColumns)
	}

	var orders []RawOrder
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("feed: reading row %d: %w", len(orders)+1, err)
		}
		if len(row) < expectedColumns {
			return nil, fmt.Errorf("feed: row %d has %d columns, want %d", len(orders)+1, len(row), expectedColumns)
		}
		orders = append(orders, RawOrder{
			OrderID:  row[0],
			Symbol:   row[1],
			Price:    row[2],
			Side:     row[3],
			Quantity: row[4],
		})
	}
	return orders, nil
}
