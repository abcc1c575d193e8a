package feed

import (
	"encoding/csv"
	"io"

	"limitbook/internal/events"
)

// header is the fixed output header (spec §6).
var header = []string{"ActionType", "OrderID", "Symbol", "Price", "Side", "OrderQuantity", "FillPrice", "FillQuantity"}

// WriteAll renders every event in the sink to w as CSV, header first, in
// the sink's strict append order.
func WriteAll(w io.Writer, sink *events.Sink) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, e := range sink.Events() {
		if err := cw.Write(e.Row()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
