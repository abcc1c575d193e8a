// Package events is the Event Sink (spec §4's "leaves first" component 6):
// an append-only ordered log of admission and fill events. Nothing but the
// Matching Core and Admission Filter writes to it, and it never reorders
// what it's given.
package events

import (
	"strconv"

	"limitbook/internal/common"
	"limitbook/internal/price"

	"github.com/google/uuid"
)

// Event is one admission or fill record. Row renders it to the output
// CSV's column order (spec §6): ActionType, OrderID, Symbol, Price, Side,
// OrderQuantity, FillPrice, FillQuantity.
type Event interface {
	Row() []string
	seq() string
}

// base carries the internal audit-sequence id every event is stamped with
// on Append — distinct from the caller-supplied OrderID, and never
// rendered into the output CSV (spec §6 defines exactly eight columns);
// it exists so a downstream reconciliation tool can correlate events
// across the concurrently-run batch files described in SPEC_FULL §11/§12
// without reparsing row order.
type base struct {
	seqID string
}

func (b base) seq() string { return b.seqID }

func newBase() base {
	return base{seqID: uuid.NewString()}
}

// Ack records an admitted order (spec §4.1).
type Ack struct {
	base
	OrderID string
	Symbol  string
	Price   price.Price
	Side    common.Side
	Qty     int64
}

func (e Ack) Row() []string {
	return []string{"Ack", e.OrderID, e.Symbol, e.Price.String(), e.Side.String(), strconv.FormatInt(e.Qty, 10), "", ""}
}

// Reject records a business-rejected order (spec §4.1 rule 2); it never
// enters any book.
type Reject struct {
	base
	OrderID string
	Symbol  string
	Price   price.Price
	Side    common.Side
	Qty     int64
}

func (e Reject) Row() []string {
	return []string{"Reject", e.OrderID, e.Symbol, e.Price.String(), e.Side.String(), strconv.FormatInt(e.Qty, 10), "", ""}
}

// Fill records one execution, either the passive (resting) side or the
// aggressor's per-level aggregate (spec §4.4). FillPrice is always a
// concrete price, never the MKT token.
type Fill struct {
	base
	OrderID     string
	Symbol      string
	Price       price.Price // the order's own quoted price, MKT if it was a market order
	Side        common.Side
	OriginalQty int64
	FillPrice   price.Price
	FillQty     int64
}

func (e Fill) Row() []string {
	return []string{"Fill", e.OrderID, e.Symbol, e.Price.String(), e.Side.String(), strconv.FormatInt(e.OriginalQty, 10), e.FillPrice.String(), strconv.FormatInt(e.FillQty, 10)}
}

// Sink is the append-only ordered event log. It is not safe for concurrent
// writers — each batch run in SPEC_FULL §11/§12 owns an independent Sink,
// matching the single-threaded-per-run guarantee in spec §5.
type Sink struct {
	events []Event
}

// NewSink returns an empty event log.
func NewSink() *Sink {
	return &Sink{}
}

// Append records e at the tail of the log, stamping it with a fresh audit
// sequence id.
func (s *Sink) Append(e Event) {
	switch v := e.(type) {
	case Ack:
		v.base = newBase()
		s.events = append(s.events, v)
	case Reject:
		v.base = newBase()
		s.events = append(s.events, v)
	case Fill:
		v.base = newBase()
		s.events = append(s.events, v)
	default:
		s.events = append(s.events, e)
	}
}

// Events returns the log in strict append order.
func (s *Sink) Events() []Event {
	return s.events
}

// Len reports how many events have been appended.
func (s *Sink) Len() int {
	return len(s.events)
}
