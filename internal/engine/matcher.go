package engine

import (
	"errors"
	"fmt"

	"limitbook/internal/common"
	"limitbook/internal/events"
	"limitbook/internal/price"
)

// ErrUnpriceableCross signals the §4.4 MKT-vs-MKT edge where no trade
// price can be found anywhere — the contra side has no non-sentinel
// price, and no later admitted order on the aggressor's own side quotes a
// concrete limit. It is never fatal: Process recovers from it by halting
// the current aggressor's matching (SPEC_FULL §13, resolution 3).
var ErrUnpriceableCross = errors.New("unpriceable MKT-vs-MKT cross")

// Matcher is the Matching Core (spec §2 component 5, §4.3-§4.4): it is
// the only mutator of Order Books, driving the crossing loop for one
// admitted order at a time and appending every fill to the Event Sink.
type Matcher struct {
	Registry *Registry
	Sink     *events.Sink
}

// NewMatcher wires a Matcher to the books and the log it will mutate and
// append to, respectively.
func NewMatcher(registry *Registry, sink *events.Sink) *Matcher {
	return &Matcher{Registry: registry, Sink: sink}
}

// Process runs the full outer loop (spec §4.3) for admitted[idx]. admitted
// is the complete, in-input-order list of every order that passed the
// Admission Filter in this run — Process only mutates admitted[idx] and
// the book, but reads forward into admitted[idx+1:] for the MKT-vs-MKT
// lookahead in §4.4.
func (m *Matcher) Process(admitted []*Order, idx int) error {
	order := admitted[idx]
	book := m.Registry.BookFor(order.Symbol)

	for order.QtyRemaining > 0 {
		level, ok := bestContraLevel(book, order.Side)
		if !ok {
			break
		}
		if !crosses(order.Side, order.Price, level.Price) {
			break
		}

		if err := m.levelMatch(admitted, idx, order, book, level); err != nil {
			if errors.Is(err, ErrUnpriceableCross) {
				// Halt matching this aggressor; per SPEC_FULL §13
				// resolution 3 its residual is not rested under an
				// unpriced sentinel.
				return nil
			}
			return err
		}
	}

	if order.QtyRemaining > 0 {
		book.Insert(order)
	}
	return nil
}

// bestContraLevel returns the best resting level on the side opposite to
// side (spec §4.3 step 2: "contra = asks if S=Buy else bids").
func bestContraLevel(book *OrderBook, side common.Side) (*PriceLevel, bool) {
	if side == common.Buy {
		return book.BestAsk()
	}
	return book.BestBid()
}

// crosses implements the §4.3 step 3 / glossary cross condition:
// Buy: p ≥ b (p=+∞ crosses any b); Sell: p ≤ b (p=−∞ crosses any b). A
// Market level on the contra side (b is the sentinel) crosses any
// incoming price too, since a resting MKT order is always marketable.
func crosses(side common.Side, own, contra price.Price) bool {
	if own.IsMarket() || contra.IsMarket() {
		return true
	}
	if side == common.Buy {
		return own.Value().GreaterThanOrEqual(contra.Value())
	}
	return own.Value().LessThanOrEqual(contra.Value())
}

// levelMatch performs one level match (spec §4.4): it consumes up to
// match_qty of resting liquidity at level, head-first in FIFO order,
// emitting a passive Fill per resting order touched and a single
// aggregate aggressor Fill once the level is consumed.
func (m *Matcher) levelMatch(admitted []*Order, idx int, order *Order, book *OrderBook, level *PriceLevel) error {
	avail := level.TotalQty()
	matchQty := order.QtyRemaining
	if avail < matchQty {
		matchQty = avail
	}
	if matchQty <= 0 {
		panic(fmt.Sprintf("engine: invariant violation: non-positive match quantity for %s", order))
	}

	tradePrice, ok := m.determineTradePrice(admitted, idx, order, level, book)
	if !ok {
		return ErrUnpriceableCross
	}

	remaining := matchQty
	for remaining > 0 {
		head := level.PeekHead()
		if head == nil {
			panic(fmt.Sprintf("engine: invariant violation: empty level retained at %v", level.Price))
		}

		take := remaining
		if head.QtyRemaining < take {
			take = head.QtyRemaining
		}
		head.QtyRemaining -= take
		if head.QtyRemaining < 0 {
			panic(fmt.Sprintf("engine: invariant violation: negative remaining quantity for %s", head))
		}

		m.Sink.Append(events.Fill{
			OrderID:     head.ID,
			Symbol:      head.Symbol,
			Price:       head.Price,
			Side:        head.Side,
			OriginalQty: head.OriginalQty,
			FillPrice:   tradePrice,
			FillQty:     take,
		})

		remaining -= take
		if head.QtyRemaining == 0 {
			level.PopHead()
		}
	}

	order.QtyRemaining -= matchQty

	// The aggregate aggressor Fill is emitted once per level match, after
	// every passive Fill at that level — spec §4.4's normalized event
	// ordering contract (SPEC_FULL §13 resolution 1), applied uniformly
	// to both Buy and Sell aggressors.
	m.Sink.Append(events.Fill{
		OrderID:     order.ID,
		Symbol:      order.Symbol,
		Price:       order.Price,
		Side:        order.Side,
		OriginalQty: order.OriginalQty,
		FillPrice:   tradePrice,
		FillQty:     matchQty,
	})

	book.DropIfEmpty(level.Side, level)
	return nil
}

// determineTradePrice implements spec §4.4's trade-price determination.
func (m *Matcher) determineTradePrice(admitted []*Order, idx int, order *Order, level *PriceLevel, book *OrderBook) (price.Price, bool) {
	if !level.Price.IsMarket() {
		return level.Price, true
	}
	if !order.Price.IsMarket() {
		return order.Price, true
	}

	// Both sides at the touch are MKT: prefer the contra side's best
	// non-sentinel price.
	contraSide := order.Side.Opposite()
	if p, ok := book.BestNonMarket(contraSide); ok {
		return p, true
	}

	// Fall back to the next admitted order, at or after this position,
	// on the aggressor's own side with a concrete limit (SPEC_FULL §13
	// resolution 2 — the source's literal choice, preserved).
	for j := idx; j < len(admitted); j++ {
		cand := admitted[j]
		if cand.Side == order.Side && !cand.Price.IsMarket() {
			return cand.Price, true
		}
	}

	return price.Price{}, false
}
