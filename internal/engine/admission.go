package engine

import (
	"fmt"
	"strconv"

	"limitbook/internal/common"
	"limitbook/internal/events"
	"limitbook/internal/feed"
	"limitbook/internal/price"
)

// Admission is the Admission Filter's verdict for one raw row (spec §2
// component 4, §4.1): an event to append plus, if the order was admitted,
// the normalized internal Order.
type Admission struct {
	Event    events.Event
	Order    *Order // nil if rejected
	Admitted bool
}

// Admit classifies one raw row in the order spec §4.1 lists its rules.
// Malformed input (bad side, bad price, non-integer or non-positive
// quantity) is returned as a non-nil error and is fatal for the whole run
// (spec §7) — it is never turned into a Reject event. An oversized
// quantity is a business reject (spec §4.1 rule 2): it produces a Reject
// event with Admitted=false and a nil Order, with no error.
func Admit(raw feed.RawOrder) (Admission, error) {
	side, err := common.ParseSide(raw.Side)
	if err != nil {
		return Admission{}, err
	}

	qty, err := strconv.ParseInt(raw.Quantity, 10, 64)
	if err != nil || qty <= 0 {
		return Admission{}, fmt.Errorf("%w: %q", common.ErrInvalidQuantity, raw.Quantity)
	}

	p, err := price.Parse(raw.Price)
	if err != nil {
		return Admission{}, fmt.Errorf("%w: %v", common.ErrInvalidPrice, err)
	}

	if qty > MaxOrderQuantity {
		return Admission{
			Event: events.Reject{OrderID: raw.OrderID, Symbol: raw.Symbol, Price: p, Side: side, Qty: qty},
		}, nil
	}

	orderType := LimitOrder
	if p.IsMarket() {
		orderType = MarketOrder
	}

	order := &Order{
		ID:           raw.OrderID,
		Symbol:       raw.Symbol,
		Side:         side,
		OrderType:    orderType,
		Price:        p,
		OriginalQty:  qty,
		QtyRemaining: qty,
	}

	return Admission{
		Event:    events.Ack{OrderID: raw.OrderID, Symbol: raw.Symbol, Price: p, Side: side, Qty: qty},
		Order:    order,
		Admitted: true,
	}, nil
}
