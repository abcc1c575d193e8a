package engine

import (
	"fmt"

	"limitbook/internal/common"
	"limitbook/internal/price"
)

// Order is the internal, post-admission representation (spec §3). The
// identity fields are set once at admission; QtyRemaining is the only
// mutable execution state, monotonically non-increasing.
type Order struct {
	ID           string
	Symbol       string
	Side         common.Side
	OrderType    OrderType
	Price        price.Price // MKT-normalized per spec §4.1 rule 3
	OriginalQty  int64
	QtyRemaining int64
}

// QtyDone is derivable execution state (spec §3).
func (o *Order) QtyDone() int64 {
	return o.OriginalQty - o.QtyRemaining
}

func (o *Order) String() string {
	return fmt.Sprintf("Order{id=%s symbol=%s side=%v price=%v qty=%d/%d}",
		o.ID, o.Symbol, o.Side, o.Price, o.QtyRemaining, o.OriginalQty)
}
