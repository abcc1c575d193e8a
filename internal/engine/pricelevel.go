package engine

import (
	"limitbook/internal/common"
	"limitbook/internal/price"
)

// PriceLevel is an ordered FIFO of resting orders at one price, one side,
// one symbol (spec §3, §4.2). Orders is a plain slice: the matching core
// consumes from the head, popping each fully-filled order with PopHead
// (a reslice past the head) one at a time.
type PriceLevel struct {
	Price  price.Price
	Side   common.Side
	Orders []*Order
}

func newPriceLevel(p price.Price, side common.Side) *PriceLevel {
	return &PriceLevel{Price: p, Side: side}
}

// Append adds an order to the tail, preserving arrival (time) priority
// (spec §4.2).
func (lvl *PriceLevel) Append(o *Order) {
	lvl.Orders = append(lvl.Orders, o)
}

// PeekHead returns the order at the front of the FIFO without removing it.
func (lvl *PriceLevel) PeekHead() *Order {
	if len(lvl.Orders) == 0 {
		return nil
	}
	return lvl.Orders[0]
}

// PopHead removes and returns the order at the front of the FIFO.
func (lvl *PriceLevel) PopHead() *Order {
	if len(lvl.Orders) == 0 {
		return nil
	}
	head := lvl.Orders[0]
	lvl.Orders = lvl.Orders[1:]
	return head
}

// TotalQty sums qty_remaining across every resting order at this level
// (spec §4.4's `avail`).
func (lvl *PriceLevel) TotalQty() int64 {
	var total int64
	for _, o := range lvl.Orders {
		total += o.QtyRemaining
	}
	return total
}

// Empty reports whether the level has no resting orders left. An empty
// level must never be retained in the book (spec §3 invariant, §4.2
// drop_if_empty).
func (lvl *PriceLevel) Empty() bool {
	return len(lvl.Orders) == 0
}
