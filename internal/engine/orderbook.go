package engine

import (
	"limitbook/internal/common"
	"limitbook/internal/price"

	"github.com/tidwall/btree"
)

// PriceLevels is the ordered index the teacher keeps per side (spec §4.2's
// complexity note: best-price and second-best-excluding-sentinel queries
// must be cheap under repeated calls).
type PriceLevels = btree.BTreeG[*PriceLevel]

// OrderBook holds the bid and ask price-level trees for one symbol (spec
// §3). Invariant: every level referenced is non-empty (empty levels are
// dropped eagerly, spec §4.2 drop_if_empty / §5 resource lifecycle).
type OrderBook struct {
	Symbol string
	Bids   *PriceLevels // best = highest price; Market sorts ahead of any limit
	Asks   *PriceLevels // best = lowest price; Market sorts ahead of any limit
}

// NewOrderBook builds an empty book for symbol. The comparators encode the
// MKT-sentinel-aware ordering from spec §3/§4.5 without ever forming a
// numeric infinity (spec §9's design note): a Market level always sorts as
// the best price on its own side.
func NewOrderBook(symbol string) *OrderBook {
	bids := btree.NewBTreeG(func(a, b *PriceLevel) bool {
		return levelBetter(common.Buy, a, b)
	})
	asks := btree.NewBTreeG(func(a, b *PriceLevel) bool {
		return levelBetter(common.Sell, a, b)
	})
	return &OrderBook{Symbol: symbol, Bids: bids, Asks: asks}
}

// levelBetter reports whether a sorts ahead of b (i.e. a has strictly
// better priority; equal prices report false) for the given side's resting
// book. Used as the
// btree Less function, so the tree's Min() is always the best price.
func levelBetter(side common.Side, a, b *PriceLevel) bool {
	if a.Price.IsMarket() != b.Price.IsMarket() {
		return a.Price.IsMarket() // Market always sorts first (best)
	}
	if a.Price.IsMarket() {
		return false // only one Market level can exist per side
	}
	if side == common.Buy {
		return a.Price.Value().GreaterThan(b.Price.Value()) // highest bid first
	}
	return a.Price.Value().LessThan(b.Price.Value()) // lowest ask first
}

// levelsFor returns the resting (own) side's tree for side.
func (book *OrderBook) levelsFor(side common.Side) *PriceLevels {
	if side == common.Buy {
		return book.Bids
	}
	return book.Asks
}

// contraLevelsFor returns the contra side's tree an aggressor of side
// crosses against.
func (book *OrderBook) contraLevelsFor(side common.Side) *PriceLevels {
	return book.levelsFor(side.Opposite())
}

// BestBid returns the best (highest, Market-first) resting bid level.
func (book *OrderBook) BestBid() (*PriceLevel, bool) {
	return book.Bids.MinMut()
}

// BestAsk returns the best (lowest, Market-first) resting ask level.
func (book *OrderBook) BestAsk() (*PriceLevel, bool) {
	return book.Asks.MinMut()
}

// Insert appends order to the tail of its own side's level at its own
// price, creating the level if absent (spec §4.2 insert).
func (book *OrderBook) Insert(order *Order) {
	levels := book.levelsFor(order.Side)
	probe := &PriceLevel{Price: order.Price}
	if lvl, ok := levels.GetMut(probe); ok {
		lvl.Append(order)
		return
	}
	lvl := newPriceLevel(order.Price, order.Side)
	lvl.Append(order)
	levels.Set(lvl)
}

// DropIfEmpty removes lvl from side's tree if it has no resting orders
// left (spec §4.2 drop_if_empty / §3 invariant).
func (book *OrderBook) DropIfEmpty(side common.Side, lvl *PriceLevel) {
	if lvl.Empty() {
		book.levelsFor(side).Delete(lvl)
	}
}

// BestNonMarket returns the best concrete-priced level on side, skipping
// a resting Market level if one sits at the touch (spec §4.2's
// second_best_ask_excluding(+∞) / second_best_bid_excluding(−∞), used by
// §4.4's MKT-vs-MKT price discovery).
func (book *OrderBook) BestNonMarket(side common.Side) (price.Price, bool) {
	var found price.Price
	ok := false
	book.levelsFor(side).Scan(func(lvl *PriceLevel) bool {
		if lvl.Price.IsMarket() {
			return true // keep scanning past the sentinel level
		}
		found = lvl.Price
		ok = true
		return false
	})
	return found, ok
}
