package engine

import (
	"testing"

	"limitbook/internal/common"
	"limitbook/internal/price"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderBookBestBidAsk(t *testing.T) {
	book := NewOrderBook("AAPL")

	book.Insert(mkOrder("B1", common.Buy, 99.0, 10))
	book.Insert(mkOrder("B2", common.Buy, 100.0, 10))
	book.Insert(mkOrder("A1", common.Sell, 102.0, 10))
	book.Insert(mkOrder("A2", common.Sell, 101.0, 10))

	bid, ok := book.BestBid()
	require.True(t, ok)
	assert.True(t, bid.Price.Equal(price.Limit(decimal.NewFromFloat(100.0))))

	ask, ok := book.BestAsk()
	require.True(t, ok)
	assert.True(t, ask.Price.Equal(price.Limit(decimal.NewFromFloat(101.0))))
}

func TestOrderBookInsertAppendsToSameLevel(t *testing.T) {
	book := NewOrderBook("AAPL")
	book.Insert(mkOrder("B1", common.Buy, 100.0, 5))
	book.Insert(mkOrder("B2", common.Buy, 100.0, 5))

	bid, ok := book.BestBid()
	require.True(t, ok)
	require.Len(t, bid.Orders, 2)
	assert.Equal(t, "B1", bid.Orders[0].ID)
	assert.Equal(t, "B2", bid.Orders[1].ID)
}

func TestOrderBookMarketSortsAheadOfAnyLimit(t *testing.T) {
	book := NewOrderBook("AAPL")
	book.Insert(mkOrder("A1", common.Sell, 50.0, 5))

	mktOrder := &Order{ID: "A-MKT", Symbol: "AAPL", Side: common.Sell, OrderType: MarketOrder, Price: price.Market(), OriginalQty: 1, QtyRemaining: 1}
	book.Insert(mktOrder)

	ask, ok := book.BestAsk()
	require.True(t, ok)
	assert.True(t, ask.Price.IsMarket())
}

func TestOrderBookDropIfEmptyRemovesLevel(t *testing.T) {
	book := NewOrderBook("AAPL")
	order := mkOrder("B1", common.Buy, 100.0, 5)
	book.Insert(order)

	lvl, ok := book.BestBid()
	require.True(t, ok)
	lvl.PopHead()
	book.DropIfEmpty(common.Buy, lvl)

	_, ok = book.BestBid()
	assert.False(t, ok)
}

func TestOrderBookBestNonMarketSkipsSentinel(t *testing.T) {
	book := NewOrderBook("AAPL")
	mktOrder := &Order{ID: "A-MKT", Symbol: "AAPL", Side: common.Sell, OrderType: MarketOrder, Price: price.Market(), OriginalQty: 1, QtyRemaining: 1}
	book.Insert(mktOrder)
	book.Insert(mkOrder("A1", common.Sell, 101.0, 5))

	p, ok := book.BestNonMarket(common.Sell)
	require.True(t, ok)
	assert.True(t, p.Equal(price.Limit(decimal.NewFromFloat(101.0))))

	_, ok = book.BestNonMarket(common.Buy)
	assert.False(t, ok)
}
