package engine

import (
	"testing"

	"limitbook/internal/common"
	"limitbook/internal/price"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func mkOrder(id string, side common.Side, p float64, qty int64) *Order {
	return &Order{
		ID:           id,
		Symbol:       "AAPL",
		Side:         side,
		OrderType:    LimitOrder,
		Price:        price.Limit(decimal.NewFromFloat(p)),
		OriginalQty:  qty,
		QtyRemaining: qty,
	}
}

func TestPriceLevelFIFO(t *testing.T) {
	lvl := newPriceLevel(price.Limit(decimal.NewFromFloat(100.0)), common.Sell)
	lvl.Append(mkOrder("S1", common.Sell, 100.0, 5))
	lvl.Append(mkOrder("S2", common.Sell, 100.0, 5))

	assert.Equal(t, "S1", lvl.PeekHead().ID)
	assert.Equal(t, int64(10), lvl.TotalQty())

	popped := lvl.PopHead()
	assert.Equal(t, "S1", popped.ID)
	assert.Equal(t, "S2", lvl.PeekHead().ID)
	assert.False(t, lvl.Empty())

	lvl.PopHead()
	assert.True(t, lvl.Empty())
	assert.Nil(t, lvl.PeekHead())
	assert.Nil(t, lvl.PopHead())
}

func TestPriceLevelTotalQtySkipsNothing(t *testing.T) {
	lvl := newPriceLevel(price.Limit(decimal.NewFromFloat(100.0)), common.Buy)
	lvl.Append(mkOrder("B1", common.Buy, 100.0, 3))
	lvl.Append(mkOrder("B2", common.Buy, 100.0, 4))
	assert.Equal(t, int64(7), lvl.TotalQty())
}
