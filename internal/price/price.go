// Package price implements the tagged price variant design note in spec §9:
// Price = Limit(decimal) | Market. No numeric infinities are ever formed;
// sentinel-aware comparisons live in internal/engine, which knows the side
// a Market price sits on.
package price

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const mktToken = "MKT"

// Price is either a concrete limit (rounded to one fractional digit) or
// the Market sentinel. The zero value is not a valid Price; always build
// one via Limit or Market.
type Price struct {
	market bool
	value  decimal.Decimal
}

// Limit rounds v to one fractional digit per spec §3/§4.1 rule 4.
func Limit(v decimal.Decimal) Price {
	return Price{value: v.Round(1)}
}

// Market builds the MKT sentinel. Its directionality (+∞ for Buy, −∞ for
// Sell) is never materialized numerically; callers that need to compare a
// Market price against book state do so side-aware, in internal/engine.
func Market() Price {
	return Price{market: true}
}

// IsMarket reports whether this price is the MKT sentinel.
func (p Price) IsMarket() bool {
	return p.market
}

// Value returns the underlying decimal. Calling it on a Market price is a
// programmer error — callers must check IsMarket first.
func (p Price) Value() decimal.Decimal {
	if p.market {
		panic("price: Value called on Market price")
	}
	return p.value
}

// String renders "MKT" for a market price, or the decimal fixed to one
// fractional digit otherwise — this is the only place a Price is turned
// into the textual form the Event Sink emits (spec §4.1, §6).
func (p Price) String() string {
	if p.market {
		return mktToken
	}
	return p.value.StringFixed(1)
}

// Equal compares two prices for identity (both Market, or both the same
// decimal value).
func (p Price) Equal(o Price) bool {
	if p.market != o.market {
		return false
	}
	if p.market {
		return true
	}
	return p.value.Equal(o.value)
}

// Parse reads the boundary's textual price: either the literal MKT token
// or a decimal string. Any other token is a fatal malformed-input error
// per spec §4.1 — the caller is expected to wrap ErrInvalidPrice.
func Parse(s string) (Price, error) {
	if s == mktToken {
		return Market(), nil
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, fmt.Errorf("parse price %q: %w", s, err)
	}
	return Limit(v), nil
}
