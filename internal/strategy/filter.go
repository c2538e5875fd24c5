package strategy

import (
	"github.com/shopspring/decimal"

	"dexbot/internal/model"
)

// Filter decides whether a pair qualifies for a trade. It is pure: each
// pair is judged independently against the configured thresholds, with no
// state carried across calls.
type Filter struct {
	minLiquidityUSD decimal.Decimal
	minVolumeH24USD decimal.Decimal
}

// NewFilter builds a filter from threshold values in the feed's reporting
// currency (typically USD).
func NewFilter(minLiquidityUSD, minVolumeH24USD float64) *Filter {
	return &Filter{
		minLiquidityUSD: decimal.NewFromFloat(minLiquidityUSD),
		minVolumeH24USD: decimal.NewFromFloat(minVolumeH24USD),
	}
}

// IsValidTrade reports whether the pair's liquidity and 24h volume are both
// strictly above their thresholds.
func (f *Filter) IsValidTrade(pair model.Pair) bool {
	return pair.LiquidityUSD.GreaterThan(f.minLiquidityUSD) &&
		pair.VolumeH24.GreaterThan(f.minVolumeH24USD)
}
