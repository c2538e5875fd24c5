package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pair represents a single tradable pair as reported by the market-data feed.
// Values are taken verbatim from the feed and are immutable for one cycle.
// PriceUSD keeps the feed's string form so reported precision survives into
// operator messages; it is parsed only when a trade is recorded.
type Pair struct {
	Address      string
	Symbol       string
	PriceUSD     string
	LiquidityUSD decimal.Decimal
	VolumeH24    decimal.Decimal
}

// TradeRecord represents one executed trade to be appended to the ledger.
// The id and timestamp are assigned by the database on insert.
type TradeRecord struct {
	ID          int64           `db:"id"`
	Timestamp   time.Time       `db:"timestamp"`
	PairAddress string          `db:"pair_address"`
	Action      string          `db:"action"`
	Amount      decimal.Decimal `db:"amount"`
	Price       decimal.Decimal `db:"price"`
}
