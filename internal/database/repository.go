package database

import (
	"context"

	"dexbot/internal/model"
)

// Repository defines the persistence contract for the trade ledger.
type Repository interface {
	// Migrate ensures the trades table exists. Safe to call repeatedly.
	Migrate(ctx context.Context) error
	// AppendTrade inserts one trade record with a server-assigned id and
	// timestamp. Records are append-only.
	AppendTrade(ctx context.Context, record model.TradeRecord) error
}
