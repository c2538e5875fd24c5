package trader

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"dexbot/internal/config"
	"dexbot/internal/database"
	"dexbot/internal/model"
	"dexbot/internal/notify"
)

const actionBuy = "buy"

// PairSource provides the current list of tradable pairs for a network.
type PairSource interface {
	FetchPairs(ctx context.Context, network string) ([]model.Pair, error)
}

// TradeFilter decides whether a pair qualifies for a trade.
type TradeFilter interface {
	IsValidTrade(pair model.Pair) bool
}

// Notifier delivers text alerts to a destination chat.
type Notifier interface {
	Send(ctx context.Context, text string, dest notify.Destination) error
}

// Coordinator drives the polling loop: fetch pairs, filter, execute
// simulated buys, notify and log. One cycle at a time, no concurrency.
type Coordinator struct {
	logger   *slog.Logger
	feed     PairSource
	filter   TradeFilter
	notifier Notifier
	repo     database.Repository
	cfg      *config.Config

	amount        decimal.Decimal
	cycleInterval time.Duration
	retryInterval time.Duration

	// bought tracks pair addresses already traded this process, consulted
	// only when trading.skip_repeat_buys is enabled.
	bought map[string]bool
}

// NewCoordinator wires the coordinator from its collaborators and config.
func NewCoordinator(logger *slog.Logger, feed PairSource, filter TradeFilter, notifier Notifier, repo database.Repository, cfg *config.Config) *Coordinator {
	return &Coordinator{
		logger:        logger,
		feed:          feed,
		filter:        filter,
		notifier:      notifier,
		repo:          repo,
		cfg:           cfg,
		amount:        decimal.NewFromFloat(cfg.Trading.Amount),
		cycleInterval: cfg.Trading.CycleInterval(),
		retryInterval: cfg.Trading.RetryInterval(),
		bought:        make(map[string]bool),
	}
}

// Run announces startup and then loops RunCycle until the context is
// cancelled: the cycle interval after a clean pass, the retry interval
// after a failed one. Failures are reported on the status chat and never
// stop the loop.
func (c *Coordinator) Run(ctx context.Context) error {
	if err := c.notifier.Send(ctx, "🚀 Trading bot started", notify.DestinationStatus); err != nil {
		c.logger.Warn("could not send startup message", "error", err)
	}

	for {
		wait := c.cycleInterval
		if err := c.RunCycle(ctx); err != nil {
			c.logger.Error("cycle failed", "error", err)
			if serr := c.notifier.Send(ctx, fmt.Sprintf("❌ Error: %v", err), notify.DestinationStatus); serr != nil {
				c.logger.Warn("could not send error message", "error", serr)
			}
			wait = c.retryInterval
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// RunCycle performs one evaluation pass. Feed failures are treated as an
// empty pair list; persistence failures abort the cycle and are returned.
func (c *Coordinator) RunCycle(ctx context.Context) error {
	pairs, err := c.feed.FetchPairs(ctx, c.cfg.Feed.Network)
	if err != nil {
		c.logger.Warn("pair feed unavailable, treating as empty", "error", err)
		return nil
	}

	for _, pair := range pairs {
		if !c.filter.IsValidTrade(pair) {
			continue
		}
		if c.cfg.Trading.SkipRepeatBuys && c.bought[pair.Address] {
			c.logger.Debug("pair already bought, skipping", "pair", pair.Address, "symbol", pair.Symbol)
			continue
		}
		if err := c.executeTrade(ctx, pair); err != nil {
			return err
		}
	}
	return nil
}

// executeTrade sends the trade command to the execution bot's chat, appends
// the ledger record and confirms on the status chat. The command and the
// record are best-effort paired: a relay failure does not prevent the
// ledger write, but a ledger failure aborts the cycle.
func (c *Coordinator) executeTrade(ctx context.Context, pair model.Pair) error {
	price, err := decimal.NewFromString(pair.PriceUSD)
	if err != nil {
		return fmt.Errorf("parse price %q for %s: %w", pair.PriceUSD, pair.Address, err)
	}

	command := fmt.Sprintf("/%s %s %s", actionBuy, pair.Symbol, c.amount)
	if err := c.notifier.Send(ctx, command, notify.DestinationTrade); err != nil {
		c.logger.Error("trade command not delivered", "pair", pair.Address, "error", err)
	}

	record := model.TradeRecord{
		PairAddress: pair.Address,
		Action:      actionBuy,
		Amount:      c.amount,
		Price:       price,
	}
	if err := c.repo.AppendTrade(ctx, record); err != nil {
		return fmt.Errorf("append trade for %s: %w", pair.Address, err)
	}
	c.bought[pair.Address] = true

	confirmation := fmt.Sprintf("✅ Bought %s at $%s", pair.Symbol, pair.PriceUSD)
	if err := c.notifier.Send(ctx, confirmation, notify.DestinationStatus); err != nil {
		c.logger.Warn("could not send trade confirmation", "pair", pair.Address, "error", err)
	}

	c.logger.Info("trade executed",
		"pair", pair.Address,
		"symbol", pair.Symbol,
		"amount", c.amount,
		"price", pair.PriceUSD,
	)
	return nil
}
