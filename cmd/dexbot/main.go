package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"dexbot/internal/config"
	"dexbot/internal/database"
	"dexbot/internal/feed"
	"dexbot/internal/notify"
	"dexbot/internal/strategy"
	"dexbot/internal/trader"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Error("cannot load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := database.NewPostgresRepository(ctx, cfg.Database.URL)
	if err != nil {
		logger.Error("cannot connect to database", "error", err)
		os.Exit(1)
	}
	defer repo.Close()

	if err := repo.Migrate(ctx); err != nil {
		logger.Error("cannot run migration", "error", err)
		os.Exit(1)
	}

	notifier, err := notify.NewTelegramNotifier(logger, &cfg.Telegram)
	if err != nil {
		logger.Error("cannot create telegram notifier", "error", err)
		os.Exit(1)
	}

	feedClient := feed.NewClient(logger, cfg.Feed.BaseURL)
	filter := strategy.NewFilter(cfg.Strategy.MinLiquidityUSD, cfg.Strategy.MinVolumeH24USD)
	coordinator := trader.NewCoordinator(logger, feedClient, filter, notifier, repo, &cfg)

	logger.Info("starting trading loop",
		"network", cfg.Feed.Network,
		"feed", cfg.Feed.BaseURL,
		"web3_provider", cfg.Web3Provider,
		"skip_repeat_buys", cfg.Trading.SkipRepeatBuys,
	)

	if err := coordinator.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("trading loop stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}
