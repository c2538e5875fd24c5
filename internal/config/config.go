package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration for the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	// Web3Provider is the chain RPC endpoint. It is carried for operators
	// that point external tooling at the same node; no trading logic uses it.
	Web3Provider string `mapstructure:"web3_provider"`
	Database     DatabaseConfig
	Telegram     TelegramConfig
	Feed         FeedConfig
	Strategy     StrategyConfig
	Trading      TradingConfig
}

// DatabaseConfig defines the database connection settings.
type DatabaseConfig struct {
	URL string
}

// TelegramConfig defines the messaging relay settings. TradeChatID is
// optional; the notifier falls back to ChatID when it is unset.
type TelegramConfig struct {
	BotToken    string `mapstructure:"bot_token"`
	ChatID      int64  `mapstructure:"chat_id"`
	TradeChatID int64  `mapstructure:"trade_chat_id"`
	APIURL      string `mapstructure:"api_url"`
}

// FeedConfig defines the market-data feed settings.
type FeedConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Network string
}

// StrategyConfig defines the trade-filter thresholds in the feed's
// reporting currency.
type StrategyConfig struct {
	MinLiquidityUSD float64 `mapstructure:"min_liquidity_usd"`
	MinVolumeH24USD float64 `mapstructure:"min_volume_h24_usd"`
}

// TradingConfig defines the per-trade amount and loop timing.
type TradingConfig struct {
	Amount               float64 `mapstructure:"amount"`
	SkipRepeatBuys       bool    `mapstructure:"skip_repeat_buys"`
	CycleIntervalSeconds int     `mapstructure:"cycle_interval_seconds"`
	RetryIntervalSeconds int     `mapstructure:"retry_interval_seconds"`
}

// CycleInterval returns the sleep between successful cycles.
func (c TradingConfig) CycleInterval() time.Duration {
	return time.Duration(c.CycleIntervalSeconds) * time.Second
}

// RetryInterval returns the sleep after a failed cycle.
func (c TradingConfig) RetryInterval() time.Duration {
	return time.Duration(c.RetryIntervalSeconds) * time.Second
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("feed.base_url", "https://api.dexscreener.com/latest/dex")
	v.SetDefault("feed.network", "ethereum")
	v.SetDefault("strategy.min_liquidity_usd", 100000)
	v.SetDefault("strategy.min_volume_h24_usd", 500000)
	v.SetDefault("trading.amount", 0.1)
	v.SetDefault("trading.cycle_interval_seconds", 300)
	v.SetDefault("trading.retry_interval_seconds", 60)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		return
	}

	err = v.Unmarshal(&config)
	return
}
