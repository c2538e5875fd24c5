package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"dexbot/internal/config"
)

// Destination selects the chat a message is delivered to.
type Destination int

const (
	// DestinationStatus receives human-readable operational messages.
	DestinationStatus Destination = iota
	// DestinationTrade receives machine-readable trade commands consumed
	// by the external execution bot.
	DestinationTrade
)

type messageSender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// TelegramNotifier posts text alerts to the Telegram relay.
type TelegramNotifier struct {
	logger       *slog.Logger
	api          messageSender
	statusChatID int64
	tradeChatID  int64
}

// NewTelegramNotifier creates a notifier for the configured bot token and
// chats. The trade chat defaults to the status chat when unset.
func NewTelegramNotifier(logger *slog.Logger, cfg *config.TelegramConfig) (*TelegramNotifier, error) {
	opts := []bot.Option{bot.WithSkipGetMe()}
	if cfg.APIURL != "" {
		opts = append(opts, bot.WithServerURL(cfg.APIURL))
	}
	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	tradeChatID := cfg.TradeChatID
	if tradeChatID == 0 {
		tradeChatID = cfg.ChatID
	}
	return &TelegramNotifier{
		logger:       logger,
		api:          b,
		statusChatID: cfg.ChatID,
		tradeChatID:  tradeChatID,
	}, nil
}

// Send posts text to the chat behind the given destination. Delivery
// failures are returned to the caller; there is no retry.
func (n *TelegramNotifier) Send(ctx context.Context, text string, dest Destination) error {
	chatID := n.statusChatID
	if dest == DestinationTrade {
		chatID = n.tradeChatID
	}

	_, err := n.api.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeMarkdown,
	})
	if err != nil {
		return fmt.Errorf("send message to chat %d: %w", chatID, err)
	}
	n.logger.Debug("message sent", "chat_id", chatID, "text", text)
	return nil
}
