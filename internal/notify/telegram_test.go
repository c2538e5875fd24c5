package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dexbot/internal/config"
)

type fakeSender struct {
	params []*bot.SendMessageParams
	err    error
}

func (f *fakeSender) SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error) {
	f.params = append(f.params, params)
	if f.err != nil {
		return nil, f.err
	}
	return &models.Message{}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTelegramNotifier_Send_RoutesDestinations(t *testing.T) {
	fake := &fakeSender{}
	n := &TelegramNotifier{logger: testLogger(), api: fake, statusChatID: 1, tradeChatID: 2}

	require.NoError(t, n.Send(context.Background(), "status update", DestinationStatus))
	require.NoError(t, n.Send(context.Background(), "/buy FOO 0.1", DestinationTrade))

	require.Len(t, fake.params, 2)
	assert.Equal(t, int64(1), fake.params[0].ChatID)
	assert.Equal(t, "status update", fake.params[0].Text)
	assert.Equal(t, int64(2), fake.params[1].ChatID)
	assert.Equal(t, "/buy FOO 0.1", fake.params[1].Text)
	assert.Equal(t, models.ParseModeMarkdown, fake.params[0].ParseMode)
}

func TestTelegramNotifier_Send_ReturnsDeliveryError(t *testing.T) {
	fake := &fakeSender{err: errors.New("relay unreachable")}
	n := &TelegramNotifier{logger: testLogger(), api: fake, statusChatID: 1, tradeChatID: 1}

	err := n.Send(context.Background(), "status update", DestinationStatus)
	assert.ErrorContains(t, err, "relay unreachable")
}

func TestNewTelegramNotifier_TradeChatFallback(t *testing.T) {
	n, err := NewTelegramNotifier(testLogger(), &config.TelegramConfig{
		BotToken: "123456:abcdef",
		ChatID:   42,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), n.statusChatID)
	assert.Equal(t, int64(42), n.tradeChatID)
}

func TestNewTelegramNotifier_SeparateTradeChat(t *testing.T) {
	n, err := NewTelegramNotifier(testLogger(), &config.TelegramConfig{
		BotToken:    "123456:abcdef",
		ChatID:      42,
		TradeChatID: 43,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(43), n.tradeChatID)
}
