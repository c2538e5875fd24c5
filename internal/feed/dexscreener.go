package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"dexbot/internal/model"
)

const requestTimeout = 10 * time.Second

type pairsResponse struct {
	Pairs []pairPayload `json:"pairs"`
}

type pairPayload struct {
	PairAddress string          `json:"pairAddress"`
	BaseToken   tokenPayload    `json:"baseToken"`
	PriceUsd    string          `json:"priceUsd"`
	Liquidity   decimal.Decimal `json:"liquidity"`
	Volume      volumePayload   `json:"volume"`
}

type tokenPayload struct {
	Symbol string `json:"symbol"`
}

type volumePayload struct {
	H24 decimal.Decimal `json:"h24"`
}

// Client fetches tradable pairs from a DexScreener-compatible HTTP API.
type Client struct {
	logger  *slog.Logger
	client  *http.Client
	baseURL string
}

// NewClient creates a feed client with a bounded request timeout.
func NewClient(logger *slog.Logger, baseURL string) *Client {
	return &Client{
		logger:  logger,
		client:  &http.Client{Timeout: requestTimeout},
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// FetchPairs returns the current list of tradable pairs for the given
// network. Transport, status and decode failures are returned as errors;
// the caller decides whether they abort anything.
func (c *Client) FetchPairs(ctx context.Context, network string) ([]model.Pair, error) {
	url := fmt.Sprintf("%s/pairs/%s", c.baseURL, network)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch pairs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var payload pairsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	pairs := make([]model.Pair, 0, len(payload.Pairs))
	for _, p := range payload.Pairs {
		pairs = append(pairs, model.Pair{
			Address:      p.PairAddress,
			Symbol:       p.BaseToken.Symbol,
			PriceUSD:     p.PriceUsd,
			LiquidityUSD: p.Liquidity,
			VolumeH24:    p.Volume.H24,
		})
	}
	c.logger.Debug("fetched pairs", "network", network, "count", len(pairs))
	return pairs, nil
}
