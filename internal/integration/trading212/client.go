// Package trading212 is a thin client for the Trading 212 equity
// portfolio API. One attempt per call, no retries; any non-success
// response comes back as a tagged *UpstreamError so handlers can map
// it to a "service unavailable" status without conflating it with
// internal failures.
package trading212

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

const portfolioPath = "/api/v0/equity/portfolio"

// UpstreamError marks a failure of the external API or the transport
// to it; the user's own data is intact.
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("trading212 upstream: %v", e.Err)
	}
	return fmt.Sprintf("trading212 upstream: status %d", e.StatusCode)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Position is one normalized portfolio holding.
type Position struct {
	Ticker       string          `json:"ticker"`
	Quantity     decimal.Decimal `json:"quantity"`
	AveragePrice decimal.Decimal `json:"average_price"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	Result       decimal.Decimal `json:"result"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// rawPosition mirrors the upstream response shape before
// normalization.
type rawPosition struct {
	Ticker       string  `json:"ticker"`
	Quantity     float64 `json:"quantity"`
	AveragePrice float64 `json:"averagePrice"`
	CurrentPrice float64 `json:"currentPrice"`
	PPL          float64 `json:"ppl"`
}

// FetchPortfolio calls the upstream API with the decrypted key and
// normalizes the response. The key goes into a header and nowhere
// else.
func (c *Client) FetchPortfolio(ctx context.Context, apiKey string) ([]Position, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+portfolioPath, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}

	var raw []rawPosition
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}

	positions := make([]Position, len(raw))
	for i, p := range raw {
		positions[i] = Position{
			Ticker:       p.Ticker,
			Quantity:     decimal.NewFromFloat(p.Quantity),
			AveragePrice: decimal.NewFromFloat(p.AveragePrice),
			CurrentPrice: decimal.NewFromFloat(p.CurrentPrice),
			Result:       decimal.NewFromFloat(p.PPL),
		}
	}

	return positions, nil
}
