package trading212

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchPortfolio(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, portfolioPath, r.URL.Path)
		assert.Equal(t, "test-api-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"ticker":"AAPL_US_EQ","quantity":2.5,"averagePrice":170.1,"currentPrice":182.3,"ppl":30.5},
			{"ticker":"VUSA_EQ","quantity":10,"averagePrice":70,"currentPrice":75,"ppl":50}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	positions, err := client.FetchPortfolio(context.Background(), "test-api-key")
	require.NoError(t, err)
	require.Len(t, positions, 2)

	assert.Equal(t, "AAPL_US_EQ", positions[0].Ticker)
	assert.Equal(t, "2.5", positions[0].Quantity.String())
	assert.Equal(t, "182.3", positions[0].CurrentPrice.String())
	assert.Equal(t, "50", positions[1].Result.String())
}

func TestFetchPortfolioUpstreamStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "unauthorized", status: http.StatusUnauthorized},
		{name: "rate limited", status: http.StatusTooManyRequests},
		{name: "server error", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			_, err := NewClient(server.URL).FetchPortfolio(context.Background(), "k")
			var upstream *UpstreamError
			require.ErrorAs(t, err, &upstream)
			assert.Equal(t, tt.status, upstream.StatusCode)
		})
	}
}

func TestFetchPortfolioTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // refuse connections

	_, err := NewClient(server.URL).FetchPortfolio(context.Background(), "k")
	var upstream *UpstreamError
	assert.True(t, errors.As(err, &upstream))
}

func TestFetchPortfolioMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).FetchPortfolio(context.Background(), "k")
	var upstream *UpstreamError
	assert.True(t, errors.As(err, &upstream))
}
