package integration

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"

	"fintrack/internal/app/server/api/http/middleware/auth"
	"fintrack/internal/domain/credential"
	"fintrack/internal/integration/trading212"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

type MockService struct {
	mock.Mock
}

func (m *MockService) Connect(ctx context.Context, userID int, name string, in credential.SecretInput) error {
	args := m.Called(ctx, userID, name, in)
	return args.Error(0)
}

func (m *MockService) Rotate(ctx context.Context, userID int, name string, in credential.SecretInput) error {
	args := m.Called(ctx, userID, name, in)
	return args.Error(0)
}

func (m *MockService) Disconnect(ctx context.Context, userID int, name string) error {
	args := m.Called(ctx, userID, name)
	return args.Error(0)
}

func (m *MockService) Use(ctx context.Context, userID int, name string) (string, error) {
	args := m.Called(ctx, userID, name)
	return args.String(0), args.Error(1)
}

func (m *MockService) Status(ctx context.Context, userID int) ([]credential.Integration, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]credential.Integration), args.Error(1)
}

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) FetchPortfolio(ctx context.Context, apiKey string) ([]trading212.Position, error) {
	args := m.Called(ctx, apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trading212.Position), args.Error(1)
}

func TestHandler_Connect(t *testing.T) {
	userID := 42
	authCtx := auth.WithUserID(context.Background(), userID)

	t.Run("success", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil, nil)

		input := &connectInput{Name: "trading212"}
		input.Body = SecretRequest{Kind: credential.KindPlaintext, Secret: "abc123"}

		svc.On("Connect", mock.Anything, userID, "trading212",
			mock.MatchedBy(func(in credential.SecretInput) bool {
				return in.Kind == credential.KindPlaintext && in.Plaintext == "abc123"
			})).Return(nil)

		resp, err := h.connect(authCtx, input)

		assert.NoError(t, err)
		assert.Equal(t, "Ok", resp.Body.Status)
		svc.AssertExpectations(t)
	})

	t.Run("second connect is a conflict", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil, nil)

		input := &connectInput{Name: "trading212"}
		input.Body = SecretRequest{Kind: credential.KindPlaintext, Secret: "abc123"}

		svc.On("Connect", mock.Anything, userID, "trading212", mock.Anything).
			Return(credential.ErrConflict)

		resp, err := h.connect(authCtx, input)

		assert.Nil(t, resp)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already connected")
	})

	t.Run("unauthenticated", func(t *testing.T) {
		h := NewHandler(nil, nil, nil, nil)
		input := &connectInput{Name: "trading212"}

		resp, err := h.connect(context.Background(), input)

		assert.Nil(t, resp)
		assert.Error(t, err)
	})
}

func TestHandler_Disconnect(t *testing.T) {
	userID := 42
	authCtx := auth.WithUserID(context.Background(), userID)

	svc := new(MockService)
	h := NewHandler(svc, nil, nil, nil)

	svc.On("Disconnect", mock.Anything, userID, "trading212").Return(nil)

	resp, err := h.disconnect(authCtx, &disconnectInput{Name: "trading212"})

	assert.NoError(t, err)
	assert.Equal(t, "Ok", resp.Body.Status)
}

func TestHandler_FetchPortfolio(t *testing.T) {
	userID := 7
	authCtx := auth.WithUserID(context.Background(), userID)

	t.Run("success", func(t *testing.T) {
		svc := new(MockService)
		fetcher := new(MockFetcher)
		h := NewHandler(svc, fetcher, nil, nil)

		svc.On("Use", mock.Anything, userID, "trading212").Return("api-key", nil)
		fetcher.On("FetchPortfolio", mock.Anything, "api-key").
			Return([]trading212.Position{{Ticker: "AAPL_US_EQ"}}, nil)

		resp, err := h.fetchPortfolio(authCtx, &portfolioInput{Name: "trading212"})

		assert.NoError(t, err)
		assert.Len(t, resp.Body.Positions, 1)
		assert.Equal(t, "AAPL_US_EQ", resp.Body.Positions[0].Ticker)
		svc.AssertExpectations(t)
		fetcher.AssertExpectations(t)
	})

	t.Run("not connected", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil, nil)

		svc.On("Use", mock.Anything, userID, "trading212").
			Return("", credential.ErrNotConnected)

		resp, err := h.fetchPortfolio(authCtx, &portfolioInput{Name: "trading212"})

		assert.Nil(t, resp)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not connected")
	})

	t.Run("decrypt failure asks for reconnect", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil, nil)

		svc.On("Use", mock.Anything, userID, "trading212").
			Return("", credential.ErrDecrypt)

		resp, err := h.fetchPortfolio(authCtx, &portfolioInput{Name: "trading212"})

		assert.Nil(t, resp)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "reconnect")
	})

	t.Run("upstream failure maps to bad gateway", func(t *testing.T) {
		svc := new(MockService)
		fetcher := new(MockFetcher)
		h := NewHandler(svc, fetcher, testLogger(), nil)

		svc.On("Use", mock.Anything, userID, "trading212").Return("api-key", nil)
		fetcher.On("FetchPortfolio", mock.Anything, "api-key").
			Return(nil, &trading212.UpstreamError{StatusCode: 503})

		resp, err := h.fetchPortfolio(authCtx, &portfolioInput{Name: "trading212"})

		assert.Nil(t, resp)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "upstream")
	})

	t.Run("unexpected upstream error passes through", func(t *testing.T) {
		svc := new(MockService)
		fetcher := new(MockFetcher)
		h := NewHandler(svc, fetcher, nil, nil)

		svc.On("Use", mock.Anything, userID, "trading212").Return("api-key", nil)
		fetcher.On("FetchPortfolio", mock.Anything, "api-key").
			Return(nil, errors.New("boom"))

		resp, err := h.fetchPortfolio(authCtx, &portfolioInput{Name: "trading212"})

		assert.Nil(t, resp)
		assert.EqualError(t, err, "boom")
	})
}

func TestHandler_List(t *testing.T) {
	userID := 9
	authCtx := auth.WithUserID(context.Background(), userID)

	svc := new(MockService)
	h := NewHandler(svc, nil, nil, nil)

	svc.On("Status", mock.Anything, userID).
		Return([]credential.Integration{{Name: "trading212"}}, nil)

	resp, err := h.list(authCtx, &struct{}{})

	assert.NoError(t, err)
	assert.Len(t, resp.Body.Integrations, 1)
}
