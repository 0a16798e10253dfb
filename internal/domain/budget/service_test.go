package budget

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Upsert(ctx context.Context, b *Budget) (int, error) {
	args := m.Called(ctx, b)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) ListWithSpending(ctx context.Context, userID int, month string) ([]Status, error) {
	args := m.Called(ctx, userID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Status), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, userID int, month, category string) error {
	args := m.Called(ctx, userID, month, category)
	return args.Error(0)
}

func TestValidMonth(t *testing.T) {
	assert.True(t, ValidMonth("2026-08"))
	assert.True(t, ValidMonth("1999-12"))
	assert.False(t, ValidMonth("2026-13"))
	assert.False(t, ValidMonth("2026-8"))
	assert.False(t, ValidMonth("Aug 2026"))
}

func TestService_SetLimitIdempotent(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())
	ctx := context.Background()

	mockRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(b *Budget) bool {
		return b.Month == "2026-08" && b.Category == "groceries"
	})).Return(5, nil).Twice()

	id1, err := service.SetLimit(ctx, 1, "2026-08", "groceries", decimal.NewFromInt(400))
	require.NoError(t, err)
	id2, err := service.SetLimit(ctx, 1, "2026-08", "groceries", decimal.NewFromInt(400))
	require.NoError(t, err)

	assert.Equal(t, id1, id2)
	mockRepo.AssertExpectations(t)
}

func TestService_SetLimitDefaultsToCurrentMonth(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(b *Budget) bool {
		return b.Month == CurrentMonth()
	})).Return(1, nil)

	_, err := service.SetLimit(context.Background(), 1, "", "groceries", decimal.NewFromInt(400))
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_SetLimitInvalid(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())
	ctx := context.Background()

	_, err := service.SetLimit(ctx, 1, "2026-13", "groceries", decimal.NewFromInt(400))
	assert.ErrorIs(t, err, ErrInvalidData)

	_, err = service.SetLimit(ctx, 1, "2026-08", "", decimal.NewFromInt(400))
	assert.ErrorIs(t, err, ErrInvalidData)

	_, err = service.SetLimit(ctx, 1, "2026-08", "groceries", decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, ErrInvalidData)

	mockRepo.AssertNotCalled(t, "Upsert")
}

func TestService_Overview(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("ListWithSpending", mock.Anything, 1, "2026-08").Return([]Status{
		{
			Budget: Budget{Month: "2026-08", Category: "groceries", Limit: decimal.NewFromInt(400)},
			Spent:  decimal.NewFromInt(150),
		},
	}, nil)

	statuses, err := service.Overview(context.Background(), 1, "2026-08")
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.Equal(t, "250", statuses[0].Remaining.String())
}
