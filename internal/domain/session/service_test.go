package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, userID int, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockRepository) Validate(ctx context.Context, tokenHash string) (int, error) {
	args := m.Called(ctx, tokenHash)
	return args.Int(0), args.Error(1)
}

func TestService_CreateAndValidate(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	var storedHash string
	mockRepo.On("Create", mock.Anything, 1, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			storedHash = args.String(2)
		}).
		Return(nil)

	token, err := service.Create(context.Background(), 1)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.NotContains(t, storedHash, token, "raw token must not be persisted")

	mockRepo.On("Validate", mock.Anything, storedHash).Return(1, nil)

	userID, err := service.Validate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, 1, userID)
}

func TestService_CreateUniqueTokens(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Create", mock.Anything, 1, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Return(nil)

	t1, err := service.Create(context.Background(), 1)
	require.NoError(t, err)
	t2, err := service.Create(context.Background(), 1)
	require.NoError(t, err)

	assert.NotEqual(t, t1, t2)
}
