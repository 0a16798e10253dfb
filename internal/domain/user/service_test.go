package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, login, passwordHash string) (int, error) {
	args := m.Called(ctx, login, passwordHash)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) FindByLogin(ctx context.Context, login string) (User, error) {
	args := m.Called(ctx, login)
	return args.Get(0).(User), args.Error(1)
}

func TestService_Register(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewPasswordValidator(), slog.Default())

	mockRepo.On("Create", mock.Anything, "alice", mock.AnythingOfType("string")).Return(1, nil)

	id, err := service.Register(context.Background(), "alice", "Str0ngPass")
	require.NoError(t, err)
	assert.Equal(t, 1, id)
	mockRepo.AssertExpectations(t)
}

func TestService_RegisterInvalidInput(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewPasswordValidator(), slog.Default())

	tests := []struct {
		name     string
		login    string
		password string
	}{
		{name: "short login", login: "ab", password: "Str0ngPass"},
		{name: "weak password", login: "alice", password: "short"},
		{name: "no digit", login: "alice", password: "NoDigitsHere"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(context.Background(), tt.login, tt.password)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_Authenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Str0ngPass"), bcrypt.DefaultCost)
	require.NoError(t, err)

	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewPasswordValidator(), slog.Default())

	mockRepo.On("FindByLogin", mock.Anything, "alice").Return(User{ID: 1, Login: "alice", Password: string(hash)}, nil)

	u, err := service.Authenticate(context.Background(), "alice", "Str0ngPass")
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)

	_, err = service.Authenticate(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidAuth)
}

func TestService_AuthenticateUnknownUser(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewPasswordValidator(), slog.Default())

	mockRepo.On("FindByLogin", mock.Anything, "ghost").Return(User{}, ErrNotFound)

	_, err := service.Authenticate(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, ErrNotFound)
}
