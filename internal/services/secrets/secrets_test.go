package services_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/portfolio-backend/internal/models"
	services "github.com/magabrotheeeer/portfolio-backend/internal/services/secrets"
)

// MockSecretRepository реализует интерфейс services.SecretRepository
type MockSecretRepository struct {
	mock.Mock
}

func (m *MockSecretRepository) UpdateSecret(ctx context.Context, userUID, secret string) (int64, error) {
	args := m.Called(ctx, userUID, secret)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSecretRepository) ListUsersWithSecrets(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func newSecretService(repo services.SecretRepository) *services.SecretService {
	return services.NewSecretService(repo, slog.New(slog.DiscardHandler))
}

func TestSecretService_Submit(t *testing.T) {
	repo := new(MockSecretRepository)
	repo.On("UpdateSecret", mock.Anything, "uid-1", "i sing in the shower").Return(int64(1), nil)

	svc := newSecretService(repo)

	// Пробелы по краям обрезаются до записи
	err := svc.Submit(context.Background(), "uid-1", "  i sing in the shower  ")
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestSecretService_Submit_UnknownUser(t *testing.T) {
	repo := new(MockSecretRepository)
	repo.On("UpdateSecret", mock.Anything, "ghost", "x").Return(int64(0), nil)

	svc := newSecretService(repo)

	err := svc.Submit(context.Background(), "ghost", "x")
	require.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestSecretService_List(t *testing.T) {
	repo := new(MockSecretRepository)
	repo.On("ListUsersWithSecrets", mock.Anything).Return([]*models.User{
		{Username: "alice", Secret: "i sing in the shower"},
		{Username: "bob", Secret: "i fear pigeons"},
	}, nil)

	svc := newSecretService(repo)

	result, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "alice", result[0].Username)
	assert.Equal(t, "i fear pigeons", result[1].Secret)
}

func TestSecretService_List_Empty(t *testing.T) {
	repo := new(MockSecretRepository)
	repo.On("ListUsersWithSecrets", mock.Anything).Return([]*models.User{}, nil)

	svc := newSecretService(repo)

	result, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result)
}
