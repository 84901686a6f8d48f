package services_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/portfolio-backend/internal/models"
	"github.com/magabrotheeeer/portfolio-backend/internal/movies"
	services "github.com/magabrotheeeer/portfolio-backend/internal/services/likes"
)

// MockLikeRepository реализует интерфейс services.LikeRepository
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) GetLikeCounter(ctx context.Context, movieID int) (*models.LikeCounter, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LikeCounter), args.Error(1)
}

func (m *MockLikeRepository) IncrementLikes(ctx context.Context, movieID int) (*models.LikeCounter, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LikeCounter), args.Error(1)
}

func (m *MockLikeRepository) IncrementDislikes(ctx context.Context, movieID int) (*models.LikeCounter, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LikeCounter), args.Error(1)
}

// fakeCache кеш в памяти без учета TTL
type fakeCache struct {
	values map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string, result any) (bool, error) {
	raw, ok := f.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, result)
}

func (f *fakeCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.values[key] = raw
	return nil
}

func (f *fakeCache) Invalidate(_ context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func newLikeService(repo services.LikeRepository, cache services.Cache) *services.LikeService {
	log := slog.New(slog.DiscardHandler)
	return services.NewLikeService(repo, cache, movies.Default(), log)
}

func TestLikeService_Get_CachesResult(t *testing.T) {
	repo := new(MockLikeRepository)
	repo.On("GetLikeCounter", mock.Anything, 1).
		Return(&models.LikeCounter{MovieID: 1, Likes: 3, Dislikes: 1}, nil).Once()

	svc := newLikeService(repo, newFakeCache())

	first, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, first.Likes)

	// Повторное чтение обслуживается кешем, второй вызов репозитория не нужен
	second, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	repo.AssertNumberOfCalls(t, "GetLikeCounter", 1)
}

func TestLikeService_Get_UnknownMovie(t *testing.T) {
	svc := newLikeService(new(MockLikeRepository), newFakeCache())

	_, err := svc.Get(context.Background(), 404)
	require.ErrorIs(t, err, services.ErrMovieNotFound)
}

func TestLikeService_Update(t *testing.T) {
	tests := []struct {
		name       string
		action     string
		methodName string
		want       *models.LikeCounter
		wantErr    error
	}{
		{
			name:       "лайк увеличивает счетчик",
			action:     services.ActionLike,
			methodName: "IncrementLikes",
			want:       &models.LikeCounter{MovieID: 1, Likes: 4, Dislikes: 1},
		},
		{
			name:       "дизлайк увеличивает счетчик",
			action:     services.ActionDislike,
			methodName: "IncrementDislikes",
			want:       &models.LikeCounter{MovieID: 1, Likes: 3, Dislikes: 2},
		},
		{
			name:    "неизвестное действие отклоняется",
			action:  "superlike",
			wantErr: services.ErrUnknownAction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockLikeRepository)
			if tt.methodName != "" {
				repo.On(tt.methodName, mock.Anything, 1).Return(tt.want, nil)
			}

			svc := newLikeService(repo, newFakeCache())

			counter, err := svc.Update(context.Background(), 1, tt.action)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, counter)
			repo.AssertExpectations(t)
		})
	}
}

func TestLikeService_Update_RefreshesCache(t *testing.T) {
	repo := new(MockLikeRepository)
	repo.On("IncrementLikes", mock.Anything, 1).
		Return(&models.LikeCounter{MovieID: 1, Likes: 1}, nil)

	cache := newFakeCache()
	svc := newLikeService(repo, cache)

	_, err := svc.Update(context.Background(), 1, services.ActionLike)
	require.NoError(t, err)

	// Чтение после записи обслуживается обновленным кешем
	counter, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, counter.Likes)
	repo.AssertNotCalled(t, "GetLikeCounter", mock.Anything, mock.Anything)
}
