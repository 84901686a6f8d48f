// Package services содержит бизнес-логику счетчиков лайков и дизлайков.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/portfolio-backend/internal/models"
)

// Действия над счетчиком, допустимые в запросе.
const (
	ActionLike    = "like"
	ActionDislike = "dislike"
)

// Ошибки, по которым обработчики выбирают HTTP-статус.
var (
	// ErrMovieNotFound фильм с таким ID отсутствует в каталоге
	ErrMovieNotFound = errors.New("movie not found")
	// ErrUnknownAction действие отлично от like и dislike
	ErrUnknownAction = errors.New("unknown action")
)

// LikeRepository определяет методы для работы со счетчиками в хранилище.
type LikeRepository interface {
	// GetLikeCounter возвращает счетчики фильма, создавая нулевую запись при первом чтении.
	GetLikeCounter(ctx context.Context, movieID int) (*models.LikeCounter, error)
	// IncrementLikes атомарно увеличивает счетчик лайков и возвращает актуальные значения.
	IncrementLikes(ctx context.Context, movieID int) (*models.LikeCounter, error)
	// IncrementDislikes атомарно увеличивает счетчик дизлайков и возвращает актуальные значения.
	IncrementDislikes(ctx context.Context, movieID int) (*models.LikeCounter, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(ctx context.Context, key string) error
}

// Catalog проверяет существование фильма в статическом каталоге.
type Catalog interface {
	Exists(movieID int) bool
}

// LikeService реализует бизнес-логику счетчиков, включая кеширование чтений.
//
// Инкременты всегда идут в хранилище: ответом служит значение, которое
// вернула база, а не кеш, поэтому параллельные голоса не теряются.
type LikeService struct {
	repo    LikeRepository
	cache   Cache
	catalog Catalog
	log     *slog.Logger
}

// NewLikeService создает новый экземпляр LikeService.
func NewLikeService(repo LikeRepository, cache Cache, catalog Catalog, log *slog.Logger) *LikeService {
	return &LikeService{
		repo:    repo,
		cache:   cache,
		catalog: catalog,
		log:     log,
	}
}

func cacheKey(movieID int) string {
	return fmt.Sprintf("likes:%d", movieID)
}

// Get возвращает счетчики фильма, используя кеш или хранилище.
// Для неизвестного фильма возвращает ErrMovieNotFound.
func (s *LikeService) Get(ctx context.Context, movieID int) (*models.LikeCounter, error) {
	const op = "likes.Get"

	if !s.catalog.Exists(movieID) {
		return nil, ErrMovieNotFound
	}

	var cached models.LikeCounter
	key := cacheKey(movieID)
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.log.Warn("failed to read counters from cache",
			slog.String("key", key), slog.Any("err", err))
	}
	if found {
		return &cached, nil
	}

	counter, err := s.repo.GetLikeCounter(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Set(ctx, key, counter, time.Minute); err != nil {
		s.log.Warn("failed to cache counters",
			slog.String("key", key), slog.Any("err", err))
	}
	return counter, nil
}

// Update применяет действие к счетчику и возвращает актуальные значения.
//
// Действие одно из like и dislike, счетчики только возрастают.
// Кеш после записи перезаписывается значением из базы.
func (s *LikeService) Update(ctx context.Context, movieID int, action string) (*models.LikeCounter, error) {
	const op = "likes.Update"

	if !s.catalog.Exists(movieID) {
		return nil, ErrMovieNotFound
	}

	var counter *models.LikeCounter
	var err error
	switch action {
	case ActionLike:
		counter, err = s.repo.IncrementLikes(ctx, movieID)
	case ActionDislike:
		counter, err = s.repo.IncrementDislikes(ctx, movieID)
	default:
		return nil, ErrUnknownAction
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	key := cacheKey(movieID)
	if err := s.cache.Set(ctx, key, counter, time.Minute); err != nil {
		s.log.Warn("failed to refresh counters in cache",
			slog.String("key", key), slog.Any("err", err))
	}

	s.log.Info("updated counters",
		slog.Int("movie_id", movieID),
		slog.String("action", action))

	return counter, nil
}
