// Package services содержит бизнес-логику для работы с комментариями к фильмам.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/portfolio-backend/internal/models"
	"github.com/magabrotheeeer/portfolio-backend/internal/storage/repository"
)

// Ошибки, по которым обработчики выбирают HTTP-статус.
var (
	// ErrMovieNotFound фильм с таким ID отсутствует в каталоге
	ErrMovieNotFound = errors.New("movie not found")
	// ErrCommentNotFound комментарий не найден
	ErrCommentNotFound = errors.New("comment not found")
	// ErrNotOwner пользователь пытается удалить чужой комментарий
	ErrNotOwner = errors.New("comment belongs to another user")
)

// CommentRepository определяет методы для работы с комментариями в хранилище.
type CommentRepository interface {
	// CreateComment сохраняет комментарий и возвращает его ID.
	CreateComment(ctx context.Context, comment models.Comment) (string, error)
	// GetComment возвращает комментарий по ID.
	GetComment(ctx context.Context, id string) (*models.Comment, error)
	// ListCommentsByMovie возвращает комментарии к фильму, новые сначала.
	ListCommentsByMovie(ctx context.Context, movieID int) ([]*models.Comment, error)
	// DeleteComment удаляет комментарий и возвращает число удаленных строк.
	DeleteComment(ctx context.Context, id string) (int64, error)
}

// Catalog проверяет существование фильма в статическом каталоге.
type Catalog interface {
	Exists(movieID int) bool
}

// CommentService реализует бизнес-логику комментариев: привязку к автору,
// проверку существования фильма и право на удаление.
type CommentService struct {
	repo    CommentRepository
	catalog Catalog
	log     *slog.Logger
}

// NewCommentService создает новый экземпляр CommentService.
func NewCommentService(repo CommentRepository, catalog Catalog, log *slog.Logger) *CommentService {
	return &CommentService{
		repo:    repo,
		catalog: catalog,
		log:     log,
	}
}

// Create сохраняет комментарий от имени пользователя.
//
// Имя автора снимается в момент создания и дальше живет вместе с записью.
// Для неизвестного фильма возвращает ErrMovieNotFound.
func (s *CommentService) Create(ctx context.Context, authorUID, authorName string, req models.DummyComment) (*models.Comment, error) {
	const op = "comments.Create"

	if !s.catalog.Exists(req.MovieID) {
		return nil, ErrMovieNotFound
	}

	comment := models.Comment{
		MovieID:    req.MovieID,
		Text:       req.Text,
		AuthorUID:  authorUID,
		AuthorName: authorName,
	}
	id, err := s.repo.CreateComment(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	comment.ID = id

	s.log.Info("created new comment",
		slog.String("id", id),
		slog.Int("movie_id", req.MovieID))

	return &comment, nil
}

// List возвращает комментарии к фильму, новые сначала.
// Для неизвестного фильма возвращает ErrMovieNotFound.
func (s *CommentService) List(ctx context.Context, movieID int) ([]*models.Comment, error) {
	const op = "comments.List"

	if !s.catalog.Exists(movieID) {
		return nil, ErrMovieNotFound
	}

	result, err := s.repo.ListCommentsByMovie(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// Remove удаляет комментарий.
//
// Удалять комментарий может только его автор, для остальных возвращается
// ErrNotOwner независимо от роли. Проверка владельца выполняется до удаления.
func (s *CommentService) Remove(ctx context.Context, id, userUID string) error {
	const op = "comments.Remove"

	comment, err := s.repo.GetComment(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	if comment.AuthorUID != userUID {
		return ErrNotOwner
	}

	count, err := s.repo.DeleteComment(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if count == 0 {
		return ErrCommentNotFound
	}

	s.log.Info("removed comment", slog.String("id", id))
	return nil
}
