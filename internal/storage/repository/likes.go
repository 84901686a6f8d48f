package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/portfolio-backend/internal/models"
)

// GetLikeCounter возвращает счетчики фильма, лениво создавая нулевую запись,
// если для этого фильма счетчиков еще не было.
func (s *Storage) GetLikeCounter(ctx context.Context, movieID int) (*models.LikeCounter, error) {
	const op = "storage.GetLikeCounter"

	// Один запрос вместо пары select/insert, гонки разрешает ON CONFLICT
	query := `INSERT INTO likes (movie_id) VALUES ($1)
			  ON CONFLICT (movie_id) DO UPDATE SET movie_id = EXCLUDED.movie_id
			  RETURNING movie_id, likes, dislikes;`
	counter := &models.LikeCounter{}
	if err := s.DB.QueryRowContext(ctx, query, movieID).Scan(
		&counter.MovieID, &counter.Likes, &counter.Dislikes); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return counter, nil
}

// IncrementLikes атомарно увеличивает счетчик лайков фильма и возвращает
// актуальные значения обоих счетчиков.
func (s *Storage) IncrementLikes(ctx context.Context, movieID int) (*models.LikeCounter, error) {
	const op = "storage.IncrementLikes"

	query := `INSERT INTO likes (movie_id, likes) VALUES ($1, 1)
			  ON CONFLICT (movie_id) DO UPDATE SET likes = likes.likes + 1
			  RETURNING movie_id, likes, dislikes;`
	counter := &models.LikeCounter{}
	if err := s.DB.QueryRowContext(ctx, query, movieID).Scan(
		&counter.MovieID, &counter.Likes, &counter.Dislikes); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return counter, nil
}

// IncrementDislikes атомарно увеличивает счетчик дизлайков фильма и возвращает
// актуальные значения обоих счетчиков.
func (s *Storage) IncrementDislikes(ctx context.Context, movieID int) (*models.LikeCounter, error) {
	const op = "storage.IncrementDislikes"

	query := `INSERT INTO likes (movie_id, dislikes) VALUES ($1, 1)
			  ON CONFLICT (movie_id) DO UPDATE SET dislikes = likes.dislikes + 1
			  RETURNING movie_id, likes, dislikes;`
	counter := &models.LikeCounter{}
	if err := s.DB.QueryRowContext(ctx, query, movieID).Scan(
		&counter.MovieID, &counter.Likes, &counter.Dislikes); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return counter, nil
}
