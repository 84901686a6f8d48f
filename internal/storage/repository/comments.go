package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/portfolio-backend/internal/models"
)

// CreateComment сохраняет новый комментарий и возвращает его ID.
func (s *Storage) CreateComment(ctx context.Context, comment models.Comment) (string, error) {
	const op = "storage.CreateComment"

	var newID string
	query := `INSERT INTO comments (movie_id, body, author_uid, author_name)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		comment.MovieID, comment.Text, comment.AuthorUID, comment.AuthorName).Scan(&newID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetComment возвращает комментарий по его ID.
func (s *Storage) GetComment(ctx context.Context, id string) (*models.Comment, error) {
	const op = "storage.GetComment"

	query := `SELECT id, movie_id, body, author_uid, author_name, created_at
			  FROM comments
			  WHERE id = $1`
	c := &models.Comment{}
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.MovieID, &c.Text, &c.AuthorUID, &c.AuthorName, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// ListCommentsByMovie возвращает комментарии к фильму, новые сначала.
func (s *Storage) ListCommentsByMovie(ctx context.Context, movieID int) ([]*models.Comment, error) {
	const op = "storage.ListCommentsByMovie"

	query := `SELECT id, movie_id, body, author_uid, author_name, created_at
			  FROM comments
			  WHERE movie_id = $1
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, movieID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Comment
	for rows.Next() {
		c := &models.Comment{}
		if err = rows.Scan(&c.ID, &c.MovieID, &c.Text, &c.AuthorUID,
			&c.AuthorName, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// DeleteComment удаляет комментарий по ID и возвращает число удаленных строк.
func (s *Storage) DeleteComment(ctx context.Context, id string) (int64, error) {
	const op = "storage.DeleteComment"

	query := `DELETE FROM comments WHERE id = $1`
	res, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}
