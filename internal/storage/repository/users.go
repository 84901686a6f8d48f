package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/portfolio-backend/internal/models"
)

// RegisterUser сохраняет нового локального пользователя и возвращает его UID.
//
// При нарушении уникальности username или email возвращает ErrAlreadyExists.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.RegisterUser"

	var newUID string
	query := `INSERT INTO users (username, email, password_hash, role)
			  VALUES ($1, NULLIF($2, ''), $3, $4)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Username, user.Email, user.PasswordHash, user.Role).Scan(&newUID); err != nil {
		if isUniqueViolation(err) {
			return "", fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// CreateOAuthUser сохраняет пользователя, пришедшего через внешнего провайдера.
func (s *Storage) CreateOAuthUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.CreateOAuthUser"

	var newUID string
	query := `INSERT INTO users (username, email, role, google_id)
			  VALUES ($1, NULLIF($2, ''), $3, $4)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Username, user.Email, user.Role, user.GoogleID).Scan(&newUID); err != nil {
		if isUniqueViolation(err) {
			return "", fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

const userColumns = `uid, username, COALESCE(email, ''), COALESCE(password_hash, ''),
			  role, COALESCE(google_id, ''), COALESCE(secret, ''), created_at`

func scanUser(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.UID, &u.Username, &u.Email, &u.PasswordHash,
		&u.Role, &u.GoogleID, &u.Secret, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetUser возвращает пользователя по его UID.
func (s *Storage) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	const op = "storage.GetUser"

	query := `SELECT ` + userColumns + ` FROM users WHERE uid = $1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, userUID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// GetUserByUsername возвращает пользователя по его username.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.GetUserByUsername"

	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// GetUserByEmail возвращает пользователя по его email.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// GetUserByGoogleID возвращает пользователя по идентификатору субъекта Google.
func (s *Storage) GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	const op = "storage.GetUserByGoogleID"

	query := `SELECT ` + userColumns + ` FROM users WHERE google_id = $1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, googleID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// UpdateSecret записывает новый секрет пользователя и возвращает число обновленных строк.
func (s *Storage) UpdateSecret(ctx context.Context, userUID, secret string) (int64, error) {
	const op = "storage.UpdateSecret"

	query := `UPDATE users SET secret = $1 WHERE uid = $2`
	res, err := s.DB.ExecContext(ctx, query, secret, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// ListUsersWithSecrets возвращает пользователей, опубликовавших непустой секрет.
func (s *Storage) ListUsersWithSecrets(ctx context.Context) ([]*models.User, error) {
	const op = "storage.ListUsersWithSecrets"

	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE secret IS NOT NULL AND secret <> ''
			  ORDER BY created_at`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.User
	for rows.Next() {
		u := &models.User{}
		if err = rows.Scan(&u.UID, &u.Username, &u.Email, &u.PasswordHash,
			&u.Role, &u.GoogleID, &u.Secret, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
