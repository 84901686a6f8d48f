// Package services содержит бизнес-логику обмена секретами между пользователями.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/portfolio-backend/internal/models"
	"github.com/magabrotheeeer/portfolio-backend/internal/storage/repository"
)

// ErrUserNotFound пользователь сессии отсутствует в хранилище.
var ErrUserNotFound = errors.New("user not found")

// SecretRepository определяет методы для работы с секретами в хранилище.
type SecretRepository interface {
	// UpdateSecret записывает секрет пользователя и возвращает число обновленных строк.
	UpdateSecret(ctx context.Context, userUID, secret string) (int64, error)
	// ListUsersWithSecrets возвращает пользователей, у которых записан непустой секрет.
	ListUsersWithSecrets(ctx context.Context) ([]*models.User, error)
}

// SharedSecret секрет вместе с именем владельца, как он отдается на чтение.
type SharedSecret struct {
	Username string `json:"username"`
	Secret   string `json:"secret"`
}

// SecretService реализует бизнес-логику секретов: запись своего
// и чтение чужих.
type SecretService struct {
	repo SecretRepository
	log  *slog.Logger
}

// NewSecretService создает новый экземпляр SecretService.
func NewSecretService(repo SecretRepository, log *slog.Logger) *SecretService {
	return &SecretService{
		repo: repo,
		log:  log,
	}
}

// Submit записывает секрет пользователя, затирая предыдущий.
//
// Пустой после обрезки пробелов секрет сохраняется как пустая строка
// и исключает пользователя из общего списка.
func (s *SecretService) Submit(ctx context.Context, userUID, secret string) error {
	const op = "secrets.Submit"

	count, err := s.repo.UpdateSecret(ctx, userUID, strings.TrimSpace(secret))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	if count == 0 {
		return ErrUserNotFound
	}

	s.log.Info("updated secret", slog.String("user_uid", userUID))
	return nil
}

// List возвращает все записанные секреты вместе с именами владельцев.
//
// Список виден любому аутентифицированному пользователю, включая того,
// кто свой секрет еще не записал.
func (s *SecretService) List(ctx context.Context) ([]SharedSecret, error) {
	const op = "secrets.List"

	users, err := s.repo.ListUsersWithSecrets(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := make([]SharedSecret, 0, len(users))
	for _, u := range users {
		result = append(result, SharedSecret{
			Username: u.Username,
			Secret:   u.Secret,
		})
	}
	return result, nil
}
