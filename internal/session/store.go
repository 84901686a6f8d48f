// Package session реализует серверные сессии поверх redis.
//
// Сессия — запись с непрозрачным идентификатором, который клиент носит
// в HTTP-only cookie. Запись живет фиксированное время (по умолчанию 24 часа)
// и уничтожается при логауте.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// ErrSessionNotFound сессия отсутствует или истекла.
var ErrSessionNotFound = errors.New("session not found")

// Data данные, привязанные к сессии.
type Data struct {
	UserUID  string `json:"user_uid"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Cache описывает методы кеша, необходимые хранилищу сессий.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// Store хранилище сессий с настройками cookie.
type Store struct {
	cache         Cache
	cookieName    string
	ttl           time.Duration
	secureCookies bool
}

// NewStore создает хранилище сессий поверх переданного кеша.
func NewStore(cache Cache, cookieName string, ttl time.Duration, secureCookies bool) *Store {
	return &Store{
		cache:         cache,
		cookieName:    cookieName,
		ttl:           ttl,
		secureCookies: secureCookies,
	}
}

func sessionKey(id string) string {
	return "session:" + id
}

// Create создает новую сессию для пользователя и возвращает её идентификатор.
//
// Идентификатор генерируется заново при каждом логине, старые сессии
// не переиспользуются.
func (s *Store) Create(ctx context.Context, data Data) (string, error) {
	const op = "session.Create"

	id := uuid.NewString()
	if err := s.cache.Set(ctx, sessionKey(id), data, s.ttl); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// Get возвращает данные сессии по идентификатору.
// Для отсутствующей или истекшей сессии возвращает ErrSessionNotFound.
func (s *Store) Get(ctx context.Context, id string) (*Data, error) {
	const op = "session.Get"

	var data Data
	found, err := s.cache.Get(ctx, sessionKey(id), &data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return nil, fmt.Errorf("%s: %w", op, ErrSessionNotFound)
	}
	return &data, nil
}

// Destroy уничтожает сессию. Уничтожение несуществующей сессии не ошибка.
func (s *Store) Destroy(ctx context.Context, id string) error {
	const op = "session.Destroy"

	if err := s.cache.Invalidate(ctx, sessionKey(id)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// CookieName возвращает имя cookie, в которой клиент носит идентификатор сессии.
func (s *Store) CookieName() string {
	return s.cookieName
}

// NewCookie формирует HTTP-only cookie с идентификатором сессии и Max-Age
// равным времени жизни сессии.
func (s *Store) NewCookie(id string) *http.Cookie {
	return &http.Cookie{
		Name:     s.cookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredCookie формирует cookie, немедленно удаляющую сессию на клиенте.
func (s *Store) ExpiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}

// FromRequest извлекает идентификатор сессии из cookie запроса.
// Пустая строка означает, что cookie не представлена.
func (s *Store) FromRequest(r *http.Request) string {
	cookie, err := r.Cookie(s.cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
