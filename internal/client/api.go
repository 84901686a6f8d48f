package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/magabrotheeeer/portfolio-backend/internal/models"
)

// ErrUnauthorized сервер отверг учетные данные или токен.
var ErrUnauthorized = errors.New("unauthorized")

// API HTTP-клиент сервиса фильмов.
type API struct {
	baseURL string
	http    *http.Client
}

// NewAPI создает клиента для сервера по базовому URL вида http://host:port/api/v1.
func NewAPI(baseURL string) *API {
	return &API{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// envelope формат всех ответов сервера.
type envelope struct {
	Status string          `json:"status"`
	Error  string          `json:"error"`
	Data   json.RawMessage `json:"data"`
}

func (a *API) do(ctx context.Context, method, path, token string, body, out any) error {
	const op = "client.API.do"

	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%s: status %d: %w", op, resp.StatusCode, err)
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", ErrUnauthorized, env.Error)
	}
	if resp.StatusCode != http.StatusOK || env.Status != "OK" {
		return fmt.Errorf("%s: server error: %s", op, env.Error)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return nil
}

// Login выполняет вход и возвращает сессию с bearer-токеном.
func (a *API) Login(ctx context.Context, username, password string) (Session, error) {
	var session Session
	err := a.do(ctx, http.MethodPost, "/login", "", map[string]string{
		"username": username,
		"password": password,
	}, &session)
	if err != nil {
		return Session{}, err
	}
	return session, nil
}

// Register создает нового пользователя и возвращает сессию:
// сервер выдает токен сразу при регистрации.
func (a *API) Register(ctx context.Context, username, email, password string) (Session, error) {
	var session Session
	err := a.do(ctx, http.MethodPost, "/register", "", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}, &session)
	if err != nil {
		return Session{}, err
	}
	return session, nil
}

// Movies возвращает каталог фильмов.
func (a *API) Movies(ctx context.Context) ([]models.Movie, error) {
	var result []models.Movie
	if err := a.do(ctx, http.MethodGet, "/movies", "", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Comments возвращает комментарии к фильму.
func (a *API) Comments(ctx context.Context, movieID int) ([]models.Comment, error) {
	var result []models.Comment
	path := fmt.Sprintf("/movies/%d/comments", movieID)
	if err := a.do(ctx, http.MethodGet, path, "", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Comment оставляет комментарий к фильму от имени вошедшего пользователя.
func (a *API) Comment(ctx context.Context, token string, movieID int, text string) (*models.Comment, error) {
	var result models.Comment
	err := a.do(ctx, http.MethodPost, "/comments", token, models.DummyComment{
		MovieID: movieID,
		Text:    text,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Vote голосует за фильм и возвращает актуальные счетчики.
func (a *API) Vote(ctx context.Context, token string, movieID int, action string) (*models.LikeCounter, error) {
	var result models.LikeCounter
	path := fmt.Sprintf("/movies/%d/likes", movieID)
	err := a.do(ctx, http.MethodPost, path, token, map[string]string{
		"action": action,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
