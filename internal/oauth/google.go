// Package oauth реализует вход через внешнего OAuth-провайдера Google.
//
// Провайдер отдает URL для редиректа на страницу согласия, обменивает
// код авторизации на access-токен и запрашивает профиль пользователя.
// Дальше профиль уходит в сервис аутентификации, который выполняет
// find-or-create и создает сессию.
package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/magabrotheeeer/portfolio-backend/internal/config"
	"github.com/magabrotheeeer/portfolio-backend/internal/models"
)

// userinfoURL эндпоинт профиля пользователя Google.
const userinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleProvider оборачивает oauth2-конфигурацию Google.
type GoogleProvider struct {
	cfg    *oauth2.Config
	client *http.Client
}

// NewGoogleProvider создает провайдера из конфигурации приложения.
func NewGoogleProvider(cfg config.GoogleOAuth) *GoogleProvider {
	return &GoogleProvider{
		cfg: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"profile", "email"},
			Endpoint:     google.Endpoint,
		},
		client: http.DefaultClient,
	}
}

// AuthURL возвращает URL страницы согласия Google для переданного state.
func (p *GoogleProvider) AuthURL(state string) string {
	return p.cfg.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange обменивает код авторизации на профиль пользователя.
func (p *GoogleProvider) Exchange(ctx context.Context, code string) (*models.OAuthProfile, error) {
	const op = "oauth.Exchange"

	token, err := p.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.client)
	resp, err := p.cfg.Client(ctx, token).Get(userinfoURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: userinfo returned status %d", op, resp.StatusCode)
	}

	var info struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if info.ID == "" {
		return nil, fmt.Errorf("%s: userinfo without id", op)
	}

	return &models.OAuthProfile{
		ProviderID: info.ID,
		Name:       info.Name,
		Email:      info.Email,
	}, nil
}
