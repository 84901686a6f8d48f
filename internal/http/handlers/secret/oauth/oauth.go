// Package oauth реализует HTTP-обработчики входа через Google.
//
// RedirectHandler уводит пользователя на страницу согласия, предварительно
// выставив одноразовый state в cookie. CallbackHandler сверяет state,
// обменивает код на профиль, выполняет find-or-create пользователя
// и выставляет cookie с идентификатором сессии.
package oauth

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/portfolio-backend/internal/http/response"
	"github.com/magabrotheeeer/portfolio-backend/internal/lib/sl"
	"github.com/magabrotheeeer/portfolio-backend/internal/models"
	services "github.com/magabrotheeeer/portfolio-backend/internal/services/auth"
)

// stateCookie имя одноразовой cookie с anti-CSRF state.
const stateCookie = "oauth_state"

// Provider описывает интерфейс внешнего OAuth-провайдера.
type Provider interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (*models.OAuthProfile, error)
}

// Service описывает интерфейс бизнес-логики входа через провайдера.
type Service interface {
	OAuthLogin(ctx context.Context, profile models.OAuthProfile) (string, *services.Identity, error)
}

// CookieFactory формирует cookie с идентификатором сессии.
type CookieFactory interface {
	NewCookie(id string) *http.Cookie
}

// RedirectHandler уводит пользователя на страницу согласия провайдера.
type RedirectHandler struct {
	log      *slog.Logger
	provider Provider
}

// NewRedirect создает RedirectHandler.
func NewRedirect(log *slog.Logger, provider Provider) *RedirectHandler {
	return &RedirectHandler{log: log, provider: provider}
}

// ServeHTTP godoc
// @Summary Вход через Google
// @Description Перенаправляет пользователя на страницу согласия Google.
// @Tags Auth
// @Success 307 "Редирект на провайдера"
// @Router /auth/google [get]
func (h *RedirectHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.secret.oauth.redirect"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	state := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	log.Info("redirecting to provider")
	http.Redirect(w, r, h.provider.AuthURL(state), http.StatusTemporaryRedirect)
}

// CallbackHandler завершает вход после возврата от провайдера.
type CallbackHandler struct {
	log      *slog.Logger
	provider Provider
	service  Service
	cookies  CookieFactory
}

// NewCallback создает CallbackHandler.
func NewCallback(log *slog.Logger, provider Provider, service Service, cookies CookieFactory) *CallbackHandler {
	return &CallbackHandler{
		log:      log,
		provider: provider,
		service:  service,
		cookies:  cookies,
	}
}

// ServeHTTP godoc
// @Summary Завершение входа через Google
// @Description Сверяет state, обменивает код на профиль и выставляет cookie сессии.
// @Tags Auth
// @Produce  json
// @Param state query string true "Anti-CSRF state"
// @Param code query string true "Код авторизации"
// @Success 200 {object} map[string]any "Успешный вход"
// @Failure 400 {object} response.ErrorResponse "Некорректный state или код"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /auth/google/callback [get]
func (h *CallbackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.secret.oauth.callback"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	cookie, err := r.Cookie(stateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != r.URL.Query().Get("state") {
		log.Error("state mismatch")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid oauth state"))
		return
	}
	// state одноразовый, затираем сразу после сверки
	http.SetCookie(w, &http.Cookie{Name: stateCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})

	code := r.URL.Query().Get("code")
	if code == "" {
		log.Error("authorization code missing")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("authorization code missing"))
		return
	}

	profile, err := h.provider.Exchange(r.Context(), code)
	if err != nil {
		log.Error("failed to exchange code", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not login with provider"))
		return
	}

	sessionID, identity, err := h.service.OAuthLogin(r.Context(), *profile)
	if err != nil {
		log.Error("oauth login failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not login with provider"))
		return
	}

	http.SetCookie(w, h.cookies.NewCookie(sessionID))

	log.Info("oauth login success", slog.String("username", identity.Username))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"username": identity.Username,
		"role":     identity.Role,
	}))
}
