// Package logout реализует HTTP-обработчик выхода из сессии.
//
// Сессия уничтожается на сервере, а клиенту выставляется истекшая cookie.
// Выход без живой сессии не ошибка.
package logout

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/portfolio-backend/internal/http/response"
	"github.com/magabrotheeeer/portfolio-backend/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики выхода.
type Service interface {
	Logout(ctx context.Context, sessionID string) error
}

// Cookies дает доступ к cookie сессии.
type Cookies interface {
	FromRequest(r *http.Request) string
	ExpiredCookie() *http.Cookie
}

// Handler обрабатывает HTTP-запросы на выход.
type Handler struct {
	log     *slog.Logger
	service Service
	cookies Cookies
}

// New создает новый Handler с переданными логгером, сервисом и хранилищем cookie.
func New(log *slog.Logger, service Service, cookies Cookies) *Handler {
	return &Handler{
		log:     log,
		service: service,
		cookies: cookies,
	}
}

// ServeHTTP godoc
// @Summary Выход из сессии
// @Description Уничтожает серверную сессию и сбрасывает cookie.
// @Tags Auth
// @Produce  json
// @Success 200 {object} response.Response "Успешный выход"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.secret.logout"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if id := h.cookies.FromRequest(r); id != "" {
		if err := h.service.Logout(r.Context(), id); err != nil {
			log.Error("failed to destroy session", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not logout"))
			return
		}
	}

	http.SetCookie(w, h.cookies.ExpiredCookie())

	log.Info("session destroyed")
	render.JSON(w, r, response.OK())
}
