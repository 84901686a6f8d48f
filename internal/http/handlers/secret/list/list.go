// Package list реализует HTTP-обработчик выдачи всех записанных секретов.
//
// Список доступен любому аутентифицированному пользователю, включая тех,
// кто свой секрет еще не записал.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/portfolio-backend/internal/http/response"
	"github.com/magabrotheeeer/portfolio-backend/internal/lib/sl"
	services "github.com/magabrotheeeer/portfolio-backend/internal/services/secrets"
)

// Service описывает интерфейс бизнес-логики чтения секретов.
type Service interface {
	List(ctx context.Context) ([]services.SharedSecret, error)
}

// Handler обрабатывает HTTP-запросы на список секретов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список секретов
// @Description Возвращает секреты всех пользователей вместе с именами владельцев.
// @Tags Secrets
// @Produce  json
// @Success 200 {object} map[string]any "Список секретов"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /secrets [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.secret.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	result, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list secrets", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list secrets"))
		return
	}

	log.Info("secrets listed", slog.Int("count", len(result)))
	render.JSON(w, r, response.OKWithData(result))
}
