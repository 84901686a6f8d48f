// Package list реализует HTTP-обработчик выдачи всех пилотов.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/portfolio-backend/internal/http/response"
	"github.com/magabrotheeeer/portfolio-backend/internal/lib/sl"
	"github.com/magabrotheeeer/portfolio-backend/internal/models"
)

// Service описывает интерфейс бизнес-логики чтения пилотов.
type Service interface {
	ListDrivers(ctx context.Context) ([]*models.Driver, error)
}

// Handler обрабатывает HTTP-запросы на список пилотов.
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
// @Summary Список пилотов
// @Description Возвращает всех пилотов, отсортированных по номеру, вместе со снимками их команд.
// @Tags Drivers
// @Produce  json
// @Success 200 {object} map[string]any "Список пилотов"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /drivers [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.driver.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	result, err := h.service.ListDrivers(r.Context())
	if err != nil {
		log.Error("failed to list drivers", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list drivers"))
		return
	}

	log.Info("drivers listed", slog.Int("count", len(result)))
	render.JSON(w, r, response.OKWithData(result))
}
