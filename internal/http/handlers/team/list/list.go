// Package list реализует HTTP-обработчик выдачи всех команд.
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

// Service описывает интерфейс бизнес-логики чтения команд.
type Service interface {
	ListTeams(ctx context.Context) ([]*models.Team, error)
}

// Handler обрабатывает HTTP-запросы на список команд.
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
// @Summary Список команд
// @Description Возвращает все команды, отсортированные по имени.
// @Tags Teams
// @Produce  json
// @Success 200 {object} map[string]any "Список команд"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /teams [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	result, err := h.service.ListTeams(r.Context())
	if err != nil {
		log.Error("failed to list teams", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list teams"))
		return
	}

	log.Info("teams listed", slog.Int("count", len(result)))
	render.JSON(w, r, response.OKWithData(result))
}
