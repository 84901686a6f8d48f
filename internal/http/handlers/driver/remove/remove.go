// Package remove реализует HTTP-обработчик удаления пилота.
// Доступен только администраторам.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/portfolio-backend/internal/http/response"
	"github.com/magabrotheeeer/portfolio-backend/internal/lib/sl"
	services "github.com/magabrotheeeer/portfolio-backend/internal/services/f1"
)

// Service описывает интерфейс бизнес-логики удаления пилота.
type Service interface {
	DeleteDriver(ctx context.Context, id string) error
}

// Handler обрабатывает HTTP-запросы на удаление пилота.
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
// @Summary Удалить пилота
// @Description Удаляет пилота по ID. Требует роль admin.
// @Tags Drivers
// @Produce  json
// @Param id path string true "ID пилота"
// @Success 200 {object} response.Response "Пилот удален"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Пилот не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /drivers/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.driver.remove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	if err := h.service.DeleteDriver(r.Context(), id); err != nil {
		if errors.Is(err, services.ErrDriverNotFound) {
			log.Error("driver not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("driver not found"))
			return
		}
		log.Error("failed to remove driver", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not remove driver"))
		return
	}

	log.Info("driver removed", slog.String("id", id))
	render.JSON(w, r, response.OK())
}
