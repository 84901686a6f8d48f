// Package update реализует HTTP-обработчик полного обновления пилота.
//
// Доступен только администраторам. Запись заменяется целиком, снимок
// команды снимается заново по переданному team_id.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/portfolio-backend/internal/http/response"
	"github.com/magabrotheeeer/portfolio-backend/internal/lib/sl"
	"github.com/magabrotheeeer/portfolio-backend/internal/models"
	services "github.com/magabrotheeeer/portfolio-backend/internal/services/f1"
)

// Service описывает интерфейс бизнес-логики обновления пилота.
type Service interface {
	UpdateDriver(ctx context.Context, id string, req models.DummyDriver) (*models.Driver, error)
}

// Handler обрабатывает HTTP-запросы на обновление пилота.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновить пилота
// @Description Полностью заменяет запись пилота по ID. Требует роль admin.
// @Tags Drivers
// @Accept  json
// @Produce  json
// @Param id path string true "ID пилота"
// @Param request body models.DummyDriver true "Новые данные пилота"
// @Success 200 {object} map[string]any "Обновленный пилот"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или неизвестная команда"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Пилот не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /drivers/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.driver.update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	var req models.DummyDriver
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	driver, err := h.service.UpdateDriver(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDriverNotFound):
			log.Error("driver not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("driver not found"))
		case errors.Is(err, services.ErrTeamNotFound):
			// Ссылка на несуществующую команду — ошибка входных данных
			log.Error("team not found", slog.String("team_id", req.TeamID))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("team not found"))
		default:
			log.Error("failed to update driver", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not update driver"))
		}
		return
	}

	log.Info("driver updated", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(driver))
}
