// Package create реализует HTTP-обработчик добавления пилота.
//
// Доступен только администраторам: маршрут закрыт RequireRoleMiddleware.
// Команда пилота указывается по ID и копируется в его запись в момент
// создания.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/portfolio-backend/internal/http/response"
	"github.com/magabrotheeeer/portfolio-backend/internal/lib/sl"
	"github.com/magabrotheeeer/portfolio-backend/internal/models"
	services "github.com/magabrotheeeer/portfolio-backend/internal/services/f1"
)

// Service описывает интерфейс бизнес-логики добавления пилота.
type Service interface {
	CreateDriver(ctx context.Context, req models.DummyDriver) (*models.Driver, error)
}

// Handler обрабатывает HTTP-запросы на добавление пилота.
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
// @Summary Добавить пилота
// @Description Добавляет пилота со снимком его текущей команды. Требует роль admin.
// @Tags Drivers
// @Accept  json
// @Produce  json
// @Param request body models.DummyDriver true "Данные пилота"
// @Success 200 {object} map[string]any "Созданный пилот"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или неизвестная команда"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /drivers [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.driver.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyDriver
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("code", req.Code))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	driver, err := h.service.CreateDriver(r.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrTeamNotFound) {
			// Ссылка на несуществующую команду — ошибка входных данных
			log.Error("team not found", slog.String("team_id", req.TeamID))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("team not found"))
			return
		}
		log.Error("failed to create driver", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create driver"))
		return
	}

	log.Info("driver created", slog.String("id", driver.ID))
	render.JSON(w, r, response.OKWithData(driver))
}
