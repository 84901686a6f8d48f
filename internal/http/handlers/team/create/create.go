// Package create реализует HTTP-обработчик добавления команды.
// Доступен только администраторам.
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

// Request — структура входных данных для добавления команды.
type Request struct {
	Num         int    `json:"num" validate:"required,gt=0"`
	Name        string `json:"name" validate:"required,max=100"`
	Nationality string `json:"nationality" validate:"required,len=3,alpha"`
	URL         string `json:"url" validate:"omitempty,url"`
}

// Service описывает интерфейс бизнес-логики добавления команды.
type Service interface {
	CreateTeam(ctx context.Context, team models.Team) (*models.Team, error)
}

// Handler обрабатывает HTTP-запросы на добавление команды.
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
// @Summary Добавить команду
// @Description Добавляет новую команду. Требует роль admin.
// @Tags Teams
// @Accept  json
// @Produce  json
// @Param request body Request true "Данные команды"
// @Success 200 {object} map[string]any "Созданная команда"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 409 {object} response.ErrorResponse "Команда с таким именем уже есть"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /teams [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
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

	team, err := h.service.CreateTeam(r.Context(), models.Team{
		Num:         req.Num,
		Name:        req.Name,
		Nationality: req.Nationality,
		URL:         req.URL,
	})
	if err != nil {
		if errors.Is(err, services.ErrTeamExists) {
			log.Error("team already exists", slog.String("name", req.Name))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("team already exists"))
			return
		}
		log.Error("failed to create team", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create team"))
		return
	}

	log.Info("team created", slog.String("id", team.ID))
	render.JSON(w, r, response.OKWithData(team))
}
