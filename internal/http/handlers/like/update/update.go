// Package update реализует HTTP-обработчик голосования за фильм.
//
// Handler принимает действие like либо dislike, применяет его атомарно
// и возвращает актуальные значения обоих счетчиков из хранилища, так что
// параллельные голоса разных пользователей не теряются.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/portfolio-backend/internal/http/response"
	"github.com/magabrotheeeer/portfolio-backend/internal/lib/sl"
	"github.com/magabrotheeeer/portfolio-backend/internal/models"
	services "github.com/magabrotheeeer/portfolio-backend/internal/services/likes"
)

// Request — структура входных данных для голосования.
type Request struct {
	Action string `json:"action" validate:"required,oneof=like dislike"`
}

// Service описывает интерфейс бизнес-логики счетчиков.
type Service interface {
	Update(ctx context.Context, movieID int, action string) (*models.LikeCounter, error)
}

// Handler обрабатывает HTTP-запросы на голосование.
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
// @Summary Проголосовать за фильм
// @Description Увеличивает счетчик лайков или дизлайков фильма и возвращает актуальные значения.
// @Tags Likes
// @Accept  json
// @Produce  json
// @Param id path int true "ID фильма"
// @Param request body Request true "Действие: like или dislike"
// @Success 200 {object} map[string]any "Актуальные счетчики"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Фильм не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /movies/{id}/likes [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.like.update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	movieID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid movie id", slog.String("raw", chi.URLParam(r, "id")))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid movie id"))
		return
	}

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

	counter, err := h.service.Update(r.Context(), movieID, req.Action)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMovieNotFound):
			log.Error("movie not found", slog.Int("movie_id", movieID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("movie not found"))
		case errors.Is(err, services.ErrUnknownAction):
			log.Error("unknown action", slog.String("action", req.Action))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("unknown action"))
		default:
			log.Error("failed to update counters", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not update counters"))
		}
		return
	}

	log.Info("counters updated",
		slog.Int("movie_id", movieID),
		slog.String("action", req.Action))
	render.JSON(w, r, response.OKWithData(counter))
}
