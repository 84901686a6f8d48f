// Package create реализует HTTP-обработчик создания комментария к фильму.
//
// Handler принимает JSON с ID фильма и текстом, валидирует их, извлекает
// автора из контекста запроса и возвращает созданный комментарий целиком,
// включая снятое имя автора и время создания.
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

	"github.com/magabrotheeeer/portfolio-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/portfolio-backend/internal/http/response"
	"github.com/magabrotheeeer/portfolio-backend/internal/lib/sl"
	"github.com/magabrotheeeer/portfolio-backend/internal/models"
	services "github.com/magabrotheeeer/portfolio-backend/internal/services/comments"
)

// Service описывает интерфейс бизнес-логики создания комментария.
type Service interface {
	Create(ctx context.Context, authorUID, authorName string, req models.DummyComment) (*models.Comment, error)
}

// Handler управляет HTTP-запросами на создание комментариев.
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
// @Summary Создать комментарий
// @Description Создает комментарий к фильму от имени текущего пользователя.
// @Tags Comments
// @Accept  json
// @Produce  json
// @Param request body models.DummyComment true "Данные комментария"
// @Success 200 {object} map[string]any "Созданный комментарий"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Фильм не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /comments [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.comment.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyComment
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Int("movie_id", req.MovieID))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	userUID, okUID := r.Context().Value(middlewarectx.UserUID).(string)
	username, okName := r.Context().Value(middlewarectx.User).(string)
	if !okUID || userUID == "" || !okName || username == "" {
		log.Error("user identification missing in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	comment, err := h.service.Create(r.Context(), userUID, username, req)
	if err != nil {
		if errors.Is(err, services.ErrMovieNotFound) {
			log.Error("movie not found", slog.Int("movie_id", req.MovieID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("movie not found"))
			return
		}
		log.Error("failed to create comment", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create comment"))
		return
	}

	log.Info("comment created", slog.String("id", comment.ID))
	render.JSON(w, r, response.OKWithData(comment))
}
