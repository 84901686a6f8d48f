// Package list реализует HTTP-обработчик выдачи комментариев к фильму.
package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/portfolio-backend/internal/http/response"
	"github.com/magabrotheeeer/portfolio-backend/internal/lib/sl"
	"github.com/magabrotheeeer/portfolio-backend/internal/models"
	services "github.com/magabrotheeeer/portfolio-backend/internal/services/comments"
)

// Service описывает интерфейс бизнес-логики чтения комментариев.
type Service interface {
	List(ctx context.Context, movieID int) ([]*models.Comment, error)
}

// Handler обрабатывает HTTP-запросы на список комментариев.
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
// @Summary Комментарии к фильму
// @Description Возвращает комментарии к фильму, новые сначала.
// @Tags Comments
// @Produce  json
// @Param id path int true "ID фильма"
// @Success 200 {object} map[string]any "Список комментариев"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Фильм не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /movies/{id}/comments [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.comment.list"
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

	result, err := h.service.List(r.Context(), movieID)
	if err != nil {
		if errors.Is(err, services.ErrMovieNotFound) {
			log.Error("movie not found", slog.Int("movie_id", movieID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("movie not found"))
			return
		}
		log.Error("failed to list comments", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list comments"))
		return
	}

	log.Info("comments listed", slog.Int("movie_id", movieID), slog.Int("count", len(result)))
	render.JSON(w, r, response.OKWithData(result))
}
