// Package get реализует HTTP-обработчик чтения счетчиков лайков фильма.
package get

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
	services "github.com/magabrotheeeer/portfolio-backend/internal/services/likes"
)

// Service описывает интерфейс бизнес-логики чтения счетчиков.
type Service interface {
	Get(ctx context.Context, movieID int) (*models.LikeCounter, error)
}

// Handler обрабатывает HTTP-запросы на чтение счетчиков.
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
// @Summary Счетчики фильма
// @Description Возвращает количество лайков и дизлайков фильма.
// @Tags Likes
// @Produce  json
// @Param id path int true "ID фильма"
// @Success 200 {object} map[string]any "Счетчики"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Фильм не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /movies/{id}/likes [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.like.get"
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

	counter, err := h.service.Get(r.Context(), movieID)
	if err != nil {
		if errors.Is(err, services.ErrMovieNotFound) {
			log.Error("movie not found", slog.Int("movie_id", movieID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("movie not found"))
			return
		}
		log.Error("failed to get counters", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not get counters"))
		return
	}

	render.JSON(w, r, response.OKWithData(counter))
}
