// Package read реализует HTTP-обработчик выдачи одного фильма по ID.
package read

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/portfolio-backend/internal/http/response"
	"github.com/magabrotheeeer/portfolio-backend/internal/models"
)

// Catalog описывает источник фильмов.
type Catalog interface {
	Find(id int) (models.Movie, bool)
}

// Handler обрабатывает HTTP-запросы на чтение фильма.
type Handler struct {
	log     *slog.Logger
	catalog Catalog
}

// New создает новый Handler с переданными логгером и каталогом.
func New(log *slog.Logger, catalog Catalog) *Handler {
	return &Handler{
		log:     log,
		catalog: catalog,
	}
}

// ServeHTTP godoc
// @Summary Фильм по ID
// @Description Возвращает один фильм каталога по его числовому ID.
// @Tags Movies
// @Produce  json
// @Param id path int true "ID фильма"
// @Success 200 {object} map[string]any "Фильм"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Фильм не найден"
// @Router /movies/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.movie.read"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid movie id", slog.String("raw", chi.URLParam(r, "id")))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid movie id"))
		return
	}

	movie, ok := h.catalog.Find(id)
	if !ok {
		log.Error("movie not found", slog.Int("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("movie not found"))
		return
	}

	render.JSON(w, r, response.OKWithData(movie))
}
