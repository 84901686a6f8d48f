// Package list реализует HTTP-обработчик выдачи каталога фильмов.
package list

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/portfolio-backend/internal/http/response"
	"github.com/magabrotheeeer/portfolio-backend/internal/models"
)

// Catalog описывает источник фильмов.
type Catalog interface {
	All() []models.Movie
}

// Handler обрабатывает HTTP-запросы на список фильмов.
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
// @Summary Список фильмов
// @Description Возвращает все фильмы каталога.
// @Tags Movies
// @Produce  json
// @Success 200 {object} map[string]any "Список фильмов"
// @Router /movies [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.movie.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	result := h.catalog.All()

	log.Info("movies listed", slog.Int("count", len(result)))
	render.JSON(w, r, response.OKWithData(result))
}
