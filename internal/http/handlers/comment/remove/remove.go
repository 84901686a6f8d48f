// Package remove реализует HTTP-обработчик удаления комментария.
//
// Удалять комментарий может только его автор: для чужого комментария
// возвращается HTTP 403 независимо от роли пользователя.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/portfolio-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/portfolio-backend/internal/http/response"
	"github.com/magabrotheeeer/portfolio-backend/internal/lib/sl"
	services "github.com/magabrotheeeer/portfolio-backend/internal/services/comments"
)

// Service описывает интерфейс бизнес-логики удаления комментария.
type Service interface {
	Remove(ctx context.Context, id, userUID string) error
}

// Handler обрабатывает HTTP-запросы на удаление комментариев.
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
// @Summary Удалить комментарий
// @Description Удаляет комментарий текущего пользователя по ID.
// @Tags Comments
// @Produce  json
// @Param id path string true "ID комментария"
// @Success 200 {object} response.Response "Комментарий удален"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Комментарий принадлежит другому пользователю"
// @Failure 404 {object} response.ErrorResponse "Комментарий не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /comments/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.comment.remove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user identification missing in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	err := h.service.Remove(r.Context(), id, userUID)
	switch {
	case errors.Is(err, services.ErrCommentNotFound):
		log.Error("comment not found", slog.String("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("comment not found"))
	case errors.Is(err, services.ErrNotOwner):
		log.Error("attempt to remove foreign comment", slog.String("id", id))
		w.WriteHeader(http.StatusForbidden)
		render.JSON(w, r, response.Error("comment belongs to another user"))
	case err != nil:
		log.Error("failed to remove comment", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not remove comment"))
	default:
		log.Info("comment removed", slog.String("id", id))
		render.JSON(w, r, response.OK())
	}
}
