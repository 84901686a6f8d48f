package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/portfolio-backend/internal/http/response"
	"github.com/magabrotheeeer/portfolio-backend/internal/lib/sl"
	"github.com/magabrotheeeer/portfolio-backend/internal/session"
)

// SessionValidator описывает интерфейс сервиса для проверки серверной сессии.
type SessionValidator interface {
	ValidateSession(ctx context.Context, sessionID string) (*session.Data, error)
}

// SessionMiddleware возвращает HTTP middleware, который проверяет сессию по cookie.
//
// Идентификатор сессии извлекается из cookie с именем cookieName. Если сессия
// жива, добавляет имя пользователя, UID и роль в контекст запроса, иначе
// возвращает ошибку с HTTP статусом 401 Unauthorized.
func SessionMiddleware(auth SessionValidator, cookieName string, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.SessionMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				log.Error("missing session cookie")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))
				return
			}

			data, err := auth.ValidateSession(r.Context(), cookie.Value)
			if err != nil {
				log.Error("invalid or expired session", sl.Err(err))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))
				return
			}
			ctx := context.WithValue(r.Context(), User, data.Username)
			ctx = context.WithValue(ctx, Role, data.Role)
			ctx = context.WithValue(ctx, UserUID, data.UserUID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
