// Package secrets предоставляет маршруты сервиса обмена секретами.
package secrets

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/portfolio-backend/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/portfolio-backend/internal/http/handlers/health"
	secretlist "github.com/magabrotheeeer/portfolio-backend/internal/http/handlers/secret/list"
	secretlogin "github.com/magabrotheeeer/portfolio-backend/internal/http/handlers/secret/login"
	secretlogout "github.com/magabrotheeeer/portfolio-backend/internal/http/handlers/secret/logout"
	secretoauth "github.com/magabrotheeeer/portfolio-backend/internal/http/handlers/secret/oauth"
	secretsubmit "github.com/magabrotheeeer/portfolio-backend/internal/http/handlers/secret/submit"
	"github.com/magabrotheeeer/portfolio-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/portfolio-backend/internal/oauth"
	authservice "github.com/magabrotheeeer/portfolio-backend/internal/services/auth"
	secretservice "github.com/magabrotheeeer/portfolio-backend/internal/services/secrets"
	"github.com/magabrotheeeer/portfolio-backend/internal/session"
)

// RegisterRoutes регистрирует все маршруты сервиса.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	authService *authservice.AuthService,
	secretService *secretservice.SecretService,
	sessions *session.Store,
	provider *oauth.GoogleProvider,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", secretlogin.New(logger, authService, sessions).ServeHTTP)
		r.Post("/logout", secretlogout.New(logger, authService, sessions).ServeHTTP)
		r.Get("/auth/google", secretoauth.NewRedirect(logger, provider).ServeHTTP)
		r.Get("/auth/google/callback", secretoauth.NewCallback(logger, provider, authService, sessions).ServeHTTP)

		// Группа с сессионной аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.SessionMiddleware(authService, sessions.CookieName(), logger))
			r.Use(middlewarectx.RateLimitMiddleware(rate.Limit(10), 20, logger))
			r.Get("/secrets", secretlist.New(logger, secretService).ServeHTTP)
			r.Post("/secret", secretsubmit.New(logger, secretService).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
}
