// Package f1 предоставляет маршруты сервиса справочника Формулы-1.
package f1

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/portfolio-backend/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/portfolio-backend/internal/http/handlers/auth/register"
	drivercreate "github.com/magabrotheeeer/portfolio-backend/internal/http/handlers/driver/create"
	driverlist "github.com/magabrotheeeer/portfolio-backend/internal/http/handlers/driver/list"
	driverremove "github.com/magabrotheeeer/portfolio-backend/internal/http/handlers/driver/remove"
	driverupdate "github.com/magabrotheeeer/portfolio-backend/internal/http/handlers/driver/update"
	"github.com/magabrotheeeer/portfolio-backend/internal/http/handlers/health"
	teamcreate "github.com/magabrotheeeer/portfolio-backend/internal/http/handlers/team/create"
	teamlist "github.com/magabrotheeeer/portfolio-backend/internal/http/handlers/team/list"
	"github.com/magabrotheeeer/portfolio-backend/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/portfolio-backend/internal/services/auth"
	f1service "github.com/magabrotheeeer/portfolio-backend/internal/services/f1"
)

// RegisterRoutes регистрирует все маршруты сервиса.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	authService *authservice.AuthService,
	f1Service *f1service.F1Service,
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
		r.Post("/login", login.New(logger, authService).ServeHTTP)
		r.Get("/drivers", driverlist.New(logger, f1Service).ServeHTTP)
		r.Get("/teams", teamlist.New(logger, f1Service).ServeHTTP)

		// Мутации закрыты ролью admin
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RequireRoleMiddleware(authservice.RoleAdmin, logger))
			r.Use(middlewarectx.RateLimitMiddleware(rate.Limit(10), 20, logger))
			r.Post("/drivers", drivercreate.New(logger, f1Service).ServeHTTP)
			r.Put("/drivers/{id}", driverupdate.New(logger, f1Service).ServeHTTP)
			r.Delete("/drivers/{id}", driverremove.New(logger, f1Service).ServeHTTP)
			r.Post("/teams", teamcreate.New(logger, f1Service).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
}
