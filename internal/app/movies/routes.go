// Package movies предоставляет маршруты сервиса каталога фильмов.
package movies

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/portfolio-backend/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/portfolio-backend/internal/http/handlers/auth/register"
	commentcreate "github.com/magabrotheeeer/portfolio-backend/internal/http/handlers/comment/create"
	commentlist "github.com/magabrotheeeer/portfolio-backend/internal/http/handlers/comment/list"
	commentremove "github.com/magabrotheeeer/portfolio-backend/internal/http/handlers/comment/remove"
	"github.com/magabrotheeeer/portfolio-backend/internal/http/handlers/health"
	likeget "github.com/magabrotheeeer/portfolio-backend/internal/http/handlers/like/get"
	likeupdate "github.com/magabrotheeeer/portfolio-backend/internal/http/handlers/like/update"
	movielist "github.com/magabrotheeeer/portfolio-backend/internal/http/handlers/movie/list"
	movieread "github.com/magabrotheeeer/portfolio-backend/internal/http/handlers/movie/read"
	"github.com/magabrotheeeer/portfolio-backend/internal/http/middlewarectx"
	movieCatalog "github.com/magabrotheeeer/portfolio-backend/internal/movies"
	authservice "github.com/magabrotheeeer/portfolio-backend/internal/services/auth"
	commentservice "github.com/magabrotheeeer/portfolio-backend/internal/services/comments"
	likeservice "github.com/magabrotheeeer/portfolio-backend/internal/services/likes"
)

// RegisterRoutes регистрирует все маршруты сервиса.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	catalog movieCatalog.Catalog,
	authService *authservice.AuthService,
	commentService *commentservice.CommentService,
	likeService *likeservice.LikeService,
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
		r.Get("/movies", movielist.New(logger, catalog).ServeHTTP)
		r.Get("/movies/{id}", movieread.New(logger, catalog).ServeHTTP)
		r.Get("/movies/{id}/comments", commentlist.New(logger, commentService).ServeHTTP)
		r.Get("/movies/{id}/likes", likeget.New(logger, likeService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(rate.Limit(10), 20, logger))
			r.Post("/comments", commentcreate.New(logger, commentService).ServeHTTP)
			r.Delete("/comments/{id}", commentremove.New(logger, commentService).ServeHTTP)
			r.Post("/movies/{id}/likes", likeupdate.New(logger, likeService).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
