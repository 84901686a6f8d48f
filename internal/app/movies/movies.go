// Package movies собирает и запускает сервис каталога фильмов:
// статический каталог, комментарии и счетчики лайков с bearer-аутентификацией.
package movies

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/portfolio-backend/internal/cache"
	"github.com/magabrotheeeer/portfolio-backend/internal/config"
	"github.com/magabrotheeeer/portfolio-backend/internal/lib/jwt"
	"github.com/magabrotheeeer/portfolio-backend/internal/migrations"
	movieCatalog "github.com/magabrotheeeer/portfolio-backend/internal/movies"
	authservice "github.com/magabrotheeeer/portfolio-backend/internal/services/auth"
	commentservice "github.com/magabrotheeeer/portfolio-backend/internal/services/comments"
	likeservice "github.com/magabrotheeeer/portfolio-backend/internal/services/likes"
	"github.com/magabrotheeeer/portfolio-backend/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	catalog := movieCatalog.Default()

	authService := authservice.NewAuthService(db, jwtMaker, nil)
	commentService := commentservice.NewCommentService(db, catalog, logger)
	likeService := likeservice.NewLikeService(db, cacheRedis, catalog, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, catalog, authService, commentService, likeService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.cache.Close()
		_ = a.db.Close()
		return err
	}
}
