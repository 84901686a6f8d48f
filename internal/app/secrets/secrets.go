// Package secrets собирает и запускает сервис обмена секретами:
// локальная регистрация, вход по паролю или через Google и серверные
// сессии в redis.
package secrets

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/portfolio-backend/internal/cache"
	"github.com/magabrotheeeer/portfolio-backend/internal/config"
	"github.com/magabrotheeeer/portfolio-backend/internal/migrations"
	"github.com/magabrotheeeer/portfolio-backend/internal/oauth"
	authservice "github.com/magabrotheeeer/portfolio-backend/internal/services/auth"
	secretservice "github.com/magabrotheeeer/portfolio-backend/internal/services/secrets"
	"github.com/magabrotheeeer/portfolio-backend/internal/session"
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

	sessions := session.NewStore(cacheRedis, cfg.CookieName, cfg.SessionTTL, cfg.SecureCookies)
	provider := oauth.NewGoogleProvider(cfg.GoogleOAuth)

	authService := authservice.NewAuthService(db, nil, sessions)
	secretService := secretservice.NewSecretService(db, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService, secretService, sessions, provider)

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
