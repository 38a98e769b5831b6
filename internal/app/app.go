package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/movie-catalog/internal/config"
	"github.com/magabrotheeeer/movie-catalog/internal/lib/jwt"
	authservice "github.com/magabrotheeeer/movie-catalog/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/movie-catalog/internal/services/catalog"
	"github.com/magabrotheeeer/movie-catalog/internal/storage/mongodb"
	"github.com/magabrotheeeer/movie-catalog/internal/storage/repository"
)

// App объединяет HTTP-сервер и подключение к хранилищу.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *mongodb.Storage
}

// New собирает приложение: хранилище, сервисы, маршруты и HTTP-сервер.
// Соединение с базой создаётся один раз и передаётся явно, без глобального состояния.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	db, err := mongodb.New(connectCtx, cfg.URI, cfg.Database)
	if err != nil {
		return nil, err
	}

	repo := repository.New(db)
	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	authService := authservice.NewAuthService(repo, jwtMaker)
	catalogService := catalogservice.NewCatalogService(repo)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, catalogService, authService, jwtMaker, db)

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
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
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
		if closeErr := a.db.Close(timeoutCtx); closeErr != nil {
			a.logger.Error("failed to close storage connection", slog.Any("err", closeErr))
		}
		return err
	}
}
