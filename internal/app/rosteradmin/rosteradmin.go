// Package rosteradmin собирает приложение фронтенда: хранилище сессии,
// клиент удалённого API, сервисный слой, контроллер страницы, шаблоны
// и HTTP-сервер с graceful shutdown.
package rosteradmin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/mediclab/roster-admin/internal/apiclient"
	"github.com/mediclab/roster-admin/internal/config"
	"github.com/mediclab/roster-admin/internal/controller"
	"github.com/mediclab/roster-admin/internal/http/view"
	"github.com/mediclab/roster-admin/internal/services/user"
	"github.com/mediclab/roster-admin/internal/session"
)

// App приложение фронтенда.
type App struct {
	server *http.Server
	logger *slog.Logger
}

// New создаёт приложение из конфига.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	sessions := session.NewStore()
	api := apiclient.New(cfg.BaseURL, cfg.RequestTimeout, sessions, logger)
	userService := user.New(api, sessions, logger)
	ctrl := controller.New(userService, logger)

	pages, err := view.New()
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, pages, ctrl, userService, sessions)

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его по отмене контекста.
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
		return a.server.Shutdown(timeoutCtx)
	}
}
