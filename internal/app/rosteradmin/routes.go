// Package rosteradmin предоставляет маршруты приложения фронтенда.
package rosteradmin

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mediclab/roster-admin/internal/config"
	"github.com/mediclab/roster-admin/internal/controller"
	"github.com/mediclab/roster-admin/internal/http/handlers/auth/login"
	"github.com/mediclab/roster-admin/internal/http/handlers/auth/logout"
	"github.com/mediclab/roster-admin/internal/http/handlers/health"
	"github.com/mediclab/roster-admin/internal/http/handlers/users/add"
	"github.com/mediclab/roster-admin/internal/http/handlers/users/dialog"
	"github.com/mediclab/roster-admin/internal/http/handlers/users/list"
	"github.com/mediclab/roster-admin/internal/http/handlers/users/read"
	"github.com/mediclab/roster-admin/internal/http/handlers/users/reload"
	"github.com/mediclab/roster-admin/internal/http/handlers/users/save"
	"github.com/mediclab/roster-admin/internal/http/middlewarectx"
	"github.com/mediclab/roster-admin/internal/http/view"
	userservice "github.com/mediclab/roster-admin/internal/services/user"
	"github.com/mediclab/roster-admin/internal/session"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config, pages *view.View, ctrl *controller.Controller, users *userservice.Service, sessions *session.Store) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
	)

	// Страница входа доступна без сессии
	r.Get("/login", login.NewPage(logger, pages).ServeHTTP)
	r.Post("/login", login.New(logger, users, pages).ServeHTTP)

	// Группа страниц ростера, требующих живой сессии
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.SessionMiddleware(sessions, logger))
		r.Use(middlewarectx.RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst, logger))
		r.Get("/", list.New(logger, ctrl, pages).ServeHTTP)
		r.Post("/users/reload", reload.New(logger, ctrl).ServeHTTP)
		r.Post("/users/{id}/view", read.New(logger, ctrl).ServeHTTP)
		r.Post("/users/edit", dialog.New(logger, ctrl, dialog.ActionEdit).ServeHTTP)
		r.Post("/users/cancel", dialog.New(logger, ctrl, dialog.ActionCancel).ServeHTTP)
		r.Post("/users/close", dialog.New(logger, ctrl, dialog.ActionClose).ServeHTTP)
		r.Post("/users/save", save.New(logger, ctrl).ServeHTTP)
		r.Post("/users/add/open", dialog.New(logger, ctrl, dialog.ActionAddOpen).ServeHTTP)
		r.Post("/users/add/close", dialog.New(logger, ctrl, dialog.ActionAddClose).ServeHTTP)
		r.Post("/users/add", add.New(logger, ctrl).ServeHTTP)
		r.Post("/logout", logout.New(logger, ctrl).ServeHTTP)
	})

	r.Get("/healthz", health.New(logger, cfg.Env).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
}
