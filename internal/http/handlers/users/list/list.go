// Package list отрисовывает страницу ростера.
//
// Список загружается при первом обращении; ошибка загрузки уже превращена
// контроллером во флэш-сообщение с кнопкой повтора, поэтому страница
// отрисовывается в любом случае.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/mediclab/roster-admin/internal/controller"
	"github.com/mediclab/roster-admin/internal/http/view"
	"github.com/mediclab/roster-admin/internal/lib/sl"
)

// Controller описывает операции контроллера, нужные странице списка.
type Controller interface {
	EnsureLoaded(ctx context.Context) error
	Snapshot() controller.Snapshot
}

// Handler отрисовывает страницу ростера.
type Handler struct {
	log  *slog.Logger
	ctrl Controller
	view *view.View
}

// New создаёт обработчик страницы ростера.
func New(log *slog.Logger, ctrl Controller, v *view.View) *Handler {
	return &Handler{
		log:  log,
		ctrl: ctrl,
		view: v,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := h.ctrl.EnsureLoaded(r.Context()); err != nil {
		log.Error("roster load failed, rendering page with flash", sl.Err(err))
	}

	if err := h.view.RenderHome(w, h.ctrl.Snapshot()); err != nil {
		log.Error("failed to render roster page", sl.Err(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
