// Package reload перечитывает список пользователей по кнопке повтора
// из флэш-сообщения об ошибке загрузки.
package reload

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/mediclab/roster-admin/internal/lib/sl"
)

// Controller описывает операцию полной перезагрузки списка.
type Controller interface {
	Reload(ctx context.Context) error
}

// Handler обрабатывает повторную загрузку списка.
type Handler struct {
	log  *slog.Logger
	ctrl Controller
}

// New создаёт обработчик перезагрузки списка.
func New(log *slog.Logger, ctrl Controller) *Handler {
	return &Handler{
		log:  log,
		ctrl: ctrl,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.reload"

	// Ошибка уже превращена контроллером во флэш-сообщение.
	if err := h.ctrl.Reload(r.Context()); err != nil {
		h.log.Error("manual roster reload failed",
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			sl.Err(err),
		)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
