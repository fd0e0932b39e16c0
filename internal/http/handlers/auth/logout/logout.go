// Package logout реализует выход оператора.
//
// Инвалидация сессии на сервере — fire-and-forget: перенаправление на
// страницу входа происходит независимо от исхода удалённого вызова.
package logout

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
)

// Controller описывает операцию выхода контроллера страницы.
type Controller interface {
	Logout(ctx context.Context)
}

// Handler обрабатывает выход оператора.
type Handler struct {
	log  *slog.Logger
	ctrl Controller
}

// New создаёт обработчик выхода.
func New(log *slog.Logger, ctrl Controller) *Handler {
	return &Handler{
		log:  log,
		ctrl: ctrl,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	h.ctrl.Logout(r.Context())

	h.log.Info("operator logged out",
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
