// Package read открывает карточку пользователя: загружает полную запись
// по id из строки таблицы и переводит диалог в режим просмотра.
package read

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/mediclab/roster-admin/internal/lib/sl"
)

// Controller описывает операцию выбора пользователя.
type Controller interface {
	SelectUser(ctx context.Context, id int) error
}

// Handler обрабатывает выбор строки таблицы.
type Handler struct {
	log  *slog.Logger
	ctrl Controller
}

// New создаёт обработчик выбора пользователя.
func New(log *slog.Logger, ctrl Controller) *Handler {
	return &Handler{
		log:  log,
		ctrl: ctrl,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	// Ошибка загрузки уже превращена контроллером во флэш-сообщение.
	if err := h.ctrl.SelectUser(r.Context(), id); err != nil {
		log.Error("failed to open user detail", slog.Int("id", id), sl.Err(err))
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
