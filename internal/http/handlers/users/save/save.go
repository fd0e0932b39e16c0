// Package save обрабатывает сохранение формы редактирования карточки.
//
// Валидация и патч списка выполняются контроллером; обработчик только
// разбирает форму и перенаправляет обратно на страницу — она отрисуется
// из нового состояния: с ошибками по полям, с флэш-сообщением или с
// закрытым диалогом.
package save

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/mediclab/roster-admin/internal/controller"
	"github.com/mediclab/roster-admin/internal/forms"
	"github.com/mediclab/roster-admin/internal/lib/sl"
)

// Controller описывает операцию сохранения карточки.
type Controller interface {
	SaveEdit(ctx context.Context, form forms.EditForm) error
}

// Handler обрабатывает отправку формы редактирования.
type Handler struct {
	log  *slog.Logger
	ctrl Controller
}

// New создаёт обработчик сохранения карточки.
func New(log *slog.Logger, ctrl Controller) *Handler {
	return &Handler{
		log:  log,
		ctrl: ctrl,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.save"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseForm(); err != nil {
		log.Error("failed to parse edit form", sl.Err(err))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	form := forms.EditForm{
		Name:        r.PostFormValue("name"),
		Username:    r.PostFormValue("username"),
		Orders:      r.PostFormValue("orders"),
		DateOfBirth: r.PostFormValue("dateOfBirth"),
		Status:      r.PostFormValue("status"),
	}

	switch err := h.ctrl.SaveEdit(r.Context(), form); {
	case errors.Is(err, controller.ErrBusy):
		log.Info("duplicate save ignored, previous request still in flight")
	case errors.Is(err, controller.ErrNoDialog):
		log.Info("save skipped, edit dialog is not open")
	case err != nil:
		log.Error("save failed", sl.Err(err))
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
