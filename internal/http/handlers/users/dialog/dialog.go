// Package dialog обрабатывает переходы состояний диалогов, не требующие
// обращения к удалённому API: вход в режим редактирования, отмена, закрытие
// карточки, открытие и закрытие формы добавления.
package dialog

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/mediclab/roster-admin/internal/lib/sl"
)

// Action переход состояния диалога, назначаемый обработчику при регистрации маршрута.
type Action string

// Поддерживаемые переходы.
const (
	ActionEdit     Action = "edit"
	ActionCancel   Action = "cancel"
	ActionClose    Action = "close"
	ActionAddOpen  Action = "add-open"
	ActionAddClose Action = "add-close"
)

// Controller описывает переходы состояний диалогов контроллера.
type Controller interface {
	StartEdit() error
	CancelEdit() error
	CloseDetail()
	OpenAdd()
	CloseAdd()
}

// Handler выполняет один переход состояния диалога.
type Handler struct {
	log    *slog.Logger
	ctrl   Controller
	action Action
}

// New создаёт обработчик перехода action.
func New(log *slog.Logger, ctrl Controller, action Action) *Handler {
	return &Handler{
		log:    log,
		ctrl:   ctrl,
		action: action,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.dialog"

	log := h.log.With(
		slog.String("op", op),
		slog.String("action", string(h.action)),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var err error
	switch h.action {
	case ActionEdit:
		err = h.ctrl.StartEdit()
	case ActionCancel:
		err = h.ctrl.CancelEdit()
	case ActionClose:
		h.ctrl.CloseDetail()
	case ActionAddOpen:
		h.ctrl.OpenAdd()
	case ActionAddClose:
		h.ctrl.CloseAdd()
	}
	if err != nil {
		// Нажатие устаревшей кнопки: диалог уже в другом состоянии,
		// страница просто перерисуется из текущего.
		log.Info("dialog transition skipped", sl.Err(err))
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
