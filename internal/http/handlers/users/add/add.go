// Package add обрабатывает отправку формы добавления пользователя.
//
// Форма приходит multipart: текстовые поля и необязательное изображение
// профиля. Дальше работает контроллер: валидация, регистрация и полная
// перезагрузка списка.
package add

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/mediclab/roster-admin/internal/controller"
	"github.com/mediclab/roster-admin/internal/forms"
	"github.com/mediclab/roster-admin/internal/lib/sl"
	"github.com/mediclab/roster-admin/internal/models"
)

// maxUploadSize предел размера multipart-формы с изображением профиля.
const maxUploadSize = 10 << 20

// Controller описывает операцию добавления пользователя.
type Controller interface {
	SubmitAdd(ctx context.Context, form forms.AddForm, image *models.ImageUpload) error
}

// Handler обрабатывает отправку формы добавления.
type Handler struct {
	log  *slog.Logger
	ctrl Controller
}

// New создаёт обработчик добавления пользователя.
func New(log *slog.Logger, ctrl Controller) *Handler {
	return &Handler{
		log:  log,
		ctrl: ctrl,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.add"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Error("failed to parse add form", sl.Err(err))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	form := forms.AddForm{
		Username:    r.PostFormValue("username"),
		Password:    r.PostFormValue("password"),
		Name:        r.PostFormValue("name"),
		Orders:      r.PostFormValue("orders"),
		DateOfBirth: r.PostFormValue("dateOfBirth"),
	}

	image := readImage(log, r)

	switch err := h.ctrl.SubmitAdd(r.Context(), form, image); {
	case errors.Is(err, controller.ErrBusy):
		log.Info("duplicate add ignored, previous request still in flight")
	case errors.Is(err, controller.ErrNoDialog):
		log.Info("add skipped, dialog is not open")
	case err != nil:
		log.Error("add failed", sl.Err(err))
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// readImage достаёт необязательное изображение профиля из multipart-формы.
func readImage(log *slog.Logger, r *http.Request) *models.ImageUpload {
	file, header, err := r.FormFile("image")
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) {
			log.Error("failed to read image from form", sl.Err(err))
		}
		return nil
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Error("failed to read image content", sl.Err(err))
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	return &models.ImageUpload{
		Filename: header.Filename,
		Data:     data,
	}
}
