// Package login реализует страницу входа оператора.
//
// GET отдаёт форму, POST валидирует её, выполняет вход через сервисный слой
// и при успехе перенаправляет на страницу ростера. Токен сессии сохраняет
// сервисный слой; здесь он не виден.
package login

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/mediclab/roster-admin/internal/forms"
	"github.com/mediclab/roster-admin/internal/http/view"
	"github.com/mediclab/roster-admin/internal/lib/sl"
	"github.com/mediclab/roster-admin/internal/models"
)

// Service описывает операцию входа сервисного слоя.
type Service interface {
	Login(ctx context.Context, username, password string) (*models.LoginResult, error)
}

// Handler обрабатывает отправку формы входа.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *forms.Validator
	view     *view.View
}

// New создаёт обработчик отправки формы входа.
func New(log *slog.Logger, service Service, v *view.View) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: forms.NewValidator(),
		view:     v,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseForm(); err != nil {
		log.Error("failed to parse login form", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		h.renderPage(log, w, view.LoginData{Flash: "Invalid form submission"})
		return
	}

	form := forms.LoginForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	if errs := h.validate.ValidateLogin(form); !errs.Empty() {
		log.Info("login form validation failed")
		w.WriteHeader(http.StatusUnprocessableEntity)
		h.renderPage(log, w, view.LoginData{Username: form.Username, Errors: errs})
		return
	}

	if _, err := h.service.Login(r.Context(), form.Username, form.Password); err != nil {
		log.Error("login failed", sl.Err(err))
		w.WriteHeader(http.StatusUnauthorized)
		h.renderPage(log, w, view.LoginData{Username: form.Username, Flash: "Invalid username or password"})
		return
	}

	log.Info("login success", slog.String("username", form.Username))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) renderPage(log *slog.Logger, w http.ResponseWriter, data view.LoginData) {
	if err := h.view.RenderLogin(w, data); err != nil {
		log.Error("failed to render login page", sl.Err(err))
	}
}

// PageHandler отдаёт страницу входа.
type PageHandler struct {
	log  *slog.Logger
	view *view.View
}

// NewPage создаёт обработчик страницы входа.
func NewPage(log *slog.Logger, v *view.View) *PageHandler {
	return &PageHandler{
		log: log,
		view: v,
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	if err := h.view.RenderLogin(w, view.LoginData{}); err != nil {
		h.log.Error("failed to render login page", sl.Err(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
