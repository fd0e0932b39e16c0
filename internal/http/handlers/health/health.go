// Package health реализует служебную конечную точку проверки живости фронтенда.
package health

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/mediclab/roster-admin/internal/http/response"
)

// Handler отвечает на запросы проверки живости.
type Handler struct {
	log *slog.Logger
	env string
}

// New создаёт обработчик health-проверки.
func New(log *slog.Logger, env string) *Handler {
	return &Handler{
		log: log,
		env: env,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"status": "ok",
		"env":    h.env,
	}))
}
