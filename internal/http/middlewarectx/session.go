// Package middlewarectx содержит HTTP middleware фронтенда.
//
// SessionMiddleware пускает на страницы ростера только при живой сессии
// оператора, иначе перенаправляет на страницу входа. RateLimitMiddleware
// ограничивает частоту действий, каждое из которых превращается в вызов
// удалённого API.
package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
)

// SessionChecker сообщает, есть ли живая сессия оператора.
type SessionChecker interface {
	Active() bool
}

// SessionMiddleware возвращает middleware, которое перенаправляет на /login,
// если сессии нет или токен истёк.
func SessionMiddleware(sessions SessionChecker, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sessions.Active() {
				log.Info("no active session, redirecting to login",
					slog.String("request_id", middleware.GetReqID(r.Context())),
					slog.String("path", r.URL.Path),
				)
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
