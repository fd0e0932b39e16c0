// Package view отрисовывает HTML-страницы фронтенда из встроенных шаблонов.
//
// Страниц две: вход и ростер. Страница ростера рендерится целиком из снимка
// состояния контроллера — таблица, диалог карточки и диалог добавления.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/mediclab/roster-admin/internal/controller"
	"github.com/mediclab/roster-admin/internal/forms"
	"github.com/mediclab/roster-admin/internal/lib/dates"
)

//go:embed templates/*.html
var templateFS embed.FS

// LoginData данные страницы входа: введённый логин, ошибки по полям
// и сообщение об отказе сервера.
type LoginData struct {
	Username string
	Errors   forms.FieldErrors
	Flash    string
}

// View отрисовщик страниц.
type View struct {
	tpl *template.Template
}

// New парсит встроенные шаблоны.
func New() (*View, error) {
	tpl, err := template.New("").Funcs(template.FuncMap{
		"formatDate":     dates.Format,
		"formatDateOnly": dates.FormatDate,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &View{tpl: tpl}, nil
}

// RenderLogin отрисовывает страницу входа.
func (v *View) RenderLogin(w http.ResponseWriter, data LoginData) error {
	return v.render(w, "login.html", data)
}

// RenderHome отрисовывает страницу ростера из снимка состояния контроллера.
func (v *View) RenderHome(w http.ResponseWriter, snap controller.Snapshot) error {
	return v.render(w, "home.html", snap)
}

func (v *View) render(w http.ResponseWriter, name string, data any) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := v.tpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}
