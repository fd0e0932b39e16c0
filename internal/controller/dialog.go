package controller

import (
	"github.com/mediclab/roster-admin/internal/forms"
	"github.com/mediclab/roster-admin/internal/models"
)

// DetailState состояние диалога карточки пользователя.
type DetailState string

// Состояния диалога карточки: закрыт, просмотр, редактирование,
// сохранение в полёте.
const (
	DetailIdle       DetailState = "idle"
	DetailViewing    DetailState = "viewing"
	DetailEditing    DetailState = "editing"
	DetailSubmitting DetailState = "submitting"
)

// AddState состояние диалога добавления пользователя. Не зависит от
// состояния диалога карточки.
type AddState string

// Состояния диалога добавления.
const (
	AddClosed     AddState = "closed"
	AddOpen       AddState = "open"
	AddSubmitting AddState = "submitting"
)

// detailDialog внутреннее состояние диалога карточки: загруженная карточка,
// сырые значения формы редактирования и ошибки последней попытки сохранения.
type detailDialog struct {
	State  DetailState
	User   *models.UserDetail
	Form   forms.EditForm
	Errors forms.FieldErrors
}

// addDialog внутреннее состояние диалога добавления.
type addDialog struct {
	State  AddState
	Form   forms.AddForm
	Errors forms.FieldErrors
}

// DetailView снимок состояния диалога карточки для отрисовки страницы.
type DetailView struct {
	State  DetailState
	User   *models.UserDetail
	Form   forms.EditForm
	Errors forms.FieldErrors
}

// AddView снимок состояния диалога добавления.
type AddView struct {
	State  AddState
	Form   forms.AddForm
	Errors forms.FieldErrors
}

// Snapshot согласованный снимок всего состояния страницы. Страница
// отрисовывается только из него, поэтому источником истины о том, какой
// диалог и в каком режиме открыт, всегда остаётся контроллер.
type Snapshot struct {
	Roster []models.RosterRow
	Flash  Flash
	Detail DetailView
	Add    AddView
}

// Snapshot возвращает копию текущего состояния страницы.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	roster := make([]models.RosterRow, len(c.roster))
	copy(roster, c.roster)

	var user *models.UserDetail
	if c.detail.User != nil {
		u := *c.detail.User
		user = &u
	}

	return Snapshot{
		Roster: roster,
		Flash:  c.flash,
		Detail: DetailView{
			State:  c.detail.State,
			User:   user,
			Form:   c.detail.Form,
			Errors: c.detail.Errors,
		},
		Add: AddView{
			State:  c.add.State,
			Form:   c.add.Form,
			Errors: c.add.Errors,
		},
	}
}
