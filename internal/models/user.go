// Package models описывает записи пользователей, которыми обменивается
// фронтенд с удалённым API ростера.
//
// RosterRow — краткая запись из списка всех пользователей, UserDetail —
// полная запись одного пользователя для диалога просмотра и редактирования.
// Список в памяти и состояние сервера могут расходиться до следующей полной
// загрузки списка.
package models

// Статусы учётной записи, которые принимает удалённый API.
const (
	StatusActive  = "active"
	StatusBlocked = "blocked"
)

// RoleEmployee — роль, которую сервер назначает новым пользователям
// при регистрации через форму добавления.
const RoleEmployee = "employee"

// Role вложенная запись роли пользователя.
type Role struct {
	Name string `json:"name"`
}

// RosterRow краткая запись пользователя в таблице списка.
// Идентификатор неизменяем и уникален.
type RosterRow struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Username      string `json:"username"`
	LastLoginDate string `json:"lastLoginDate"`
	Role          Role   `json:"role"`
}

// UserDetail полная запись пользователя, загружаемая по id.
// Orders — необязательное поле в диапазоне [0, 10].
// Даты приходят строками в формате RFC 3339.
type UserDetail struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Username      string `json:"username"`
	Orders        *int   `json:"orders,omitempty"`
	LastLoginDate string `json:"lastLoginDate,omitempty"`
	Image         string `json:"image,omitempty"`
	Status        string `json:"status,omitempty"`
	DateOfBirth   string `json:"dateOfBirth"`
	Role          Role   `json:"role"`
}

// RosterRow возвращает краткую запись, соответствующую полной.
// Используется при локальном патче списка после успешного сохранения.
func (u UserDetail) RosterRow() RosterRow {
	return RosterRow{
		ID:            u.ID,
		Name:          u.Name,
		Username:      u.Username,
		LastLoginDate: u.LastLoginDate,
		Role:          u.Role,
	}
}

// ImageUpload содержимое загружаемого файла изображения профиля.
type ImageUpload struct {
	Filename string
	Data     []byte
}

// NewUserDraft черновик нового пользователя из формы добавления.
// Существует только на время одной отправки формы, идентичности не имеет —
// её назначает сервер.
type NewUserDraft struct {
	Username    string
	Password    string
	Name        string
	Orders      *int
	Image       *ImageUpload
	DateOfBirth string
}

// LoginResult ответ удалённого API на успешную аутентификацию.
type LoginResult struct {
	User  UserDetail `json:"user"`
	Token string     `json:"token"`
}
