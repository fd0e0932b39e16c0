// Package user реализует доменные операции над ростером пользователей.
//
// Каждая функция — типизированный адаптер ровно одной конечной точки
// удалённого REST API: login, список пользователей, карточка по id,
// обновление (включая блокировку), регистрация с загрузкой изображения
// и выход. Повторов и кеширования нет.
package user

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mediclab/roster-admin/internal/apiclient"
	"github.com/mediclab/roster-admin/internal/lib/sl"
	"github.com/mediclab/roster-admin/internal/models"
)

// Маршруты удалённого API относительно базового URL из конфига.
const (
	loginRoute    = "/login"
	usersRoute    = "/users"
	registerRoute = "/register"
	logoutRoute   = "/logout"
)

// API обобщённый HTTP-клиент удалённого API.
type API interface {
	Get(ctx context.Context, path string, requiresAuth bool, out any) error
	Post(ctx context.Context, path string, requiresAuth bool, body, out any) error
	Put(ctx context.Context, path string, requiresAuth bool, body, out any) error
	PostMultipart(ctx context.Context, path string, requiresAuth bool, form apiclient.Multipart, out any) error
}

// Session управляет жизненным циклом токена сессии.
type Session interface {
	Set(token string)
	Clear()
}

// Service сервисный слой доменных операций над ростером.
type Service struct {
	api     API
	session Session
	log     *slog.Logger
}

// New создаёт сервис поверх клиента API и хранилища сессии.
func New(api API, session Session, log *slog.Logger) *Service {
	return &Service{
		api:     api,
		session: session,
		log:     log,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// updateUserRequest тело PUT /users/{id}: ровно те поля, которые сервер
// принимает при общем редактировании и переключении статуса.
type updateUserRequest struct {
	Name        string `json:"name"`
	Username    string `json:"username"`
	DateOfBirth string `json:"dateOfBirth"`
	Status      string `json:"status"`
	Orders      *int   `json:"orders"`
}

// registerData JSON-блок метаданных поля userData в multipart-теле регистрации.
type registerData struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	Orders      *int   `json:"orders"`
	DateOfBirth string `json:"dateOfBirth"`
	Role        string `json:"role"`
}

// Login аутентифицирует оператора и сохраняет полученный токен в сессии.
func (s *Service) Login(ctx context.Context, username, password string) (*models.LoginResult, error) {
	var res models.LoginResult
	if err := s.api.Post(ctx, loginRoute, false, loginRequest{Username: username, Password: password}, &res); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	s.session.Set(res.Token)
	s.log.Info("operator logged in", slog.String("username", username))
	return &res, nil
}

// GetAllUsers загружает полный список пользователей.
func (s *Service) GetAllUsers(ctx context.Context) ([]models.RosterRow, error) {
	var rows []models.RosterRow
	if err := s.api.Get(ctx, usersRoute, true, &rows); err != nil {
		return nil, fmt.Errorf("get all users: %w", err)
	}
	return rows, nil
}

// GetUserByID загружает полную карточку пользователя.
func (s *Service) GetUserByID(ctx context.Context, id int) (*models.UserDetail, error) {
	var detail models.UserDetail
	if err := s.api.Get(ctx, fmt.Sprintf("%s/%d", usersRoute, id), true, &detail); err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &detail, nil
}

// BlockUser сохраняет отредактированную карточку пользователя. Используется
// и для переключения статуса active/blocked, и для обычного редактирования.
func (s *Service) BlockUser(ctx context.Context, u models.UserDetail) error {
	body := updateUserRequest{
		Name:        u.Name,
		Username:    u.Username,
		DateOfBirth: u.DateOfBirth,
		Status:      u.Status,
		Orders:      u.Orders,
	}
	if err := s.api.Put(ctx, fmt.Sprintf("%s/%d", usersRoute, u.ID), true, body, nil); err != nil {
		return fmt.Errorf("update user %d: %w", u.ID, err)
	}
	return nil
}

// Register регистрирует нового пользователя. Тело — multipart/form-data:
// бинарное поле image и поле userData с JSON-метаданными; роль всегда employee,
// идентичность назначает сервер.
func (s *Service) Register(ctx context.Context, draft models.NewUserDraft) (*models.RosterRow, error) {
	data, err := json.Marshal(registerData{
		Username:    draft.Username,
		Password:    draft.Password,
		Name:        draft.Name,
		Orders:      draft.Orders,
		DateOfBirth: draft.DateOfBirth,
		Role:        models.RoleEmployee,
	})
	if err != nil {
		return nil, fmt.Errorf("encode user data: %w", err)
	}

	form := apiclient.Multipart{
		Fields: []apiclient.Field{{Name: "userData", Value: string(data)}},
	}
	if draft.Image != nil {
		form.Files = append(form.Files, apiclient.FilePart{
			Name:     "image",
			Filename: draft.Image.Filename,
			Data:     draft.Image.Data,
		})
	}

	var row models.RosterRow
	if err := s.api.PostMultipart(ctx, registerRoute, false, form, &row); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return &row, nil
}

// Logout инвалидирует сессию на сервере. Локальная сессия очищается
// независимо от исхода удалённого вызова.
func (s *Service) Logout(ctx context.Context) error {
	err := s.api.Post(ctx, logoutRoute, true, nil, nil)
	s.session.Clear()
	if err != nil {
		s.log.Error("remote logout failed", sl.Err(err))
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
