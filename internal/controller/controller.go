// Package controller реализует контроллер страницы ростера.
//
// Контроллер — единственный владелец списка пользователей в памяти,
// состояния двух диалогов (карточка пользователя и форма добавления),
// черновиков редактирования и флэш-ошибок. Обработчики HTTP-запросов
// обращаются только к нему; всё изменяемое состояние защищено мьютексом,
// потому что обработчики выполняются конкурентно.
//
// Список в памяти может расходиться с сервером до следующей полной
// загрузки: после редактирования строка патчится локально, после
// добавления список перечитывается целиком.
package controller

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"

	"github.com/mediclab/roster-admin/internal/forms"
	"github.com/mediclab/roster-admin/internal/lib/sl"
	"github.com/mediclab/roster-admin/internal/models"
)

var (
	// ErrBusy возвращается при повторной отправке, пока предыдущая ещё в полёте.
	ErrBusy = errors.New("submission already in progress")
	// ErrNoDialog возвращается, когда операция не соответствует состоянию диалога.
	ErrNoDialog = errors.New("no dialog in required state")
)

// Service доменные операции, которые нужны контроллеру.
type Service interface {
	GetAllUsers(ctx context.Context) ([]models.RosterRow, error)
	GetUserByID(ctx context.Context, id int) (*models.UserDetail, error)
	BlockUser(ctx context.Context, u models.UserDetail) error
	Register(ctx context.Context, draft models.NewUserDraft) (*models.RosterRow, error)
	Logout(ctx context.Context) error
}

// Flash пользовательское сообщение об ошибке последней операции.
// Retry указывает, что на странице уместна кнопка повтора (перечитать список).
type Flash struct {
	Message string
	Retry   bool
}

// Controller контроллер страницы ростера.
type Controller struct {
	svc      Service
	validate *forms.Validator
	log      *slog.Logger

	mu     sync.Mutex
	roster []models.RosterRow
	loaded bool
	flash  Flash
	detail detailDialog
	add    addDialog
}

// New создаёт контроллер поверх сервисного слоя.
func New(svc Service, log *slog.Logger) *Controller {
	return &Controller{
		svc:      svc,
		validate: forms.NewValidator(),
		log:      log,
		detail:   detailDialog{State: DetailIdle},
		add:      addDialog{State: AddClosed},
	}
}

// EnsureLoaded загружает список при первом обращении к странице.
func (c *Controller) EnsureLoaded(ctx context.Context) error {
	c.mu.Lock()
	loaded := c.loaded
	c.mu.Unlock()
	if loaded {
		return nil
	}
	return c.Reload(ctx)
}

// Reload перечитывает список пользователей целиком. При ошибке прежний
// список сохраняется, а на странице появляется сообщение с кнопкой повтора.
func (c *Controller) Reload(ctx context.Context) error {
	rows, err := c.svc.GetAllUsers(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.log.Error("failed to load roster", sl.Err(err))
		c.flash = Flash{Message: "Failed to load users", Retry: true}
		return err
	}
	c.roster = rows
	c.loaded = true
	c.flash = Flash{}
	return nil
}

// SelectUser загружает карточку пользователя и открывает диалог просмотра.
func (c *Controller) SelectUser(ctx context.Context, id int) error {
	detail, err := c.svc.GetUserByID(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.log.Error("failed to load user detail", slog.Int("id", id), sl.Err(err))
		c.flash = Flash{Message: "Failed to load user details"}
		return err
	}
	c.detail = detailDialog{State: DetailViewing, User: detail}
	c.flash = Flash{}
	return nil
}

// StartEdit переводит открытый диалог просмотра в режим редактирования,
// заполняя форму копией текущей карточки.
func (c *Controller) StartEdit() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.detail.State != DetailViewing {
		return ErrNoDialog
	}
	c.detail.State = DetailEditing
	c.detail.Form = editFormFromDetail(*c.detail.User)
	c.detail.Errors = nil
	return nil
}

// CancelEdit отменяет редактирование: черновик и ошибки отбрасываются,
// диалог возвращается в режим просмотра.
func (c *Controller) CancelEdit() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.detail.State != DetailEditing {
		return ErrNoDialog
	}
	c.detail.State = DetailViewing
	c.detail.Form = forms.EditForm{}
	c.detail.Errors = nil
	return nil
}

// CloseDetail закрывает диалог карточки из любого режима. Если в этот момент
// сохранение ещё в полёте, его поздний результат будет отброшен.
func (c *Controller) CloseDetail() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.detail = detailDialog{State: DetailIdle}
}

// SaveEdit валидирует форму редактирования и сохраняет карточку.
//
// Ошибки валидации оставляют диалог открытым в режиме редактирования и не
// доходят до сервисного слоя. При успешном сохранении соответствующая строка
// списка патчится на месте, остальные строки не меняются, диалог закрывается.
// Пока запрос в полёте, диалог находится в состоянии submitting и повторная
// отправка отклоняется с ErrBusy.
func (c *Controller) SaveEdit(ctx context.Context, form forms.EditForm) error {
	c.mu.Lock()
	switch c.detail.State {
	case DetailSubmitting:
		c.mu.Unlock()
		return ErrBusy
	case DetailEditing:
	default:
		c.mu.Unlock()
		return ErrNoDialog
	}

	c.detail.Form = form
	errs := c.validate.ValidateEdit(form)
	if !errs.Empty() {
		c.detail.Errors = errs
		c.mu.Unlock()
		return nil
	}
	c.detail.Errors = nil

	updated := *c.detail.User
	updated.Name = form.Name
	updated.Username = form.Username
	updated.DateOfBirth = form.DateOfBirth
	updated.Status = form.Status
	updated.Orders = forms.ParseOrders(form.Orders)

	c.detail.State = DetailSubmitting
	c.mu.Unlock()

	err := c.svc.BlockUser(ctx, updated)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.detail.State != DetailSubmitting || c.detail.User == nil || c.detail.User.ID != updated.ID {
		// Диалог закрыли, пока запрос был в полёте: поздний ответ отбрасывается.
		return nil
	}
	if err != nil {
		c.log.Error("failed to save user", slog.Int("id", updated.ID), sl.Err(err))
		c.detail.State = DetailEditing
		c.flash = Flash{Message: "Failed to save user"}
		return err
	}

	for i := range c.roster {
		if c.roster[i].ID == updated.ID {
			c.roster[i] = updated.RosterRow()
		}
	}
	c.detail = detailDialog{State: DetailIdle}
	c.flash = Flash{}
	return nil
}

// OpenAdd открывает диалог добавления пользователя.
func (c *Controller) OpenAdd() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.add.State == AddClosed {
		c.add = addDialog{State: AddOpen}
	}
}

// CloseAdd закрывает диалог добавления; введённые значения отбрасываются.
func (c *Controller) CloseAdd() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.add.State != AddSubmitting {
		c.add = addDialog{State: AddClosed}
	}
}

// SubmitAdd валидирует форму добавления и регистрирует пользователя.
//
// После успешной регистрации список безусловно перечитывается целиком —
// инкрементального патча нет, идентичность новой записи знает только сервер.
// Диалог закрывается, форма сбрасывается.
func (c *Controller) SubmitAdd(ctx context.Context, form forms.AddForm, image *models.ImageUpload) error {
	c.mu.Lock()
	switch c.add.State {
	case AddSubmitting:
		c.mu.Unlock()
		return ErrBusy
	case AddOpen:
	default:
		c.mu.Unlock()
		return ErrNoDialog
	}

	c.add.Form = form
	errs := c.validate.ValidateAdd(form)
	if !errs.Empty() {
		c.add.Errors = errs
		c.mu.Unlock()
		return nil
	}
	c.add.Errors = nil

	draft := models.NewUserDraft{
		Username:    form.Username,
		Password:    form.Password,
		Name:        form.Name,
		Orders:      forms.ParseOrders(form.Orders),
		Image:       image,
		DateOfBirth: form.DateOfBirth,
	}
	c.add.State = AddSubmitting
	c.mu.Unlock()

	_, err := c.svc.Register(ctx, draft)
	var rows []models.RosterRow
	var reloadErr error
	if err == nil {
		rows, reloadErr = c.svc.GetAllUsers(ctx)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.add.State != AddSubmitting {
		return nil
	}
	if err != nil {
		c.log.Error("failed to register user", sl.Err(err))
		c.add.State = AddOpen
		c.flash = Flash{Message: "Failed to add user"}
		return err
	}

	c.add = addDialog{State: AddClosed}
	if reloadErr != nil {
		c.log.Error("failed to reload roster after register", sl.Err(reloadErr))
		c.flash = Flash{Message: "User added, but the list could not be reloaded", Retry: true}
		return reloadErr
	}
	c.roster = rows
	c.loaded = true
	c.flash = Flash{}
	return nil
}

// Logout инвалидирует сессию и сбрасывает всё состояние страницы.
// Навигация на страницу входа происходит независимо от исхода удалённого
// вызова, поэтому ошибка здесь только логируется.
func (c *Controller) Logout(ctx context.Context) {
	if err := c.svc.Logout(ctx); err != nil {
		c.log.Error("logout failed, navigating anyway", sl.Err(err))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.roster = nil
	c.loaded = false
	c.flash = Flash{}
	c.detail = detailDialog{State: DetailIdle}
	c.add = addDialog{State: AddClosed}
}

// editFormFromDetail заполняет форму редактирования из карточки пользователя.
func editFormFromDetail(u models.UserDetail) forms.EditForm {
	orders := ""
	if u.Orders != nil {
		orders = strconv.Itoa(*u.Orders)
	}
	return forms.EditForm{
		Name:        u.Name,
		Username:    u.Username,
		Orders:      orders,
		DateOfBirth: u.DateOfBirth,
		Status:      u.Status,
	}
}
