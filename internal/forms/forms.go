// Package forms реализует клиентскую валидацию форм входа, добавления
// и редактирования пользователя.
//
// Валидация синхронная и запускается только при отправке формы. Результат —
// набор ошибок по полям: ключ — имя поля, значение — сообщение для вывода
// рядом с полем. Пустой набор означает, что форму можно отправлять на сервер.
// Серверных ограничений (например, занятость логина) валидация не знает.
package forms

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator"
)

// OrdersRangeMessage сообщение об ошибке диапазона числа заказов.
const OrdersRangeMessage = "Orders should be between 0 and 10"

// Границы допустимого числа заказов (включительно).
const (
	ordersMin = 0
	ordersMax = 10
)

// FieldErrors набор ошибок валидации: имя поля — сообщение.
// Пересчитывается при каждой попытке сохранения.
type FieldErrors map[string]string

// Empty сообщает, что ошибок нет и форму можно отправлять.
func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

// Get возвращает сообщение для поля, пустую строку — если поле прошло проверку.
func (e FieldErrors) Get(field string) string {
	return e[field]
}

// LoginForm форма входа.
type LoginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// AddForm форма добавления нового пользователя. Orders хранится строкой,
// как введено: пустая строка допустима, непустая должна быть числом в [0, 10].
type AddForm struct {
	Username    string `validate:"required"`
	Password    string `validate:"required"`
	Name        string `validate:"required"`
	Orders      string
	DateOfBirth string `validate:"required"`
}

// EditForm форма редактирования карточки пользователя.
type EditForm struct {
	Name        string `validate:"required"`
	Username    string `validate:"required"`
	Orders      string
	DateOfBirth string `validate:"required"`
	Status      string `validate:"required,oneof=active blocked"`
}

// fieldKeys переводит имена полей структур в ключи набора ошибок.
var fieldKeys = map[string]string{
	"Name":        "name",
	"Username":    "username",
	"Password":    "password",
	"Orders":      "orders",
	"DateOfBirth": "dateOfBirth",
	"Status":      "status",
}

// fieldLabels человеко-читаемые имена полей для сообщений.
var fieldLabels = map[string]string{
	"name":        "Name",
	"username":    "Username",
	"password":    "Password",
	"orders":      "Orders",
	"dateOfBirth": "Date of Birth",
	"status":      "Status",
}

// Validator проверяет формы и строит наборы ошибок по полям.
type Validator struct {
	validate *validator.Validate
}

// NewValidator создаёт валидатор форм.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// ValidateLogin проверяет форму входа.
func (v *Validator) ValidateLogin(f LoginForm) FieldErrors {
	return v.structErrors(f)
}

// ValidateAdd проверяет форму добавления пользователя.
func (v *Validator) ValidateAdd(f AddForm) FieldErrors {
	errs := v.structErrors(f)
	checkOrders(f.Orders, errs)
	return errs
}

// ValidateEdit проверяет форму редактирования пользователя.
func (v *Validator) ValidateEdit(f EditForm) FieldErrors {
	errs := v.structErrors(f)
	checkOrders(f.Orders, errs)
	return errs
}

// structErrors переводит нарушения validator в набор ошибок по полям.
func (v *Validator) structErrors(s any) FieldErrors {
	errs := FieldErrors{}
	err := v.validate.Struct(s)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["form"] = "form is not valid"
		return errs
	}
	for _, fe := range verrs {
		key, ok := fieldKeys[fe.Field()]
		if !ok {
			key = fe.Field()
		}
		label := fieldLabels[key]
		switch fe.ActualTag() {
		case "required":
			errs[key] = label + " is required"
		case "oneof":
			errs[key] = label + " must be active or blocked"
		default:
			errs[key] = label + " is not valid"
		}
	}
	return errs
}

// checkOrders проверяет необязательное поле числа заказов: пустое значение
// проходит, непустое обязано быть целым числом в [0, 10].
func checkOrders(raw string, errs FieldErrors) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < ordersMin || n > ordersMax {
		errs["orders"] = OrdersRangeMessage
	}
}

// ParseOrders возвращает число заказов из прошедшей валидацию формы;
// пустая строка означает отсутствие значения.
func ParseOrders(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
