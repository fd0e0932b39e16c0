package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddForm() AddForm {
	return AddForm{
		Username:    "newbie",
		Password:    "secret",
		Name:        "New Person",
		Orders:      "3",
		DateOfBirth: "2000-05-06T00:00:00Z",
	}
}

func validEditForm() EditForm {
	return EditForm{
		Name:        "Vera",
		Username:    "vera",
		Orders:      "5",
		DateOfBirth: "1990-01-02T00:00:00Z",
		Status:      "active",
	}
}

func TestValidateAdd_RequiredFields(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name      string
		mutate    func(*AddForm)
		wantField string
		wantMsg   string
	}{
		{
			name:      "missing username",
			mutate:    func(f *AddForm) { f.Username = "" },
			wantField: "username",
			wantMsg:   "Username is required",
		},
		{
			name:      "missing password",
			mutate:    func(f *AddForm) { f.Password = "" },
			wantField: "password",
			wantMsg:   "Password is required",
		},
		{
			name:      "missing name",
			mutate:    func(f *AddForm) { f.Name = "" },
			wantField: "name",
			wantMsg:   "Name is required",
		},
		{
			name:      "missing date of birth",
			mutate:    func(f *AddForm) { f.DateOfBirth = "" },
			wantField: "dateOfBirth",
			wantMsg:   "Date of Birth is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validAddForm()
			tt.mutate(&form)

			errs := v.ValidateAdd(form)

			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantMsg, errs.Get(tt.wantField))
		})
	}
}

func TestValidateAdd_OrdersBounds(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		orders  string
		wantErr bool
	}{
		{name: "empty orders passes", orders: "", wantErr: false},
		{name: "lower bound passes", orders: "0", wantErr: false},
		{name: "upper bound passes", orders: "10", wantErr: false},
		{name: "below range fails", orders: "-1", wantErr: true},
		{name: "above range fails", orders: "11", wantErr: true},
		{name: "not a number fails", orders: "many", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validAddForm()
			form.Orders = tt.orders

			errs := v.ValidateAdd(form)

			if tt.wantErr {
				assert.Equal(t, OrdersRangeMessage, errs.Get("orders"))
			} else {
				assert.True(t, errs.Empty())
			}
		})
	}
}

func TestValidateEdit_RequiredFields(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name      string
		mutate    func(*EditForm)
		wantField string
		wantMsg   string
	}{
		{
			name:      "missing name",
			mutate:    func(f *EditForm) { f.Name = "" },
			wantField: "name",
			wantMsg:   "Name is required",
		},
		{
			name:      "missing username",
			mutate:    func(f *EditForm) { f.Username = "" },
			wantField: "username",
			wantMsg:   "Username is required",
		},
		{
			name:      "missing date of birth",
			mutate:    func(f *EditForm) { f.DateOfBirth = "" },
			wantField: "dateOfBirth",
			wantMsg:   "Date of Birth is required",
		},
		{
			name:      "missing status",
			mutate:    func(f *EditForm) { f.Status = "" },
			wantField: "status",
			wantMsg:   "Status is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validEditForm()
			tt.mutate(&form)

			errs := v.ValidateEdit(form)

			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantMsg, errs.Get(tt.wantField))
		})
	}
}

func TestValidateEdit_StatusMustBeKnown(t *testing.T) {
	v := NewValidator()

	form := validEditForm()
	form.Status = "suspended"

	errs := v.ValidateEdit(form)

	assert.Equal(t, "Status must be active or blocked", errs.Get("status"))
}

func TestValidateEdit_MultipleErrorsAtOnce(t *testing.T) {
	v := NewValidator()

	errs := v.ValidateEdit(EditForm{Orders: "11"})

	assert.Equal(t, "Name is required", errs.Get("name"))
	assert.Equal(t, "Username is required", errs.Get("username"))
	assert.Equal(t, "Date of Birth is required", errs.Get("dateOfBirth"))
	assert.Equal(t, "Status is required", errs.Get("status"))
	assert.Equal(t, OrdersRangeMessage, errs.Get("orders"))
}

func TestValidateLogin(t *testing.T) {
	v := NewValidator()

	errs := v.ValidateLogin(LoginForm{})
	assert.Equal(t, "Username is required", errs.Get("username"))
	assert.Equal(t, "Password is required", errs.Get("password"))

	errs = v.ValidateLogin(LoginForm{Username: "admin", Password: "secret"})
	assert.True(t, errs.Empty())
}

func TestParseOrders(t *testing.T) {
	assert.Nil(t, ParseOrders(""))
	assert.Nil(t, ParseOrders("   "))

	got := ParseOrders("7")
	require.NotNil(t, got)
	assert.Equal(t, 7, *got)

	zero := ParseOrders("0")
	require.NotNil(t, zero)
	assert.Equal(t, 0, *zero)
}
