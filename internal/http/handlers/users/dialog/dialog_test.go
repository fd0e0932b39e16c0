package dialog

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mediclab/roster-admin/internal/controller"
)

type ControllerMock struct {
	mock.Mock
}

func (m *ControllerMock) StartEdit() error {
	return m.Called().Error(0)
}

func (m *ControllerMock) CancelEdit() error {
	return m.Called().Error(0)
}

func (m *ControllerMock) CloseDetail() {
	m.Called()
}

func (m *ControllerMock) OpenAdd() {
	m.Called()
}

func (m *ControllerMock) CloseAdd() {
	m.Called()
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestDialogHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		action     Action
		mockMethod string
		mockErr    error
		hasError   bool
	}{
		{name: "edit enters editing", action: ActionEdit, mockMethod: "StartEdit", hasError: true},
		{name: "stale edit button is ignored", action: ActionEdit, mockMethod: "StartEdit", mockErr: controller.ErrNoDialog, hasError: true},
		{name: "cancel returns to viewing", action: ActionCancel, mockMethod: "CancelEdit", hasError: true},
		{name: "close hides detail", action: ActionClose, mockMethod: "CloseDetail"},
		{name: "add open", action: ActionAddOpen, mockMethod: "OpenAdd"},
		{name: "add close", action: ActionAddClose, mockMethod: "CloseAdd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrlMock := new(ControllerMock)
			if tt.hasError {
				ctrlMock.On(tt.mockMethod).Return(tt.mockErr).Once()
			} else {
				ctrlMock.On(tt.mockMethod).Once()
			}

			handler := New(newNoopLogger(), ctrlMock, tt.action)

			req := httptest.NewRequest(http.MethodPost, "/users/dialog", nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/", rec.Header().Get("Location"))
			ctrlMock.AssertExpectations(t)
		})
	}
}
