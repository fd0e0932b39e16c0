package save

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mediclab/roster-admin/internal/controller"
	"github.com/mediclab/roster-admin/internal/forms"
)

type ControllerMock struct {
	mock.Mock
}

func (m *ControllerMock) SaveEdit(ctx context.Context, form forms.EditForm) error {
	args := m.Called(ctx, form)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestSaveHandler_ServeHTTP(t *testing.T) {
	form := url.Values{
		"name":        {"Alice Johnson"},
		"username":    {"alice"},
		"orders":      {"4"},
		"dateOfBirth": {"1990-01-02T00:00:00Z"},
		"status":      {"blocked"},
	}

	wantForm := forms.EditForm{
		Name:        "Alice Johnson",
		Username:    "alice",
		Orders:      "4",
		DateOfBirth: "1990-01-02T00:00:00Z",
		Status:      "blocked",
	}

	tests := []struct {
		name    string
		mockErr error
	}{
		{name: "form is passed to controller"},
		{name: "busy controller still redirects", mockErr: controller.ErrBusy},
		{name: "closed dialog still redirects", mockErr: controller.ErrNoDialog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrlMock := new(ControllerMock)
			ctrlMock.On("SaveEdit", mock.Anything, wantForm).Return(tt.mockErr).Once()

			handler := New(newNoopLogger(), ctrlMock)

			req := httptest.NewRequest(http.MethodPost, "/users/save", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/", rec.Header().Get("Location"))
			ctrlMock.AssertExpectations(t)
		})
	}
}
