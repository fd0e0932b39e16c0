package read

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type ControllerMock struct {
	mock.Mock
}

func (m *ControllerMock) SelectUser(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestReadHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		mockID     int
		mockErr    error
		mockCalled bool
	}{
		{
			name:       "valid id opens detail",
			url:        "/users/5/view",
			mockID:     5,
			mockCalled: true,
		},
		{
			name: "non-numeric id redirects without call",
			url:  "/users/abc/view",
		},
		{
			name:       "remote failure still redirects",
			url:        "/users/7/view",
			mockID:     7,
			mockErr:    errors.New("remote status 500"),
			mockCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrlMock := new(ControllerMock)
			if tt.mockCalled {
				ctrlMock.On("SelectUser", mock.Anything, tt.mockID).Return(tt.mockErr).Once()
			}

			router := chi.NewRouter()
			router.Post("/users/{id}/view", New(newNoopLogger(), ctrlMock).ServeHTTP)

			req := httptest.NewRequest(http.MethodPost, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/", rec.Header().Get("Location"))
			ctrlMock.AssertExpectations(t)
		})
	}
}
