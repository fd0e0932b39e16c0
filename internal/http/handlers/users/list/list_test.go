package list

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mediclab/roster-admin/internal/controller"
	"github.com/mediclab/roster-admin/internal/http/view"
	"github.com/mediclab/roster-admin/internal/models"
)

type ControllerMock struct {
	mock.Mock
}

func (m *ControllerMock) EnsureLoaded(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *ControllerMock) Snapshot() controller.Snapshot {
	args := m.Called()
	return args.Get(0).(controller.Snapshot)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestListHandler_ServeHTTP(t *testing.T) {
	pages, err := view.New()
	require.NoError(t, err)

	roster := []models.RosterRow{
		{ID: 1, Name: "Alice Johnson", Username: "alice", LastLoginDate: "2024-03-01T10:00:00Z", Role: models.Role{Name: "admin"}},
		{ID: 2, Name: "Bob Smith", Username: "bob", Role: models.Role{Name: "employee"}},
	}

	tests := []struct {
		name     string
		loadErr  error
		snapshot controller.Snapshot
		wantBody []string
	}{
		{
			name:     "renders roster table",
			snapshot: controller.Snapshot{Roster: roster},
			wantBody: []string{"Alice Johnson", "Bob Smith", "01.03.2024 10:00", "/users/1/view"},
		},
		{
			name:    "load failure renders flash with retry",
			loadErr: errors.New("remote status 500"),
			snapshot: controller.Snapshot{
				Flash: controller.Flash{Message: "Failed to load users", Retry: true},
			},
			wantBody: []string{"Failed to load users", "/users/reload"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrlMock := new(ControllerMock)
			ctrlMock.On("EnsureLoaded", mock.Anything).Return(tt.loadErr).Once()
			ctrlMock.On("Snapshot").Return(tt.snapshot).Once()

			handler := New(newNoopLogger(), ctrlMock, pages)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			for _, fragment := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), fragment)
			}
			ctrlMock.AssertExpectations(t)
		})
	}
}

func TestListHandler_DetailDialog(t *testing.T) {
	pages, err := view.New()
	require.NoError(t, err)

	orders := 3
	snapshot := controller.Snapshot{
		Roster: []models.RosterRow{{ID: 5, Name: "Carol White", Username: "carol"}},
		Detail: controller.DetailView{
			State: controller.DetailViewing,
			User: &models.UserDetail{
				ID:          5,
				Name:        "Carol White",
				Username:    "carol",
				Orders:      &orders,
				Status:      models.StatusActive,
				DateOfBirth: "1991-07-12T00:00:00Z",
			},
		},
	}

	ctrlMock := new(ControllerMock)
	ctrlMock.On("EnsureLoaded", mock.Anything).Return(nil).Once()
	ctrlMock.On("Snapshot").Return(snapshot).Once()

	handler := New(newNoopLogger(), ctrlMock, pages)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<strong>Carol White</strong>")
	assert.Contains(t, body, "12.07.1991")
	assert.Contains(t, body, "active")
	assert.Contains(t, body, "/users/edit")
	ctrlMock.AssertExpectations(t)
}
