package health

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthHandler_ServeHTTP(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	handler := New(logger, "local")

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "OK", got["status"])

	data, ok := got["data"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "ok", data["status"])
	assert.Equal(t, "local", data["env"])
}
