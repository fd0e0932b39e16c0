// Package apiclient реализует типизированный HTTP-клиент удалённого API ростера.
//
// Клиент умеет GET, POST и PUT с JSON-телом, а также POST с multipart-телом
// для загрузки файлов. Флаг requiresAuth указывает, что к запросу нужно
// приложить токен сессии; отсутствие живого токена — ошибка, возвращаемая
// вызывающему ещё до сетевого вызова. Повторов и кеширования нет: каждый
// вызов — ровно один круговой обход.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mediclab/roster-admin/internal/lib/sl"
	"github.com/mediclab/roster-admin/internal/metrics"
)

// TokenSource отдаёт действующий токен сессии на момент вызова.
type TokenSource interface {
	Token() (string, error)
}

// StatusError ошибка ответа удалённого API со статусом вне 2xx.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return "unexpected status: " + e.Status
}

// Client типизированный клиент удалённого API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        *slog.Logger
}

// New создаёт клиент с базовым URL удалённого API и явным источником токена.
func New(baseURL string, timeout time.Duration, tokens TokenSource, log *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		log:        log,
	}
}

// Get выполняет GET-запрос и декодирует JSON-ответ в out.
func (c *Client) Get(ctx context.Context, path string, requiresAuth bool, out any) error {
	return c.do(ctx, http.MethodGet, path, requiresAuth, nil, "", out)
}

// Post выполняет POST-запрос с JSON-телом. body == nil отправляет пустое тело,
// out == nil пропускает декодирование ответа.
func (c *Client) Post(ctx context.Context, path string, requiresAuth bool, body, out any) error {
	reader, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, requiresAuth, reader, "application/json", out)
}

// Put выполняет PUT-запрос с JSON-телом.
func (c *Client) Put(ctx context.Context, path string, requiresAuth bool, body, out any) error {
	reader, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, requiresAuth, reader, "application/json", out)
}

// FilePart файл, отправляемый в multipart-теле.
type FilePart struct {
	Name     string
	Filename string
	Data     []byte
}

// Field обычное текстовое поле multipart-тела.
type Field struct {
	Name  string
	Value string
}

// Multipart описывает multipart/form-data тело запроса.
type Multipart struct {
	Files  []FilePart
	Fields []Field
}

// PostMultipart выполняет POST-запрос с multipart-телом (загрузка файлов).
func (c *Client) PostMultipart(ctx context.Context, path string, requiresAuth bool, form Multipart, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range form.Files {
		fw, err := w.CreateFormFile(f.Name, f.Filename)
		if err != nil {
			return fmt.Errorf("create form file %q: %w", f.Name, err)
		}
		if _, err = fw.Write(f.Data); err != nil {
			return fmt.Errorf("write form file %q: %w", f.Name, err)
		}
	}
	for _, f := range form.Fields {
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return fmt.Errorf("write form field %q: %w", f.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, requiresAuth, &buf, w.FormDataContentType(), out)
}

func encodeJSON(body any) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return &buf, nil
}

func (c *Client) do(ctx context.Context, method, path string, requiresAuth bool, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	route := routeLabel(path)

	if requiresAuth {
		token, err := c.tokens.Token()
		if err != nil {
			metrics.RemoteAPIRequests.WithLabelValues(method, route, metrics.OutcomeError).Inc()
			return fmt.Errorf("%s %s: %w", method, path, err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.RemoteAPIDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RemoteAPIRequests.WithLabelValues(method, route, metrics.OutcomeError).Inc()
		c.log.Error("remote api call failed", slog.String("method", method), slog.String("path", path), sl.Err(err))
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.RemoteAPIRequests.WithLabelValues(method, route, metrics.OutcomeError).Inc()
		c.log.Error("remote api returned non-success status",
			slog.String("method", method), slog.String("path", path), sl.Status(resp.StatusCode))
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	metrics.RemoteAPIRequests.WithLabelValues(method, route, metrics.OutcomeOK).Inc()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response of %s %s: %w", method, path, err)
	}
	return nil
}

// routeLabel сводит путь к первой секции, чтобы id пользователей
// не раздували кардинальность метрик.
func routeLabel(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		return "/" + trimmed[:i]
	}
	return "/" + trimmed
}
