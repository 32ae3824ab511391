package holidaze

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL адрес production API Noroff
const DefaultBaseURL = "https://v2.api.noroff.dev"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder интерфейс для записи метрик исходящих вызовов API
type MetricsRecorder interface {
	ObserveAPICall(operation string, statusCode int, duration time.Duration)
}

// Client клиент для работы с Holidaze API v2.
// Все бизнес-данные (venues, bookings, profiles) живут на стороне API;
// клиент только транслирует запросы и разбирает ответы.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    MetricsRecorder
	log        Logger
}

// NewClient создает новый экземпляр клиента Holidaze API
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// WithMetrics включает запись метрик исходящих вызовов
func (c *Client) WithMetrics(rec MetricsRecorder) *Client {
	c.metrics = rec
	return c
}

// do выполняет запрос к API и декодирует ответ в out (если out != nil).
// Токен добавляется как Bearer-заголовок, если он не пустой.
// 204 No Content считается успехом без тела.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, token string, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: %s - encode request body: %v", ErrInternal, op, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("%w: %s - create request: %v", ErrInternal, op, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.metrics != nil {
			c.metrics.ObserveAPICall(op, 0, time.Since(start))
		}
		// Отмену запроса (search supersession) не маскируем под сетевую ошибку
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %s - execute request: %v", ErrRequestFailed, op, err)
	}
	defer resp.Body.Close()

	if c.metrics != nil {
		c.metrics.ObserveAPICall(op, resp.StatusCode, time.Since(start))
	}

	switch {
	case resp.StatusCode == http.StatusNoContent:
		return nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, op)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, op)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %s - unexpected status code %d: %s", ErrRequestFailed, op, resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s - decode response: %v", ErrInvalidResponse, op, err)
	}

	return nil
}
