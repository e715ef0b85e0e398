package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Response carries the outcome of a completed HTTP exchange. Classification of
// non-success statuses belongs to the repository layer, not here.
type Response struct {
	Status int
	Body   []byte
}

func (r *Response) IsSuccess() bool {
	return r.Status >= 200 && r.Status < 300
}

// ErrorMessage extracts the structured {"error": "..."} body every service
// uses for failures. Empty when the body has a different shape.
func (r *Response) ErrorMessage() string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(r.Body, &payload); err != nil {
		return ""
	}
	return payload.Error
}

type callOption func(*http.Request)

func WithBearer(token string) callOption {
	return func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// Client is the single transport shared by all resource APIs. It owns request
// building, request-id stamping and call logging; it performs each call
// exactly once, with no retries.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *Client) Call(ctx context.Context, method, url string, body any, opts ...callOption) (*Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	for _, opt := range opts {
		opt(req)
	}

	logAttrs := []slog.Attr{
		slog.String("request_id", requestID),
		slog.String("method", method),
		slog.String("url", url),
	}
	c.logger.LogAttrs(ctx, slog.LevelDebug, "remote call started", logAttrs...)

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "remote call failed",
			append(logAttrs, slog.String("error", err.Error()))...)
		return nil, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	responseAttrs := append(logAttrs,
		slog.Int("status_code", resp.StatusCode),
		slog.Duration("duration", time.Since(startTime)),
	)
	logLevel := slog.LevelDebug
	if resp.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if resp.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}
	c.logger.LogAttrs(ctx, logLevel, "remote call completed", responseAttrs...)

	return &Response{Status: resp.StatusCode, Body: payload}, nil
}
