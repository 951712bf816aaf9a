// Package taskapi implements the service.Service interface over the task
// API's JSON/HTTP endpoints.
package taskapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"taskdeck/internal/config"
	"taskdeck/internal/filter"
	"taskdeck/internal/service"
)

// StatusError is a non-2xx response from the API.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error (status %d)", e.Code)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Code)
}

// Unwrap maps auth and lookup failures onto the service sentinels so
// callers can match with errors.Is.
func (e *StatusError) Unwrap() error {
	switch e.Code {
	case http.StatusUnauthorized:
		return service.ErrUnauthenticated
	case http.StatusNotFound:
		return service.ErrNotFound
	}
	return nil
}

// Client implements service.Service against a task API server.
type Client struct {
	base    *url.URL
	http    *http.Client
	timeout time.Duration
	log     *zap.Logger
}

// New creates a client for the configured server. With a non-empty token
// the underlying HTTP client attaches it as a bearer credential on every
// request; with an empty token only the auth endpoints are usable.
func New(ctx context.Context, cfg *config.Config, token string) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.Server, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", cfg.Server, err)
	}

	httpClient := &http.Client{}
	if token != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
		httpClient = oauth2.NewClient(ctx, src)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}

	return &Client{
		base:    base,
		http:    httpClient,
		timeout: timeout,
		log:     cfg.Logger,
	}, nil
}

// Login implements service.Service.
func (c *Client) Login(ctx context.Context, email, password string) (service.Session, error) {
	var out service.Session
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &out); err != nil {
		return service.Session{}, err
	}
	return out, nil
}

// Register implements service.Service.
func (c *Client) Register(ctx context.Context, name, email, password string) (service.Session, error) {
	var out service.Session
	body := map[string]string{"name": name, "email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", body, &out); err != nil {
		return service.Session{}, err
	}
	return out, nil
}

// Tasks implements service.Service. The filter's canonical encoding is
// sent verbatim as the query string, so the request URL matches the cache
// key for the same record.
func (c *Client) Tasks(ctx context.Context, f filter.State) (service.TaskPage, error) {
	var out service.TaskPage
	if err := c.do(ctx, http.MethodGet, "/tasks", f.Encode(), nil, &out); err != nil {
		return service.TaskPage{}, err
	}
	return out, nil
}

// Task implements service.Service.
func (c *Client) Task(ctx context.Context, id string) (service.Task, error) {
	var out service.Task
	if err := c.do(ctx, http.MethodGet, "/tasks/"+url.PathEscape(id), "", nil, &out); err != nil {
		return service.Task{}, err
	}
	return out, nil
}

// CreateTask implements service.Service.
func (c *Client) CreateTask(ctx context.Context, req service.CreateTask) (service.Task, error) {
	var out service.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", "", req, &out); err != nil {
		return service.Task{}, err
	}
	return out, nil
}

// UpdateTask implements service.Service.
func (c *Client) UpdateTask(ctx context.Context, id string, req service.UpdateTask) (service.Task, error) {
	var out service.Task
	if err := c.do(ctx, http.MethodPatch, "/tasks/"+url.PathEscape(id), "", req, &out); err != nil {
		return service.Task{}, err
	}
	return out, nil
}

// DeleteTask implements service.Service.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(id), "", nil, nil)
}

// TaskActivity implements service.Service.
func (c *Client) TaskActivity(ctx context.Context, id string) ([]service.Activity, error) {
	var out struct {
		Items []service.Activity `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/tasks/"+url.PathEscape(id)+"/activity", "", nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// Users implements service.Service.
func (c *Client) Users(ctx context.Context) ([]service.User, error) {
	var out struct {
		Items []service.User `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/users", "", nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// SetUserRole implements service.Service.
func (c *Client) SetUserRole(ctx context.Context, id, role string) (service.User, error) {
	var out service.User
	body := map[string]string{"role": role}
	if err := c.do(ctx, http.MethodPatch, "/users/"+url.PathEscape(id)+"/role", "", body, &out); err != nil {
		return service.User{}, err
	}
	return out, nil
}

// Stats implements service.Service.
func (c *Client) Stats(ctx context.Context) (service.Stats, error) {
	var out service.Stats
	if err := c.do(ctx, http.MethodGet, "/stats/overview", "", nil, &out); err != nil {
		return service.Stats{}, err
	}
	return out, nil
}

// do runs one API call: request ID, per-call timeout, JSON in and out,
// status mapping.
func (c *Client) do(ctx context.Context, method, path, rawQuery string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := *c.base
	u.Path = c.base.Path + path
	u.RawQuery = rawQuery

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if c.log != nil {
		c.log.Debug("api call",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.Duration("duration", time.Since(start)))
	}

	if resp.StatusCode >= 400 {
		return &StatusError{Code: resp.StatusCode, Message: apiMessage(resp.Body)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response body: %w", err)
	}
	return nil
}

// apiMessage extracts the error message the API puts in its error bodies.
func apiMessage(r io.Reader) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return ""
	}
	if body.Error != "" {
		return body.Error
	}
	return body.Message
}
