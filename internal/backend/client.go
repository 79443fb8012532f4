package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/nfrund/bloomly/internal/domain"
)

// Config configures a Client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client calls the external screening backend. It issues exactly one request
// per call: no retries, no queueing, no deduplication.
type Client struct {
	baseURL *url.URL
	http    *http.Client
}

// New creates a Client for the backend at cfg.BaseURL.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("backend: base URL is required")
	}
	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("backend: invalid base URL: %w", err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("backend: base URL %q must be absolute", cfg.BaseURL)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{baseURL: baseURL, http: httpClient}, nil
}

// BaseURL returns the backend root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Predict posts an assessment to /predict.
func (c *Client) Predict(ctx context.Context, a domain.Assessment) (*domain.Prediction, error) {
	const op = "predict"

	resp, err := c.do(ctx, op, http.MethodPost, "/predict", newPredictRequest(a))
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if !isSuccess(resp.StatusCode) {
		return nil, statusError(op, resp)
	}

	var p domain.Prediction
	if err := decode(op, resp.Body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Login posts credentials to /auth/login. Any non-2xx answer is a failure
// carrying the backend's optional message.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (*domain.LoginResult, error) {
	const op = "login"

	resp, err := c.do(ctx, op, http.MethodPost, "/auth/login", creds)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if !isSuccess(resp.StatusCode) {
		return nil, statusError(op, resp)
	}

	var result domain.LoginResult
	if err := decode(op, resp.Body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Register posts a new account to /auth/register. Only 200 and 201 count as
// success.
func (c *Client) Register(ctx context.Context, r domain.Registration) error {
	const op = "register"

	body := registerRequest{Name: r.Name, Email: r.Email, Password: r.Password}
	resp, err := c.do(ctx, op, http.MethodPost, "/auth/register", body)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK, resp.StatusCode == http.StatusCreated:
		return nil
	case isSuccess(resp.StatusCode):
		e := statusError(op, resp)
		e.Err = domain.ErrUnexpectedStatus
		return e
	default:
		return statusError(op, resp)
	}
}

// Tracking fetches the health-metrics record with the given id.
func (c *Client) Tracking(ctx context.Context, id string) (*domain.TrackingRecord, error) {
	const op = "tracking"

	resp, err := c.do(ctx, op, http.MethodGet, "/tracking/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if !isSuccess(resp.StatusCode) {
		return nil, statusError(op, resp)
	}

	var rec domain.TrackingRecord
	if err := decode(op, resp.Body, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, payload any) (*http.Response, error) {
	endpoint := c.baseURL.JoinPath(path)

	var body io.Reader = http.NoBody
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, &Error{Op: op, Kind: KindTransport, Err: fmt.Errorf("marshal request: %w", err)}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return nil, &Error{Op: op, Kind: KindTransport, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		slog.DebugContext(ctx, "Backend request failed", "op", op, "url", endpoint.String(), "error", err)
		return nil, &Error{Op: op, Kind: KindTransport, Err: err}
	}
	slog.DebugContext(ctx, "Backend request completed",
		"op", op, "status", resp.StatusCode, "duration", time.Since(start))
	return resp, nil
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}

func statusError(op string, resp *http.Response) *Error {
	e := &Error{Op: op, Kind: KindStatus, StatusCode: resp.StatusCode}
	if resp.StatusCode == http.StatusNotFound {
		e.Err = domain.ErrNotFound
	}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var er errorResponse
	if json.Unmarshal(data, &er) == nil {
		e.Message = er.Message
	}
	return e
}

func decode(op string, r io.Reader, v any) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return &Error{Op: op, Kind: KindDecode, Err: err}
	}
	return nil
}
