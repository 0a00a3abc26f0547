package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TokenSource supplies the bearer token for each request. An empty token
// means not authenticated; the client fails pre-flight in that case.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource backed by a fixed string.
type StaticToken string

func (t StaticToken) Token() string { return string(t) }

// envelope is the wrapper every backend response uses.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client is the facade over the portfolio backend. Resource families are
// exposed as namespaced services.
type Client struct {
	cfg      Config
	http     *http.Client
	tokens   TokenSource
	observer Observer

	Projects  *ProjectService
	Education *EducationService
	Dashboard *DashboardService
}

// NewClient creates a Client for the given backend.
func NewClient(cfg Config, tokens TokenSource, observer Observer) *Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	c := &Client{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		tokens:   tokens,
		observer: observer,
	}
	c.Projects = &ProjectService{client: c}
	c.Education = &EducationService{client: c}
	c.Dashboard = &DashboardService{client: c}
	return c
}

// PageSize returns the configured server page size for paginated lists.
func (c *Client) PageSize() int { return c.cfg.PageSize }

// do performs one JSON round-trip: auth pre-flight, request, envelope
// unwrap, error classification. out may be nil for calls whose payload
// the caller does not need.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	start := time.Now()
	status, err := c.doRequest(ctx, method, path, query, in, out)

	c.observer.OnCallComplete(CallEvent{
		Method:    method,
		Path:      path,
		Status:    status,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
	return err
}

func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, in, out any) (int, error) {
	token := ""
	if c.tokens != nil {
		token = c.tokens.Token()
	}
	if token == "" {
		return 0, ErrNoToken
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("marshaling request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	fullURL := strings.TrimRight(c.cfg.BaseURL, "/") + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return 0, fmt.Errorf("%w: %v", ErrNetwork, ctx.Err())
		}
		return 0, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("%w: reading response: %v", ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, classifyStatus(resp.StatusCode, serverMessage(respBody))
	}

	if out == nil {
		return resp.StatusCode, nil
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if !env.Success {
		return resp.StatusCode, fmt.Errorf("%w: %s", ErrDecode, env.Message)
	}
	if len(env.Data) == 0 {
		return resp.StatusCode, nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return resp.StatusCode, nil
}

// serverMessage extracts the envelope message from an error body, if any.
func serverMessage(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	return env.Message
}
