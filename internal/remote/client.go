// Package remote is the REST client of the RevisaAí backend. Every call makes
// exactly one HTTP request and reports its outcome as a Result.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/revisaai/revisaai/pkg/metrics"
)

const requestTimeout = 30 * time.Second

// Client is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu        sync.RWMutex
	authToken string
}

type Option func(*Client)

// WithHTTPClient replaces the default client (30s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient returns a client for baseURL, e.g. "http://localhost:8080".
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

// SetAuthToken sets the bearer token sent with every following request.
// An empty token removes the header.
func (c *Client) SetAuthToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authToken = token
}

func (c *Client) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.authToken
}

// Do performs one request and decodes a 2xx JSON body into T.
// 204 and empty bodies yield the zero T.
func Do[T any](ctx context.Context, c *Client, method, path string, body interface{}) Result[T] {
	res := do[T](ctx, c, method, path, body)
	outcome := "ok"
	switch res.Err.(type) {
	case nil:
	case *HTTPError:
		outcome = "http_error"
	default:
		outcome = "transport_error"
	}
	metrics.RemoteRequests.WithLabelValues(method, outcome).Inc()
	return res
}

func do[T any](ctx context.Context, c *Client, method, path string, body interface{}) Result[T] {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return failure[T](&TransportError{Err: fmt.Errorf("marshal request body: %w", err)})
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return failure[T](&TransportError{Err: fmt.Errorf("create request: %w", err)})
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return failure[T](&TransportError{Err: err})
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure[T](&TransportError{Err: fmt.Errorf("read response: %w", err)})
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(data))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return failure[T](&HTTPError{Status: resp.StatusCode, Message: msg})
	}

	var out T
	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(data)) == 0 {
		return success(out)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return failure[T](&TransportError{Err: fmt.Errorf("decode response: %w", err)})
	}
	return success(out)
}
