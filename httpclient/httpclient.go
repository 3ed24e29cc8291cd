// Package httpclient is a ready-made smsgateway.HTTPClient transport built
// on net/http. Embedders that need pooling, retries or instrumentation
// beyond this can supply their own implementation of the interface instead.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	smsgateway "github.com/android-sms-gateway/client-go"
)

const defaultTimeout = 30 * time.Second

// APIError is returned when the gateway answers with a non-2xx status.
// Message carries the server-reported reason when the response body had one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("gateway returned status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("gateway returned status %d", e.StatusCode)
}

// Client implements smsgateway.HTTPClient on net/http.
type Client struct {
	httpClient *http.Client
	log        logrus.FieldLogger
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithTimeout sets the per-request timeout. Zero keeps the default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying http.Client, e.g. to share a
// transport with custom TLS or proxy settings.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger enables debug-level logging of every request.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a transport with a 30 second timeout unless overridden.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) Get(ctx context.Context, url string, headers map[string]string, out any) error {
	return c.do(ctx, http.MethodGet, url, headers, nil, out)
}

func (c *Client) Post(ctx context.Context, url string, headers map[string]string, in, out any) error {
	return c.do(ctx, http.MethodPost, url, headers, in, out)
}

func (c *Client) Put(ctx context.Context, url string, headers map[string]string, in, out any) error {
	return c.do(ctx, http.MethodPut, url, headers, in, out)
}

func (c *Client) Patch(ctx context.Context, url string, headers map[string]string, in, out any) error {
	return c.do(ctx, http.MethodPatch, url, headers, in, out)
}

func (c *Client) Delete(ctx context.Context, url string, headers map[string]string) error {
	return c.do(ctx, http.MethodDelete, url, headers, nil, nil)
}

func (c *Client) do(ctx context.Context, method, url string, headers map[string]string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, url, err)
	}
	defer resp.Body.Close()

	if c.log != nil {
		c.log.WithFields(logrus.Fields{
			"method":   method,
			"url":      url,
			"status":   resp.StatusCode,
			"duration": time.Since(start),
		}).Debug("gateway request")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Message string `json:"message"`
		}
		if json.NewDecoder(resp.Body).Decode(&payload) == nil {
			apiErr.Message = payload.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		// 2xx with an empty body is fine, e.g. 204 on settings updates.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

var _ smsgateway.HTTPClient = (*Client)(nil)
