// Package smsgateway is a typed client for the SMS Gateway for Android
// third-party HTTP API. The client composes URLs, authentication headers and
// request bodies for every supported operation and delegates the actual
// network round trip to an injected HTTPClient transport.
package smsgateway

// BaseURL is the production gateway endpoint used when no override is given.
const BaseURL = "https://api.sms-gate.app/3rdparty/v1"

// Version is the client library version reported in the User-Agent header.
const Version = "1.0.0"

const userAgent = "android-sms-gateway/" + Version + " (client; go)"

// Client talks to a single gateway instance. Its configuration — base URL and
// authentication headers — is fixed at construction, so a single instance is
// safe for concurrent use without locking.
type Client struct {
	baseURL string
	client  HTTPClient
	headers map[string]string
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithBaseURL points the client at a gateway other than the production one,
// e.g. a private or local installation. Trailing slashes are not expected.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// New creates a gateway client that authenticates every request with the
// given method and performs all network I/O through the given transport.
func New(auth AuthMethod, client HTTPClient, opts ...Option) *Client {
	c := &Client{
		baseURL: BaseURL,
		client:  client,
		headers: map[string]string{
			"Authorization": auth.authorization(),
			"User-Agent":    userAgent,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// requestHeaders copies the immutable base header set into a fresh map so
// concurrent calls never share mutable state. Requests carrying a body get
// the JSON content type on top.
func (c *Client) requestHeaders(withBody bool) map[string]string {
	headers := make(map[string]string, len(c.headers)+1)
	for k, v := range c.headers {
		headers[k] = v
	}
	if withBody {
		headers["Content-Type"] = "application/json"
	}
	return headers
}
