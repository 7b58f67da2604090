/*
Package httpclient implements http client.
*/
package httpclient

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

var _ Doer = (*Client)(nil) // compile time proof

// defaults.
const (
	DefaultTimeout = 30 * time.Second
	TimeoutMax     = 5 * time.Minute

	UserAgent = "cve2csv (+https://github.com/vigo/cve2csv)"
)

// sentinel errors.
var (
	ErrInvalid = errors.New("invalid value")
)

// Doer satisfies RoundTripper interface.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client holds http client params.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	Timeout    time.Duration
}

// Do executes the given HTTP request using the underlying HTTP client,
// stamping the configured User-Agent.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", c.UserAgent)

	return c.HTTPClient.Do(req)
}

func (c *Client) setDefaults() {
	if c.Timeout <= 0 || c.Timeout > TimeoutMax {
		c.Timeout = DefaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = UserAgent
	}
}

// Option represents option function type.
type Option func(*Client) error

// WithTimeout sets the client timeout with a max limit.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 || d > TimeoutMax {
			return fmt.Errorf("%w: timeout must be between 1s and %s, got %s", ErrInvalid, TimeoutMax, d)
		}

		c.Timeout = d

		return nil
	}
}

// WithUserAgent sets the User-Agent header value.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		if ua == "" {
			return fmt.Errorf("%w: user agent can not be empty", ErrInvalid)
		}

		c.UserAgent = ua

		return nil
	}
}

// New instantiates new http client instance.
func New(options ...Option) (*Client, error) {
	client := new(Client)
	client.setDefaults()

	for _, option := range options {
		if err := option(client); err != nil {
			return nil, err
		}
	}

	client.HTTPClient = &http.Client{
		Transport: http.DefaultTransport.(*http.Transport).Clone(),
		Timeout:   client.Timeout,
	}

	return client, nil
}
