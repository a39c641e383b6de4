package osclient

import (
	"net/http"
	"net/url"
	"time"

	"github.com/robert-malhotra/go-osdatahub/auth"
	"github.com/robert-malhotra/go-osdatahub/pkg/spatial"
)

// Logger represents the minimal logging interface used by the client.
type Logger interface {
	Debugf(format string, args ...any)
	Errorf(format string, args ...any)
}

// ClientOption configures a Client during construction.
type ClientOption func(*Client) error

// RequestOption configures an outgoing HTTP request at call time.
type RequestOption func(*http.Request) error

// WithBaseURL overrides the OS Data Hub Features endpoint.
func WithBaseURL(raw string) ClientOption {
	return func(c *Client) error {
		if raw == "" {
			return ErrInvalidBaseURL
		}
		u, err := url.Parse(raw)
		if err != nil {
			return err
		}
		if !u.IsAbs() {
			return ErrInvalidBaseURL
		}
		c.baseURL = u
		return nil
	}
}

// WithHTTPClient injects a custom http.Client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) error {
		if httpClient == nil {
			return ErrNilHTTPClient
		}
		c.httpClient = httpClient
		return nil
	}
}

// WithAPIKey validates the key and injects it into every request as the key
// query parameter.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) error {
		if err := auth.ValidateAPIKey(key); err != nil {
			return err
		}
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
		c.httpClient.Transport = &auth.APIKeyTransport{Key: key, Base: c.httpClient.Transport}
		return nil
	}
}

// WithSRS sets the reference system used for validation and the srsName
// request parameter.
func WithSRS(srs spatial.SRS) ClientOption {
	return func(c *Client) error {
		if _, err := srs.Extent(); err != nil {
			return err
		}
		c.srs = srs
		return nil
	}
}

// WithPageSize sets how many features each GetFeature request asks for.
func WithPageSize(size int) ClientOption {
	return func(c *Client) error {
		if size > 0 {
			c.pageSize = size
		}
		return nil
	}
}

// WithPremium allows queries against premium products.
func WithPremium(allow bool) ClientOption {
	return func(c *Client) error {
		c.allowPremium = allow
		return nil
	}
}

// WithDefaultHeader registers a header applied to every request.
func WithDefaultHeader(key, value string) ClientOption {
	return func(c *Client) error {
		if key == "" {
			return nil
		}
		if c.defaultHeaders == nil {
			c.defaultHeaders = make(http.Header)
		}
		c.defaultHeaders.Add(key, value)
		return nil
	}
}

// WithRetryPolicy configures the retry behavior for retriable requests.
func WithRetryPolicy(policy RetryPolicy) ClientOption {
	return func(c *Client) error {
		c.retryPolicy = policy
		return nil
	}
}

// WithLogger registers a logger used for request lifecycle events.
func WithLogger(logger Logger) ClientOption {
	return func(c *Client) error {
		c.logger = logger
		return nil
	}
}

// WithTimeout sets a per-request timeout on the underlying http.Client.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) error {
		if timeout <= 0 {
			return nil
		}
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
		c.httpClient.Timeout = timeout
		return nil
	}
}

// Header returns a RequestOption that sets a header value.
func Header(key, value string) RequestOption {
	return func(req *http.Request) error {
		if key == "" {
			return nil
		}
		req.Header.Set(key, value)
		return nil
	}
}

// QueryParam returns a RequestOption that sets a query parameter.
func QueryParam(key, value string) RequestOption {
	return func(req *http.Request) error {
		if key == "" {
			return nil
		}
		query := req.URL.Query()
		query.Set(key, value)
		req.URL.RawQuery = query.Encode()
		return nil
	}
}
