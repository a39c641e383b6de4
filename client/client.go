// Package osclient is a reusable client for the OS Data Hub Features (WFS)
// API. Query parameters are validated locally before any request is sent, so
// malformed or out-of-extent input never reaches the network.
package osclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/robert-malhotra/go-osdatahub/pkg/spatial"
)

// DefaultBaseURL is the public OS Data Hub Features endpoint.
const DefaultBaseURL = "https://api.os.uk/features/v1/wfs"

const defaultPageSize = 100

// Client is a reusable OS Data Hub API client.
type Client struct {
	httpClient     *http.Client
	baseURL        *url.URL
	defaultHeaders http.Header
	retryPolicy    RetryPolicy
	logger         Logger
	srs            spatial.SRS
	pageSize       int
	allowPremium   bool
}

// New constructs a Client with provided options.
func New(opts ...ClientOption) (*Client, error) {
	c := &Client{
		httpClient:     &http.Client{},
		defaultHeaders: make(http.Header),
		retryPolicy:    DefaultRetryPolicy,
		srs:            spatial.EPSG4326,
		pageSize:       defaultPageSize,
	}
	c.defaultHeaders.Set("Accept", "application/json")
	c.defaultHeaders.Set("User-Agent", "go-osdatahub/0.1")

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.baseURL == nil {
		base, err := url.Parse(DefaultBaseURL)
		if err != nil {
			return nil, err
		}
		c.baseURL = base
	}
	if c.httpClient == nil {
		return nil, ErrNilHTTPClient
	}
	return c, nil
}

// Features returns a service for WFS feature queries.
func (c *Client) Features() *FeatureService {
	return &FeatureService{client: c}
}

// SRS returns the reference system requests are validated against.
func (c *Client) SRS() spatial.SRS {
	return c.srs
}

func (c *Client) newRequest(ctx context.Context, query url.Values, opts []RequestOption) (*http.Request, error) {
	u := *c.baseURL
	if len(query) > 0 {
		merged := u.Query()
		for key, values := range query {
			for _, value := range values {
				merged.Add(key, value)
			}
		}
		u.RawQuery = merged.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	for key, values := range c.defaultHeaders {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(req); err != nil {
			return nil, err
		}
	}

	return req, nil
}

func (c *Client) do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.logger != nil {
		c.logger.Debugf("osclient: %s %s", req.Method, req.URL)
	}

	resp, err := c.retry(ctx, func() (*http.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	defer resp.Body.Close()
	data, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if readErr != nil {
		return nil, readErr
	}

	apiErr := newAPIError(resp.StatusCode, data)
	if c.logger != nil {
		c.logger.Errorf("osclient: request failed status=%d", resp.StatusCode)
	}
	return nil, apiErr
}

func (c *Client) doJSON(ctx context.Context, query url.Values, out any, opts []RequestOption) error {
	req, err := c.newRequest(ctx, query, opts)
	if err != nil {
		return err
	}

	resp, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	dec := json.NewDecoder(resp.Body)
	return dec.Decode(out)
}

func cloneValues(values url.Values) url.Values {
	cp := make(url.Values, len(values))
	for key, v := range values {
		dst := make([]string, len(v))
		copy(dst, v)
		cp[key] = dst
	}
	return cp
}
