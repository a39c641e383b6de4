package auth

import (
	"fmt"
	"net/http"
)

// ValidateAPIKey checks the shape of an OS Data Hub API key.
func ValidateAPIKey(key string) error {
	if len(key) != 32 {
		return fmt.Errorf("auth: OS Data Hub API keys are 32 characters, got %d", len(key))
	}
	return nil
}

// APIKeyTransport injects an API key into the key query parameter of
// outgoing requests, which is how the OS Data Hub expects credentials.
type APIKeyTransport struct {
	Key   string
	Param string
	Base  http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *APIKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	param := t.Param
	if param == "" {
		param = "key"
	}
	if t.Key != "" {
		query := clone.URL.Query()
		query.Set(param, t.Key)
		clone.URL.RawQuery = query.Encode()
	}
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(clone)
}

// HeaderKeyTransport injects an API key header, for gateways that expect the
// key outside the query string.
type HeaderKeyTransport struct {
	Key    string
	Header string
	Base   http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *HeaderKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	header := t.Header
	if header == "" {
		header = "key"
	}
	if t.Key != "" {
		clone.Header.Set(header, t.Key)
	}
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(clone)
}

// BearerTokenTransport injects an OAuth 2 bearer token.
type BearerTokenTransport struct {
	Token string
	Base  http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *BearerTokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	if t.Token != "" {
		clone.Header.Set("Authorization", "Bearer "+t.Token)
	}
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(clone)
}
