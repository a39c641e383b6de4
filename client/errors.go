package osclient

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrInvalidBaseURL is returned when a base URL option is invalid.
	ErrInvalidBaseURL = errors.New("osclient: invalid base URL")
	// ErrNilHTTPClient indicates a nil HTTP client was provided.
	ErrNilHTTPClient = errors.New("osclient: http client cannot be nil")
)

// APIError represents an OS Data Hub fault payload or HTTP failure.
type APIError struct {
	Status  int
	Code    string
	Message string
	Raw     []byte
}

func newAPIError(status int, data []byte) *APIError {
	apiErr := &APIError{Status: status, Raw: data}
	var payload struct {
		Fault struct {
			FaultString string `json:"faultstring"`
			Detail      struct {
				ErrorCode string `json:"errorcode"`
			} `json:"detail"`
		} `json:"fault"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Fault.FaultString != "" {
		apiErr.Message = payload.Fault.FaultString
		apiErr.Code = payload.Fault.Detail.ErrorCode
		return apiErr
	}
	apiErr.Message = string(data)
	return apiErr
}

func (e *APIError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Message == "" {
		return fmt.Sprintf("osclient: api error status=%d", e.Status)
	}
	if e.Code != "" {
		return fmt.Sprintf("osclient: %s (%s)", e.Message, e.Code)
	}
	return fmt.Sprintf("osclient: %s", e.Message)
}

// Temporary reports whether the error may be retried.
func (e *APIError) Temporary() bool {
	if e == nil {
		return false
	}
	return e.Status >= 500 && e.Status < 600
}
