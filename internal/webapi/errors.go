package webapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMissingToken is returned when a Fetcher is built without a bearer token
	ErrMissingToken = errors.New("spotify bearer token is required")
	// ErrEmptyEndpoint is returned before any I/O when the endpoint is blank
	ErrEmptyEndpoint = errors.New("endpoint must not be empty")
	// ErrInvalidMethod is returned before any I/O for a non-standard HTTP verb
	ErrInvalidMethod = errors.New("unsupported HTTP method")
)

// APIError is a non-2xx answer from the Web API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("spotify api returned %d: %s", e.StatusCode, e.Message)
}

// newAPIError reads the regular Web API error object
// {"error":{"status":401,"message":"..."}} and falls back to the status
// text for anything else, including the accounts service string errors.
func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Error struct {
			Status  int    `json:"status"`
			Message string `json:"message"`
		} `json:"error"`
	}

	message := http.StatusText(status)
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error.Message != "" {
		message = payload.Error.Message
	}

	return &APIError{StatusCode: status, Message: message}
}
