package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lexlink/lexlink-cli/internal/errors"
)

// HTTPError is a non-2xx backend response: the status code, the
// server-provided message, and the raw payload for callers that need it.
type HTTPError struct {
	Status  int
	Message string
	Payload []byte
}

// errorEnvelope matches the backend's error body. Some endpoints use
// "message", older ones "error".
type errorEnvelope struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func newHTTPError(status int, payload []byte) *HTTPError {
	httpErr := &HTTPError{Status: status, Payload: payload}

	var envelope errorEnvelope
	if err := json.Unmarshal(payload, &envelope); err == nil {
		if envelope.Message != "" {
			httpErr.Message = envelope.Message
		} else if envelope.Error != "" {
			httpErr.Message = envelope.Error
		}
	}
	if httpErr.Message == "" {
		httpErr.Message = http.StatusText(status)
	}
	return httpErr
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// Is maps well-known statuses onto the client's sentinel errors so callers
// can branch with errors.Is instead of inspecting status codes.
func (e *HTTPError) Is(target error) bool {
	switch target {
	case errors.ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case errors.ErrForbidden:
		return e.Status == http.StatusForbidden
	case errors.ErrNotFound:
		return e.Status == http.StatusNotFound
	case errors.ErrBadRequest:
		return e.Status == http.StatusBadRequest
	}
	return false
}
