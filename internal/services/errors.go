package services

import (
	"fmt"
	"net/http"

	"github.com/desertthunder/spotifyexp/internal/models"
	"github.com/desertthunder/spotifyexp/internal/shared"
)

// APIError is a failure reported by the Spotify Web API.
//
// When the response carried an error envelope, Message is the envelope's message verbatim.
// Otherwise Raw is set and only the HTTP status is known.
type APIError struct {
	Status  int    // envelope status, or the HTTP status when the envelope has none
	Message string // envelope message
	Raw     bool   // body was not an error envelope
}

// Error returns the error message.
func (e *APIError) Error() string {
	if e.Raw {
		return fmt.Sprintf("spotify: request failed: status %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("spotify: request failed: %d: %s", e.Status, e.Message)
}

// Is matches [shared.ErrAPIRequest] and other *APIError values with the same status.
func (e *APIError) Is(target error) bool {
	if target == shared.ErrAPIRequest {
		return true
	}
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.Status == t.Status
}

// newAPIError maps a failed response, preferring the error envelope over the bare status.
func newAPIError(status int, body []byte) *APIError {
	envelope, ok := models.ParseErrorResponse(body)
	if !ok {
		return &APIError{Status: status, Raw: true}
	}
	return envelopeError(status, envelope)
}

func envelopeError(status int, envelope *models.ErrorResponse) *APIError {
	code := envelope.Error.Status
	if code == 0 {
		code = status
	}
	return &APIError{Status: code, Message: envelope.Error.Message}
}

// TransportError is a failure to exchange a request with the API at all.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

// Error returns the error message.
func (e *TransportError) Error() string {
	return fmt.Sprintf("spotify: %s %s: %v", e.Method, e.Path, e.Err)
}

// Unwrap returns the underlying network error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is matches [shared.ErrTransport].
func (e *TransportError) Is(target error) bool {
	return target == shared.ErrTransport
}

// DecodeError is a successful response whose body does not fit the expected record.
type DecodeError struct {
	Path string
	Err  error
}

// Error returns the error message.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("spotify: failed to parse response from %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying JSON error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is matches [shared.ErrDecode].
func (e *DecodeError) Is(target error) bool {
	return target == shared.ErrDecode
}
