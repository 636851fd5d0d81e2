// Package apierrors provides shared error types for the Listclean client.
package apierrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrInvalidArgument is returned when a call fails local validation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrInsufficientCredits is returned when the account has no credits left.
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrNotFound is returned when a list, upload or download does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// DefaultErrorMessage is used when the error body carries no message.
const DefaultErrorMessage = "API returned an error response."

// APIError represents a non-2xx response from the Listclean API.
type APIError struct {
	StatusCode int
	Message    string
	// Body is the decoded error payload: a map[string]any for a JSON
	// object or []any for a JSON array. Any other payload is kept as text
	// under the "body" key of a map.
	Body      any
	Raw       string
	RequestID string
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		if e.Message != "" {
			return fmt.Sprintf("API error %d: %s (request_id: %s)", e.StatusCode, e.Message, e.RequestID)
		}
		return fmt.Sprintf("API error %d (request_id: %s)", e.StatusCode, e.RequestID)
	}
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401, 403:
		return target == ErrUnauthorized
	case 402:
		return target == ErrInsufficientCredits
	case 404:
		return target == ErrNotFound
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// ListcleanError implements the marker interface shared by all client errors.
func (e *APIError) ListcleanError() {}

// NetworkError represents a transport-level failure.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ListcleanError implements the marker interface shared by all client errors.
func (e *NetworkError) ListcleanError() {}

// DecodeError is returned when a successful response body cannot be
// decoded into the expected JSON shape.
type DecodeError struct {
	StatusCode int
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode JSON response (status %d): %v", e.StatusCode, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ListcleanError implements the marker interface shared by all client errors.
func (e *DecodeError) ListcleanError() {}

// ValidationError reports an argument rejected before any request was sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid argument: %s", e.Message)
	}
	return fmt.Sprintf("invalid argument %s: %s", e.Field, e.Message)
}

// Is implements errors.Is for sentinel error matching.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// ListcleanError implements the marker interface shared by all client errors.
func (e *ValidationError) ListcleanError() {}

// Invalid builds a ValidationError for field.
func Invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
