package listclean

import (
	"github.com/listclean/listclean-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = apierrors.ErrMissingAPIKey

	// ErrInvalidArgument is matched by every *ValidationError.
	ErrInvalidArgument = apierrors.ErrInvalidArgument

	// ErrUnauthorized is returned for 401 and 403 responses.
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrInsufficientCredits is returned for 402 responses.
	ErrInsufficientCredits = apierrors.ErrInsufficientCredits

	// ErrNotFound is returned for 404 responses.
	ErrNotFound = apierrors.ErrNotFound

	// ErrRateLimited is returned for 429 responses.
	ErrRateLimited = apierrors.ErrRateLimited
)

// Error is implemented by all client errors.
type Error interface {
	error
	ListcleanError() // marker method
}

// APIError is a non-2xx response. Body holds the decoded error payload,
// or {"body": text} when the payload was not JSON.
type APIError = apierrors.APIError

// NetworkError is a transport-level failure.
type NetworkError = apierrors.NetworkError

// DecodeError is a successful response whose body was not the expected
// JSON shape.
type DecodeError = apierrors.DecodeError

// ValidationError is an argument rejected before any request was sent.
type ValidationError = apierrors.ValidationError

var (
	_ Error = (*APIError)(nil)
	_ Error = (*NetworkError)(nil)
	_ Error = (*DecodeError)(nil)
	_ Error = (*ValidationError)(nil)
)
