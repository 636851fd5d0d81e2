package apierrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{
			name:     "status code only",
			err:      &APIError{StatusCode: 500},
			expected: "API error 500",
		},
		{
			name:     "with message",
			err:      &APIError{StatusCode: 400, Message: "bad request"},
			expected: "API error 400: bad request",
		},
		{
			name:     "with request ID",
			err:      &APIError{StatusCode: 500, RequestID: "req-123"},
			expected: "API error 500 (request_id: req-123)",
		},
		{
			name:     "with message and request ID",
			err:      &APIError{StatusCode: 503, Message: "service unavailable", RequestID: "req-456"},
			expected: "API error 503: service unavailable (request_id: req-456)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAPIError_Is(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		target   error
		expected bool
	}{
		{"401 matches ErrUnauthorized", &APIError{StatusCode: 401}, ErrUnauthorized, true},
		{"403 matches ErrUnauthorized", &APIError{StatusCode: 403}, ErrUnauthorized, true},
		{"401 does not match ErrNotFound", &APIError{StatusCode: 401}, ErrNotFound, false},
		{"402 matches ErrInsufficientCredits", &APIError{StatusCode: 402}, ErrInsufficientCredits, true},
		{"404 matches ErrNotFound", &APIError{StatusCode: 404}, ErrNotFound, true},
		{"404 does not match ErrRateLimited", &APIError{StatusCode: 404}, ErrRateLimited, false},
		{"429 matches ErrRateLimited", &APIError{StatusCode: 429}, ErrRateLimited, true},
		{"500 does not match any sentinel", &APIError{StatusCode: 500}, ErrUnauthorized, false},
		{"400 does not match ErrInvalidArgument", &APIError{StatusCode: 400}, ErrInvalidArgument, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Is(tt.target); got != tt.expected {
				t.Errorf("Is(%v) = %v, want %v", tt.target, got, tt.expected)
			}
		})
	}
}

func TestAPIError_ErrorsIsThroughWrap(t *testing.T) {
	err := fmt.Errorf("get list: %w", &APIError{StatusCode: 404})
	if !errors.Is(err, ErrNotFound) {
		t.Error("errors.Is(wrapped 404, ErrNotFound) = false, want true")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatal("errors.As failed for wrapped APIError")
	}
	if apiErr.StatusCode != 404 {
		t.Errorf("StatusCode = %d, want 404", apiErr.StatusCode)
	}
}

func TestNetworkError(t *testing.T) {
	inner := errors.New("connection refused")
	err := &NetworkError{Err: inner, URL: "https://api.example.com/v1/credits", Attempt: 1}

	if got := err.Error(); got != "network error: connection refused" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, inner) {
		t.Error("errors.Is(err, inner) = false, want true")
	}
}

func TestDecodeError(t *testing.T) {
	inner := errors.New("unexpected end of JSON input")
	err := &DecodeError{StatusCode: 200, Err: inner}

	want := "decode JSON response (status 200): unexpected end of JSON input"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if errors.Unwrap(err) != inner {
		t.Error("Unwrap() did not return inner error")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		expected string
	}{
		{"with field", &ValidationError{Field: "email", Message: "must not be empty"}, "invalid argument email: must not be empty"},
		{"without field", &ValidationError{Message: "nothing to do"}, "invalid argument: nothing to do"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
			if !errors.Is(tt.err, ErrInvalidArgument) {
				t.Error("errors.Is(err, ErrInvalidArgument) = false, want true")
			}
		})
	}
}

func TestInvalid(t *testing.T) {
	err := Invalid("emails", "cannot contain more than %d addresses", 3000)

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Invalid() returned %T, want *ValidationError", err)
	}
	if vErr.Field != "emails" {
		t.Errorf("Field = %q, want emails", vErr.Field)
	}
	if vErr.Message != "cannot contain more than 3000 addresses" {
		t.Errorf("Message = %q", vErr.Message)
	}
}
