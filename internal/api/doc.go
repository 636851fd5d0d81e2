// Package api provides HTTP client functionality for communicating with the
// Listclean API. It handles authentication, request/response serialization,
// and translation of non-2xx responses into typed errors.
//
// # Client Creation
//
// The package provides two ways to create a client:
//
//   - [NewClient]: Struct-based configuration for explicit, type-safe setup.
//   - [New]: Functional options pattern for flexible configuration.
//
// Both require an API key. The key is sent via the X-Auth-Token header on
// every request, together with a fresh X-Request-ID.
//
// # Responses
//
// [Client.Do] decodes the response body as a JSON object and returns it
// unmodified, with numbers as [encoding/json.Number]. [Client.DoValue] also
// accepts a top-level array and serves the collection endpoints.
// [Client.DoRaw] returns the body as text and is used for CSV downloads. Any status outside 2xx becomes an [apierrors.APIError]
// carrying the status code and the decoded error body.
//
// # Retry Behavior
//
// Requests are sent once by default. When retries are enabled with
// [WithRetries], these statuses and transport failures are retried with
// exponential backoff:
//
//   - 408 Request Timeout
//   - 429 Too Many Requests
//   - 500 Internal Server Error
//   - 502 Bad Gateway
//   - 503 Service Unavailable
//   - 504 Gateway Timeout
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use.
package api
