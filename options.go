package listclean

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/listclean/listclean-go/internal/api"
)

const defaultBaseURL = api.DefaultBaseURL

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	retries    int
	retryOn    []int
	userAgent  string
	logger     *zap.Logger
}

// downloadConfig holds per-call configuration for result downloads.
type downloadConfig struct {
	tokenOverride string
}

// Option configures the client.
type Option func(*clientConfig)

// DownloadOption configures a result download.
type DownloadOption func(*downloadConfig)

// WithBaseURL sets the API base URL.
// Default: https://api.listclean.xyz/v1/
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client. The client is copied, so the
// value passed in is never modified. Its own timeout applies unless
// WithTimeout is also given.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request timeout.
// Default: 30 seconds
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithRetries sets the number of retries for transient failures.
// Default: 0 (each call is sent once)
func WithRetries(count int) Option {
	return func(c *clientConfig) {
		c.retries = count
	}
}

// WithRetryOn sets the HTTP status codes that trigger a retry.
// Default: [408, 429, 500, 502, 503, 504]
func WithRetryOn(statusCodes []int) Option {
	return func(c *clientConfig) {
		c.retryOn = statusCodes
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// WithLogger sets a logger for per-request debug output.
// The API key is never logged.
func WithLogger(logger *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithTokenOverride authenticates a download with a different token,
// sent as the X-Auth-Token query parameter.
func WithTokenOverride(token string) DownloadOption {
	return func(c *downloadConfig) {
		c.tokenOverride = token
	}
}
