package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/listclean/listclean-go/internal/apierrors"
)

const (
	// DefaultBaseURL is the production API root.
	DefaultBaseURL = "https://api.listclean.xyz/v1/"
	// DefaultTimeout is the per-request timeout.
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent identifies the client to the API.
	DefaultUserAgent = "listclean-go/1.0"
)

// Header names used on every request.
const (
	HeaderAuthToken = "X-Auth-Token"
	HeaderRequestID = "X-Request-ID"
)

// Config configures an API client.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Timeout    time.Duration
	UserAgent  string
	Logger     *zap.Logger
	Retry      *RetryConfig
}

// Client is the HTTP API client. It holds no mutable state after
// construction and is safe for concurrent use.
type Client struct {
	baseURL   string
	apiKey    string
	userAgent string
	http      *resty.Client
	retry     *RetryConfig
	log       *zap.Logger
}

// Option configures the API client.
type Option func(*Config)

// WithBaseURL sets the base URL.
func WithBaseURL(u string) Option {
	return func(c *Config) {
		c.BaseURL = u
	}
}

// WithHTTPClient sets the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = hc
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithRetries sets the number of retries for transient failures.
func WithRetries(retries int) Option {
	return func(c *Config) {
		if c.Retry == nil {
			c.Retry = DefaultRetryConfig()
		}
		c.Retry.MaxRetries = retries
	}
}

// WithRetryOn sets the HTTP status codes that trigger a retry.
func WithRetryOn(statusCodes []int) Option {
	return func(c *Config) {
		if c.Retry == nil {
			c.Retry = DefaultRetryConfig()
		}
		c.Retry.RetryableOn = retryOnCodes(statusCodes)
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Config) {
		c.UserAgent = ua
	}
}

// WithLogger sets the request logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// New creates a new API client using functional options.
func New(apiKey string, opts ...Option) (*Client, error) {
	cfg := Config{APIKey: apiKey}
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewClient(cfg)
}

// NewClient creates a new API client from an explicit configuration.
// Unset fields fall back to package defaults.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, apierrors.ErrMissingAPIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Retry == nil {
		cfg.Retry = DefaultRetryConfig()
	}

	var rc *resty.Client
	if cfg.HTTPClient != nil {
		// resty fills in the transport of the client it wraps; hand it a
		// copy so the caller's client is left as it was.
		hc := *cfg.HTTPClient
		if cfg.Timeout > 0 {
			hc.Timeout = cfg.Timeout
		}
		rc = resty.NewWithClient(&hc)
	} else {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		rc = resty.New().SetTimeout(timeout)
	}

	return &Client{
		baseURL:   normalizeBaseURL(cfg.BaseURL),
		apiKey:    cfg.APIKey,
		userAgent: cfg.UserAgent,
		http:      rc,
		retry:     cfg.Retry,
		log:       cfg.Logger,
	}, nil
}

// BaseURL returns the normalised base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// normalizeBaseURL guarantees exactly one trailing slash.
func normalizeBaseURL(base string) string {
	return strings.TrimRight(base, "/") + "/"
}

// URL joins path and query onto the base URL.
func (c *Client) URL(path string, query url.Values) string {
	u := c.baseURL + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// Do sends a request and decodes the JSON object in the response.
// A nil body sends no payload.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) (map[string]any, error) {
	resp, err := c.execute(ctx, method, path, query, body, true)
	if err != nil {
		return nil, err
	}

	value, err := decodeValue(resp.StatusCode(), resp.Body())
	if err != nil {
		return nil, err
	}
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, &apierrors.DecodeError{StatusCode: resp.StatusCode(), Err: errors.New("expected a JSON object, got an array")}
	}
	return obj, nil
}

// DoValue is like Do but also accepts a top-level JSON array, which is
// returned as []any.
func (c *Client) DoValue(ctx context.Context, method, path string, query url.Values) (any, error) {
	resp, err := c.execute(ctx, method, path, query, nil, true)
	if err != nil {
		return nil, err
	}
	return decodeValue(resp.StatusCode(), resp.Body())
}

// DoRaw sends a request and returns the response body as text.
func (c *Client) DoRaw(ctx context.Context, method, path string, query url.Values) (string, error) {
	resp, err := c.execute(ctx, method, path, query, nil, false)
	if err != nil {
		return "", err
	}
	return string(resp.Body()), nil
}

func (c *Client) execute(ctx context.Context, method, path string, query url.Values, body any, expectsJSON bool) (*resty.Response, error) {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, apierrors.Invalid("body", "cannot encode as JSON: %v", err)
		}
		payload = data
	}

	target := c.URL(path, query)

	for attempt := 0; ; attempt++ {
		requestID := uuid.NewString()
		req := c.http.R().
			SetContext(ctx).
			SetHeader("Accept", "application/json").
			SetHeader("User-Agent", c.userAgent).
			SetHeader(HeaderAuthToken, c.apiKey).
			SetHeader(HeaderRequestID, requestID)
		if payload != nil {
			req.SetHeader("Content-Type", "application/json").SetBody(payload)
		}

		start := time.Now()
		resp, err := req.Execute(method, target)
		if err != nil {
			c.log.Debug("listclean request failed",
				zap.String("method", method),
				zap.String("path", path),
				zap.String("request_id", requestID),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			if ctx.Err() == nil && c.retry.ShouldRetryNetwork(attempt) {
				if werr := c.retry.Wait(ctx, attempt); werr != nil {
					return nil, &apierrors.NetworkError{Err: werr, URL: target, Attempt: attempt + 1}
				}
				continue
			}
			return nil, &apierrors.NetworkError{Err: err, URL: target, Attempt: attempt + 1}
		}

		status := resp.StatusCode()
		c.log.Debug("listclean request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.String("request_id", requestID),
			zap.Int("attempt", attempt),
			zap.Duration("duration", time.Since(start)),
		)

		if status >= 200 && status < 300 {
			return resp, nil
		}

		if c.retry.ShouldRetry(attempt, status) {
			if werr := c.retry.Wait(ctx, attempt); werr != nil {
				return nil, parseErrorResponse(resp, expectsJSON)
			}
			continue
		}

		return nil, parseErrorResponse(resp, expectsJSON)
	}
}

// decodeValue decodes a successful response body. Numbers are kept as
// json.Number so large integer IDs survive. An empty body or a JSON null
// yields an empty map; a scalar top level is a DecodeError.
func decodeValue(status int, body []byte) (any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]any{}, nil
	}

	value, err := unmarshalJSON(body)
	if err != nil {
		return nil, &apierrors.DecodeError{StatusCode: status, Err: err}
	}

	switch v := value.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any, []any:
		return v, nil
	default:
		return nil, &apierrors.DecodeError{StatusCode: status, Err: fmt.Errorf("unexpected top-level JSON value %T", v)}
	}
}

// unmarshalJSON decodes exactly one JSON value, with numbers as json.Number.
func unmarshalJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after top-level JSON value")
	}
	return value, nil
}

func parseErrorResponse(resp *resty.Response, expectsJSON bool) error {
	raw := string(resp.Body())
	apiErr := &apierrors.APIError{
		StatusCode: resp.StatusCode(),
		Raw:        raw,
		RequestID:  resp.Header().Get(HeaderRequestID),
	}

	if expectsJSON {
		if value, err := unmarshalJSON(resp.Body()); err == nil {
			switch value.(type) {
			case map[string]any, []any:
				apiErr.Body = value
			}
		}
	}
	if apiErr.Body == nil {
		apiErr.Body = map[string]any{"body": raw}
	}

	apiErr.Message = errorMessage(apiErr.Body)
	return apiErr
}

// errorMessage picks the first human-readable field from an error body.
func errorMessage(body any) string {
	obj, ok := body.(map[string]any)
	if !ok {
		return apierrors.DefaultErrorMessage
	}
	for _, key := range []string{"message", "error", "detail"} {
		switch v := obj[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case map[string]any:
			if msg, ok := v["message"].(string); ok && msg != "" {
				return msg
			}
		}
	}
	return apierrors.DefaultErrorMessage
}
