package listclean

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/listclean/listclean-go/internal/api"
	"github.com/listclean/listclean-go/internal/apierrors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Client is the Listclean API client. It is safe for concurrent use.
type Client struct {
	apiClient *api.Client
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(apiKey string, cfg *clientConfig) (*api.Client, error) {
	apiOpts := []api.Option{api.WithBaseURL(cfg.baseURL)}
	if cfg.timeout > 0 {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}
	if cfg.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(cfg.httpClient))
	}
	if cfg.retries > 0 {
		apiOpts = append(apiOpts, api.WithRetries(cfg.retries))
	}
	if len(cfg.retryOn) > 0 {
		apiOpts = append(apiOpts, api.WithRetryOn(cfg.retryOn))
	}
	if cfg.userAgent != "" {
		apiOpts = append(apiOpts, api.WithUserAgent(cfg.userAgent))
	}
	if cfg.logger != nil {
		apiOpts = append(apiOpts, api.WithLogger(cfg.logger))
	}

	return api.New(apiKey, apiOpts...)
}

// New creates a new Listclean client with the given API key.
// No request is made until the first method call.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{baseURL: defaultBaseURL}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(apiKey, cfg)
	if err != nil {
		return nil, err
	}

	return &Client{apiClient: apiClient}, nil
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}

// VerifyEmail verifies a single email address.
func (c *Client) VerifyEmail(ctx context.Context, email string) (Response, error) {
	if email == "" {
		return nil, apierrors.Invalid("email", "must not be empty")
	}
	return c.apiClient.VerifyEmail(ctx, email)
}

// VerifyEmailBatch verifies up to MaxBatchSize addresses in one call.
// Empty strings are dropped before the size check.
func (c *Client) VerifyEmailBatch(ctx context.Context, emails []string) (Response, error) {
	filtered := make([]string, 0, len(emails))
	for _, e := range emails {
		if e != "" {
			filtered = append(filtered, e)
		}
	}

	if len(filtered) == 0 {
		return nil, apierrors.Invalid("emails", "must contain at least one address")
	}
	if len(filtered) > MaxBatchSize {
		return nil, apierrors.Invalid("emails", "cannot contain more than %d addresses", MaxBatchSize)
	}

	return c.apiClient.VerifyEmailBatch(ctx, filtered)
}

// VerificationLogs fetches logs of previous single verifications.
func (c *Client) VerificationLogs(ctx context.Context) (Payload, error) {
	return c.apiClient.VerificationLogs(ctx)
}

// ListUploads lists uploads.
func (c *Client) ListUploads(ctx context.Context) (Payload, error) {
	return c.apiClient.ListUploads(ctx)
}

// StartUpload starts a new CSV upload. Use UploadIDFrom on the result to
// obtain the upload ID.
func (c *Client) StartUpload(ctx context.Context, params StartUploadParams) (Response, error) {
	if err := validateStruct(params); err != nil {
		return nil, err
	}
	return c.apiClient.StartUpload(ctx, params)
}

// UploadChunk uploads a chunk for an existing upload.
func (c *Client) UploadChunk(ctx context.Context, uploadID int, payload map[string]any) (Response, error) {
	if err := checkID("upload_id", uploadID); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, apierrors.Invalid("payload", "must not be nil")
	}
	return c.apiClient.UploadChunk(ctx, uploadID, payload)
}

// UploadStatus returns the status of an upload.
func (c *Client) UploadStatus(ctx context.Context, uploadID int) (Response, error) {
	if err := checkID("upload_id", uploadID); err != nil {
		return nil, err
	}
	return c.apiClient.UploadStatus(ctx, uploadID)
}

// Lists fetches all lists.
func (c *Client) Lists(ctx context.Context) (Payload, error) {
	return c.apiClient.Lists(ctx)
}

// List fetches a single list.
func (c *Client) List(ctx context.Context, listID int) (Response, error) {
	if err := checkID("list_id", listID); err != nil {
		return nil, err
	}
	return c.apiClient.List(ctx, listID)
}

// DeleteList deletes a list.
func (c *Client) DeleteList(ctx context.Context, listID int) (Response, error) {
	if err := checkID("list_id", listID); err != nil {
		return nil, err
	}
	return c.apiClient.DeleteList(ctx, listID)
}

// DownloadListCSV downloads list results as CSV text. resultType is one
// of clean, dirty or unknown, in any case.
func (c *Client) DownloadListCSV(ctx context.Context, listID int, resultType string, opts ...DownloadOption) (string, error) {
	rt, cfg, err := prepareDownload(listID, resultType, opts)
	if err != nil {
		return "", err
	}
	return c.apiClient.DownloadCSV(ctx, listID, rt, cfg.tokenOverride)
}

// DownloadListJSON downloads list results as JSON.
func (c *Client) DownloadListJSON(ctx context.Context, listID int, resultType string, opts ...DownloadOption) (Payload, error) {
	rt, cfg, err := prepareDownload(listID, resultType, opts)
	if err != nil {
		return nil, err
	}
	return c.apiClient.DownloadJSON(ctx, listID, rt, cfg.tokenOverride)
}

// Profile retrieves account profile details.
func (c *Client) Profile(ctx context.Context) (Response, error) {
	return c.apiClient.Profile(ctx)
}

// UpdateProfile updates account profile details.
func (c *Client) UpdateProfile(ctx context.Context, payload map[string]any) (Response, error) {
	if payload == nil {
		return nil, apierrors.Invalid("payload", "must not be nil")
	}
	return c.apiClient.UpdateProfile(ctx, payload)
}

// Credits fetches the credit balance.
func (c *Client) Credits(ctx context.Context) (Response, error) {
	return c.apiClient.Credits(ctx)
}

func prepareDownload(listID int, resultType string, opts []DownloadOption) (ResultType, *downloadConfig, error) {
	if err := checkID("list_id", listID); err != nil {
		return "", nil, err
	}
	rt, err := ParseResultType(resultType)
	if err != nil {
		return "", nil, err
	}

	cfg := &downloadConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return rt, cfg, nil
}

func checkID(field string, id int) error {
	if id <= 0 {
		return apierrors.Invalid(field, "must be a positive integer, got %d", id)
	}
	return nil
}

// validateStruct runs struct-tag validation and reports the first failure.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		if fe.Param() != "" {
			return apierrors.Invalid(fe.Field(), "failed %s=%s", fe.Tag(), fe.Param())
		}
		return apierrors.Invalid(fe.Field(), "failed %s", fe.Tag())
	}
	return apierrors.Invalid("", "%v", err)
}
