package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// escapeSegment percent-encodes every byte outside [A-Za-z0-9-_.~],
// including '@', so addresses travel as a single opaque path segment.
func escapeSegment(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// downloadQuery carries an optional token override for shareable downloads.
func downloadQuery(tokenOverride string) url.Values {
	if tokenOverride == "" {
		return nil
	}
	return url.Values{HeaderAuthToken: []string{tokenOverride}}
}

// VerifyEmail verifies a single address.
func (c *Client) VerifyEmail(ctx context.Context, email string) (map[string]any, error) {
	return c.Do(ctx, http.MethodGet, "verify/email/"+escapeSegment(email), nil, nil)
}

// VerifyEmailBatch submits several addresses in one call.
func (c *Client) VerifyEmailBatch(ctx context.Context, emails []string) (map[string]any, error) {
	return c.Do(ctx, http.MethodPost, "verify/email/batch", nil, BatchVerifyRequest{Emails: emails})
}

// VerificationLogs returns past single verifications.
func (c *Client) VerificationLogs(ctx context.Context) (any, error) {
	return c.DoValue(ctx, http.MethodGet, "verify/email/logs", nil)
}

// ListUploads lists uploads.
func (c *Client) ListUploads(ctx context.Context) (any, error) {
	return c.DoValue(ctx, http.MethodGet, "uploads/", nil)
}

// StartUpload starts a CSV upload.
func (c *Client) StartUpload(ctx context.Context, req any) (map[string]any, error) {
	return c.Do(ctx, http.MethodPost, "uploads/", nil, req)
}

// UploadChunk posts one chunk of an existing upload.
func (c *Client) UploadChunk(ctx context.Context, uploadID int, payload any) (map[string]any, error) {
	return c.Do(ctx, http.MethodPost, fmt.Sprintf("uploads/%d", uploadID), nil, payload)
}

// UploadStatus returns the status of an upload.
func (c *Client) UploadStatus(ctx context.Context, uploadID int) (map[string]any, error) {
	return c.Do(ctx, http.MethodGet, fmt.Sprintf("uploads/%d", uploadID), nil, nil)
}

// Lists returns all lists.
func (c *Client) Lists(ctx context.Context) (any, error) {
	return c.DoValue(ctx, http.MethodGet, "lists/", nil)
}

// List returns a single list.
func (c *Client) List(ctx context.Context, listID int) (map[string]any, error) {
	return c.Do(ctx, http.MethodGet, fmt.Sprintf("lists/%d", listID), nil, nil)
}

// DeleteList deletes a list.
func (c *Client) DeleteList(ctx context.Context, listID int) (map[string]any, error) {
	return c.Do(ctx, http.MethodDelete, fmt.Sprintf("lists/%d", listID), nil, nil)
}

// DownloadCSV fetches list results as raw CSV text.
func (c *Client) DownloadCSV(ctx context.Context, listID int, rt ResultType, tokenOverride string) (string, error) {
	path := fmt.Sprintf("downloads/%d/%s/", listID, rt)
	return c.DoRaw(ctx, http.MethodGet, path, downloadQuery(tokenOverride))
}

// DownloadJSON fetches list results as JSON.
func (c *Client) DownloadJSON(ctx context.Context, listID int, rt ResultType, tokenOverride string) (any, error) {
	path := fmt.Sprintf("downloads/json/%d/%s/", listID, rt)
	return c.DoValue(ctx, http.MethodGet, path, downloadQuery(tokenOverride))
}

// Profile returns account profile details.
func (c *Client) Profile(ctx context.Context) (map[string]any, error) {
	return c.Do(ctx, http.MethodGet, "account/profile/", nil, nil)
}

// UpdateProfile updates account profile details.
func (c *Client) UpdateProfile(ctx context.Context, payload any) (map[string]any, error) {
	return c.Do(ctx, http.MethodPost, "account/profile/", nil, payload)
}

// Credits returns the credit balance.
func (c *Client) Credits(ctx context.Context) (map[string]any, error) {
	return c.Do(ctx, http.MethodGet, "credits", nil, nil)
}
