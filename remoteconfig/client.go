// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adil Murzabekov

package remoteconfig

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/admurz/go-firebase-admin/internal/logger"
	"github.com/admurz/go-firebase-admin/internal/transport"
	"github.com/admurz/go-firebase-admin/models"
	"github.com/go-resty/resty/v2"
)

// defaultBaseURL is the production endpoint of the Remote Config service.
const defaultBaseURL = "https://firebaseremoteconfig.googleapis.com"

// ClientConfig carries the immutable settings a [Client] is constructed with.
type ClientConfig struct {
	// ProjectID identifies the Firebase project whose template is fetched.
	// Required.
	ProjectID string

	// HTTPClient is the authenticated transport used for all requests.
	// Required.
	HTTPClient *transport.HTTPClient

	// Logger receives client diagnostics. Optional; defaults to a no-op
	// logger.
	Logger *logger.Logger
}

// Client fetches Remote Config templates for a single project.
//
// All fields are set at construction time and never mutated, so a Client is
// safe for concurrent use from multiple goroutines.
type Client struct {
	baseURL    string
	projectID  string
	httpClient *transport.HTTPClient
	logger     *logger.Logger
}

// NewClient constructs a [Client] from cfg. It fails fast, before any network
// call, when the project id is empty ([ErrMissingProjectID]) or no transport
// is supplied ([ErrMissingHTTPClient]).
func NewClient(cfg ClientConfig) (*Client, error) {
	if strings.TrimSpace(cfg.ProjectID) == "" {
		return nil, ErrMissingProjectID
	}
	if cfg.HTTPClient == nil {
		return nil, ErrMissingHTTPClient
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Client{
		baseURL:    defaultBaseURL,
		projectID:  cfg.ProjectID,
		httpClient: cfg.HTTPClient,
		logger:     log,
	}, nil
}

// FetchTemplate retrieves the current Remote Config template of the project.
//
// On success the returned template carries the etag response header in its
// ETag field; a 2xx response without an etag header fails with
// [ErrMissingETag]. Every non-2xx response and transport failure is returned
// as a typed [*Error] carrying the vendor error code extracted from the body
// on a best-effort basis. No retries are performed.
func (c *Client) FetchTemplate(ctx context.Context) (*models.Template, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(c.templateURL())
	if err != nil {
		return nil, &Error{Message: err.Error(), Err: fmt.Errorf("fetch template request: %w", err)}
	}
	if !resp.IsSuccess() {
		return nil, newServiceError(resp)
	}

	var tmpl models.Template
	if err = json.Unmarshal(resp.Body(), &tmpl); err != nil {
		return nil, fmt.Errorf("decode template response: %w", err)
	}

	etag := resp.Header().Get("Etag")
	if etag == "" {
		return nil, ErrMissingETag
	}
	tmpl.ETag = etag

	c.logger.Debug().
		Str("project_id", c.projectID).
		Str("etag", etag).
		Msg("template fetched")

	return &tmpl, nil
}

func (c *Client) templateURL() string {
	return fmt.Sprintf("%s/v1/projects/%s/remoteConfig", c.baseURL, c.projectID)
}

// newServiceError converts a non-2xx response into a typed *Error. The body
// is parsed through [safeParse]; a missing, malformed, or unrecognised error
// payload yields an Error without a code.
func newServiceError(resp *resty.Response) error {
	parsed := safeParse(string(resp.Body()))

	message, ok := parsed.Message()
	if !ok {
		message = http.StatusText(resp.StatusCode())
	}
	status, _ := parsed.Status()
	code, _ := parsed.ErrorCode()

	return &Error{
		ErrorCode:  code,
		Status:     status,
		HTTPStatus: resp.StatusCode(),
		Message:    message,
	}
}
