package remoteconfig

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingProjectID is returned when a client is constructed without a
	// project identifier. Use a service account credential or set the project
	// ID explicitly, e.g. via the GOOGLE_CLOUD_PROJECT environment variable.
	ErrMissingProjectID = errors.New("project id is required to access remote config")
	// ErrMissingHTTPClient is returned when a client is constructed without
	// an HTTP transport.
	ErrMissingHTTPClient = errors.New("http client is required")
	// ErrMissingETag is returned when a successful fetch response lacks the
	// etag header. The ETag is required for conditional template updates.
	ErrMissingETag = errors.New("etag header not present in the server response")
)

// ErrorCode is a Remote Config service error code extracted from an error
// response body.
type ErrorCode string

// ErrorCodeInternal indicates an internal error inside the Remote Config
// service. It is currently the only code the service is known to report.
const ErrorCodeInternal ErrorCode = "INTERNAL"

// Error is the typed failure returned for non-2xx responses and
// transport-level failures. It carries the vendor error code extracted from
// the response body on a best-effort basis; callers match it with
// [errors.As].
type Error struct {
	// ErrorCode is the mapped vendor error code, or empty when the response
	// body was missing, malformed, or carried an unrecognised code.
	ErrorCode ErrorCode

	// Status is the error.status string from the response body, if any.
	Status string

	// HTTPStatus is the HTTP status code of the response, or 0 when the
	// request failed before a response was received.
	HTTPStatus int

	// Message is the server-provided error message, or a synthesized one
	// when the body carried none.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("remote config: %s", e.Message)
	if e.HTTPStatus != 0 {
		msg = fmt.Sprintf("remote config: http %d: %s", e.HTTPStatus, e.Message)
	}
	if e.ErrorCode != "" {
		msg = fmt.Sprintf("%s (code %s)", msg, e.ErrorCode)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }
