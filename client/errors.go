package client

import (
	"errors"
	"net/http"

	fdcerrors "github.com/fdcapi/fdcapi/client/internal/errors"
)

// Error types returned by every Client call. Use errors.As to inspect them.
type (
	// RequestError reports a network or transport failure.
	RequestError = fdcerrors.RequestError
	// ResponseError reports a non-success status or an unparsable body.
	ResponseError = fdcerrors.ResponseError
	// NotFoundError reports a lookup of an fdcId the service does not know.
	NotFoundError = fdcerrors.NotFoundError
	// ErrorCategory tells whether repeating a failed call may succeed.
	ErrorCategory = fdcerrors.ErrorCategory
)

const (
	Recoverable   = fdcerrors.Recoverable
	Irrecoverable = fdcerrors.Irrecoverable
)

// Re-export shared SDK errors so callers compare against a single symbol.
var (
	ErrNotFound        = fdcerrors.ErrNotFound
	ErrInvalidArgument = fdcerrors.ErrInvalidArgument
	ErrMissingAPIKey   = fdcerrors.ErrMissingAPIKey
)

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsUnauthorized reports whether the service rejected the credential.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized) || hasStatus(err, http.StatusForbidden)
}

// IsRateLimited reports whether the service throttled the request.
func IsRateLimited(err error) bool { return hasStatus(err, http.StatusTooManyRequests) }

// IsRetryable reports whether repeating the call may succeed. The client
// itself never retries.
func IsRetryable(err error) bool {
	return err != nil && !fdcerrors.IsIrrecoverable(err) && !errors.Is(err, ErrMissingAPIKey)
}

func hasStatus(err error, code int) bool {
	var re *ResponseError
	return errors.As(err, &re) && re.StatusCode == code
}
