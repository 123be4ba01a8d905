package errors

import (
	"fmt"
	"net/http"
)

// maxBodySnippet bounds how much of an error body is kept on ResponseError.
const maxBodySnippet = 512

// ClassifyStatus maps HTTP status codes to error categories:
// - 4xx client errors (except 408 and 429) are irrecoverable
// - 5xx server errors are recoverable
func ClassifyStatus(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case http.StatusRequestTimeout, http.StatusTooManyRequests:
			return Recoverable
		default:
			return Irrecoverable
		}
	case statusCode >= 500 && statusCode < 600:
		return Recoverable
	default:
		// Unexpected status codes: be conservative
		return Recoverable
	}
}

// NewStatusError creates a ResponseError for a non-success status.
func NewStatusError(op string, statusCode int, body []byte) *ResponseError {
	return &ResponseError{
		Op:         op,
		StatusCode: statusCode,
		Body:       snippet(body),
		Category:   ClassifyStatus(statusCode),
	}
}

// NewDecodeError creates a ResponseError for a payload that failed to decode.
// A malformed body will not improve on repeat, so it is irrecoverable.
func NewDecodeError(op string, statusCode int, body []byte, err error) *ResponseError {
	return &ResponseError{
		Op:         op,
		StatusCode: statusCode,
		Body:       snippet(body),
		Category:   Irrecoverable,
		Err:        err,
	}
}

// NewNetworkError creates a RequestError for transport failures.
func NewNetworkError(op string, err error) *RequestError {
	return &RequestError{Op: op, Err: err}
}

// InvalidArgument wraps ErrInvalidArgument with call-specific detail.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func snippet(body []byte) string {
	if len(body) > maxBodySnippet {
		return string(body[:maxBodySnippet]) + "..."
	}
	return string(body)
}
