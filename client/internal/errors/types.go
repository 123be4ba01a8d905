// Package errors defines the error taxonomy surfaced by the FDC client.
// Every failed call returns one of RequestError, ResponseError or
// NotFoundError so callers can branch with errors.As.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory tells callers whether repeating the same call may succeed.
// The client itself never retries.
type ErrorCategory int

const (
	// Recoverable errors may succeed when repeated later.
	// Examples: 500 Internal Server Error, 429 Too Many Requests, network timeouts.
	Recoverable ErrorCategory = iota

	// Irrecoverable errors will fail again without a change in the request.
	// Examples: 400 Bad Request, 403 Forbidden, malformed payloads.
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

var (
	// ErrNotFound matches any *NotFoundError via errors.Is.
	ErrNotFound = errors.New("food not found")

	// ErrInvalidArgument is returned when a call is rejected before any I/O.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMissingAPIKey is returned by constructors given an empty credential.
	ErrMissingAPIKey = errors.New("api key is required")
)

// RequestError reports a transport-level failure: the request could not be
// sent or the response body could not be read.
type RequestError struct {
	Op  string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: request failed: %v", e.Op, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// Category is always Recoverable for transport failures.
func (e *RequestError) Category() ErrorCategory { return Recoverable }

// ResponseError reports a non-success status or a payload that could not be
// decoded.
type ResponseError struct {
	Op         string
	StatusCode int    // HTTP status code
	Body       string // truncated response body for debugging
	Category   ErrorCategory
	Err        error // decode error, nil for status failures
}

func (e *ResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: [%s] HTTP %d: invalid payload: %v", e.Op, e.Category, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: [%s] HTTP %d", e.Op, e.Category, e.StatusCode)
}

func (e *ResponseError) Unwrap() error { return e.Err }

// NotFoundError reports that the service has no food with the given id.
type NotFoundError struct {
	Op    string
	FdcID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: fdcId %d not found", e.Op, e.FdcID)
}

// Is makes errors.Is(err, ErrNotFound) hold for every NotFoundError.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// IsIrrecoverable returns true if repeating the call cannot succeed.
func IsIrrecoverable(err error) bool {
	var re *ResponseError
	if errors.As(err, &re) {
		return re.Category == Irrecoverable
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return true
	}
	return errors.Is(err, ErrInvalidArgument)
}
