package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestClassifyStatus(t *testing.T) {
	t.Parallel()
	cases := map[int]ErrorCategory{
		400: Irrecoverable,
		401: Irrecoverable,
		403: Irrecoverable,
		404: Irrecoverable,
		408: Recoverable,
		429: Recoverable,
		500: Recoverable,
		503: Recoverable,
		302: Recoverable,
	}
	for code, want := range cases {
		if got := ClassifyStatus(code); got != want {
			t.Fatalf("status %d: got %s want %s", code, got, want)
		}
	}
}

func TestNotFoundIs(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("wrapped: %w", &NotFoundError{Op: "get food", FdcID: 42})
	if !errors.Is(err, ErrNotFound) {
		t.Fatal("expected errors.Is ErrNotFound")
	}
	if !IsIrrecoverable(err) {
		t.Fatal("not found should be irrecoverable")
	}
}

func TestRequestErrorUnwrap(t *testing.T) {
	t.Parallel()
	err := NewNetworkError("search foods", context.DeadlineExceeded)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatal("expected unwrap to context.DeadlineExceeded")
	}
	if IsIrrecoverable(err) {
		t.Fatal("network errors are recoverable")
	}
}

func TestStatusErrorBodySnippet(t *testing.T) {
	t.Parallel()
	body := []byte(strings.Repeat("x", maxBodySnippet*2))
	err := NewStatusError("list foods", 500, body)
	if len(err.Body) != maxBodySnippet+3 {
		t.Fatalf("body not truncated: %d", len(err.Body))
	}
	if !strings.Contains(err.Error(), "HTTP 500") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestInvalidArgument(t *testing.T) {
	t.Parallel()
	err := InvalidArgument("pageSize %d", 0)
	if !errors.Is(err, ErrInvalidArgument) || !IsIrrecoverable(err) {
		t.Fatalf("unexpected %v", err)
	}
}
