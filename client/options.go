package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Option configures a Client during construction in New.
//
// Options only record settings; the transport chain is assembled once all
// options have been applied, so their order does not matter.
type Option func(*Client) error

// WithBaseURL points the client at a different FDC deployment, e.g. a test
// server. The URL must be absolute.
func WithBaseURL(raw string) Option {
	return func(c *Client) error {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid base url: %w", err)
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("base url must be absolute: %q", raw)
		}
		c.baseURL = strings.TrimRight(raw, "/")
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP request
// (including connection, TLS handshake, redirects, and reading the response).
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.timeout = d
		return nil
	}
}

// WithHTTPClient uses a copy of hc as the underlying client. Its Transport
// becomes the base of the client's transport chain.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		cp := *hc
		c.http = &cp
		return nil
	}
}

// WithDebugLogging logs each request/response when enabled is true.
//
// The debug transport is installed beneath the API-key wrapper and redacts
// the credential. Do not enable this option in production environments as it
// increases verbosity and logs response bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = c.debug || enabled
		return nil
	}
}

// WithAPIKeyHeader sends the credential in the X-Api-Key header rather than
// as a query parameter, which keeps it out of URLs and proxy logs.
func WithAPIKeyHeader() Option {
	return func(c *Client) error {
		c.keyInHeader = true
		return nil
	}
}

// WithCache enables an in-memory LRU of successful GET responses holding up to
// maxEntries items. Concurrent identical requests share one round trip.
func WithCache(maxEntries int) Option {
	return func(c *Client) error {
		if maxEntries <= 0 {
			return fmt.Errorf("cache size must be > 0")
		}
		c.cacheSize = maxEntries
		return nil
	}
}
