package client

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/fdcapi/fdcapi/devmode"
)

func TestNew_MissingAPIKey(t *testing.T) {
	if _, err := New(""); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestNew_Defaults(t *testing.T) {
	c, err := New("k")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.BaseURL() != DefaultBaseURL {
		t.Fatalf("base url %q", c.BaseURL())
	}
	if _, ok := c.http.Transport.(*apiKeyTransport); !ok {
		t.Fatalf("expected apiKeyTransport on top, got %T", c.http.Transport)
	}
}

func TestNewWithDemoKey(t *testing.T) {
	c, err := NewWithDemoKey()
	if err != nil {
		t.Fatalf("NewWithDemoKey: %v", err)
	}
	if c.apiKey != devmode.APIKey {
		t.Fatalf("expected demo key, got %q", c.apiKey)
	}
}

func TestCloseIdempotent(t *testing.T) {
	c, err := New("k", WithCache(4))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

func TestAPIKeyTransport_QueryAndHeader(t *testing.T) {
	var got *http.Request
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		got = r
		return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header)}, nil
	})

	orig, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com/food/1?format=full", http.NoBody)
	if _, err := (&apiKeyTransport{base: rt, apiKey: "secret"}).RoundTrip(orig); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if got.URL.Query().Get("api_key") != "secret" || got.URL.Query().Get("format") != "full" {
		t.Fatalf("unexpected query %q", got.URL.RawQuery)
	}
	if orig.URL.Query().Has("api_key") {
		t.Fatal("original request was modified")
	}

	if _, err := (&apiKeyTransport{base: rt, apiKey: "secret", header: true}).RoundTrip(orig); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if got.Header.Get(APIKeyHeader) != "secret" || got.URL.Query().Has("api_key") {
		t.Fatalf("expected header credential only, got header=%q query=%q", got.Header.Get(APIKeyHeader), got.URL.RawQuery)
	}
}
