package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// lastURL records the URL of the most recent request a test server saw.
type lastURL struct {
	mu sync.Mutex
	u  *url.URL
}

func (l *lastURL) get() *url.URL {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.u
}

// serve starts a test server answering every request with status and body.
func serve(t *testing.T, status int, body string) (*httptest.Server, *lastURL) {
	t.Helper()
	last := &lastURL{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		last.mu.Lock()
		last.u = r.URL
		last.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, last
}
