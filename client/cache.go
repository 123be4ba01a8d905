package client

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/golang/groupcache/lru"
	"golang.org/x/sync/singleflight"
)

// cachedResponse is the part of a response needed to replay it.
type cachedResponse struct {
	status int
	header http.Header
	body   []byte
}

func (cr *cachedResponse) toResponse(req *http.Request) *http.Response {
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", cr.status, http.StatusText(cr.status)),
		StatusCode:    cr.status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        cr.header.Clone(),
		Body:          io.NopCloser(bytes.NewReader(cr.body)),
		ContentLength: int64(len(cr.body)),
		Request:       req,
	}
}

// cacheTransport memoises successful GET responses by URL. Identical requests
// in flight at the same time are collapsed into one round trip; they share the
// outcome of whichever caller arrived first, including its cancellation.
type cacheTransport struct {
	base  http.RoundTripper
	group singleflight.Group

	mu  sync.Mutex
	lru *lru.Cache
}

func newCacheTransport(base http.RoundTripper, maxEntries int) *cacheTransport {
	return &cacheTransport{base: base, lru: lru.New(maxEntries)}
}

func (t *cacheTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return t.base.RoundTrip(req)
	}
	key := req.URL.String()

	t.mu.Lock()
	v, ok := t.lru.Get(key)
	t.mu.Unlock()
	if ok {
		cacheHitsTotal.Inc()
		return v.(*cachedResponse).toResponse(req), nil
	}
	cacheMissesTotal.Inc()

	v, err, _ := t.group.Do(key, func() (any, error) {
		resp, err := t.base.RoundTrip(req)
		if err != nil {
			return nil, err
		}
		defer func() { _ = resp.Body.Close() }()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		cr := &cachedResponse{status: resp.StatusCode, header: resp.Header.Clone(), body: body}
		if resp.StatusCode == http.StatusOK {
			t.mu.Lock()
			t.lru.Add(key, cr)
			t.mu.Unlock()
		}
		return cr, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*cachedResponse).toResponse(req), nil
}

// Len reports the number of cached responses.
func (t *cacheTransport) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lru.Len()
}

// Purge drops every cached response.
func (t *cacheTransport) Purge() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lru.Clear()
}
