package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	fdcerrors "github.com/fdcapi/fdcapi/client/internal/errors"
)

// HTTPClient interface for dependency injection
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// maxResponseBytes bounds how much of a response body is read into memory.
// The OpenAPI documents are the largest payloads the service returns.
const maxResponseBytes = 32 << 20

// get performs a single GET and returns the status code and full body.
// Transport failures are reported as *RequestError; status handling is left
// to the caller.
func get(ctx context.Context, httpClient HTTPClient, op, endpoint, url, accept string) (int, []byte, error) {
	if err := ctx.Err(); err != nil {
		return 0, nil, fdcerrors.NewNetworkError(op, err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, fdcerrors.NewNetworkError(op, err)
	}
	httpReq.Header.Set("Accept", accept)
	// Note: the credential is added by the transport layer

	start := time.Now()
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		requestsTotal.WithLabelValues(endpoint, "error").Inc()
		return 0, nil, fdcerrors.NewNetworkError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	requestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
	if err != nil {
		return resp.StatusCode, nil, fdcerrors.NewNetworkError(op, fmt.Errorf("read body: %w", err))
	}
	return resp.StatusCode, body, nil
}

// getJSON performs a GET expecting 200 and decodes the body into out.
func getJSON(ctx context.Context, httpClient HTTPClient, op, endpoint, url string, out any) error {
	status, body, err := get(ctx, httpClient, op, endpoint, url, "application/json")
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fdcerrors.NewStatusError(op, status, body)
	}
	return decodeJSON(op, status, body, out)
}

func decodeJSON(op string, status int, body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return fdcerrors.NewDecodeError(op, status, body, err)
	}
	return nil
}

// endpointURL joins baseURL, path and the encoded query.
func endpointURL(baseURL, path, rawQuery string) string {
	u := strings.TrimRight(baseURL, "/") + path
	if rawQuery != "" {
		u += "?" + rawQuery
	}
	return u
}
