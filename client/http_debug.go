package client

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/fdcapi/fdcapi/client/internal/types"
)

// maxDumpedBody bounds the response size whose body is included in dumps.
// The OpenAPI documents run to hundreds of kilobytes.
const maxDumpedBody = 16 << 10

// debugTransport provides detailed HTTP request/response logging for debugging client issues.
//
// Each request/response pair shares a request_id so interleaved calls from
// concurrent goroutines can be told apart. The credential is redacted from
// both the URL and the X-Api-Key header before anything is logged.
//
// Enable with WithDebugLogging(true), FDC_DEBUG=true or DEBUG=true.
//
// Example usage:
//
//	export FDC_DEBUG=true
//	fdc search "cheddar cheese"  # logs all HTTP traffic at debug level
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	id := uuid.NewString()
	safeURL := redactURL(req.URL)

	redacted := req.Clone(req.Context())
	redacted.URL = safeURL
	if redacted.Header.Get(APIKeyHeader) != "" {
		redacted.Header.Set(APIKeyHeader, "REDACTED")
	}
	if reqDump, err := httputil.DumpRequestOut(redacted, false); err == nil {
		log.Debug().Str("request_id", id).Str("method", req.Method).Str("url", safeURL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("request_id", id).Str("method", req.Method).Str("url", safeURL.String()).Msg("HTTP request failed")
		return nil, err
	}

	withBody := resp.ContentLength >= 0 && resp.ContentLength <= maxDumpedBody
	if respDump, err := httputil.DumpResponse(resp, withBody); err == nil {
		log.Debug().Str("request_id", id).Str("method", req.Method).Str("url", safeURL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// redactURL returns a copy of u with the api_key parameter masked.
func redactURL(u *url.URL) *url.URL {
	cp := *u
	q := cp.Query()
	if q.Has(types.ParamAPIKey) {
		q.Set(types.ParamAPIKey, "REDACTED")
		cp.RawQuery = q.Encode()
	}
	return &cp
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
//
// Activation methods:
//   - FDC_DEBUG=true (client-specific debug flag)
//   - DEBUG=true (general debug flag, common in development workflows)
func debugLoggingRequested() bool {
	return os.Getenv("FDC_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
