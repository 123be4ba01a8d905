package client

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/fdcapi/fdcapi/client/internal/api"
	"github.com/fdcapi/fdcapi/client/internal/types"
	"github.com/fdcapi/fdcapi/devmode"
)

// DefaultBaseURL is the production FoodData Central endpoint.
const DefaultBaseURL = "https://api.nal.usda.gov/fdc/v1"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client calls the FoodData Central REST API. It is safe for concurrent use;
// apart from the optional response cache it holds no per-call state.
type Client struct {
	baseURL string
	http    *http.Client
	apiKey  string

	keyInHeader bool // send X-Api-Key instead of the api_key query parameter
	debug       bool
	timeout     time.Duration
	cacheSize   int
	cache       *cacheTransport
	base        http.RoundTripper

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client authenticating with apiKey.
// Additional options can be provided via functional arguments.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.buildTransport()
	return c, nil
}

// NewWithDemoKey constructs a Client using the public DEMO_KEY credential.
// The demo key is heavily rate limited; use it for exploration only.
func NewWithDemoKey(opts ...Option) (*Client, error) {
	return New(devmode.APIKey, opts...)
}

// buildTransport assembles the round-tripper chain, outermost first:
// cache -> credential -> debug logging -> base transport.
// The cache sits above the credential so cache keys never contain it.
func (c *Client) buildTransport() {
	if c.timeout > 0 {
		c.http.Timeout = c.timeout
	}
	rt := c.http.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}
	c.base = rt
	if c.debug {
		rt = &debugTransport{base: rt}
	}
	rt = &apiKeyTransport{base: rt, apiKey: c.apiKey, header: c.keyInHeader}
	if c.cacheSize > 0 {
		c.cache = newCacheTransport(rt, c.cacheSize)
		rt = c.cache
	}
	c.http.Transport = rt
}

// apiKeyTransport wraps an http.RoundTripper to attach the credential.
type apiKeyTransport struct {
	base   http.RoundTripper
	apiKey string
	header bool
}

// APIKeyHeader is the header the service accepts as an alternative to the
// api_key query parameter.
const APIKeyHeader = "X-Api-Key"

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	if t.header {
		cloned.Header.Set(APIKeyHeader, t.apiKey)
	} else {
		q := cloned.URL.Query()
		q.Set(types.ParamAPIKey, t.apiKey)
		cloned.URL.RawQuery = q.Encode()
	}
	return t.base.RoundTrip(cloned)
}

// Close drops cached responses and idle connections. Safe to call multiple
// times; the client stays usable afterwards.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.cache != nil {
		c.cache.Purge()
	}
	if ci, ok := c.base.(interface{ CloseIdleConnections() }); ok {
		ci.CloseIdleConnections()
	}
	return nil
}

// BaseURL returns the endpoint the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// --------------------------------------------------------------------
// Food operations - delegated to internal/api
// --------------------------------------------------------------------

// SearchFoods searches foods matching query. Paging and filters are taken
// from opts; the zero value uses the service defaults.
func (c *Client) SearchFoods(ctx context.Context, query string, opts SearchOptions) (*SearchResult, error) {
	return api.SearchFoods(ctx, c.http, c.baseURL, query, opts)
}

// GetFood fetches a single food by fdcId. A missing id yields *NotFoundError.
func (c *Client) GetFood(ctx context.Context, fdcID int, opts FoodOptions) (*Food, error) {
	return api.GetFood(ctx, c.http, c.baseURL, fdcID, opts)
}

// GetFoods fetches up to 20 foods at once. Unknown ids are omitted.
func (c *Client) GetFoods(ctx context.Context, fdcIDs []int, opts FoodOptions) ([]Food, error) {
	return api.GetFoods(ctx, c.http, c.baseURL, fdcIDs, opts)
}

// ListFoods returns one page of abridged food records.
func (c *Client) ListFoods(ctx context.Context, opts ListOptions) ([]AbridgedFood, error) {
	return api.ListFoods(ctx, c.http, c.baseURL, opts)
}

// GetFoodSummary fetches a food in full format and summarises it.
func (c *Client) GetFoodSummary(ctx context.Context, fdcID int) (*FoodSummary, error) {
	food, err := c.GetFood(ctx, fdcID, FoodOptions{Format: FormatFull})
	if err != nil {
		return nil, err
	}
	return Summarize(food), nil
}

// --------------------------------------------------------------------
// API documents
// --------------------------------------------------------------------

// JSONSpec returns the service's OpenAPI document in JSON form.
func (c *Client) JSONSpec(ctx context.Context) (*APISpec, error) {
	return api.JSONSpec(ctx, c.http, c.baseURL)
}

// YAMLSpec returns the service's OpenAPI document in YAML form.
func (c *Client) YAMLSpec(ctx context.Context) (*APISpec, error) {
	return api.YAMLSpec(ctx, c.http, c.baseURL)
}

// Summarize reduces a food record to name, energy and macronutrients.
func Summarize(f *Food) *FoodSummary { return types.Summarize(f) }
