package api

import (
	"context"

	"github.com/fdcapi/fdcapi/client/internal/types"
)

// SearchFoods runs a search query against the service.
func SearchFoods(ctx context.Context, httpClient HTTPClient, baseURL, query string, opts types.SearchOptions) (*types.SearchResult, error) {
	if err := types.ValidateQuery(query); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	q := opts.Values()
	q.Set(types.ParamQuery, query)
	u := endpointURL(baseURL, "/foods/search", q.Encode())

	var sr types.SearchResult
	if err := getJSON(ctx, httpClient, "search foods", "search", u, &sr); err != nil {
		return nil, err
	}
	return &sr, nil
}
