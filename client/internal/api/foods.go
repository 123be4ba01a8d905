package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	fdcerrors "github.com/fdcapi/fdcapi/client/internal/errors"
	"github.com/fdcapi/fdcapi/client/internal/types"
)

// GetFood fetches a single food by fdcId. A 404 from the service is reported
// as *NotFoundError.
func GetFood(ctx context.Context, httpClient HTTPClient, baseURL string, fdcID int, opts types.FoodOptions) (*types.Food, error) {
	const op = "get food"
	if err := types.ValidateFdcID(fdcID); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	u := endpointURL(baseURL, fmt.Sprintf("/food/%d", fdcID), opts.Values().Encode())

	status, body, err := get(ctx, httpClient, op, "food", u, "application/json")
	if err != nil {
		return nil, err
	}
	switch status {
	case http.StatusOK:
		var food types.Food
		if err := decodeJSON(op, status, body, &food); err != nil {
			return nil, err
		}
		return &food, nil
	case http.StatusNotFound:
		return nil, &fdcerrors.NotFoundError{Op: op, FdcID: fdcID}
	default:
		return nil, fdcerrors.NewStatusError(op, status, body)
	}
}

// GetFoods fetches up to types.MaxFdcIDs foods in one call. Ids unknown to the
// service are silently omitted from the result.
func GetFoods(ctx context.Context, httpClient HTTPClient, baseURL string, fdcIDs []int, opts types.FoodOptions) ([]types.Food, error) {
	const op = "get foods"
	if err := types.ValidateFdcIDs(fdcIDs); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	q := opts.Values()
	q.Set(types.ParamFdcIDs, types.JoinInts(fdcIDs))
	u := endpointURL(baseURL, "/foods", q.Encode())

	status, body, err := get(ctx, httpClient, op, "foods", u, "application/json")
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fdcerrors.NewStatusError(op, status, body)
	}

	// The service answers with a bare array; older deployments wrapped it.
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 && trimmed[0] == '{' {
		var env types.FoodsEnvelope
		if err := decodeJSON(op, status, body, &env); err != nil {
			return nil, err
		}
		return env.Foods, nil
	}
	var foods []types.Food
	if err := decodeJSON(op, status, body, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

// ListFoods returns one page of abridged food records.
func ListFoods(ctx context.Context, httpClient HTTPClient, baseURL string, opts types.ListOptions) ([]types.AbridgedFood, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	u := endpointURL(baseURL, "/foods/list", opts.Values().Encode())

	var foods []types.AbridgedFood
	if err := getJSON(ctx, httpClient, "list foods", "list", u, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}
