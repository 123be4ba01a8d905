package api

import (
	"context"
	"net/http"

	"gopkg.in/yaml.v3"

	fdcerrors "github.com/fdcapi/fdcapi/client/internal/errors"
	"github.com/fdcapi/fdcapi/client/internal/types"
)

// JSONSpec fetches the service's OpenAPI document in JSON form.
func JSONSpec(ctx context.Context, httpClient HTTPClient, baseURL string) (*types.APISpec, error) {
	const op = "json spec"
	status, body, err := get(ctx, httpClient, op, "json_spec", endpointURL(baseURL, "/json-spec", ""), "application/json")
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fdcerrors.NewStatusError(op, status, body)
	}
	spec := &types.APISpec{Raw: body}
	if err := decodeJSON(op, status, body, &spec.Document); err != nil {
		return nil, err
	}
	return spec, nil
}

// YAMLSpec fetches the service's OpenAPI document in YAML form.
func YAMLSpec(ctx context.Context, httpClient HTTPClient, baseURL string) (*types.APISpec, error) {
	const op = "yaml spec"
	status, body, err := get(ctx, httpClient, op, "yaml_spec", endpointURL(baseURL, "/yaml-spec", ""), "application/yaml, text/yaml, */*")
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fdcerrors.NewStatusError(op, status, body)
	}
	spec := &types.APISpec{Raw: body}
	if err := yaml.Unmarshal(body, &spec.Document); err != nil {
		return nil, fdcerrors.NewDecodeError(op, status, body, err)
	}
	return spec, nil
}
