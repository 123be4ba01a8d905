package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFDC answers the handful of endpoints the CLI calls.
func stubFDC(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/foods/search", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"totalHits": 1,
			"foodSearchCriteria": map[string]any{
				"query":      r.URL.Query().Get("query"),
				"brandOwner": r.URL.Query().Get("brandOwner"),
			},
			"foods": []map[string]any{{"fdcId": 1, "description": "Cheese, cheddar"}},
		})
	})
	mux.HandleFunc("/food/534358", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"fdcId":       534358,
			"description": "NUT 'N BERRY MIX",
			"foodNutrients": []map[string]any{
				{"nutrient": map[string]any{"number": "208", "name": "Energy", "unitName": "kcal"}, "amount": 500},
			},
		})
	})
	mux.HandleFunc("/food/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/foods", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]any{{"fdcId": 1}, {"fdcId": 2}})
	})
	mux.HandleFunc("/foods/list", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]any{{"fdcId": 3, "dataType": r.URL.Query().Get("dataType")}})
	})
	mux.HandleFunc("/yaml-spec", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("openapi: 3.0.0\n"))
	})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("api_key") != "cli-key" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCLI_Search(t *testing.T) {
	srv := stubFDC(t)
	t.Setenv("FDC_BASE_URL", srv.URL)
	t.Setenv("FDC_API_KEY", "cli-key")

	out, err := execute(t, "search", "cheddar", "cheese", "--brand-owner", "Acme", "--page-size", "5")
	require.NoError(t, err)

	var res struct {
		TotalHits          int `json:"totalHits"`
		FoodSearchCriteria struct {
			Query      string `json:"query"`
			BrandOwner string `json:"brandOwner"`
		} `json:"foodSearchCriteria"`
		Foods []map[string]any `json:"foods"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 1, res.TotalHits)
	assert.Len(t, res.Foods, 1)
	assert.Equal(t, "cheddar cheese", res.FoodSearchCriteria.Query)
	assert.Equal(t, "Acme", res.FoodSearchCriteria.BrandOwner)
}

func TestCLI_FoodSummaryAndFoods(t *testing.T) {
	srv := stubFDC(t)
	t.Setenv("FDC_BASE_URL", srv.URL)
	t.Setenv("FDC_API_KEY", "cli-key")

	out, err := execute(t, "food", "534358")
	require.NoError(t, err)
	assert.Contains(t, out, "NUT 'N BERRY MIX")

	out, err = execute(t, "summary", "534358")
	require.NoError(t, err)
	assert.Contains(t, out, `"calories": 500`)

	out, err = execute(t, "foods", "1,2")
	require.NoError(t, err)
	var foods []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &foods))
	assert.Len(t, foods, 2)

	out, err = execute(t, "list", "--data-type", "Foundation")
	require.NoError(t, err)
	assert.Contains(t, out, "Foundation")

	out, err = execute(t, "spec", "--yaml")
	require.NoError(t, err)
	assert.Equal(t, "openapi: 3.0.0\n", out)
}

func TestCLI_Errors(t *testing.T) {
	srv := stubFDC(t)
	t.Setenv("FDC_BASE_URL", srv.URL)
	t.Setenv("FDC_API_KEY", "cli-key")

	_, err := execute(t, "food", "1")
	assert.ErrorContains(t, err, "not found")

	_, err = execute(t, "food", "abc")
	assert.ErrorContains(t, err, "invalid fdcId")

	_, err = execute(t, "food", "534358", "--api-key", "wrong")
	assert.ErrorContains(t, err, "HTTP 403")

	t.Setenv("FDC_API_KEY", "")
	_, err = execute(t, "search", "apple")
	assert.ErrorContains(t, err, "no API key")
}
