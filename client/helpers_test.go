package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

const testAPIKey = "test-api-key"

// fakeFDC is a minimal stand-in for the FoodData Central API. It accepts only
// testAPIKey, in either the query string or the X-Api-Key header.
type fakeFDC struct {
	*httptest.Server
	hits atomic.Int64
}

func newFakeFDC(t *testing.T) *fakeFDC {
	t.Helper()
	f := &fakeFDC{}
	mux := http.NewServeMux()
	mux.HandleFunc("/food/", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/food/"))
		if err != nil || id != 534358 {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeJSON(w, map[string]any{
			"fdcId":           534358,
			"description":     "NUT 'N BERRY MIX",
			"dataType":        "Branded",
			"servingSize":     28,
			"servingSizeUnit": "g",
			"labelNutrients": map[string]any{
				"calories": map[string]any{"value": 140},
				"protein":  map[string]any{"value": 4},
			},
			"foodNutrients": []map[string]any{
				{"nutrient": map[string]any{"number": "208", "name": "Energy", "unitName": "kcal"}, "amount": 500},
				{"nutrient": map[string]any{"number": "203", "name": "Protein", "unitName": "g"}, "amount": 14.3},
			},
		})
	})
	mux.HandleFunc("/foods/search", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("query") == "broken" {
			_, _ = w.Write([]byte(`{"foods": [`))
			return
		}
		writeJSON(w, map[string]any{
			"totalHits": 2,
			"foods": []map[string]any{
				{"fdcId": 1, "description": "Cheese, cheddar"},
				{"fdcId": 2, "description": "Cheese, cheddar, sharp"},
			},
		})
	})
	mux.HandleFunc("/foods/list", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []map[string]any{{"fdcId": 9, "description": "Butter, salted", "dataType": "SR Legacy"}})
	})
	mux.HandleFunc("/foods", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []map[string]any{{"fdcId": 534358, "description": "NUT 'N BERRY MIX"}})
	})
	mux.HandleFunc("/json-spec", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"openapi": "3.0.0", "info": map[string]any{"version": "1.0.1"}})
	})
	mux.HandleFunc("/yaml-spec", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("openapi: 3.0.0\ninfo:\n  version: 1.0.1\n"))
	})

	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.hits.Add(1)
		key := r.URL.Query().Get("api_key")
		if key == "" {
			key = r.Header.Get(APIKeyHeader)
		}
		if key != testAPIKey {
			w.WriteHeader(http.StatusForbidden)
			writeJSON(w, map[string]any{"error": map[string]string{"code": "API_KEY_INVALID", "message": "An invalid api_key was supplied."}})
			return
		}
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(f.Close)
	return f
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func newTestClient(t *testing.T, f *fakeFDC, opts ...Option) *Client {
	t.Helper()
	c, err := New(testAPIKey, append([]Option{WithBaseURL(f.URL)}, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}
