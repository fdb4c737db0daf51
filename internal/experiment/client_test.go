package experiment

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/crogen/internal/template/model"
)

const experimentJSON = `{
  "id": 4242,
  "name": "[T-1][a/b][Hero banner]",
  "status": "not_started",
  "variations": [
    {"name": "Original", "variation_id": 100},
    {"name": "Blue hero", "variation_id": 101},
    {"name": "Green hero", "variation_id": 102}
  ]
}`

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v2/experiments/4242", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, experimentJSON)
	}))
	defer srv.Close()

	data, err := NewClient(srv.URL+"/v2/").Fetch(context.Background(), "4242", "secret")
	require.NoError(t, err)

	assert.Equal(t, int64(4242), data.ID)
	assert.Equal(t, 2, data.VariationCount())
	want := []model.VariationData{
		{Name: "Original", ID: "100"},
		{Name: "Blue hero", ID: "101"},
		{Name: "Green hero", ID: "102"},
	}
	if diff := cmp.Diff(want, data.VariationData()); diff != "" {
		t.Errorf("VariationData() mismatch (-want +got):\n%s", diff)
	}
}

func TestCreate(t *testing.T) {
	var got Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/experiments", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, experimentJSON)
	}))
	defer srv.Close()

	payload := BuildPayload(PayloadInput{Name: "n", ProjectID: 7, TestType: "a/b", TestURL: "https://x.test", Variations: 2})
	data, err := NewClient(srv.URL).Create(context.Background(), "secret", payload)
	require.NoError(t, err)
	assert.Equal(t, int64(4242), data.ID)
	if diff := cmp.Diff(*payload, got); diff != "" {
		t.Errorf("request body mismatch (-want +got):\n%s", diff)
	}
}

func TestClientErrors(t *testing.T) {
	tests := []struct {
		name   string
		create bool
		status int
		body   string
		want   ErrorKind
	}{
		{"fetch unauthorized", false, 401, `{"message":"bad token"}`, InvalidAuth},
		{"fetch forbidden", false, 403, ``, InvalidAuth},
		{"fetch not found", false, 404, ``, InvalidPayload},
		{"fetch server error", false, 503, ``, Network},
		{"fetch unexpected status", false, 409, ``, Network},
		{"fetch bad json", false, 200, `not json`, Network},
		{"create unauthorized", true, 401, ``, InvalidAuth},
		{"create bad request", true, 400, `{"message":"invalid type"}`, InvalidPayload},
		{"create unprocessable", true, 422, ``, InvalidPayload},
		{"create conflict", true, 409, ``, CreateFailed},
		{"create without id", true, 201, `{"name":"x"}`, CreateFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			c := NewClient(srv.URL)
			var err error
			if tt.create {
				_, err = c.Create(context.Background(), "t", BuildPayload(PayloadInput{Variations: 1}))
			} else {
				_, err = c.Fetch(context.Background(), "1", "t")
			}

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr), "expected APIError, got %v", err)
			assert.Equal(t, tt.want, apiErr.Kind)
		})
	}
}

func TestFetchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).Fetch(context.Background(), "1", "t")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, Network, apiErr.Kind)
}

func TestErrorMessage(t *testing.T) {
	err := statusError(opFetch, 401, "bad token")
	assert.Equal(t, "experiment API fetch failed (invalid-auth): HTTP 401: bad token", err.Error())
}
