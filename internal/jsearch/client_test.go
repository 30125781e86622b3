package jsearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := NewClient(Config{})
	assert.Error(t, err)
}

func TestSearchSendsQueryAndCredentials(t *testing.T) {
	t.Parallel()

	var gotPath, gotQuery, gotPages, gotKey, gotHost string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("query")
		gotPages = r.URL.Query().Get("num_pages")
		gotKey = r.Header.Get("X-RapidAPI-Key")
		gotHost = r.Header.Get("X-RapidAPI-Host")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","data":[]}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{APIKey: "secret", BaseURL: server.URL, NumPages: 10})
	require.NoError(t, err)

	listings, err := client.Search(context.Background(), "engineer austin 3 years")
	require.NoError(t, err)
	assert.Empty(t, listings)

	assert.Equal(t, "/search", gotPath)
	assert.Equal(t, "engineer austin 3 years", gotQuery)
	assert.Equal(t, "10", gotPages)
	assert.Equal(t, "secret", gotKey)
	assert.NotEmpty(t, gotHost)
}

func TestSearchDecodesListings(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"data": [
				{
					"job_id": "abc",
					"job_title": "Backend Engineer",
					"employer_name": "Acme",
					"job_city": "Austin",
					"job_state": "Texas",
					"job_apply_link": "https://example.com/apply",
					"job_required_experience": {"required_experience_in_months": "36"}
				}
			]
		}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{APIKey: "secret", BaseURL: server.URL})
	require.NoError(t, err)

	listings, err := client.Search(context.Background(), "engineer")
	require.NoError(t, err)
	require.Len(t, listings, 1)

	got := listings[0]
	assert.Equal(t, "Backend Engineer", got.Title)
	assert.Equal(t, "Acme", got.Employer)
	assert.Equal(t, "Austin", got.City)
	assert.Equal(t, "Texas", got.State)
	assert.Equal(t, "https://example.com/apply", got.ApplyLink)
	assert.Equal(t, `"36"`, string(got.RequiredExperience.Months))
}

func TestSearchErrorsOnMissingDataField(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK"}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{APIKey: "secret", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Search(context.Background(), "engineer")
	assert.ErrorContains(t, err, "missing data field")
}

func TestSearchErrorsOnAPIFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := NewClient(Config{APIKey: "secret", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Search(context.Background(), "engineer")
	assert.ErrorContains(t, err, "429")
}

func TestSearchRequiresQuery(t *testing.T) {
	t.Parallel()

	client, err := NewClient(Config{APIKey: "secret"})
	require.NoError(t, err)

	_, err = client.Search(context.Background(), "")
	assert.Error(t, err)
}
