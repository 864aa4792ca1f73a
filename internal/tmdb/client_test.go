package tmdb

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "streamvault/internal/errors"
	"streamvault/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient("test-token", "", logger.New())
	client.SetBaseURL(server.URL)
	return client
}

func TestFetchJSONSendsBearerToken(t *testing.T) {
	var gotAuth, gotAccept string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{}`))
	})

	_, err := client.FetchJSON("/movie/603", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
}

func TestFetchJSONDefaultLanguage(t *testing.T) {
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{}`))
	})

	_, err := client.FetchJSON("/movie/603", nil)
	require.NoError(t, err)
	assert.Equal(t, "en-US", gotQuery.Get("language"))
}

func TestFetchJSONCallerQueryWins(t *testing.T) {
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{}`))
	})

	_, err := client.FetchJSON("/movie/603", url.Values{
		"language": {"fr-FR"},
		"page":     {"2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "fr-FR", gotQuery.Get("language"))
	assert.Equal(t, "2", gotQuery.Get("page"))
}

func TestFetchJSONUpstreamStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.FetchJSON("/movie/0", nil)
	require.Error(t, err)

	var upstream *apperrors.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusNotFound, upstream.Status)
}

func TestFetchJSONTransportFailure(t *testing.T) {
	client := NewClient("test-token", "", logger.New())
	client.SetBaseURL("http://127.0.0.1:0")

	_, err := client.FetchJSON("/movie/603", nil)

	var upstream *apperrors.UpstreamError
	assert.ErrorAs(t, err, &upstream)
}

func TestFetchPage(t *testing.T) {
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(map[string]interface{}{
			"page":          2,
			"total_pages":   10,
			"total_results": 200,
			"results": []map[string]interface{}{
				{"id": 603, "title": "The Matrix"},
			},
		})
	})

	result, err := client.FetchPage("/trending/movie/week", nil, 2)
	require.NoError(t, err)

	assert.Equal(t, "2", gotQuery.Get("page"))
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 10, result.TotalPages)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "The Matrix", result.Results[0].Title)
}

func TestFetchPageMalformedEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := client.FetchPage("/trending/movie/week", nil, 1)
	assert.Error(t, err)
}
