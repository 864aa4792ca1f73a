package tmdb

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamvault/internal/models"
	"streamvault/pkg/logger"
)

func newTestResolver(t *testing.T, handler http.HandlerFunc) *Resolver {
	t.Helper()
	return NewResolver(newTestClient(t, handler), logger.New())
}

func TestRatingIDForCatalogID(t *testing.T) {
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/tv/1399/external_ids", req.URL.Path)
		w.Write([]byte(`{"imdb_id":"tt0944947"}`))
	})

	ratingID, err := r.RatingIDForCatalogID(1399, models.KindSeries)
	require.NoError(t, err)
	assert.Equal(t, "tt0944947", ratingID)
}

func TestRatingIDForCatalogIDNoLinkage(t *testing.T) {
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"imdb_id":null}`))
	})

	ratingID, err := r.RatingIDForCatalogID(603, models.KindMovie)
	require.NoError(t, err)
	assert.Empty(t, ratingID)
}

func TestRatingIDForCatalogIDUnknownTitle(t *testing.T) {
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	ratingID, err := r.RatingIDForCatalogID(999999999, models.KindMovie)
	require.NoError(t, err)
	assert.Empty(t, ratingID)
}

func TestRatingIDForCatalogIDServerFailure(t *testing.T) {
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := r.RatingIDForCatalogID(603, models.KindMovie)
	assert.Error(t, err)
}

func TestCatalogIDForRatingID(t *testing.T) {
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/find/tt0944947", req.URL.Path)
		assert.Equal(t, "imdb_id", req.URL.Query().Get("external_source"))
		w.Write([]byte(`{"movie_results":[],"tv_results":[{"id":1399,"name":"Game of Thrones"}]}`))
	})

	catalogID, err := r.CatalogIDForRatingID("tt0944947", models.KindSeries)
	require.NoError(t, err)
	assert.Equal(t, int64(1399), catalogID)
}

func TestCatalogIDForRatingIDFiltersByKind(t *testing.T) {
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"movie_results":[{"id":603,"title":"The Matrix"}],"tv_results":[]}`))
	})

	// The rating ID links to a movie; asking for a series finds nothing.
	catalogID, err := r.CatalogIDForRatingID("tt0133093", models.KindSeries)
	require.NoError(t, err)
	assert.Zero(t, catalogID)
}

func TestCatalogIDForRatingIDNoMatch(t *testing.T) {
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"movie_results":[],"tv_results":[]}`))
	})

	catalogID, err := r.CatalogIDForRatingID("tt0000001", models.KindMovie)
	require.NoError(t, err)
	assert.Zero(t, catalogID)
}
