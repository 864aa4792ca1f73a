package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamvault/internal/models"
)

func seedCatalog(t *testing.T, s *ContentStore) {
	t.Helper()

	records := []models.ContentRecord{
		{
			Kind: models.KindMovie, CatalogID: 603, RatingID: "tt0133093",
			Title: "The Matrix", Synopsis: "A hacker learns the truth.",
			GenreNames: []string{"Action", "Science Fiction"},
			RatingValue: "8.2", RatingCount: 21000,
			Director: "Lana Wachowski", TopCast: "Keanu Reeves, Carrie-Anne Moss",
		},
		{
			Kind: models.KindMovie, CatalogID: 550, RatingID: "tt0137523",
			Title: "Fight Club", Synopsis: "An insomniac and a soap maker.",
			GenreNames: []string{"Drama"},
			RatingValue: "8.4", RatingCount: 25000,
			Director: "David Fincher", TopCast: "Edward Norton, Brad Pitt",
		},
		{
			Kind: models.KindMovie, CatalogID: 680, RatingID: "tt0110912",
			Title: "Pulp Fiction", Synopsis: "Stories of crime in Los Angeles.",
			GenreNames: []string{"Crime", "Drama"},
			RatingValue: "8.5", RatingCount: 24000,
			Director: "Quentin Tarantino", TopCast: "John Travolta, Samuel L. Jackson",
		},
		{
			Kind: models.KindSeries, CatalogID: 1399, RatingID: "tt0944947",
			Title: "Game of Thrones", Synopsis: "Noble families fight for Westeros.",
			GenreNames: []string{"Drama", "Sci-Fi & Fantasy"},
			RatingValue: "8.5", RatingCount: 24823,
			Director: "N/A", TopCast: "Emilia Clarke, Peter Dinklage",
		},
	}

	for i := range records {
		_, err := s.UpsertIfAbsent(&records[i])
		require.NoError(t, err)
	}
}

func titles(records []models.ContentRecord) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.Title
	}
	return out
}

func TestAllSortsByTitle(t *testing.T) {
	s := newTestContent(t)
	seedCatalog(t, s)

	movies, err := s.All(models.KindMovie)
	require.NoError(t, err)
	assert.Equal(t, []string{"Fight Club", "Pulp Fiction", "The Matrix"}, titles(movies))

	series, err := s.All(models.KindSeries)
	require.NoError(t, err)
	assert.Equal(t, []string{"Game of Thrones"}, titles(series))
}

func TestPopularOrdersByRatingCount(t *testing.T) {
	s := newTestContent(t)
	seedCatalog(t, s)

	movies, err := s.Popular(models.KindMovie, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Fight Club", "Pulp Fiction"}, titles(movies))
}

func TestTopRatedOrdersByRatingValue(t *testing.T) {
	s := newTestContent(t)
	seedCatalog(t, s)

	movies, err := s.TopRated(models.KindMovie, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Pulp Fiction"}, titles(movies))
}

func TestByGenre(t *testing.T) {
	s := newTestContent(t)
	seedCatalog(t, s)

	drama, err := s.ByGenre(models.KindMovie, "drama", 50)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Fight Club", "Pulp Fiction"}, titles(drama))

	// Substring match catches compound genre names.
	scifi, err := s.ByGenre(models.KindSeries, "sci-fi", 50)
	require.NoError(t, err)
	assert.Equal(t, []string{"Game of Thrones"}, titles(scifi))

	none, err := s.ByGenre(models.KindMovie, "western", 50)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSearchMatchesAcrossFields(t *testing.T) {
	s := newTestContent(t)
	seedCatalog(t, s)

	byTitle, err := s.Search(models.KindMovie, "matrix", 50)
	require.NoError(t, err)
	assert.Equal(t, []string{"The Matrix"}, titles(byTitle))

	byCast, err := s.Search(models.KindMovie, "brad pitt", 50)
	require.NoError(t, err)
	assert.Equal(t, []string{"Fight Club"}, titles(byCast))

	byDirector, err := s.Search(models.KindMovie, "tarantino", 50)
	require.NoError(t, err)
	assert.Equal(t, []string{"Pulp Fiction"}, titles(byDirector))

	bySynopsis, err := s.Search(models.KindSeries, "westeros", 50)
	require.NoError(t, err)
	assert.Equal(t, []string{"Game of Thrones"}, titles(bySynopsis))

	none, err := s.Search(models.KindMovie, "nonexistent", 50)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSearchQuotesRegexMetacharacters(t *testing.T) {
	s := newTestContent(t)
	seedCatalog(t, s)

	// A query with metacharacters must be treated literally, not as a
	// pattern that matches everything.
	matches, err := s.Search(models.KindMovie, ".*", 50)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestSearchHonorsLimit(t *testing.T) {
	s := newTestContent(t)
	seedCatalog(t, s)

	matches, err := s.Search(models.KindMovie, "drama", 1)
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestDistinctGenres(t *testing.T) {
	s := newTestContent(t)
	seedCatalog(t, s)

	movieGenres, err := s.DistinctGenres(models.KindMovie)
	require.NoError(t, err)
	assert.Equal(t, []string{"Action", "Crime", "Drama", "Science Fiction"}, movieGenres)

	seriesGenres, err := s.DistinctGenres(models.KindSeries)
	require.NoError(t, err)
	assert.Equal(t, []string{"Drama", "Sci-Fi & Fantasy"}, seriesGenres)
}

func TestDistinctGenresEmptyStore(t *testing.T) {
	s := newTestContent(t)

	genres, err := s.DistinctGenres(models.KindMovie)
	require.NoError(t, err)
	assert.Empty(t, genres)
}
