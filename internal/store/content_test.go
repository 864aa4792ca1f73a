package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timshannon/bolthold"

	apperrors "streamvault/internal/errors"
	"streamvault/internal/models"
	"streamvault/pkg/logger"
)

func openTestStore(t *testing.T) *bolthold.Store {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestContent(t *testing.T) *ContentStore {
	t.Helper()
	return NewContent(openTestStore(t), logger.New())
}

func movieRecord(catalogID int64, ratingID, title string) *models.ContentRecord {
	return &models.ContentRecord{
		Kind:      models.KindMovie,
		CatalogID: catalogID,
		RatingID:  ratingID,
		Title:     title,
		Movie:     &models.MovieFields{RuntimeDisplay: "120 min"},
	}
}

func TestUpsertIfAbsentInsertsNewRecord(t *testing.T) {
	s := newTestContent(t)

	stored, err := s.UpsertIfAbsent(movieRecord(603, "tt0133093", "The Matrix"))
	require.NoError(t, err)
	assert.Equal(t, "The Matrix", stored.Title)

	found, err := s.FindByExternalID(models.KindMovie, "tt0133093")
	require.NoError(t, err)
	assert.Equal(t, int64(603), found.CatalogID)
}

func TestUpsertIfAbsentDoesNotClobber(t *testing.T) {
	s := newTestContent(t)

	first := movieRecord(603, "tt0133093", "The Matrix")
	first.PlayableLocator = "https://example.org/watch/603"
	_, err := s.UpsertIfAbsent(first)
	require.NoError(t, err)

	// Same title seen again on a listing page, with a stale synopsis
	// and no curated locator.
	again := movieRecord(603, "tt0133093", "The Matrix (listing)")
	stored, err := s.UpsertIfAbsent(again)
	require.NoError(t, err)

	assert.Equal(t, "The Matrix", stored.Title)
	assert.Equal(t, "https://example.org/watch/603", stored.PlayableLocator)
}

func TestUpsertIfAbsentMatchesAcrossIdentifierSpaces(t *testing.T) {
	s := newTestContent(t)

	// First sync knew only the rating ID.
	_, err := s.UpsertIfAbsent(movieRecord(0, "tt0133093", "The Matrix"))
	require.NoError(t, err)

	// Second sync carries both IDs; it must dedup against the first.
	stored, err := s.UpsertIfAbsent(movieRecord(603, "tt0133093", "The Matrix Reloaded?"))
	require.NoError(t, err)
	assert.Equal(t, "The Matrix", stored.Title)

	all, err := s.All(models.KindMovie)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpsertIfAbsentRequiresIdentifier(t *testing.T) {
	s := newTestContent(t)

	_, err := s.UpsertIfAbsent(&models.ContentRecord{Kind: models.KindMovie, Title: "Ghost"})
	var validation *apperrors.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestSameCatalogIDDifferentKinds(t *testing.T) {
	s := newTestContent(t)

	_, err := s.UpsertIfAbsent(movieRecord(100, "", "Movie 100"))
	require.NoError(t, err)

	series := &models.ContentRecord{Kind: models.KindSeries, CatalogID: 100, Title: "Series 100"}
	_, err = s.UpsertIfAbsent(series)
	require.NoError(t, err)

	movie, err := s.FindByExternalID(models.KindMovie, "100")
	require.NoError(t, err)
	assert.Equal(t, "Movie 100", movie.Title)

	show, err := s.FindByExternalID(models.KindSeries, "100")
	require.NoError(t, err)
	assert.Equal(t, "Series 100", show.Title)
}

func TestUpsertMergeRefreshesFieldsKeepsLocator(t *testing.T) {
	s := newTestContent(t)

	first := movieRecord(603, "tt0133093", "The Matrix")
	first.Synopsis = "old synopsis"
	first.PlayableLocator = "https://example.org/watch/603"
	_, err := s.UpsertIfAbsent(first)
	require.NoError(t, err)

	fresh := movieRecord(603, "tt0133093", "The Matrix")
	fresh.Synopsis = "new synopsis"
	merged, err := s.UpsertMerge(fresh, nil)
	require.NoError(t, err)

	assert.Equal(t, "new synopsis", merged.Synopsis)
	assert.Equal(t, "https://example.org/watch/603", merged.PlayableLocator)

	stored, err := s.FindByExternalID(models.KindMovie, "tt0133093")
	require.NoError(t, err)
	assert.Equal(t, "new synopsis", stored.Synopsis)
	assert.Equal(t, "https://example.org/watch/603", stored.PlayableLocator)
}

func TestUpsertMergeOverrideWins(t *testing.T) {
	s := newTestContent(t)

	first := movieRecord(603, "tt0133093", "The Matrix")
	first.PlayableLocator = "https://example.org/old"
	_, err := s.UpsertIfAbsent(first)
	require.NoError(t, err)

	override := "https://example.org/new"
	merged, err := s.UpsertMerge(movieRecord(603, "tt0133093", "The Matrix"), &override)
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/new", merged.PlayableLocator)

	// An explicit empty override clears the locator.
	empty := ""
	merged, err = s.UpsertMerge(movieRecord(603, "tt0133093", "The Matrix"), &empty)
	require.NoError(t, err)
	assert.Empty(t, merged.PlayableLocator)
}

func TestUpsertMergeLearnsMissingIdentifiers(t *testing.T) {
	s := newTestContent(t)

	// Stored under catalog ID only.
	_, err := s.UpsertIfAbsent(movieRecord(603, "", "The Matrix"))
	require.NoError(t, err)

	// Detail sync learned the rating ID.
	merged, err := s.UpsertMerge(movieRecord(603, "tt0133093", "The Matrix"), nil)
	require.NoError(t, err)
	assert.Equal(t, "tt0133093", merged.RatingID)

	// No second record appeared, and both identifiers resolve.
	all, err := s.All(models.KindMovie)
	require.NoError(t, err)
	require.Len(t, all, 1)

	byRating, err := s.FindByExternalID(models.KindMovie, "tt0133093")
	require.NoError(t, err)
	assert.Equal(t, int64(603), byRating.CatalogID)

	byCatalog, err := s.FindByExternalID(models.KindMovie, "603")
	require.NoError(t, err)
	assert.Equal(t, "tt0133093", byCatalog.RatingID)
}

func TestUpsertMergeKeepsStoredCatalogID(t *testing.T) {
	s := newTestContent(t)

	_, err := s.UpsertIfAbsent(movieRecord(603, "tt0133093", "The Matrix"))
	require.NoError(t, err)

	merged, err := s.UpsertMerge(movieRecord(0, "tt0133093", "The Matrix"), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(603), merged.CatalogID)
}

func TestUpsertMergeInsertsWhenAbsent(t *testing.T) {
	s := newTestContent(t)

	override := "https://example.org/watch/550"
	created, err := s.UpsertMerge(movieRecord(550, "tt0137523", "Fight Club"), &override)
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/watch/550", created.PlayableLocator)
}

func TestSetPlayableLocator(t *testing.T) {
	s := newTestContent(t)

	_, err := s.UpsertIfAbsent(movieRecord(603, "tt0133093", "The Matrix"))
	require.NoError(t, err)

	rec, err := s.SetPlayableLocator(models.KindMovie, "tt0133093", "https://example.org/watch/603")
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/watch/603", rec.PlayableLocator)

	// Locating by catalog ID hits the same record.
	rec, err = s.SetPlayableLocator(models.KindMovie, "603", "https://example.org/v2")
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/v2", rec.PlayableLocator)
}

func TestSetPlayableLocatorNeverCreates(t *testing.T) {
	s := newTestContent(t)

	_, err := s.SetPlayableLocator(models.KindMovie, "tt0000001", "https://example.org/x")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	all, err := s.All(models.KindMovie)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSetPlayableLocatorRejectsMalformedID(t *testing.T) {
	s := newTestContent(t)

	_, err := s.SetPlayableLocator(models.KindMovie, "not-an-id", "https://example.org/x")
	var validation *apperrors.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestPlayableLocatorMissIsNotAnError(t *testing.T) {
	s := newTestContent(t)

	locator, err := s.PlayableLocator(models.KindMovie, "tt0000001", 0)
	require.NoError(t, err)
	assert.Empty(t, locator)
}

func TestFindByExternalIDNotFound(t *testing.T) {
	s := newTestContent(t)

	_, err := s.FindByExternalID(models.KindMovie, "tt0000001")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestParseExternalID(t *testing.T) {
	ratingID, catalogID, err := parseExternalID("tt0133093")
	require.NoError(t, err)
	assert.Equal(t, "tt0133093", ratingID)
	assert.Zero(t, catalogID)

	ratingID, catalogID, err = parseExternalID("603")
	require.NoError(t, err)
	assert.Empty(t, ratingID)
	assert.Equal(t, int64(603), catalogID)

	_, _, err = parseExternalID("tt12ab")
	assert.Error(t, err)
}
