// Package mapper transforms raw catalog provider records into the
// normalized local representation.
package mapper

import (
	"strconv"

	"streamvault/internal/models"
	"streamvault/pkg/logger"
)

// valueMissing is rendered for derived fields the raw payload cannot fill.
const valueMissing = "N/A"

// RatingResolver resolves the rating-provider ID for a catalog ID.
type RatingResolver interface {
	RatingIDForCatalogID(catalogID int64, kind models.ContentKind) (string, error)
}

// GenreResolver maps genre IDs to display names.
type GenreResolver interface {
	ResolveNames(ids []int64, kind models.ContentKind) []string
}

// CuratedLookup retrieves a previously curated playable locator.
// An empty locator with a nil error means none is stored.
type CuratedLookup interface {
	PlayableLocator(kind models.ContentKind, ratingID string, catalogID int64) (string, error)
}

// Mapper builds ContentRecords from raw catalog items. Identifier
// resolution and curated-field lookup are best-effort: their failures
// degrade the record instead of failing the mapping.
type Mapper struct {
	genres   GenreResolver
	resolver RatingResolver
	curated  CuratedLookup
	logger   logger.Logger
}

// New creates a Mapper. resolver and curated may be nil, in which case
// the corresponding enrichment steps are skipped.
func New(genres GenreResolver, resolver RatingResolver, curated CuratedLookup, log logger.Logger) *Mapper {
	return &Mapper{
		genres:   genres,
		resolver: resolver,
		curated:  curated,
		logger:   log,
	}
}

// MapRecord normalizes one raw catalog item of the given kind. Returns
// nil when the item lacks a catalog ID, the mandatory anchor for
// mapping even though persistence later accepts rating-ID-only records.
func (m *Mapper) MapRecord(raw *models.CatalogItem, kind models.ContentKind) *models.ContentRecord {
	if raw == nil || raw.ID == 0 {
		return nil
	}

	rec := &models.ContentRecord{
		Kind:         kind,
		CatalogID:    raw.ID,
		RatingID:     m.resolveRatingID(raw, kind),
		Title:        raw.DisplayTitle(),
		Synopsis:     raw.Overview,
		PosterPath:   raw.PosterPath,
		BackdropPath: raw.BackdropPath,
		GenreNames:   m.genreNames(raw, kind),
		RatingValue:  formatRating(raw.VoteAverage),
		RatingCount:  raw.VoteCount,
		Director:     extractDirector(raw.Credits.Crew, kind),
		Writers:      extractWriters(raw.Credits.Crew, kind),
		TopCast:      extractTopCast(raw.Credits.Cast),
	}

	switch kind {
	case models.KindSeries:
		rec.ReleaseYear = yearFromDate(raw.FirstAirDate)
		rec.Series = &models.SeriesFields{
			SeasonCount:  formatCount(raw.NumberOfSeasons),
			EpisodeCount: formatCount(raw.NumberOfEpisodes),
			Seasons:      mapSeasons(raw.Seasons),
		}
	default:
		rec.ReleaseYear = yearFromDate(raw.ReleaseDate)
		rec.Movie = &models.MovieFields{
			RuntimeDisplay: formatRuntime(raw.Runtime),
		}
	}

	m.attachCuratedLocator(rec)

	return rec
}

// resolveRatingID prefers an embedded rating ID and falls back to the
// cross-reference lookup. A failed lookup degrades to an empty ID.
func (m *Mapper) resolveRatingID(raw *models.CatalogItem, kind models.ContentKind) string {
	if raw.IMDBID != "" {
		return raw.IMDBID
	}
	if raw.ExternalIDs.IMDBID != "" {
		return raw.ExternalIDs.IMDBID
	}
	if m.resolver == nil {
		return ""
	}

	ratingID, err := m.resolver.RatingIDForCatalogID(raw.ID, kind)
	if err != nil {
		m.logger.Warnf("[Mapper] rating ID lookup failed for catalog ID %d: %v", raw.ID, err)
		return ""
	}
	return ratingID
}

// genreNames prefers the detail payload's embedded genre objects and
// falls back to resolving listing genre IDs through the directory.
func (m *Mapper) genreNames(raw *models.CatalogItem, kind models.ContentKind) []string {
	if len(raw.Genres) > 0 {
		names := make([]string, 0, len(raw.Genres))
		for _, g := range raw.Genres {
			names = append(names, g.Name)
		}
		return names
	}
	return m.genres.ResolveNames(raw.GenreIDs, kind)
}

// attachCuratedLocator is a best-effort read of a previously curated
// playable locator. Failures are swallowed: mapping must never fail
// because of this lookup.
func (m *Mapper) attachCuratedLocator(rec *models.ContentRecord) {
	if m.curated == nil {
		return
	}

	locator, err := m.curated.PlayableLocator(rec.Kind, rec.RatingID, rec.CatalogID)
	if err != nil {
		m.logger.Debugf("[Mapper] curated locator lookup failed for %q: %v", rec.Title, err)
		return
	}
	rec.PlayableLocator = locator
}

// yearFromDate derives the release year from a provider date string.
func yearFromDate(date string) string {
	if len(date) < 4 {
		return valueMissing
	}
	return date[:4]
}

// formatRating renders the vote average with one fraction digit.
func formatRating(voteAverage float64) string {
	if voteAverage == 0 {
		return valueMissing
	}
	return strconv.FormatFloat(voteAverage, 'f', 1, 64)
}

// formatRuntime renders a movie runtime in minutes.
func formatRuntime(minutes int) string {
	if minutes <= 0 {
		return valueMissing
	}
	return strconv.Itoa(minutes) + " min"
}

// formatCount stringifies a season or episode count.
func formatCount(count int) string {
	if count <= 0 {
		return valueMissing
	}
	return strconv.Itoa(count)
}

// mapSeasons converts the provider's season summaries.
func mapSeasons(raw []models.RawSeason) []models.SeasonSummary {
	if len(raw) == 0 {
		return nil
	}

	seasons := make([]models.SeasonSummary, 0, len(raw))
	for _, s := range raw {
		seasons = append(seasons, models.SeasonSummary{
			SeasonID:     s.ID,
			Number:       s.SeasonNumber,
			Name:         s.Name,
			Overview:     s.Overview,
			AirDate:      s.AirDate,
			EpisodeCount: s.EpisodeCount,
			PosterPath:   s.PosterPath,
		})
	}
	return seasons
}
