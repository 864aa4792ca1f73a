// Package models defines the normalized local records and the raw
// catalog provider payload shapes.
package models

// ContentKind discriminates the two content variants.
type ContentKind string

const (
	KindMovie  ContentKind = "movie"
	KindSeries ContentKind = "series"
)

// PathSegment returns the catalog provider's URL segment for the kind.
func (k ContentKind) PathSegment() string {
	if k == KindSeries {
		return "tv"
	}
	return "movie"
}

// Valid reports whether the kind is one of the two known variants.
func (k ContentKind) Valid() bool {
	return k == KindMovie || k == KindSeries
}

// ContentRecord is the normalized representation of one title. It is a
// tagged variant: Kind selects which of the Movie/Series extensions is
// populated, the remaining fields are shared by both kinds.
//
// Identity invariant: at least one of CatalogID (zero means absent) and
// RatingID (empty means absent) must be set for a record to persist,
// and each is unique across stored records of the same kind when set.
type ContentRecord struct {
	Kind      ContentKind `json:"type"`
	CatalogID int64       `json:"tmdbId,omitempty"`
	RatingID  string      `json:"imdbID,omitempty"`

	Title        string   `json:"title"`
	ReleaseYear  string   `json:"year"`
	Synopsis     string   `json:"plot"`
	PosterPath   string   `json:"poster"`
	BackdropPath string   `json:"backdrop"`
	GenreNames   []string `json:"genre"`
	RatingValue  string   `json:"imdbRating"`
	RatingCount  int      `json:"imdbVotes"`
	Director     string   `json:"director"`
	Writers      string   `json:"writer"`
	TopCast      string   `json:"actors"`

	// PlayableLocator is curated locally and survives re-syncs from the
	// catalog provider unless an update explicitly overrides it.
	PlayableLocator string `json:"telegramPlayableUrl,omitempty"`

	Movie  *MovieFields  `json:"movie,omitempty"`
	Series *SeriesFields `json:"series,omitempty"`
}

// MovieFields holds the movie-only extension of ContentRecord.
type MovieFields struct {
	RuntimeDisplay string `json:"runtime"`
}

// SeriesFields holds the series-only extension of ContentRecord.
type SeriesFields struct {
	SeasonCount  string          `json:"totalSeasons"`
	EpisodeCount string          `json:"numberOfEpisodes"`
	Seasons      []SeasonSummary `json:"seasons,omitempty"`
}

// SeasonSummary is the per-season overview embedded in series records.
type SeasonSummary struct {
	SeasonID     int64  `json:"id"`
	Number       int    `json:"season_number"`
	Name         string `json:"name"`
	Overview     string `json:"overview"`
	AirDate      string `json:"air_date"`
	EpisodeCount int    `json:"episode_count"`
	PosterPath   string `json:"poster_path"`
}

// HasIdentifier reports whether the record carries at least one of the
// two external identifiers.
func (r *ContentRecord) HasIdentifier() bool {
	return r.RatingID != "" || r.CatalogID != 0
}

// UserListItem is one saved title in a user's list. Items are unique
// within a list by either identifier.
type UserListItem struct {
	CatalogID  int64       `json:"tmdbId,omitempty"`
	RatingID   string      `json:"imdbID,omitempty"`
	Title      string      `json:"title"`
	PosterPath string      `json:"poster"`
	Kind       ContentKind `json:"type"`
	Year       string      `json:"year"`
}

// HasIdentifier reports whether the item carries at least one identifier.
func (i *UserListItem) HasIdentifier() bool {
	return i.RatingID != "" || i.CatalogID != 0
}

// Matches reports whether the item matches either of the supplied
// identifiers. Zero-value identifiers never match.
func (i *UserListItem) Matches(catalogID int64, ratingID string) bool {
	if ratingID != "" && i.RatingID == ratingID {
		return true
	}
	if catalogID != 0 && i.CatalogID == catalogID {
		return true
	}
	return false
}

// UserList is one user's saved collection, keyed by an opaque user
// identifier. Lists are created lazily on first add.
type UserList struct {
	UserID string         `boltholdKey:"UserID" json:"userId"`
	Items  []UserListItem `json:"items"`
}
