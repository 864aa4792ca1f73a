package models

// Genre is one entry of the catalog provider's genre list.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// GenreListResponse is the payload of /genre/{movie|tv}/list.
type GenreListResponse struct {
	Genres []Genre `json:"genres"`
}

// CastMember is a single credited cast entry.
type CastMember struct {
	Name      string `json:"name"`
	Character string `json:"character"`
	Order     int    `json:"order"`
}

// CrewMember is a single crew entry.
type CrewMember struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Job        string `json:"job"`
}

// Credits wraps the cast and crew arrays of a credits payload.
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// ExternalIDs is the payload of /{movie|tv}/{id}/external_ids.
type ExternalIDs struct {
	IMDBID string `json:"imdb_id"`
}

// CatalogItem is the raw shape the catalog provider returns for one
// title. Listing and detail payloads share it; detail responses add
// runtime/season counts, credits, external IDs and seasons.
type CatalogItem struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"` // movies
	Name         string  `json:"name"`  // series
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	GenreIDs     []int64 `json:"genre_ids"`
	Genres       []Genre `json:"genres"`
	MediaType    string  `json:"media_type"` // only on multi search results

	// Detail-only fields
	IMDBID           string       `json:"imdb_id"`
	Runtime          int          `json:"runtime"`
	NumberOfSeasons  int          `json:"number_of_seasons"`
	NumberOfEpisodes int          `json:"number_of_episodes"`
	Seasons          []RawSeason  `json:"seasons"`
	Credits          Credits      `json:"credits"`
	ExternalIDs      ExternalIDs  `json:"external_ids"`
}

// DisplayTitle returns the movie title or the series name, whichever
// the payload carries.
func (i *CatalogItem) DisplayTitle() string {
	if i.Title != "" {
		return i.Title
	}
	return i.Name
}

// RawSeason is the provider's season summary inside a series detail.
type RawSeason struct {
	ID           int64  `json:"id"`
	SeasonNumber int    `json:"season_number"`
	Name         string `json:"name"`
	Overview     string `json:"overview"`
	AirDate      string `json:"air_date"`
	EpisodeCount int    `json:"episode_count"`
	PosterPath   string `json:"poster_path"`
}

// PagedResponse is the envelope of paginated listing endpoints.
type PagedResponse struct {
	Page         int           `json:"page"`
	Results      []CatalogItem `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}

// FindResponse is the payload of /find/{external_id}.
type FindResponse struct {
	MovieResults []CatalogItem `json:"movie_results"`
	TVResults    []CatalogItem `json:"tv_results"`
}
