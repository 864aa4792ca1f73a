// Package constants defines application-wide constants.
package constants

const (
	// TMDBAPIBaseURL is the base URL for the catalog provider's read API.
	TMDBAPIBaseURL = "https://api.themoviedb.org/3"

	// DefaultLanguage is the locale sent with every catalog request
	// unless the caller overrides it.
	DefaultLanguage = "en-US"

	// TMDBRateLimit is the token bucket capacity for catalog requests.
	TMDBRateLimit = 20
	// TMDBRateRefill is the token refill rate per second.
	TMDBRateRefill = 5

	// DefaultCacheSize is the LRU cache capacity.
	DefaultCacheSize = 1000
	// DefaultCacheTTLHours is the LRU cache entry lifetime in hours.
	DefaultCacheTTLHours = 24

	// PageSize is the number of items per catalog provider page.
	PageSize = 20

	// TopListLimit caps the popular/best listings.
	TopListLimit = 20
	// GenreResultLimit caps by-genre listings.
	GenreResultLimit = 50
	// SearchResultLimit caps search results per content kind.
	SearchResultLimit = 50

	// DefaultServerPort is used when PORT is not configured.
	DefaultServerPort = "5000"
)
