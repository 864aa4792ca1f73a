package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"streamvault/internal/constants"
	"streamvault/internal/models"
)

// backfillThreshold is the stored-result count below which a by-genre
// request triggers an on-demand discovery import.
const backfillThreshold = 10

// backfillPages is how many discovery pages a backfill walks, one
// sequential round-trip per item inside each page.
const backfillPages = 2

func (h *Handler) handleTrendingMovies(c *gin.Context) {
	page := pageParam(c)

	result, err := h.services.TMDB.FetchPage("/trending/movie/week", nil, page)
	if err != nil {
		h.respondError(c, err, "Failed to fetch trending movies from external API.")
		return
	}

	c.JSON(http.StatusOK, h.reconcileItems(result.Results, models.KindMovie))
}

func (h *Handler) handlePopularMovies(c *gin.Context) {
	movies, err := h.services.Content.Popular(models.KindMovie, constants.TopListLimit)
	if err != nil {
		h.respondError(c, err, "Error fetching popular movies.")
		return
	}
	c.JSON(http.StatusOK, movies)
}

func (h *Handler) handleBestSeries(c *gin.Context) {
	series, err := h.services.Content.TopRated(models.KindSeries, constants.TopListLimit)
	if err != nil {
		h.respondError(c, err, "Error fetching best series.")
		return
	}
	c.JSON(http.StatusOK, series)
}

func (h *Handler) handleAllMovies(c *gin.Context) {
	movies, err := h.services.Content.All(models.KindMovie)
	if err != nil {
		h.respondError(c, err, "Error fetching movies.")
		return
	}
	c.JSON(http.StatusOK, movies)
}

func (h *Handler) handleAllSeries(c *gin.Context) {
	series, err := h.services.Content.All(models.KindSeries)
	if err != nil {
		h.respondError(c, err, "Error fetching series.")
		return
	}
	c.JSON(http.StatusOK, series)
}

func (h *Handler) handleMoviesByGenre(c *gin.Context) {
	h.handleByGenre(c, models.KindMovie)
}

func (h *Handler) handleSeriesByGenre(c *gin.Context) {
	h.handleByGenre(c, models.KindSeries)
}

// handleByGenre serves stored records for a genre and tops the store up
// from the provider's discovery endpoint when too few are held locally.
func (h *Handler) handleByGenre(c *gin.Context, kind models.ContentKind) {
	genreName := c.Param("genreName")

	records, err := h.services.Content.ByGenre(kind, genreName, constants.GenreResultLimit)
	if err != nil {
		h.respondError(c, err, "Error fetching "+string(kind)+"s by genre.")
		return
	}

	if len(records) < backfillThreshold {
		if imported := h.backfillGenre(kind, genreName); imported {
			records, err = h.services.Content.ByGenre(kind, genreName, constants.GenreResultLimit)
			if err != nil {
				h.respondError(c, err, "Error fetching "+string(kind)+"s by genre.")
				return
			}
		}
	}

	c.JSON(http.StatusOK, records)
}

// backfillGenre imports a few discovery pages for the genre. Page-level
// failures end the walk; item-level failures are isolated inside
// reconcileItems. Reports whether anything was imported.
func (h *Handler) backfillGenre(kind models.ContentKind, genreName string) bool {
	genreID, ok := h.services.Genres.IDForName(genreName, kind)
	if !ok {
		return false
	}

	path := "/discover/" + kind.PathSegment()
	query := url.Values{"with_genres": {strconv.FormatInt(genreID, 10)}}

	imported := false
	for page := 1; page <= backfillPages; page++ {
		result, err := h.services.TMDB.FetchPage(path, query, page)
		if err != nil {
			h.services.Logger.Warnf("[Catalog] genre backfill stopped on page %d: %v", page, err)
			break
		}

		if len(h.reconcileItems(result.Results, kind)) > 0 {
			imported = true
		}
		if page >= result.TotalPages {
			break
		}
	}

	return imported
}

func (h *Handler) handleMovieGenres(c *gin.Context) {
	h.handleDistinctGenres(c, models.KindMovie)
}

func (h *Handler) handleSeriesGenres(c *gin.Context) {
	h.handleDistinctGenres(c, models.KindSeries)
}

func (h *Handler) handleDistinctGenres(c *gin.Context, kind models.ContentKind) {
	genres, err := h.services.Content.DistinctGenres(kind)
	if err != nil {
		h.respondError(c, err, "Error fetching "+string(kind)+" genres.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"genres": genres})
}

func (h *Handler) handleRefreshGenres(c *gin.Context) {
	if err := h.services.Genres.LoadAll(); err != nil {
		h.respondError(c, err, "Failed to refresh genre directory.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Genre directory refreshed."})
}

// pageParam reads the page query parameter, defaulting to 1.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
