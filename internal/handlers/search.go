package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"streamvault/internal/constants"
	apperrors "streamvault/internal/errors"
	"streamvault/internal/models"
)

// handleSearch answers from the local store after opportunistically
// importing the provider's first page of matches, so repeated searches
// get faster and richer as the store fills.
func (h *Handler) handleSearch(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Search query is required."})
		return
	}

	h.importSearchResults(query)

	movies, err := h.services.Content.Search(models.KindMovie, query, constants.SearchResultLimit)
	if err != nil {
		h.respondError(c, err, "Error performing search.")
		return
	}

	series, err := h.services.Content.Search(models.KindSeries, query, constants.SearchResultLimit)
	if err != nil {
		h.respondError(c, err, "Error performing search.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"movies": movies, "series": series})
}

// importSearchResults reconciles the provider's mixed search results
// into the store. Provider failures only degrade the search to stored
// records; item failures are isolated in the pipeline.
func (h *Handler) importSearchResults(query string) {
	raw, err := h.services.TMDB.FetchJSON("/search/multi", url.Values{
		"query":         {query},
		"include_adult": {"false"},
	})
	if err != nil {
		h.services.Logger.Warnf("[Search] provider search failed, serving stored records only: %v", err)
		return
	}

	var result struct {
		Results []models.CatalogItem `json:"results"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		h.services.Logger.Warnf("[Search] failed to decode search results: %v", apperrors.NewUpstreamFailure("decode", err))
		return
	}

	var movies, series []models.CatalogItem
	for _, item := range result.Results {
		switch item.MediaType {
		case "movie":
			movies = append(movies, item)
		case "tv":
			series = append(series, item)
		}
	}

	h.reconcileItems(movies, models.KindMovie)
	h.reconcileItems(series, models.KindSeries)
}
