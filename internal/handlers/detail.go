package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "streamvault/internal/errors"
	"streamvault/internal/models"
)

func (h *Handler) handleMovieDetail(c *gin.Context) {
	h.handleDetail(c, models.KindMovie, "Movie not found.")
}

func (h *Handler) handleSeriesDetail(c *gin.Context) {
	h.handleDetail(c, models.KindSeries, "Series not found.")
}

// handleDetail serves one title by rating or catalog ID. Stored records
// answer directly; a miss falls back to a full detail fetch that is
// merged into the store on the way out.
func (h *Handler) handleDetail(c *gin.Context, kind models.ContentKind, notFoundMsg string) {
	externalID := c.Param("id")

	stored, err := h.services.Content.FindByExternalID(kind, externalID)
	if err == nil {
		c.JSON(http.StatusOK, stored)
		return
	}
	if !apperrors.IsNotFound(err) {
		h.respondError(c, err, notFoundMsg)
		return
	}

	rec, err := h.fetchAndMerge(kind, externalID, nil)
	if err != nil {
		h.respondError(c, err, notFoundMsg)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// fetchAndMerge fetches the full detail payload for an external ID,
// maps it and merges it into the store. curatedOverride is passed
// through to the merge.
func (h *Handler) fetchAndMerge(kind models.ContentKind, externalID string, curatedOverride *string) (*models.ContentRecord, error) {
	catalogID, err := h.resolveCatalogID(kind, externalID)
	if err != nil {
		return nil, err
	}

	raw, err := h.fetchDetail(kind, catalogID)
	if err != nil {
		return nil, err
	}

	rec := h.services.Mapper.MapRecord(raw, kind)
	if rec == nil {
		return nil, apperrors.ErrNotFound
	}

	return h.services.Content.UpsertMerge(rec, curatedOverride)
}

// resolveCatalogID turns an inbound external ID into the provider's
// native catalog ID, cross-referencing rating-shaped IDs.
func (h *Handler) resolveCatalogID(kind models.ContentKind, externalID string) (int64, error) {
	if catalogID, err := strconv.ParseInt(externalID, 10, 64); err == nil {
		return catalogID, nil
	}

	catalogID, err := h.services.Resolver.CatalogIDForRatingID(externalID, kind)
	if err != nil {
		return 0, err
	}
	if catalogID == 0 {
		return 0, apperrors.ErrNotFound
	}
	return catalogID, nil
}

// fetchDetail retrieves the detail payload with credits and external
// IDs appended in a single round-trip.
func (h *Handler) fetchDetail(kind models.ContentKind, catalogID int64) (*models.CatalogItem, error) {
	path := fmt.Sprintf("/%s/%d", kind.PathSegment(), catalogID)
	raw, err := h.services.TMDB.FetchJSON(path, url.Values{
		"append_to_response": {"credits,external_ids"},
	})
	if err != nil {
		return nil, err
	}

	var item models.CatalogItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, apperrors.NewUpstreamFailure("failed to decode detail payload", err)
	}
	return &item, nil
}

// handleSeasons proxies the provider's season list for a series,
// cached in memory to spare the provider on repeated views.
func (h *Handler) handleSeasons(c *gin.Context) {
	id := c.Param("id")
	cacheKey := "seasons:" + id

	if cached, found := h.services.Cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	raw, err := h.services.TMDB.FetchJSON("/tv/"+id, nil)
	if err != nil {
		h.respondError(c, err, "Failed to fetch seasons.")
		return
	}

	var payload struct {
		Seasons []models.RawSeason `json:"seasons"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		h.respondError(c, apperrors.NewUpstreamFailure("failed to decode seasons", err), "Failed to fetch seasons.")
		return
	}

	h.services.Cache.Set(cacheKey, payload.Seasons)
	c.JSON(http.StatusOK, payload.Seasons)
}

// handleEpisodes proxies one season's episode list, cached like seasons.
func (h *Handler) handleEpisodes(c *gin.Context) {
	id := c.Param("id")
	number := c.Param("number")
	cacheKey := "episodes:" + id + ":" + number

	if cached, found := h.services.Cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	raw, err := h.services.TMDB.FetchJSON("/tv/"+id+"/season/"+number, nil)
	if err != nil {
		h.respondError(c, err, "Failed to fetch episodes.")
		return
	}

	var payload struct {
		Episodes json.RawMessage `json:"episodes"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		h.respondError(c, apperrors.NewUpstreamFailure("failed to decode episodes", err), "Failed to fetch episodes.")
		return
	}

	h.services.Cache.Set(cacheKey, payload.Episodes)
	c.JSON(http.StatusOK, payload.Episodes)
}
