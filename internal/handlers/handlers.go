// Package handlers implements the HTTP request handlers for the
// catalog REST API. Handlers are thin dispatch around the core
// services; reconciliation decisions live in mapper and store.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"streamvault/internal/config"
	apperrors "streamvault/internal/errors"
	"streamvault/internal/models"
	"streamvault/internal/services"
)

// Handler handles HTTP requests for the catalog API.
type Handler struct {
	services *services.Container
	config   *config.Config
}

// New creates a new Handler with the provided services and configuration.
func New(services *services.Container, config *config.Config) *Handler {
	return &Handler{
		services: services,
		config:   config,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.handleHome)

	api := r.Group("/api")

	// Specific movie/series routes must be registered alongside the
	// generic :id routes; gin resolves static segments first.
	api.GET("/movies/trending", h.handleTrendingMovies)
	api.GET("/movies/popular", h.handlePopularMovies)
	api.GET("/movies", h.handleAllMovies)
	api.GET("/movies/:id", h.handleMovieDetail)

	api.GET("/series/best", h.handleBestSeries)
	api.GET("/series", h.handleAllSeries)
	api.GET("/series/:id", h.handleSeriesDetail)
	api.GET("/series/:id/seasons", h.handleSeasons)
	api.GET("/series/:id/season/:number/episodes", h.handleEpisodes)

	api.GET("/movie/genre/:genreName", h.handleMoviesByGenre)
	api.GET("/series/genre/:genreName", h.handleSeriesByGenre)
	api.GET("/genres/movies", h.handleMovieGenres)
	api.GET("/genres/series", h.handleSeriesGenres)

	api.GET("/search", h.handleSearch)

	api.GET("/mylist/:userId", h.handleGetList)
	api.POST("/mylist/add", h.handleAddItem)
	api.POST("/mylist/remove", h.handleRemoveItem)

	api.POST("/admin/playable-url", h.handleSetPlayableURL)
	api.POST("/admin/genres/refresh", h.handleRefreshGenres)
}

func (h *Handler) handleHome(c *gin.Context) {
	c.String(http.StatusOK, "StreamVault backend is running!")
}

// reconcileItems runs the map-and-persist pipeline over one page of raw
// catalog items. Failures are isolated per item: an item that cannot be
// mapped is dropped, an item whose persistence fails is returned with
// its freshly mapped fields.
func (h *Handler) reconcileItems(items []models.CatalogItem, kind models.ContentKind) []models.ContentRecord {
	records := make([]models.ContentRecord, 0, len(items))

	for i := range items {
		rec := h.services.Mapper.MapRecord(&items[i], kind)
		if rec == nil {
			h.services.Logger.Warnf("[Reconcile] dropping %s item without catalog ID", kind)
			continue
		}

		stored, err := h.services.Content.UpsertIfAbsent(rec)
		if err != nil {
			h.services.Logger.Errorf("[Reconcile] failed to persist %q: %v", rec.Title, err)
			records = append(records, *rec)
			continue
		}
		records = append(records, *stored)
	}

	return records
}

// respondError translates core error kinds to HTTP statuses.
func (h *Handler) respondError(c *gin.Context, err error, message string) {
	var validation *apperrors.ValidationError
	var upstream *apperrors.UpstreamError

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"message": validation.Message})
	case errors.Is(err, apperrors.ErrDuplicateItem):
		c.JSON(http.StatusConflict, gin.H{"message": "Item already in list!"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": message})
	case errors.As(err, &upstream):
		if upstream.Status == http.StatusNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": message})
			return
		}
		h.services.Logger.Errorf("[API] upstream failure: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"message": message})
	default:
		h.services.Logger.Errorf("[API] %s: %v", message, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": message})
	}
}
