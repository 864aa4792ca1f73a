package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "streamvault/internal/errors"
	"streamvault/internal/models"
)

type setPlayableURLRequest struct {
	Kind models.ContentKind `json:"type"`
	ID   string             `json:"id"`
	URL  string             `json:"url"`

	// Fetch requests a fetch-and-create fallback when no record exists
	// yet for the given ID.
	Fetch bool `json:"fetch"`
}

// handleSetPlayableURL sets the curated playable locator on a stored
// record. The locator is the one field a re-sync never clobbers.
func (h *Handler) handleSetPlayableURL(c *gin.Context) {
	var req setPlayableURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Content type, ID and URL are required."})
		return
	}
	if !req.Kind.Valid() || req.ID == "" || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Content type, ID and URL are required."})
		return
	}

	rec, err := h.services.Content.SetPlayableLocator(req.Kind, req.ID, req.URL)
	if err == nil {
		c.JSON(http.StatusOK, rec)
		return
	}

	if errors.Is(err, apperrors.ErrNotFound) && req.Fetch {
		created, fetchErr := h.fetchAndMerge(req.Kind, req.ID, &req.URL)
		if fetchErr != nil {
			h.respondError(c, fetchErr, "Content not found.")
			return
		}
		c.JSON(http.StatusCreated, created)
		return
	}

	h.respondError(c, err, "Content not found.")
}
