package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"streamvault/internal/models"
)

type addItemRequest struct {
	UserID string              `json:"userId"`
	Item   models.UserListItem `json:"item"`
}

type removeItemRequest struct {
	UserID    string `json:"userId"`
	RatingID  string `json:"imdbID"`
	CatalogID int64  `json:"tmdbId"`
}

func (h *Handler) handleGetList(c *gin.Context) {
	list, err := h.services.Lists.GetList(c.Param("userId"))
	if err != nil {
		h.respondError(c, err, "Error fetching user list.")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) handleAddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User ID and item with IMDb/TMDB ID are required."})
		return
	}

	list, err := h.services.Lists.AddItem(req.UserID, req.Item)
	if err != nil {
		h.respondError(c, err, "Error adding item to list.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Item added to list successfully!",
		"userList": list,
	})
}

func (h *Handler) handleRemoveItem(c *gin.Context) {
	var req removeItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User ID and either IMDb ID or TMDB ID are required."})
		return
	}

	list, err := h.services.Lists.RemoveItem(req.UserID, req.CatalogID, req.RatingID)
	if err != nil {
		h.respondError(c, err, "Item not found in your list.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Item removed from list successfully!",
		"userList": list,
	})
}
