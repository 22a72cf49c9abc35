package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /menu
// --------------------------------------------------
func (h *Handler) BrowseMenu(c *gin.Context) {
	menu, err := h.service.BrowseMenu(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load menu"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": menu})
}

// --------------------------------------------------
// GET /menu/items/:id
// --------------------------------------------------
func (h *Handler) GetItem(c *gin.Context) {
	item, err := h.service.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

// --------------------------------------------------
// Admin: POST /admin/items
// --------------------------------------------------
func (h *Handler) CreateItem(c *gin.Context) {
	var item MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.CreateItem(c.Request.Context(), &item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// --------------------------------------------------
// Admin: PATCH /admin/items/:id/active
// --------------------------------------------------
func (h *Handler) SetItemActive(c *gin.Context) {
	var req struct {
		Active bool `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.SetItemActive(c.Request.Context(), c.Param("id"), req.Active); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "active": req.Active})
}

// --------------------------------------------------
// Admin: POST /admin/items/:id/image
// --------------------------------------------------
func (h *Handler) UploadItemImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	defer file.Close()

	url, err := h.service.UploadItemImage(
		c.Request.Context(),
		c.Param("id"),
		file,
		header.Filename,
	)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"image_url": url})
}
