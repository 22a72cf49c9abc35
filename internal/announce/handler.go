package announce

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// --------------------------------------------------
// GET /announcements - what customers should see right now
// --------------------------------------------------
func (h *Handler) ListActive(c *gin.Context) {
	items, err := h.repo.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if items == nil {
		items = []*Announcement{}
	}
	c.JSON(http.StatusOK, gin.H{"announcements": items})
}

// --------------------------------------------------
// Admin: GET /admin/announcements
// --------------------------------------------------
func (h *Handler) ListAll(c *gin.Context) {
	items, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if items == nil {
		items = []*Announcement{}
	}
	c.JSON(http.StatusOK, gin.H{"announcements": items})
}

// --------------------------------------------------
// Admin: POST /admin/announcements
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var a Announcement
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if a.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	if !a.ActiveUntil.After(a.ActiveFrom) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "active_until must be after active_from"})
		return
	}

	a.ID = uuid.New().String()
	a.CreatedAt = time.Now()
	if err := h.repo.Create(c.Request.Context(), &a); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, a)
}

// --------------------------------------------------
// Admin: DELETE /admin/announcements/:id
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "announcement not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}
