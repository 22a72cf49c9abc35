package favorites

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/cart"
)

type Handler struct {
	service *Service
	carts   *cart.Sessions
}

func NewHandler(service *Service, carts *cart.Sessions) *Handler {
	return &Handler{service: service, carts: carts}
}

// --------------------------------------------------
// GET /favorites
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	favs, err := h.service.List(c.Request.Context(), cart.SessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if favs == nil {
		favs = []Favorite{}
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favs})
}

// --------------------------------------------------
// POST /favorites - snapshot the current cart
// --------------------------------------------------
func (h *Handler) Save(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	_ = c.ShouldBindJSON(&req)

	sessionID := cart.SessionID(c)
	store := h.carts.Get(c.Request.Context(), sessionID)

	fav, err := h.service.Save(c.Request.Context(), sessionID, req.Name, store.Snapshot())
	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, fav)
}

// --------------------------------------------------
// DELETE /favorites/:id
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), cart.SessionID(c), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// --------------------------------------------------
// POST /favorites/:id/reorder
// --------------------------------------------------
func (h *Handler) Reorder(c *gin.Context) {
	sessionID := cart.SessionID(c)
	store := h.carts.Get(c.Request.Context(), sessionID)

	result, err := h.service.Reorder(c.Request.Context(), sessionID, c.Param("id"), store)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	h.carts.Persist(c.Request.Context(), sessionID, store)
	c.JSON(http.StatusOK, gin.H{
		"added":       result.Added,
		"unavailable": result.Unavailable,
		"cart":        store.Snapshot(),
	})
}
