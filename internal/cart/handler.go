package cart

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/catalog"
)

const sessionCookie = "cart_session"

// SessionID identifies the caller's cart: explicit header first, then
// cookie, otherwise a fresh id is minted and set as a cookie. One
// browser session = one cart.
func SessionID(c *gin.Context) string {
	if id := c.GetHeader("X-Session-ID"); id != "" {
		return id
	}
	if id, err := c.Cookie(sessionCookie); err == nil && id != "" {
		return id
	}
	id := uuid.New().String()
	c.SetCookie(sessionCookie, id, 60*60*24*7, "/", "", false, true)
	return id
}

// ItemSource is the catalog slice the handler needs for add-time
// name/price snapshots.
type ItemSource interface {
	GetItem(ctx context.Context, id string) (*catalog.MenuItem, error)
}

type Handler struct {
	sessions *Sessions
	items    ItemSource
}

func NewHandler(sessions *Sessions, items ItemSource) *Handler {
	return &Handler{sessions: sessions, items: items}
}

// --------------------------------------------------
// GET /cart
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	store := h.sessions.Get(c.Request.Context(), SessionID(c))
	c.JSON(http.StatusOK, store.Snapshot())
}

// --------------------------------------------------
// POST /cart/items
// --------------------------------------------------
type addItemRequest struct {
	ItemID    string     `json:"item_id"`
	Quantity  int        `json:"quantity"`
	Sides     []SideRef  `json:"sides"`
	Modifiers []Modifier `json:"modifiers"`
}

func (h *Handler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ItemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.items.GetItem(c.Request.Context(), req.ItemID)
	if err != nil {
		if errors.Is(err, catalog.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !item.Active {
		c.JSON(http.StatusConflict, gin.H{"error": "item unavailable"})
		return
	}

	sessionID := SessionID(c)
	store := h.sessions.Get(c.Request.Context(), sessionID)

	lineID := store.AddLine(Line{
		ItemID:    item.ID,
		Name:      item.Name,
		UnitPrice: item.Price,
		Quantity:  req.Quantity,
		Sides:     req.Sides,
		Modifiers: req.Modifiers,
	})

	h.sessions.Persist(c.Request.Context(), sessionID, store)
	c.JSON(http.StatusCreated, gin.H{"line_id": lineID, "cart": store.Snapshot()})
}

// --------------------------------------------------
// PATCH /cart/items/:lineId
// --------------------------------------------------
func (h *Handler) UpdateQuantity(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sessionID := SessionID(c)
	store := h.sessions.Get(c.Request.Context(), sessionID)

	if err := store.UpdateQuantity(c.Param("lineId"), req.Quantity); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "line not found"})
		return
	}

	h.sessions.Persist(c.Request.Context(), sessionID, store)
	c.JSON(http.StatusOK, store.Snapshot())
}

// --------------------------------------------------
// DELETE /cart/items/:lineId
// --------------------------------------------------
func (h *Handler) RemoveItem(c *gin.Context) {
	sessionID := SessionID(c)
	store := h.sessions.Get(c.Request.Context(), sessionID)

	if err := store.RemoveLine(c.Param("lineId")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "line not found"})
		return
	}

	h.sessions.Persist(c.Request.Context(), sessionID, store)
	c.JSON(http.StatusOK, store.Snapshot())
}

// --------------------------------------------------
// DELETE /cart
// --------------------------------------------------
func (h *Handler) Clear(c *gin.Context) {
	sessionID := SessionID(c)
	h.sessions.Drop(c.Request.Context(), sessionID)
	c.JSON(http.StatusOK, Snapshot{Items: []Line{}})
}
