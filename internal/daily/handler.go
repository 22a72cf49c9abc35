package daily

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

func offerResponse(o *Offer) gin.H {
	return gin.H{
		"id":                 o.ID,
		"date":               o.Date,
		"package_price":      o.PackagePrice,
		"max_portions":       o.MaxPortions,
		"remaining_portions": o.RemainingPortions,
		"note":               o.Note,
		"items":              o.Items,
	}
}

// --------------------------------------------------
// GET /daily/today
// --------------------------------------------------
func (h *Handler) Today(c *gin.Context) {
	offer, err := h.service.Today(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrOfferNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no offer today"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, offerResponse(offer))
}

// --------------------------------------------------
// GET /daily/:id
// --------------------------------------------------
func (h *Handler) GetOffer(c *gin.Context) {
	offer, err := h.service.GetOffer(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrOfferNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "offer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, offerResponse(offer))
}

type composeRequest struct {
	Type       string         `json:"type"` // menu | offer
	Quantities map[string]int `json:"quantities"`
}

func (req *composeRequest) normalize() string {
	if req.Type == TypeMenu {
		return TypeMenu
	}
	return TypeOffer
}

func compositionResponse(comp Composition) gin.H {
	resp := gin.H{
		"is_complete":    comp.IsComplete,
		"total_price":    comp.TotalPrice,
		"total_quantity": comp.TotalQuantity,
	}
	if savings, ok := comp.DisplaySavings(); ok {
		resp["savings"] = savings
	}
	return resp
}

// --------------------------------------------------
// POST /daily/:id/compose - price preview, no cart touch
// --------------------------------------------------
func (h *Handler) Compose(c *gin.Context) {
	var req composeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	_, comp, err := h.service.Preview(
		c.Request.Context(), c.Param("id"), req.normalize(), req.Quantities,
	)
	if err != nil {
		if errors.Is(err, ErrOfferNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "offer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, compositionResponse(comp))
}

// --------------------------------------------------
// POST /daily/:id/cart - add composed selection to the cart
// --------------------------------------------------
func (h *Handler) AddToCart(c *gin.Context) {
	var req composeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sessionID := cart.SessionID(c)
	store := h.carts.Get(c.Request.Context(), sessionID)

	comp, err := h.service.AddSelectionToCart(
		c.Request.Context(), c.Param("id"), req.normalize(), req.Quantities, store,
	)
	if err != nil {
		if errors.Is(err, ErrOfferNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "offer not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.carts.Persist(c.Request.Context(), sessionID, store)

	resp := compositionResponse(comp)
	resp["cart"] = store.Snapshot()
	c.JSON(http.StatusCreated, resp)
}

// --------------------------------------------------
// POST /daily/:id/menu - one-tap soup+main combo
// --------------------------------------------------
func (h *Handler) AddMenuToCart(c *gin.Context) {
	sessionID := cart.SessionID(c)
	store := h.carts.Get(c.Request.Context(), sessionID)

	lineID, err := h.service.AddMenuToCart(c.Request.Context(), c.Param("id"), store)
	if err != nil {
		switch {
		case errors.Is(err, ErrOfferNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "offer not found"})
		case errors.Is(err, cart.ErrMenuSoldOut):
			c.JSON(http.StatusConflict, gin.H{"error": "daily menu sold out"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	h.carts.Persist(c.Request.Context(), sessionID, store)
	c.JSON(http.StatusCreated, gin.H{"line_id": lineID, "cart": store.Snapshot()})
}

// --------------------------------------------------
// Admin: POST /admin/daily
// --------------------------------------------------
func (h *Handler) CreateOffer(c *gin.Context) {
	var offer Offer
	if err := c.ShouldBindJSON(&offer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.CreateOffer(c.Request.Context(), &offer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, offerResponse(&offer))
}
