package sides

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/cart"
)

type Handler struct {
	resolver *Resolver
	carts    *cart.Sessions
}

func NewHandler(resolver *Resolver, carts *cart.Sessions) *Handler {
	return &Handler{resolver: resolver, carts: carts}
}

// --------------------------------------------------
// GET /menu/items/:id/sides?daily_offer_id=...
// --------------------------------------------------
func (h *Handler) GetPolicy(c *gin.Context) {
	policy, err := h.resolver.Resolve(
		c.Request.Context(),
		c.Param("id"),
		c.Query("daily_offer_id"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"has_step":   policy.HasStep(),
		"source":     sourceLabel(policy.Source),
		"candidates": policy.Candidates,
		"defaults":   policy.Defaults,
		"min_select": policy.MinSelect,
		"max_select": policy.MaxSelect,
		"required":   policy.Required,
	})
}

func sourceLabel(s Source) string {
	switch s {
	case SourceConfigured:
		return "configured"
	case SourceDailyFallback:
		return "daily"
	case SourceGeneralFallback:
		return "general"
	default:
		return "none"
	}
}

// --------------------------------------------------
// POST /cart/validate - the checkout gate
// --------------------------------------------------
func (h *Handler) ValidateCart(c *gin.Context) {
	store := h.carts.Get(c.Request.Context(), cart.SessionID(c))

	result, err := h.resolver.ValidateCart(c.Request.Context(), store.Snapshot().Items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
