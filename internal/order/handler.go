package order

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
// POST /orders - checkout
// --------------------------------------------------
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sessionID := cart.SessionID(c)
	store := h.carts.Get(c.Request.Context(), sessionID)

	o, validation, err := h.service.Submit(c.Request.Context(), sessionID, req, store)
	if err != nil {
		switch {
		case errors.Is(err, ErrSidesIncomplete):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":  "side selection incomplete",
				"valid":  false,
				"errors": validation.Errors,
			})
		case errors.Is(err, ErrPortionsExhausted):
			// Expected failure mode: the day's portions ran out
			// between browsing and checkout.
			c.JSON(http.StatusConflict, gin.H{"error": "elfogyott a napi ajánlat"})
		case errors.Is(err, ErrEmptyCart),
			errors.Is(err, ErrMissingContact),
			errors.Is(err, ErrBadPaymentMethod):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order submission failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, o)
}

// --------------------------------------------------
// GET /orders/:id - customer receipt lookup
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	o, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, o)
}

// --------------------------------------------------
// Admin: GET /admin/orders?from&to&status
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	orders, err := h.service.List(c.Request.Context(), Filter{
		From:   c.Query("from"),
		To:     c.Query("to"),
		Status: c.Query("status"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if orders == nil {
		orders = []*Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// --------------------------------------------------
// Admin: PATCH /admin/orders/:id/status
// --------------------------------------------------
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	o, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		case errors.Is(err, ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, o)
}

// --------------------------------------------------
// Admin: GET /admin/analytics/summary?from&to
// --------------------------------------------------
func (h *Handler) AnalyticsSummary(c *gin.Context) {
	sum, err := h.service.Summarize(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sum)
}
