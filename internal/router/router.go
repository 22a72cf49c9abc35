package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/announce"
	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/auth"
	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/cart"
	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/catalog"
	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/daily"
	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/favorites"
	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/middleware"
	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/order"
	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/realtime"
	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/sides"
)

// Handlers collects everything the router mounts. Tests wire this up
// with in-memory repositories.
type Handlers struct {
	Auth      *auth.Handler
	Catalog   *catalog.Handler
	Sides     *sides.Handler
	Daily     *daily.Handler
	Cart      *cart.Handler
	Favorites *favorites.Handler
	Order     *order.Handler
	Announce  *announce.Handler
	Realtime  *realtime.Handler
}

func New(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── PUBLIC: AUTH ─────────────────────────
	r.POST("/auth/login", h.Auth.Login)

	// ───────────────────────── PUBLIC: CATALOG ─────────────────────────
	r.GET("/menu", h.Catalog.BrowseMenu)
	r.GET("/menu/items/:id", h.Catalog.GetItem)
	r.GET("/menu/items/:id/sides", h.Sides.GetPolicy)

	// ───────────────────────── PUBLIC: DAILY OFFERS ─────────────────────────
	r.GET("/daily/today", h.Daily.Today)
	r.GET("/daily/:id", h.Daily.GetOffer)
	r.POST("/daily/:id/compose", h.Daily.Compose)
	r.POST("/daily/:id/cart", h.Daily.AddToCart)
	r.POST("/daily/:id/menu", h.Daily.AddMenuToCart)

	// ───────────────────────── PUBLIC: CART ─────────────────────────
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", h.Cart.Get)
		cartGroup.POST("/items", h.Cart.AddItem)
		cartGroup.PATCH("/items/:lineId", h.Cart.UpdateQuantity)
		cartGroup.DELETE("/items/:lineId", h.Cart.RemoveItem)
		cartGroup.DELETE("", h.Cart.Clear)
		cartGroup.POST("/validate", h.Sides.ValidateCart)
	}

	// ───────────────────────── PUBLIC: FAVORITES ─────────────────────────
	favGroup := r.Group("/favorites")
	{
		favGroup.GET("", h.Favorites.List)
		favGroup.POST("", h.Favorites.Save)
		favGroup.DELETE("/:id", h.Favorites.Delete)
		favGroup.POST("/:id/reorder", h.Favorites.Reorder)
	}

	// ───────────────────────── PUBLIC: ORDERS ─────────────────────────
	r.POST("/orders", h.Order.Submit)
	r.GET("/orders/:id", h.Order.Get)

	// ───────────────────────── PUBLIC: ANNOUNCEMENTS ─────────────────────────
	r.GET("/announcements", h.Announce.ListActive)

	// ───────────────────────── STAFF ─────────────────────────
	staff := r.Group("/admin")
	staff.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleStaff, auth.RoleAdmin),
	)
	{
		staff.GET("/orders", h.Order.List)
		staff.PATCH("/orders/:id/status", h.Order.UpdateStatus)
		staff.GET("/orders/ws", h.Realtime.OrdersWS)
	}

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		admin.POST("/staff", h.Auth.Register)

		admin.POST("/items", h.Catalog.CreateItem)
		admin.PATCH("/items/:id/active", h.Catalog.SetItemActive)
		admin.POST("/items/:id/image", h.Catalog.UploadItemImage)

		admin.POST("/daily", h.Daily.CreateOffer)

		admin.GET("/analytics/summary", h.Order.AnalyticsSummary)

		admin.GET("/announcements", h.Announce.ListAll)
		admin.POST("/announcements", h.Announce.Create)
		admin.DELETE("/announcements/:id", h.Announce.Delete)
	}

	return r
}
