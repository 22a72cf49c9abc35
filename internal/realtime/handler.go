package realtime

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy
}

// --------------------------------------------------
// GET /admin/orders/ws - staff dashboard stream
// --------------------------------------------------
func (h *Handler) OrdersWS(c *gin.Context) {
	userID, _ := c.Get("userID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	id, _ := userID.(string)
	client := NewClient(id, conn)
	h.hub.Register(client)
	go client.WritePump()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.hub.Unregister(client)
			return
		}
	}
}
