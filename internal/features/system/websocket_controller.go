package system

import (
	"go-research/pkg/utils"

	"github.com/gofiber/contrib/websocket"
)

type WebSocketController struct {
	Hub *SyncHub
}

func NewWebSocketController(hub *SyncHub) *WebSocketController {
	return &WebSocketController{Hub: hub}
}

// HandleDashboardSync keeps the socket open and subscribed to the caller's
// sync events until the peer goes away. Inbound messages are ignored; the
// stream is one-way.
func (h *WebSocketController) HandleDashboardSync(c *websocket.Conn) {
	claims, err := utils.ValidateToken(c.Query("token"))
	if err != nil {
		c.WriteJSON(map[string]string{"error": "invalid token"})
		c.Close()
		return
	}

	h.Hub.Register(claims.UserID, c)
	defer h.Hub.Unregister(claims.UserID, c)

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
