package system

import (
	"go-research/internal/common/api"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type WebSocketApi struct {
	WebSocketController *WebSocketController
}

func NewWebSocketApi(webSocketController *WebSocketController) api.Route {
	return &WebSocketApi{
		WebSocketController: webSocketController,
	}
}

func (api *WebSocketApi) Setup(app *fiber.App) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws/dashboard", websocket.New(api.WebSocketController.HandleDashboardSync))
}
