package dashboard

import (
	"go-research/internal/common/api"
	"go-research/internal/config"
	"go-research/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type WidgetApi struct {
	WidgetController *WidgetController
	Config           *config.Config
}

func NewWidgetApi(widgetController *WidgetController, cfg *config.Config) api.Route {
	return &WidgetApi{
		WidgetController: widgetController,
		Config:           cfg,
	}
}

func (api *WidgetApi) Setup(app *fiber.App) {
	group := app.Group("/api/dashboard/widgets", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Get("/", api.WidgetController.ListWidgets)
	group.Post("/", api.WidgetController.AddWidget)
	group.Put("/layout", api.WidgetController.UpdateLayout)
	group.Put("/:id/config", api.WidgetController.ConfigureWidget)
	group.Delete("/:id", api.WidgetController.RemoveWidget)
}
