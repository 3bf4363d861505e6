package suggestion

import (
	"go-research/internal/common/api"
	"go-research/internal/config"
	"go-research/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type SuggestionApi struct {
	SuggestionController *SuggestionController
	Config               *config.Config
}

func NewSuggestionApi(suggestionController *SuggestionController, cfg *config.Config) api.Route {
	return &SuggestionApi{
		SuggestionController: suggestionController,
		Config:               cfg,
	}
}

func (api *SuggestionApi) Setup(app *fiber.App) {
	group := app.Group("/api/suggestions", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Get("/", api.SuggestionController.ListSuggestions)
}
