package collaboration

import (
	"go-research/internal/common/api"
	"go-research/internal/config"
	"go-research/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type CollaborationApi struct {
	CollaborationController *CollaborationController
	Config                  *config.Config
}

func NewCollaborationApi(collaborationController *CollaborationController, cfg *config.Config) api.Route {
	return &CollaborationApi{
		CollaborationController: collaborationController,
		Config:                  cfg,
	}
}

func (api *CollaborationApi) Setup(app *fiber.App) {
	group := app.Group("/api/projects/:id/collaborators", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Get("/", api.CollaborationController.ListCollaborators)
	group.Post("/", api.CollaborationController.SendInvitation)
	group.Delete("/:userId", api.CollaborationController.RemoveCollaborator)
	group.Patch("/:userId/status", api.CollaborationController.RespondToInvitation)
}
