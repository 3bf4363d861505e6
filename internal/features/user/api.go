package user

import (
	"go-research/internal/common/api"
	"go-research/internal/config"
	"go-research/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type UserApi struct {
	UserController *UserController
	Config         *config.Config
}

func NewUserApi(userController *UserController, cfg *config.Config) api.Route {
	return &UserApi{
		UserController: userController,
		Config:         cfg,
	}
}

func (api *UserApi) Setup(app *fiber.App) {
	group := app.Group("/api/users", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Get("/", api.UserController.ListUsers)
	group.Get("/:id", api.UserController.GetUser)

	// Promotion is admin-only
	group.Post("/:id/promote", middleware.AdminMiddleware(), api.UserController.PromoteUser)
}
