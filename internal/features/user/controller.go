package user

import (
	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	UserService UserService
}

func NewUserController(userService UserService) *UserController {
	return &UserController{UserService: userService}
}

func (ctrl *UserController) GetUser(ctx *fiber.Ctx) error {
	u, err := ctrl.UserService.GetUser(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(u)
}

func (ctrl *UserController) ListUsers(ctx *fiber.Ctx) error {
	users, err := ctrl.UserService.ListUsers(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(users)
}

func (ctrl *UserController) PromoteUser(ctx *fiber.Ctx) error {
	u, err := ctrl.UserService.PromoteUser(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(u)
}
