package collaboration

import (
	"github.com/gofiber/fiber/v2"
)

type CollaborationController struct {
	CollaborationService CollaborationService
}

func NewCollaborationController(collaborationService CollaborationService) *CollaborationController {
	return &CollaborationController{
		CollaborationService: collaborationService,
	}
}

type respondRequest struct {
	Status InvitationStatus `json:"status"`
}

func (ctrl *CollaborationController) ListCollaborators(ctx *fiber.Ctx) error {
	collaborators, err := ctrl.CollaborationService.ListCollaborators(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(collaborators)
}

func (ctrl *CollaborationController) SendInvitation(ctx *fiber.Ctx) error {
	var req InviteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entry, err := ctrl.CollaborationService.SendInvitation(ctx.UserContext(), ctx.Params("id"), req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(entry)
}

func (ctrl *CollaborationController) RemoveCollaborator(ctx *fiber.Ctx) error {
	err := ctrl.CollaborationService.RemoveCollaborator(ctx.UserContext(), ctx.Params("id"), ctx.Params("userId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

func (ctrl *CollaborationController) RespondToInvitation(ctx *fiber.Ctx) error {
	var req respondRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entry, err := ctrl.CollaborationService.RespondToInvitation(ctx.UserContext(), ctx.Params("id"), ctx.Params("userId"), req.Status)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(entry)
}
