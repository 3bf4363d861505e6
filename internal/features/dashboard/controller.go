package dashboard

import (
	"go-research/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type WidgetController struct {
	WidgetService WidgetService
	Sessions      *SessionManager
}

func NewWidgetController(widgetService WidgetService, sessions *SessionManager) *WidgetController {
	return &WidgetController{
		WidgetService: widgetService,
		Sessions:      sessions,
	}
}

type addWidgetRequest struct {
	WidgetType   WidgetType `json:"widget_type"`
	ModifierHeld bool       `json:"modifier_held"`
}

type layoutRequest struct {
	Updates []GeometryUpdate `json:"updates"`
}

type configureRequest struct {
	Config map[string]interface{} `json:"config"`
}

func (ctrl *WidgetController) session(ctx *fiber.Ctx) (*Session, error) {
	claims, ok := middleware.CurrentClaims(ctx)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	return ctrl.Sessions.Session(claims.UserID), nil
}

// ListWidgets returns the user's dashboard, cache-first with a background
// remote reconcile on the initial load.
func (ctrl *WidgetController) ListWidgets(ctx *fiber.Ctx) error {
	sess, err := ctrl.session(ctx)
	if err != nil {
		return err
	}

	widgets, err := ctrl.WidgetService.LoadWidgets(ctx.UserContext(), sess)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(widgets)
}

func (ctrl *WidgetController) AddWidget(ctx *fiber.Ctx) error {
	sess, err := ctrl.session(ctx)
	if err != nil {
		return err
	}

	var req addWidgetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	widget, err := ctrl.WidgetService.AddWidget(ctx.UserContext(), sess, req.WidgetType, req.ModifierHeld)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(widget)
}

// UpdateLayout takes the full geometry batch produced by one layout settle
// event.
func (ctrl *WidgetController) UpdateLayout(ctx *fiber.Ctx) error {
	sess, err := ctrl.session(ctx)
	if err != nil {
		return err
	}

	var req layoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := ctrl.WidgetService.UpdateGeometry(ctx.UserContext(), sess, req.Updates); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"message": "layout updated"})
}

func (ctrl *WidgetController) ConfigureWidget(ctx *fiber.Ctx) error {
	sess, err := ctrl.session(ctx)
	if err != nil {
		return err
	}

	var req configureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	widget, err := ctrl.WidgetService.ConfigureWidget(ctx.UserContext(), sess, ctx.Params("id"), req.Config)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(widget)
}

func (ctrl *WidgetController) RemoveWidget(ctx *fiber.Ctx) error {
	sess, err := ctrl.session(ctx)
	if err != nil {
		return err
	}

	if err := ctrl.WidgetService.RemoveWidget(ctx.UserContext(), sess, ctx.Params("id")); err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
