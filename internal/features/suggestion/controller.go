package suggestion

import (
	"github.com/gofiber/fiber/v2"
)

type SuggestionController struct {
	SuggestionService SuggestionService
}

func NewSuggestionController(suggestionService SuggestionService) *SuggestionController {
	return &SuggestionController{SuggestionService: suggestionService}
}

func (ctrl *SuggestionController) ListSuggestions(ctx *fiber.Ctx) error {
	suggestions, err := ctrl.SuggestionService.ListSuggestions(ctx.UserContext(), ctx.Query("research_area"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(suggestions)
}
