package handlers

import (
	"findly-api/services"

	"github.com/gofiber/fiber/v2"
)

type clueRequest struct {
	Text       string `json:"ctext" validate:"required"`
	TreasureID *int64 `json:"treasure_id" validate:"required,gt=0"`
}

func (r *clueRequest) input() services.ClueInput {
	return services.ClueInput{Text: r.Text, TreasureID: *r.TreasureID}
}

func SetupClueRoutes(router fiber.Router, clues *services.ClueService) {
	r := router.Group("/clues")
	r.Get("/", listHandler(clues.ListAll))
	r.Get("/:id", getHandler(clues.GetByID))
	r.Post("/", createHandler(clues.Create, (*clueRequest).input))
	r.Put("/:id", updateHandler("clue", clues.Update, (*clueRequest).input))
	r.Delete("/:id", deleteHandler("clue", clues.Delete))
}
