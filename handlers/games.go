package handlers

import (
	"findly-api/services"

	"github.com/gofiber/fiber/v2"
)

type gameRequest struct {
	Name        string `json:"name" validate:"required,max=40"`
	Type        string `json:"type" validate:"required,max=20"`
	Description string `json:"desc" validate:"required"`
	Difficulty  string `json:"diff" validate:"required,max=14"`
}

func (r *gameRequest) input() services.GameInput {
	return services.GameInput{
		Name:        r.Name,
		Type:        r.Type,
		Description: r.Description,
		Difficulty:  r.Difficulty,
	}
}

func SetupGameRoutes(router fiber.Router, games *services.GameService) {
	r := router.Group("/games")
	r.Get("/", listHandler(games.ListAll))
	r.Get("/:id", getHandler(games.GetByID))
	r.Post("/", createHandler(games.Create, (*gameRequest).input))
	r.Put("/:id", updateHandler("game", games.Update, (*gameRequest).input))
	r.Delete("/:id", deleteHandler("game", games.Delete))
}
