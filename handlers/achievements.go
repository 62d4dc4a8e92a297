package handlers

import (
	"findly-api/services"

	"github.com/gofiber/fiber/v2"
)

type achievementRequest struct {
	Name           string `json:"name" validate:"required,max=40"`
	Category       string `json:"category" validate:"required,max=20"`
	Description    string `json:"descr" validate:"required"`
	PointsRequired *int64 `json:"pointsr" validate:"required"`
}

func (r *achievementRequest) input() services.AchievementInput {
	return services.AchievementInput{
		Name:           r.Name,
		Category:       r.Category,
		Description:    r.Description,
		PointsRequired: *r.PointsRequired,
	}
}

func SetupAchievementRoutes(router fiber.Router, achievements *services.AchievementService) {
	r := router.Group("/achievements")
	r.Get("/", listHandler(achievements.ListAll))
	r.Get("/:id", getHandler(achievements.GetByID))
	r.Post("/", createHandler(achievements.Create, (*achievementRequest).input))
	r.Put("/:id", updateHandler("achievement", achievements.Update, (*achievementRequest).input))
	r.Delete("/:id", deleteHandler("achievement", achievements.Delete))
}
