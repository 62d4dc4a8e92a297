package handlers

import (
	"findly-api/services"

	"github.com/gofiber/fiber/v2"
)

type leaderboardRequest struct {
	PointsEarned *int64 `json:"points_e" validate:"required"`
	UserID       *int64 `json:"user_id" validate:"required,gt=0"`
}

func (r *leaderboardRequest) input() services.LeaderboardInput {
	return services.LeaderboardInput{PointsEarned: *r.PointsEarned, UserID: *r.UserID}
}

func SetupLeaderboardRoutes(router fiber.Router, leaderboards *services.LeaderboardService) {
	r := router.Group("/leaderboards")
	r.Get("/", listHandler(leaderboards.ListAll))
	r.Get("/:id", getHandler(leaderboards.GetByID))
	r.Post("/", createHandler(leaderboards.Create, (*leaderboardRequest).input))
	r.Put("/:id", updateHandler("leaderboard", leaderboards.Update, (*leaderboardRequest).input))
	r.Delete("/:id", deleteHandler("leaderboard", leaderboards.Delete))
}
