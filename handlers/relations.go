package handlers

import (
	"findly-api/models"
	"findly-api/services"

	"github.com/gofiber/fiber/v2"
)

type gameClueRequest struct {
	GameID *int64 `json:"game_id" validate:"required,gt=0"`
	ClueID *int64 `json:"clue_id" validate:"required,gt=0"`
}

func (r *gameClueRequest) input() services.GameClueInput {
	return services.GameClueInput{GameID: *r.GameID, ClueID: *r.ClueID}
}

func SetupGameClueRoutes(router fiber.Router, gameClues *services.GameClueService) {
	r := router.Group("/games-clues")
	r.Get("/", listHandler(gameClues.ListAll))
	r.Get("/:id", getHandler(gameClues.GetByID))
	r.Post("/", createHandler(gameClues.Create, (*gameClueRequest).input))
	r.Put("/:id", updateHandler("game clue", gameClues.Update, (*gameClueRequest).input))
	r.Delete("/:id", deleteHandler("game clue", gameClues.Delete))
}

type gameUserRequest struct {
	GameID *int64 `json:"game_id" validate:"required,gt=0"`
	UserID *int64 `json:"user_id" validate:"required,gt=0"`
	Score  *int64 `json:"score" validate:"required"`
	Status string `json:"status" validate:"required,game_status"`
}

func (r *gameUserRequest) input() services.GameUserInput {
	return services.GameUserInput{
		GameID: *r.GameID,
		UserID: *r.UserID,
		Score:  *r.Score,
		Status: models.GameUserStatus(r.Status),
	}
}

func SetupGameUserRoutes(router fiber.Router, gameUsers *services.GameUserService) {
	r := router.Group("/games-users")
	r.Get("/", listHandler(gameUsers.ListAll))
	r.Get("/:id", getHandler(gameUsers.GetByID))
	r.Post("/", createHandler(gameUsers.Create, (*gameUserRequest).input))
	r.Put("/:id", updateHandler("game user", gameUsers.Update, (*gameUserRequest).input))
	r.Delete("/:id", deleteHandler("game user", gameUsers.Delete))
}

type userAchievementRequest struct {
	UserID        *int64 `json:"user_id" validate:"required,gt=0"`
	AchievementID *int64 `json:"achievement_id" validate:"required,gt=0"`
}

func (r *userAchievementRequest) input() services.UserAchievementInput {
	return services.UserAchievementInput{UserID: *r.UserID, AchievementID: *r.AchievementID}
}

func SetupUserAchievementRoutes(router fiber.Router, userAchievements *services.UserAchievementService) {
	r := router.Group("/users-achievements")
	r.Get("/", listHandler(userAchievements.ListAll))
	r.Get("/:id", getHandler(userAchievements.GetByID))
	r.Post("/", createHandler(userAchievements.Create, (*userAchievementRequest).input))
	r.Put("/:id", updateHandler("user achievement", userAchievements.Update, (*userAchievementRequest).input))
	r.Delete("/:id", deleteHandler("user achievement", userAchievements.Delete))
}

type userTreasureRequest struct {
	UserID     *int64 `json:"user_id" validate:"required,gt=0"`
	TreasureID *int64 `json:"treasure_id" validate:"required,gt=0"`
	IsVerified *bool  `json:"is_v" validate:"required"`
}

func (r *userTreasureRequest) input() services.UserTreasureInput {
	return services.UserTreasureInput{UserID: *r.UserID, TreasureID: *r.TreasureID, IsVerified: *r.IsVerified}
}

func SetupUserTreasureRoutes(router fiber.Router, userTreasures *services.UserTreasureService) {
	r := router.Group("/users-treasures")
	r.Get("/", listHandler(userTreasures.ListAll))
	r.Get("/:id", getHandler(userTreasures.GetByID))
	r.Post("/", createHandler(userTreasures.Create, (*userTreasureRequest).input))
	r.Put("/:id", updateHandler("user treasure", userTreasures.Update, (*userTreasureRequest).input))
	r.Delete("/:id", deleteHandler("user treasure", userTreasures.Delete))
}
