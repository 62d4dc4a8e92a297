package handlers

import (
	"findly-api/services"

	"github.com/gofiber/fiber/v2"
)

type createUserRequest struct {
	Name  string `json:"name" validate:"required,max=40"`
	Email string `json:"email" validate:"required,email"`
	Pass  string `json:"pass" validate:"required,max_bytes=72"`
	// New accounts always start at zero; these are only type-checked.
	Points  *int64 `json:"points"`
	Rewards *int64 `json:"rewards"`
}

type updateUserRequest struct {
	Name    string `json:"name" validate:"required,max=40"`
	Email   string `json:"email" validate:"required,email"`
	Pass    string `json:"pass" validate:"required,max_bytes=72"`
	Points  *int64 `json:"points" validate:"required"`
	Rewards *int64 `json:"rewards" validate:"required"`
}

type loginRequest struct {
	Name string `json:"name" validate:"required"`
	Pass string `json:"pass" validate:"required"`
}

func SetupUserRoutes(router fiber.Router, users *services.UserService) {
	r := router.Group("/users")
	r.Get("/", listHandler(users.ListAll))
	r.Get("/:id", getHandler(users.GetByID))
	r.Post("/login", loginHandler(users))
	r.Post("/", createHandler(users.Create, func(req *createUserRequest) services.NewUserInput {
		return services.NewUserInput{Name: req.Name, Email: req.Email, Password: req.Pass}
	}))
	r.Put("/:id", updateHandler("user", users.Update, func(req *updateUserRequest) services.UserInput {
		return services.UserInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Pass,
			Points:   *req.Points,
			Rewards:  *req.Rewards,
		}
	}))
	r.Delete("/:id", deleteHandler("user", users.Delete))
}

func loginHandler(users *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := bind(c, &req); err != nil {
			return err
		}
		ok, err := users.CheckLogin(c.UserContext(), req.Name, req.Pass)
		if err != nil {
			return err
		}
		if !ok {
			return sendMessage(c, fiber.StatusUnauthorized, "Incorrect username or password")
		}
		return sendMessage(c, fiber.StatusOK, "User login successful")
	}
}
