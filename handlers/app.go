package handlers

import (
	"strings"

	"findly-api/middleware"
	"findly-api/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

type AppConfig struct {
	BasePath       string
	AllowedOrigins string
	// Images is optional. Without it the treasure image route is not mounted.
	Images ImageStore
}

// NewApp wires the middleware chain and every resource route under BasePath.
func NewApp(svc *services.Services, cfg AppConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "findly-api",
		ErrorHandler: ErrorHandler,
		BodyLimit:    maxImageSize + 1<<20,
	})

	useMiddleware(app, cfg.AllowedOrigins)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the Findly API")
	})

	api := app.Group(cfg.BasePath)
	if cfg.BasePath != "" {
		api.Get("/", func(c *fiber.Ctx) error {
			return c.SendString("Welcome to the Findly API")
		})
	}

	SetupUserRoutes(api, svc.Users)
	SetupGameRoutes(api, svc.Games)
	SetupTreasureRoutes(api, svc.Treasures, cfg.Images)
	SetupAchievementRoutes(api, svc.Achievements)
	SetupClueRoutes(api, svc.Clues)
	SetupGameUserRoutes(api, svc.GameUsers)
	SetupUserTreasureRoutes(api, svc.UserTreasures)
	SetupLeaderboardRoutes(api, svc.Leaderboards)
	SetupUserAchievementRoutes(api, svc.UserAchievements)
	SetupGameClueRoutes(api, svc.GameClues)

	app.Use(func(c *fiber.Ctx) error {
		return sendMessage(c, fiber.StatusNotFound, "Endpoint not found")
	})
	return app
}

// useMiddleware installs the chain every route runs behind. recover sits inside
// the request logger so a panic is logged as a 500 like any other failure.
func useMiddleware(app *fiber.App, allowedOrigins string) {
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.RequestLogger())
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:  normalizeOrigins(allowedOrigins),
		AllowMethods:  "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:  "Origin, Content-Type, Accept, X-Request-ID",
		ExposeHeaders: "X-Request-ID",
	}))
}

func normalizeOrigins(raw string) string {
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return "*"
	}
	return strings.Join(out, ",")
}
