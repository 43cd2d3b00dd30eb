package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewServer builds the Fiber app with all middleware and routes wired.
func NewServer(app *WebApp) *fiber.App {
	srv := fiber.New(fiber.Config{
		AppName:      "NES Game Library",
		ServerHeader: "NESLib",
		ErrorHandler: CustomErrorHandler,
	})

	srv.Use(recover.New())
	srv.Use(SecurityHeaders())
	srv.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	srv.Use(cors.New())
	srv.Use(LoggingMiddleware())

	setupRoutes(srv, app)
	return srv
}

func setupRoutes(srv *fiber.App, app *WebApp) {
	srv.Get("/health", HealthCheck(app))

	api := srv.Group("/api")

	games := api.Group("/games")
	games.Get("/", ListGames(app))
	games.Get("/suggest", SuggestGames(app))

	view := api.Group("/view")
	view.Post("/reset", ResetView(app))

	meta := api.Group("/meta")
	meta.Get("/categories", ListCategories(app))

	api.Get("/prefs", GetPreferences(app))
	api.Put("/prefs", UpdatePreferences(app))

	api.Get("/recent", GetRecent(app))
	api.Post("/recent", RecordPlay(app))

	srv.Use(func(c *fiber.Ctx) error {
		return SendNotFound(c, "The requested endpoint does not exist")
	})
}
