package app

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/monitor"

	"github.com/akamhy/thumbnail-generator/internal/handlers"
	"github.com/akamhy/thumbnail-generator/internal/render"
	u "github.com/akamhy/thumbnail-generator/internal/utils"
)

// SetupApp creates and configures a new Fiber app instance
func SetupApp(cfg u.Config, renderer *render.Renderer) *fiber.App {
	app := fiber.New(fiber.Config{
		Prefork:               cfg.Server.Prefork,
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}

			u.Warn("Request failed", "path", c.Path(), "status", code, "message", msg)

			return c.Status(code).JSON(fiber.Map{
				"error": fiber.Map{
					"code":    code,
					"message": msg,
				},
			})
		},
	})

	RegisterMiddleware(app, cfg)
	RegisterRoutes(app, cfg, renderer)

	// Any unmatched path is sent to the documentation root, never a 404.
	app.Use(func(c *fiber.Ctx) error {
		return c.Redirect(cfg.API.DocsURL, fiber.StatusFound)
	})

	return app
}

// RegisterRoutes mounts all route handlers to the app
func RegisterRoutes(app *fiber.App, cfg u.Config, renderer *render.Renderer) {
	svc := handlers.NewThumbnailService(cfg, renderer)

	// Fiber serves HEAD for GET routes automatically.
	app.Get(cfg.Thumbnail.EndpointPrefix+":text.png", svc.HandleThumbnail)

	app.Get(cfg.API.DocsURL, handlers.HandleAPIMetadata(cfg))
	app.Get("/monitor", monitor.New())
}
