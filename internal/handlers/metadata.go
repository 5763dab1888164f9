package handlers

import (
	"github.com/gofiber/fiber/v2"

	u "github.com/akamhy/thumbnail-generator/internal/utils"
)

// HandleAPIMetadata serves the service description at the documentation
// root. Unknown routes redirect here instead of returning 404s.
func HandleAPIMetadata(cfg u.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"title":            cfg.API.Title,
			"description":      cfg.API.Description,
			"version":          cfg.API.Version,
			"terms_of_service": cfg.API.TermsOfService,
			"contact": fiber.Map{
				"name":  cfg.API.ContactName,
				"email": cfg.API.ContactEmail,
				"url":   cfg.API.Website,
			},
			"endpoint": fiber.Map{
				"path":  cfg.Thumbnail.EndpointPrefix + "{text}.png",
				"query": []string{"width", "height", "top_color", "bottom_color"},
			},
		})
	}
}
