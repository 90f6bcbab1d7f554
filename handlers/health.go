package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coachdesk/coachdesk-api/database"
)

// HandleCheckHealth reports service and database health
func HandleCheckHealth(c *fiber.Ctx, store database.Storage) error {
	if err := store.HealthCheck(); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "degraded",
			"db":     err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
