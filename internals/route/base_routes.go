package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupBaseRoutes: endpoint non-domain (health check untuk load balancer).
func SetupBaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
				"error":  "database handle tidak tersedia",
			})
		}
		if err := sqlDB.PingContext(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
				"error":  "database tidak merespon",
			})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
