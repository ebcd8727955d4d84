package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "eventku_backend/internals/features/admins/route"
	eventRoute "eventku_backend/internals/features/events/route"
	raffleRoute "eventku_backend/internals/features/raffle/route"
	registrationRoute "eventku_backend/internals/features/registrations/route"
	"eventku_backend/internals/features/registrations/repository"
	authMiddleware "eventku_backend/internals/middlewares/auth"
)

// SetupRoutes merakit seluruh endpoint: kiosk (publik), auth, dan admin.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	SetupBaseRoutes(app, db)

	repo := repository.NewGormRepository(db)
	api := app.Group("/api")

	// ===== Publik (kiosk & layar undian) =====
	registrationRoute.KioskRoutes(api, repo)
	eventRoute.EventPublicRoutes(api, db, repo)
	raffleRoute.RaffleRoutes(api, repo)

	// ===== Auth =====
	adminRoute.AuthRoutes(api, db)

	// ===== Admin (JWT + blacklist check) =====
	admin := app.Group("/api", authMiddleware.AuthMiddleware(db))
	eventRoute.EventAdminRoutes(admin, db, repo)
	registrationRoute.RegistrationAdminRoutes(admin, db)
	adminRoute.AdminUserRoutes(admin, db)
}
