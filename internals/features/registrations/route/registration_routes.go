package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventku_backend/internals/features/registrations/controller"
	"eventku_backend/internals/features/registrations/repository"
	"eventku_backend/internals/middlewares"
)

// KioskRoutes: jalur publik untuk layar registrasi & scan QR.
func KioskRoutes(api fiber.Router, repo repository.Repository) {
	kiosk := controller.NewKioskController(repo)

	api.Post("/register", middlewares.RegisterRateLimiter(), kiosk.Register)
	api.Post("/checkin", kiosk.Checkin)
}

// RegistrationAdminRoutes: listing, purge, dan reset check-in.
func RegistrationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewRegistrationAdminController(db)

	admin.Get("/registrations", ctrl.GetRegistrations)
	admin.Delete("/registrations", ctrl.PurgeRegistrations)
	admin.Post("/registrations/reset-checkins", ctrl.ResetCheckins)
}
