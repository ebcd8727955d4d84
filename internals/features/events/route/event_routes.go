package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventku_backend/internals/features/events/controller"
	"eventku_backend/internals/features/registrations/repository"
)

// EventPublicRoutes: dibaca kiosk & layar publik, tanpa auth.
func EventPublicRoutes(api fiber.Router, db *gorm.DB, repo repository.Repository) {
	eventCtrl := controller.NewEventController(db, repo)
	imageCtrl := controller.NewEventImageController(db)

	api.Get("/events", eventCtrl.GetAllEvents)
	api.Get("/events/images/:id", imageCtrl.GetImage) // harus sebelum /events/:id
	api.Get("/events/:id", eventCtrl.GetEventByID)
	api.Get("/todays-events", eventCtrl.GetTodaysEvents)
}

// EventAdminRoutes: mutasi event, dilindungi AuthMiddleware di pemanggil.
func EventAdminRoutes(admin fiber.Router, db *gorm.DB, repo repository.Repository) {
	eventCtrl := controller.NewEventController(db, repo)
	imageCtrl := controller.NewEventImageController(db)

	admin.Post("/events", eventCtrl.CreateEvent)
	admin.Put("/events/:id", eventCtrl.UpdateEvent)
	admin.Delete("/events/:id", eventCtrl.DeleteEvent)
	admin.Post("/events/images", imageCtrl.UploadImage)
}
