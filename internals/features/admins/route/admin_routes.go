package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventku_backend/internals/features/admins/controller"
	"eventku_backend/internals/middlewares"
	authMiddleware "eventku_backend/internals/middlewares/auth"
)

// AuthRoutes: login/logout admin panel.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	auth.Post("/logout", authMiddleware.AuthMiddleware(db), ctrl.Logout)
}

// AdminUserRoutes: manajemen akun admin, dilindungi AuthMiddleware di pemanggil.
func AdminUserRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAdminUserController(db)

	admin.Post("/admins", ctrl.CreateAdmin)
	admin.Get("/admins", ctrl.GetAdmins)
	admin.Put("/admins/:id/active", ctrl.SetAdminActive)
}
