package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventku_backend/internals/features/admins/service"
)

// AuthController tipis: semua logika di service.
type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// 🟢 POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ctrl.DB, c)
}

// 🟢 POST /api/auth/login-google
func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	return service.LoginGoogle(ctrl.DB, c)
}

// 🟡 POST /api/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(ctrl.DB, c)
}
