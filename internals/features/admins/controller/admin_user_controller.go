package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	helper "eventku_backend/internals/helpers"

	"eventku_backend/internals/features/admins/dto"
	"eventku_backend/internals/features/admins/model"
)

var validate = validator.New()

// AdminUserController: manajemen akun admin (hanya untuk superadmin).
type AdminUserController struct {
	DB *gorm.DB
}

func NewAdminUserController(db *gorm.DB) *AdminUserController {
	return &AdminUserController{DB: db}
}

// 🟢 POST /api/admins
func (ctrl *AdminUserController) CreateAdmin(c *fiber.Ctx) error {
	var req dto.CreateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	roles := req.Roles
	if len(roles) == 0 {
		roles = []string{"admin"}
	}

	admin := model.AdminUserModel{
		AdminUserName:     req.Name,
		AdminUserEmail:    strings.ToLower(strings.TrimSpace(req.Email)),
		AdminUserPassword: string(hashed),
		AdminUserRoles:    pq.StringArray(roles),
		AdminUserIsActive: true,
	}
	if err := ctrl.DB.Create(&admin).Error; err != nil {
		log.Printf("[ERROR] Gagal membuat admin: %v", err)
		return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
	}

	return helper.JsonCreated(c, "Admin berhasil dibuat", fiber.Map{
		"admin_user_id":    admin.AdminUserID,
		"admin_user_name":  admin.AdminUserName,
		"admin_user_email": admin.AdminUserEmail,
		"admin_user_roles": admin.AdminUserRoles,
	})
}

// 🟢 GET /api/admins
func (ctrl *AdminUserController) GetAdmins(c *fiber.Ctx) error {
	var admins []model.AdminUserModel
	if err := ctrl.DB.
		Select("admin_user_id, admin_user_name, admin_user_email, admin_user_roles, admin_user_is_active, admin_user_created_at").
		Order("admin_user_created_at ASC").
		Find(&admins).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil daftar admin: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar admin")
	}
	return helper.JsonOK(c, "Daftar admin", admins)
}

// 🟡 PUT /api/admins/:id/active — aktif/nonaktifkan akun (soft disable, bukan
// hapus; token lama tetap ditolak AuthMiddleware begitu is_active false)
func (ctrl *AdminUserController) SetAdminActive(c *fiber.Ctx) error {
	id := c.Params("id")

	var body struct {
		IsActive *bool `json:"is_active" validate:"required"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	res := ctrl.DB.Model(&model.AdminUserModel{}).
		Where("admin_user_id = ?", id).
		Update("admin_user_is_active", *body.IsActive)
	if res.Error != nil {
		log.Printf("[ERROR] Gagal mengubah status admin %s: %v", id, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status admin")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Admin tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Status admin diperbarui", fiber.Map{
		"admin_user_id": id,
		"is_active":     *body.IsActive,
	})
}
