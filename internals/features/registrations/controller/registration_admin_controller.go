package controller

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "eventku_backend/internals/helpers"

	"eventku_backend/internals/features/registrations/dto"
	"eventku_backend/internals/features/registrations/model"
)

// RegistrationAdminController: operasi administratif di atas tabel
// registrations (listing, purge massal, reset check-in).
type RegistrationAdminController struct {
	DB *gorm.DB
}

func NewRegistrationAdminController(db *gorm.DB) *RegistrationAdminController {
	return &RegistrationAdminController{DB: db}
}

// 🟢 GET /api/registrations?eventId=&checkedIn=&page=&limit=
func (ctrl *RegistrationAdminController) GetRegistrations(c *fiber.Ctx) error {
	// pagination
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	if limit < 1 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	offset := (page - 1) * limit

	q := ctrl.DB.Model(&model.RegistrationModel{})
	if evID, err := strconv.Atoi(c.Query("eventId")); err == nil && evID > 0 {
		q = q.Where("registration_event_id = ?", evID)
	}
	if ci := c.Query("checkedIn"); ci != "" {
		q = q.Where("registration_checked_in = ?", ci == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Count registrations: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung registrasi")
	}

	var regs []model.RegistrationModel
	if err := q.Order("registration_created_at DESC").
		Limit(limit).Offset(offset).
		Find(&regs).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil registrasi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data registrasi")
	}

	pagination := fiber.Map{
		"page":        page,
		"limit":       limit,
		"total":       total,
		"total_pages": int((total + int64(limit) - 1) / int64(limit)),
		"has_next":    int64(page*limit) < total,
		"has_prev":    page > 1,
	}

	return helper.JsonList(c, dto.ToRegistrationResponseList(regs), pagination)
}

// 🔴 DELETE /api/registrations — purge massal (satu-satunya jalur penghapusan
// registrasi; per-baris tidak disediakan)
func (ctrl *RegistrationAdminController) PurgeRegistrations(c *fiber.Ctx) error {
	res := ctrl.DB.Where("1 = 1").Delete(&model.RegistrationModel{})
	if res.Error != nil {
		log.Printf("[ERROR] Purge registrations: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus registrasi")
	}
	log.Printf("[INFO] Purge registrasi oleh admin %v: %d baris", c.Locals("admin_id"), res.RowsAffected)
	return helper.JsonDeleted(c, "Semua registrasi dihapus", fiber.Map{"deleted": res.RowsAffected})
}

// 🟡 POST /api/registrations/reset-checkins — satu-satunya aksi yang boleh
// mengembalikan flag check-in ke false (invariant: check-in tidak pernah
// di-reset per-baris)
func (ctrl *RegistrationAdminController) ResetCheckins(c *fiber.Ctx) error {
	res := ctrl.DB.Model(&model.RegistrationModel{}).
		Where("registration_checked_in = true").
		Updates(map[string]interface{}{
			"registration_checked_in":    false,
			"registration_checked_in_at": nil,
		})
	if res.Error != nil {
		log.Printf("[ERROR] Reset check-ins: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal reset check-in")
	}
	log.Printf("[INFO] Reset check-in oleh admin %v: %d baris", c.Locals("admin_id"), res.RowsAffected)
	return helper.JsonUpdated(c, "Semua check-in di-reset", fiber.Map{"reset": res.RowsAffected})
}
