package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "eventku_backend/internals/helpers"

	"eventku_backend/internals/features/events/dto"
	"eventku_backend/internals/features/events/model"
	"eventku_backend/internals/features/registrations/repository"
)

var validate = validator.New()

type EventController struct {
	DB   *gorm.DB
	Repo repository.Repository
}

func NewEventController(db *gorm.DB, repo repository.Repository) *EventController {
	return &EventController{DB: db, Repo: repo}
}

// adminUUIDFromLocals membaca admin_id yang diset AuthMiddleware (audit field)
func adminUUIDFromLocals(c *fiber.Ctx) *uuid.UUID {
	raw, ok := c.Locals("admin_id").(string)
	if !ok || raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

// 🟢 POST /api/events
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] Body parser gagal: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	newEvent := req.ToModel(adminUUIDFromLocals(c))
	if err := ctrl.DB.Create(newEvent).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan event")
	}

	return helper.JsonCreated(c, "Event berhasil ditambahkan", dto.ToEventResponse(newEvent))
}

// 🟢 GET /api/events  (+ pagination)
func (ctrl *EventController) GetAllEvents(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := (page - 1) * limit

	var total int64
	if err := ctrl.DB.Model(&model.EventModel{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] Count all events: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung event")
	}

	var events []model.EventModel
	if err := ctrl.DB.
		Order("event_start_at DESC").
		Limit(limit).Offset(offset).
		Find(&events).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil semua event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data event")
	}

	pagination := fiber.Map{
		"page":        page,
		"limit":       limit,
		"total":       total,
		"total_pages": int((total + int64(limit) - 1) / int64(limit)),
		"has_next":    int64(page*limit) < total,
		"has_prev":    page > 1,
	}

	return helper.JsonList(c, dto.ToEventResponseList(events), pagination)
}

// 🟢 GET /api/todays-events — event yang berlangsung hari ini (dipakai kiosk
// saat memilih event aktif)
func (ctrl *EventController) GetTodaysEvents(c *fiber.Ctx) error {
	var events []model.EventModel
	if err := ctrl.DB.
		Where("DATE(event_start_at) <= CURRENT_DATE AND DATE(event_end_at) >= CURRENT_DATE").
		Order("event_start_at ASC").
		Find(&events).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil event hari ini: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil event hari ini")
	}

	return helper.JsonOK(c, "Event hari ini", dto.ToEventResponseList(events))
}

// 🟢 GET /api/events/:id
func (ctrl *EventController) GetEventByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event ID tidak boleh kosong")
	}

	var ev model.EventModel
	if err := ctrl.DB.Where("event_id = ?", id).First(&ev).Error; err != nil {
		log.Printf("[ERROR] Event dengan ID '%s' tidak ditemukan: %v", id, err)
		return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}

	return helper.JsonOK(c, "Event berhasil ditemukan", dto.ToEventResponse(&ev))
}

// 🟡 PUT /api/events/:id
func (ctrl *EventController) UpdateEvent(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event ID tidak boleh kosong")
	}

	// Ambil record lama
	var ev model.EventModel
	if err := ctrl.DB.Where("event_id = ?", id).First(&ev).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}

	var req dto.EventUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.EventName != nil {
		updates["event_name"] = *req.EventName
	}
	if req.EventStartAt != nil {
		updates["event_start_at"] = *req.EventStartAt
	}
	if req.EventEndAt != nil {
		updates["event_end_at"] = *req.EventEndAt
	}
	if req.EventLocation != nil {
		updates["event_location"] = *req.EventLocation
	}
	if req.EventRafflePrize != nil {
		updates["event_raffle_prize"] = *req.EventRafflePrize
	}
	if req.EventAskVolunteer != nil {
		updates["event_ask_volunteer"] = *req.EventAskVolunteer
	}
	if req.EventWelcomeText != nil {
		updates["event_welcome_text"] = *req.EventWelcomeText
	}
	if req.EventFooterContacts != nil {
		updates["event_footer_contacts"] = *req.EventFooterContacts
	}
	if req.EventBannerImageID != nil {
		updates["event_banner_image_id"] = *req.EventBannerImageID
	}
	if req.EventHeaderImageID != nil {
		updates["event_header_image_id"] = *req.EventHeaderImageID
	}

	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diupdate")
	}
	// Validasi rentang waktu pada hasil merge: update parsial tidak boleh
	// membuat end mendahului start
	if err := req.ValidateWindow(ev.EventStartAt, ev.EventEndAt); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "event_end_at tidak boleh sebelum event_start_at")
	}
	if admin := adminUUIDFromLocals(c); admin != nil {
		updates["event_modified_by"] = *admin
	}

	if err := ctrl.DB.Model(&ev).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui event")
	}

	// Reload untuk response terbaru
	if err := ctrl.DB.Where("event_id = ?", id).First(&ev).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data event terbaru")
	}

	return helper.JsonUpdated(c, "Event berhasil diperbarui", dto.ToEventResponse(&ev))
}

// 🔴 DELETE /api/events/:id
// Hard delete. FK registrations → events memakai SET NULL: registrasi milik
// event ini TIDAK ikut terhapus, hanya kehilangan referensi event-nya
// (snapshot nama/tanggal tetap ada di baris registrasi).
func (ctrl *EventController) DeleteEvent(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event ID tidak boleh kosong")
	}
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event ID tidak valid")
	}

	if err := ctrl.Repo.DeleteEvent(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
		}
		log.Printf("[ERROR] Gagal menghapus event %d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus event")
	}

	log.Printf("[INFO] Event %d dihapus oleh admin %v (registrasi dilepas, tidak dihapus)", id, c.Locals("admin_id"))
	return helper.JsonDeleted(c, "Event berhasil dihapus", nil)
}
