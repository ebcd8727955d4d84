package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	helper "eventku_backend/internals/helpers"

	"eventku_backend/internals/features/registrations/dto"
	"eventku_backend/internals/features/registrations/repository"
	"eventku_backend/internals/features/registrations/service"
)

var validate = validator.New()

// KioskController melayani endpoint publik yang dipakai form pendaftaran dan
// kiosk scanner. Responsnya flat `{success, ...}` sesuai kontrak frontend —
// bukan envelope admin.
type KioskController struct {
	Repo repository.Repository
	Gate *service.CheckinGate
}

func NewKioskController(repo repository.Repository) *KioskController {
	return &KioskController{
		Repo: repo,
		Gate: service.NewCheckinGate(repo),
	}
}

// 🟢 POST /api/register
func (ctrl *KioskController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Permintaan tidak valid",
		})
	}

	if err := validate.Struct(req); err != nil {
		// form kiosk cukup menampilkan masalah pertama
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   helper.FirstValidationMessage(err),
		})
	}

	ev, err := ctrl.Repo.FindEventByID(c.UserContext(), req.EventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Event tidak ditemukan",
			})
		}
		log.Printf("[ERROR] Gagal memuat event %d: %v", req.EventID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Terjadi kesalahan, coba lagi",
		})
	}

	reg := req.ToModel(ev)
	if err := ctrl.Repo.Insert(c.UserContext(), reg); err != nil {
		log.Printf("[ERROR] Gagal menyimpan registrasi: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Gagal menyimpan pendaftaran",
		})
	}

	// Email QR best-effort: registrasi sudah tersimpan, kegagalan email tidak
	// menggagalkan response.
	qrPNG, err := helper.EncodeQRPNG(helper.QRPayload{
		RegistrationID: reg.RegistrationID,
		Name:           reg.RegistrationName,
	}, 256)
	if err != nil {
		log.Printf("[ERROR] Gagal generate QR untuk registrasi %d: %v", reg.RegistrationID, err)
	} else {
		helper.SendRegistrationEmail(reg.RegistrationEmail, reg.RegistrationName, reg.RegistrationEventName, qrPNG)
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"registrationId": reg.RegistrationID,
	})
}

// 🟢 POST /api/checkin
// Hasil scan QR `{registrationId, name}`; gate hanya memakai registrationId.
func (ctrl *KioskController) Checkin(c *fiber.Ctx) error {
	var req dto.CheckinRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Permintaan tidak valid",
		})
	}

	// fallback: scanner mengirim teks QR mentah, bukan registrationId
	if req.RegistrationID == 0 && req.QR != "" {
		payload, err := helper.DecodeQRPayload(req.QR)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "QR tidak dikenali",
			})
		}
		req.RegistrationID = payload.RegistrationID
	}
	if req.RegistrationID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "registrationId wajib diisi",
		})
	}

	result, err := ctrl.Gate.Checkin(c.UserContext(), req.RegistrationID, req.EventID)
	if err != nil {
		log.Printf("[ERROR] Gate check-in gagal untuk registrasi %d: %v", req.RegistrationID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Terjadi kesalahan, coba scan lagi",
		})
	}

	switch result.Status {
	case service.CheckinFresh:
		return c.JSON(fiber.Map{
			"success":   true,
			"name":      result.Name,
			"eventName": result.EventName,
		})
	case service.CheckinAlready:
		// Product decision: scan ulang bukan error — sapa lagi dengan nama asli
		return c.JSON(fiber.Map{
			"success":          true,
			"alreadyCheckedIn": true,
			"name":             result.Name,
		})
	case service.CheckinWrongEvent:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":   false,
			"error":     "QR tidak berlaku untuk event ini",
			"eventName": result.EventName,
		})
	default: // service.CheckinNotFound
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Registrasi tidak ditemukan",
		})
	}
}
