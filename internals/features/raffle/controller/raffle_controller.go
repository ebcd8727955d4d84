package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	helper "eventku_backend/internals/helpers"

	"eventku_backend/internals/features/raffle/dto"
	"eventku_backend/internals/features/raffle/service"
	"eventku_backend/internals/features/registrations/repository"
)

var validate = validator.New()

// RaffleController melayani layar roda undian: kandidat (eligibility view),
// pencatatan pemenang, dan daftar pemenang.
type RaffleController struct {
	Service *service.Service
}

func NewRaffleController(repo repository.Repository) *RaffleController {
	return &RaffleController{Service: service.NewService(repo)}
}

// 🟢 GET /api/raffle/eligible-users?eventId=
// Dipanggil ulang tiap ronde spin — tanpa cache, supaya pemenang yang baru
// dicatat langsung keluar dari kandidat.
func (ctrl *RaffleController) GetEligibleUsers(c *fiber.Ctx) error {
	var eventID uint
	if raw := c.Query("eventId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "eventId tidak valid",
			})
		}
		eventID = uint(parsed)
	}

	regs, err := ctrl.Service.EligibleToday(c.UserContext(), eventID)
	if err != nil {
		log.Printf("[ERROR] Gagal mengambil kandidat undian: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Gagal mengambil kandidat undian",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"users":   dto.ToEligibleUserResponseList(regs),
	})
}

// 🟢 POST /api/raffle-winners
func (ctrl *RaffleController) RecordWinner(c *fiber.Ctx) error {
	var req dto.RecordWinnerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Permintaan tidak valid",
		})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   helper.FirstValidationMessage(err),
		})
	}

	winner, err := ctrl.Service.RecordWinner(c.UserContext(), req.RegistrationID)
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Registrasi tidak ditemukan",
			})
		}
		log.Printf("[ERROR] Gagal mencatat pemenang (registrasi %d): %v", req.RegistrationID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Gagal mencatat pemenang",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"winner":  dto.ToWinnerResponse(winner),
	})
}

// 🟢 GET /api/raffle-winners
func (ctrl *RaffleController) GetWinners(c *fiber.Ctx) error {
	winners, err := ctrl.Service.Winners(c.UserContext())
	if err != nil {
		log.Printf("[ERROR] Gagal mengambil daftar pemenang: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Gagal mengambil daftar pemenang",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"winners": dto.ToWinnerResponseList(winners),
	})
}
