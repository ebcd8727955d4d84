package route

import (
	"github.com/gofiber/fiber/v2"

	"eventku_backend/internals/features/raffle/controller"
	"eventku_backend/internals/features/registrations/repository"
)

// RaffleRoutes: layar roda undian berjalan di kiosk yang sama dengan
// check-in, jadi endpoint ini publik.
func RaffleRoutes(api fiber.Router, repo repository.Repository) {
	ctrl := controller.NewRaffleController(repo)

	api.Get("/raffle/eligible-users", ctrl.GetEligibleUsers)
	api.Get("/raffle-winners", ctrl.GetWinners)
	api.Post("/raffle-winners", ctrl.RecordWinner)
}
