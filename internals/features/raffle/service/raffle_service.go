package service

import (
	"context"
	"time"

	raffleModel "eventku_backend/internals/features/raffle/model"
	registrationModel "eventku_backend/internals/features/registrations/model"
	"eventku_backend/internals/features/registrations/repository"
)

// Service membungkus eligibility view + winner recorder.
//
// Eksklusi pemenang adalah filter saat-baca (NOT IN raffle_winners), bukan
// flag di registrasi — satu source of truth, tidak ada yang bisa drift.
type Service struct {
	repo repository.Repository
}

func NewService(repo repository.Repository) *Service {
	return &Service{repo: repo}
}

// EligibleToday mengembalikan registrasi yang check-in HARI INI dan belum
// pernah menang. Selalu query ulang — roda undian memanggil ini tiap ronde,
// jadi pemenang yang baru dicatat langsung hilang dari kandidat.
func (s *Service) EligibleToday(ctx context.Context, eventID uint) ([]registrationModel.RegistrationModel, error) {
	return s.repo.ListEligible(ctx, eventID, time.Now())
}

// RecordWinner mencatat satu pemenang: snapshot nama/kontak/event dari
// registrasi, lalu append ke raffle_winners. Registrasi TIDAK diubah.
func (s *Service) RecordWinner(ctx context.Context, registrationID uint) (*raffleModel.RaffleWinnerModel, error) {
	reg, err := s.repo.FindByID(ctx, registrationID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	winner := &raffleModel.RaffleWinnerModel{
		RaffleWinnerRegistrationID: reg.RegistrationID,
		RaffleWinnerName:           reg.RegistrationName,
		RaffleWinnerPhone:          reg.RegistrationPhone,
		RaffleWinnerEmail:          reg.RegistrationEmail,
		RaffleWinnerEventName:      reg.RegistrationEventName,
		RaffleWinnerWinDate:        now.Format("2006-01-02"),
		RaffleWinnerWinTime:        now.Format("15:04:05"),
	}

	if err := s.repo.RecordWinner(ctx, winner); err != nil {
		return nil, err
	}
	return winner, nil
}

// Winners mengembalikan daftar pemenang, terbaru dulu.
func (s *Service) Winners(ctx context.Context) ([]raffleModel.RaffleWinnerModel, error) {
	return s.repo.ListWinners(ctx)
}
