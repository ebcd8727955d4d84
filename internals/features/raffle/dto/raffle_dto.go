package dto

import (
	raffleModel "eventku_backend/internals/features/raffle/model"
	registrationModel "eventku_backend/internals/features/registrations/model"
)

// 🔹 Request pencatatan pemenang (dipanggil layar roda undian setelah spin).
// Jangan panggil dua kali untuk satu hasil spin — eksklusi duplikat hanya
// lewat filter eligibility, bukan constraint unik.
type RecordWinnerRequest struct {
	RegistrationID uint `json:"registrationId" validate:"required"`
}

// 🔹 Kandidat undian di layar roda
type EligibleUserResponse struct {
	RegistrationID uint   `json:"registrationId"`
	Name           string `json:"name"`
	EventName      string `json:"eventName"`
}

// 🔹 Response pemenang
type WinnerResponse struct {
	WinnerID       uint   `json:"winner_id"`
	RegistrationID uint   `json:"registration_id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	EventName      string `json:"event_name"`
	WinDate        string `json:"win_date"`
	WinTime        string `json:"win_time"`
}

func ToEligibleUserResponseList(regs []registrationModel.RegistrationModel) []EligibleUserResponse {
	out := make([]EligibleUserResponse, 0, len(regs))
	for _, r := range regs {
		out = append(out, EligibleUserResponse{
			RegistrationID: r.RegistrationID,
			Name:           r.RegistrationName,
			EventName:      r.RegistrationEventName,
		})
	}
	return out
}

func ToWinnerResponse(w *raffleModel.RaffleWinnerModel) *WinnerResponse {
	return &WinnerResponse{
		WinnerID:       w.RaffleWinnerID,
		RegistrationID: w.RaffleWinnerRegistrationID,
		Name:           w.RaffleWinnerName,
		Phone:          w.RaffleWinnerPhone,
		Email:          w.RaffleWinnerEmail,
		EventName:      w.RaffleWinnerEventName,
		WinDate:        w.RaffleWinnerWinDate,
		WinTime:        w.RaffleWinnerWinTime,
	}
}

func ToWinnerResponseList(winners []raffleModel.RaffleWinnerModel) []WinnerResponse {
	out := make([]WinnerResponse, 0, len(winners))
	for i := range winners {
		out = append(out, *ToWinnerResponse(&winners[i]))
	}
	return out
}
