package dto

import (
	"time"

	eventModel "eventku_backend/internals/features/events/model"
	"eventku_backend/internals/features/registrations/model"
)

// 🔹 Request form pendaftaran publik (field name mengikuti form kiosk)
type RegisterRequest struct {
	Name                  string `json:"name" validate:"required,min=2,max=255"`
	Phone                 string `json:"phone" validate:"omitempty,max=30"`
	Email                 string `json:"email" validate:"required,email"`
	EventID               uint   `json:"eventId" validate:"required"`
	InterestedToVolunteer bool   `json:"interested_to_volunteer"`
}

// 🔹 Request scan kiosk. eventId opsional: dipakai untuk memastikan QR sesuai
// event yang sedang dipilih kiosk. Scanner yang tidak mem-parse isi QR boleh
// mengirim teks mentahnya di `qr` sebagai ganti registrationId.
type CheckinRequest struct {
	RegistrationID uint   `json:"registrationId"`
	EventID        uint   `json:"eventId"`
	QR             string `json:"qr"`
}

// 🔹 Response registrasi (admin API)
type RegistrationResponse struct {
	RegistrationID uint       `json:"registration_id"`
	Name           string     `json:"name"`
	Phone          string     `json:"phone"`
	Email          string     `json:"email"`
	EventID        *uint      `json:"event_id,omitempty"`
	EventName      string     `json:"event_name"`
	EventDate      *time.Time `json:"event_date,omitempty"`
	Volunteer      bool       `json:"volunteer"`
	CheckedIn      bool       `json:"checked_in"`
	CheckedInAt    *time.Time `json:"checked_in_at,omitempty"`
	RegisteredAt   time.Time  `json:"registered_at"`
}

// 🔄 Konversi request → model, dengan snapshot nama & tanggal event supaya
// registrasi tetap terbaca walau event-nya kelak dihapus.
func (r *RegisterRequest) ToModel(ev *eventModel.EventModel) *model.RegistrationModel {
	reg := &model.RegistrationModel{
		RegistrationName:      r.Name,
		RegistrationPhone:     r.Phone,
		RegistrationEmail:     r.Email,
		RegistrationVolunteer: r.InterestedToVolunteer,
	}
	if ev != nil {
		id := ev.EventID
		date := ev.EventStartAt
		reg.RegistrationEventID = &id
		reg.RegistrationEventName = ev.EventName
		reg.RegistrationEventDate = &date
	}
	return reg
}

func ToRegistrationResponse(m *model.RegistrationModel) *RegistrationResponse {
	return &RegistrationResponse{
		RegistrationID: m.RegistrationID,
		Name:           m.RegistrationName,
		Phone:          m.RegistrationPhone,
		Email:          m.RegistrationEmail,
		EventID:        m.RegistrationEventID,
		EventName:      m.RegistrationEventName,
		EventDate:      m.RegistrationEventDate,
		Volunteer:      m.RegistrationVolunteer,
		CheckedIn:      m.RegistrationCheckedIn,
		CheckedInAt:    m.RegistrationCheckedInAt,
		RegisteredAt:   m.RegistrationCreatedAt,
	}
}

func ToRegistrationResponseList(models []model.RegistrationModel) []RegistrationResponse {
	var result []RegistrationResponse
	for _, m := range models {
		result = append(result, *ToRegistrationResponse(&m))
	}
	return result
}
