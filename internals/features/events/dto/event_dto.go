package dto

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"eventku_backend/internals/features/events/model"
)

// 🔹 Request untuk membuat event
type EventRequest struct {
	EventName           string         `json:"event_name" validate:"required,min=3,max=255"`
	EventStartAt        time.Time      `json:"event_start_at" validate:"required"`
	EventEndAt          time.Time      `json:"event_end_at" validate:"required,gtefield=EventStartAt"`
	EventLocation       string         `json:"event_location" validate:"omitempty,max=255"`
	EventRafflePrize    *string        `json:"event_raffle_prize"`
	EventAskVolunteer   bool           `json:"event_ask_volunteer"`
	EventWelcomeText    string         `json:"event_welcome_text"`
	EventFooterContacts datatypes.JSON `json:"event_footer_contacts"`
}

// 🔹 Request update parsial (field nil = tidak diubah)
type EventUpdateRequest struct {
	EventName           *string         `json:"event_name" validate:"omitempty,min=3,max=255"`
	EventStartAt        *time.Time      `json:"event_start_at"`
	EventEndAt          *time.Time      `json:"event_end_at"`
	EventLocation       *string         `json:"event_location" validate:"omitempty,max=255"`
	EventRafflePrize    *string         `json:"event_raffle_prize"`
	EventAskVolunteer   *bool           `json:"event_ask_volunteer"`
	EventWelcomeText    *string         `json:"event_welcome_text"`
	EventFooterContacts *datatypes.JSON `json:"event_footer_contacts"`
	EventBannerImageID  *uint           `json:"event_banner_image_id"`
	EventHeaderImageID  *uint           `json:"event_header_image_id"`
}

// ValidateWindow memeriksa rentang waktu HASIL MERGE update parsial terhadap
// nilai tersimpan: end tidak boleh mendahului start walau hanya salah satu
// field yang dikirim.
func (r *EventUpdateRequest) ValidateWindow(currentStart, currentEnd time.Time) error {
	start, end := currentStart, currentEnd
	if r.EventStartAt != nil {
		start = *r.EventStartAt
	}
	if r.EventEndAt != nil {
		end = *r.EventEndAt
	}
	if end.Before(start) {
		return errors.New("event_end_at sebelum event_start_at")
	}
	return nil
}

// 🔹 Response event
type EventResponse struct {
	EventID             uint           `json:"event_id"`
	EventName           string         `json:"event_name"`
	EventStartAt        time.Time      `json:"event_start_at"`
	EventEndAt          time.Time      `json:"event_end_at"`
	EventLocation       string         `json:"event_location"`
	EventBannerImageID  *uint          `json:"event_banner_image_id,omitempty"`
	EventHeaderImageID  *uint          `json:"event_header_image_id,omitempty"`
	EventRafflePrize    *string        `json:"event_raffle_prize,omitempty"`
	EventAskVolunteer   bool           `json:"event_ask_volunteer"`
	EventWelcomeText    string         `json:"event_welcome_text"`
	EventFooterContacts datatypes.JSON `json:"event_footer_contacts,omitempty"`
	EventCreatedAt      string         `json:"event_created_at"`
}

// 🔄 Konversi dari request → model
func (r *EventRequest) ToModel(createdBy *uuid.UUID) *model.EventModel {
	return &model.EventModel{
		EventName:           r.EventName,
		EventStartAt:        r.EventStartAt,
		EventEndAt:          r.EventEndAt,
		EventLocation:       r.EventLocation,
		EventRafflePrize:    r.EventRafflePrize,
		EventAskVolunteer:   r.EventAskVolunteer,
		EventWelcomeText:    r.EventWelcomeText,
		EventFooterContacts: r.EventFooterContacts,
		EventCreatedBy:      createdBy,
	}
}

// 🔄 Konversi dari model → response
func ToEventResponse(m *model.EventModel) *EventResponse {
	return &EventResponse{
		EventID:             m.EventID,
		EventName:           m.EventName,
		EventStartAt:        m.EventStartAt,
		EventEndAt:          m.EventEndAt,
		EventLocation:       m.EventLocation,
		EventBannerImageID:  m.EventBannerImageID,
		EventHeaderImageID:  m.EventHeaderImageID,
		EventRafflePrize:    m.EventRafflePrize,
		EventAskVolunteer:   m.EventAskVolunteer,
		EventWelcomeText:    m.EventWelcomeText,
		EventFooterContacts: m.EventFooterContacts,
		EventCreatedAt:      m.EventCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// 🔄 Konversi list model → list response
func ToEventResponseList(models []model.EventModel) []EventResponse {
	var result []EventResponse
	for _, m := range models {
		result = append(result, *ToEventResponse(&m))
	}
	return result
}
