package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type EventModel struct {
	EventID       uint      `gorm:"column:event_id;primaryKey;autoIncrement" json:"event_id"`
	EventName     string    `gorm:"column:event_name;type:varchar(255);not null" json:"event_name"`
	EventStartAt  time.Time `gorm:"column:event_start_at;type:timestamptz;not null;index:idx_events_start_at" json:"event_start_at"`
	EventEndAt    time.Time `gorm:"column:event_end_at;type:timestamptz;not null" json:"event_end_at"`
	EventLocation string    `gorm:"column:event_location;type:varchar(255)" json:"event_location"`

	// Banner/header menunjuk ke event_images (hasil konversi WebP)
	EventBannerImageID *uint `gorm:"column:event_banner_image_id" json:"event_banner_image_id,omitempty"`
	EventHeaderImageID *uint `gorm:"column:event_header_image_id" json:"event_header_image_id,omitempty"`

	EventRafflePrize  *string `gorm:"column:event_raffle_prize;type:text" json:"event_raffle_prize,omitempty"`
	EventAskVolunteer bool    `gorm:"column:event_ask_volunteer;not null;default:false" json:"event_ask_volunteer"`
	EventWelcomeText  string  `gorm:"column:event_welcome_text;type:text" json:"event_welcome_text"`

	// Override kontak footer kiosk, contoh: {"phone":"...","email":"...","instagram":"..."}
	EventFooterContacts datatypes.JSON `gorm:"column:event_footer_contacts;type:jsonb" json:"event_footer_contacts,omitempty"`

	// Audit
	EventCreatedBy  *uuid.UUID `gorm:"column:event_created_by;type:uuid" json:"event_created_by,omitempty"`
	EventModifiedBy *uuid.UUID `gorm:"column:event_modified_by;type:uuid" json:"event_modified_by,omitempty"`
	EventCreatedAt  time.Time  `gorm:"column:event_created_at;type:timestamptz;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt  time.Time  `gorm:"column:event_updated_at;type:timestamptz;autoUpdateTime" json:"event_updated_at"`
}

func (EventModel) TableName() string {
	return "events"
}
