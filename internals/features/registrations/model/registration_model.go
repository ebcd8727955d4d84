package model

import (
	"time"

	eventModel "eventku_backend/internals/features/events/model"
)

type RegistrationModel struct {
	RegistrationID    uint   `gorm:"column:registration_id;primaryKey;autoIncrement" json:"registration_id"`
	RegistrationName  string `gorm:"column:registration_name;type:varchar(255);not null" json:"registration_name"`
	RegistrationPhone string `gorm:"column:registration_phone;type:varchar(30)" json:"registration_phone"`
	RegistrationEmail string `gorm:"column:registration_email;type:varchar(255)" json:"registration_email"`

	// Nullable: hapus event → referensi dilepas (SET NULL), registrasi tetap ada
	RegistrationEventID *uint                  `gorm:"column:registration_event_id;index:idx_registrations_event_id" json:"registration_event_id,omitempty"`
	Event               *eventModel.EventModel `gorm:"foreignKey:RegistrationEventID;references:EventID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`

	// Snapshot event saat mendaftar (tetap terbaca walau event dihapus)
	RegistrationEventName string     `gorm:"column:registration_event_name;type:varchar(255)" json:"registration_event_name"`
	RegistrationEventDate *time.Time `gorm:"column:registration_event_date;type:timestamptz" json:"registration_event_date,omitempty"`

	RegistrationVolunteer bool `gorm:"column:registration_volunteer;not null;default:false" json:"registration_volunteer"`

	// Sekali true, hanya boleh kembali false lewat aksi admin "reset semua check-in"
	RegistrationCheckedIn   bool       `gorm:"column:registration_checked_in;not null;default:false;index:idx_registrations_checked_in" json:"registration_checked_in"`
	RegistrationCheckedInAt *time.Time `gorm:"column:registration_checked_in_at;type:timestamptz" json:"registration_checked_in_at,omitempty"`

	RegistrationCreatedAt time.Time `gorm:"column:registration_created_at;type:timestamptz;autoCreateTime" json:"registration_created_at"`
}

func (RegistrationModel) TableName() string {
	return "registrations"
}
