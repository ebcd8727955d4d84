package model

import "time"

// EventImageModel menyimpan banner/header event sebagai WebP di database
// (bytea) — tanpa object storage eksternal, cukup untuk skala kiosk.
type EventImageModel struct {
	EventImageID        uint      `gorm:"column:event_image_id;primaryKey;autoIncrement" json:"event_image_id"`
	EventImageFilename  string    `gorm:"column:event_image_filename;type:varchar(255)" json:"event_image_filename"`
	EventImageData      []byte    `gorm:"column:event_image_data;type:bytea;not null" json:"-"`
	EventImageCreatedAt time.Time `gorm:"column:event_image_created_at;type:timestamptz;autoCreateTime" json:"event_image_created_at"`
}

func (EventImageModel) TableName() string {
	return "event_images"
}
