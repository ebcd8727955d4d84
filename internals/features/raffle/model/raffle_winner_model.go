package model

import "time"

// RaffleWinnerModel append-only: sekali dicatat tidak pernah diubah.
// registration_id sengaja TIDAK unik — eksklusi pemenang dilakukan saat baca
// (filter NOT IN di eligibility view), bukan lewat constraint.
type RaffleWinnerModel struct {
	RaffleWinnerID             uint   `gorm:"column:raffle_winner_id;primaryKey;autoIncrement" json:"raffle_winner_id"`
	RaffleWinnerRegistrationID uint   `gorm:"column:raffle_winner_registration_id;not null;index:idx_raffle_winners_registration_id" json:"raffle_winner_registration_id"`
	RaffleWinnerName           string `gorm:"column:raffle_winner_name;type:varchar(255);not null" json:"raffle_winner_name"`
	RaffleWinnerPhone          string `gorm:"column:raffle_winner_phone;type:varchar(30)" json:"raffle_winner_phone"`
	RaffleWinnerEmail          string `gorm:"column:raffle_winner_email;type:varchar(255)" json:"raffle_winner_email"`
	RaffleWinnerEventName      string `gorm:"column:raffle_winner_event_name;type:varchar(255)" json:"raffle_winner_event_name"`

	RaffleWinnerWinDate string `gorm:"column:raffle_winner_win_date;type:date;not null" json:"raffle_winner_win_date"` // YYYY-MM-DD
	RaffleWinnerWinTime string `gorm:"column:raffle_winner_win_time;type:varchar(8);not null" json:"raffle_winner_win_time"`

	RaffleWinnerCreatedAt time.Time `gorm:"column:raffle_winner_created_at;type:timestamptz;autoCreateTime" json:"raffle_winner_created_at"`
}

func (RaffleWinnerModel) TableName() string {
	return "raffle_winners"
}
