package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	eventModel "eventku_backend/internals/features/events/model"
	raffleModel "eventku_backend/internals/features/raffle/model"
	"eventku_backend/internals/features/registrations/model"
)

type GormRepository struct {
	DB *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{DB: db}
}

func (r *GormRepository) FindEventByID(ctx context.Context, id uint) (*eventModel.EventModel, error) {
	var ev eventModel.EventModel
	if err := r.DB.WithContext(ctx).First(&ev, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &ev, nil
}

// DeleteEvent: hard delete; constraint FK registrations → events (ON DELETE
// SET NULL) melepas referensi registrasi tanpa menghapus barisnya.
func (r *GormRepository) DeleteEvent(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&eventModel.EventModel{}, "event_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

func (r *GormRepository) Insert(ctx context.Context, reg *model.RegistrationModel) error {
	return r.DB.WithContext(ctx).Create(reg).Error
}

func (r *GormRepository) FindByID(ctx context.Context, id uint) (*model.RegistrationModel, error) {
	var reg model.RegistrationModel
	if err := r.DB.WithContext(ctx).First(&reg, "registration_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, err
	}
	return &reg, nil
}

// UpdateCheckin: satu conditional UPDATE, keyed pada flag saat ini. Dua scan
// bersamaan → hanya satu yang mendapat RowsAffected = 1.
func (r *GormRepository) UpdateCheckin(ctx context.Context, id uint, at time.Time) (bool, error) {
	res := r.DB.WithContext(ctx).
		Model(&model.RegistrationModel{}).
		Where("registration_id = ? AND registration_checked_in = false", id).
		Updates(map[string]interface{}{
			"registration_checked_in":    true,
			"registration_checked_in_at": at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *GormRepository) ResetCheckins(ctx context.Context) (int64, error) {
	res := r.DB.WithContext(ctx).
		Model(&model.RegistrationModel{}).
		Where("registration_checked_in = true").
		Updates(map[string]interface{}{
			"registration_checked_in":    false,
			"registration_checked_in_at": nil,
		})
	return res.RowsAffected, res.Error
}

func (r *GormRepository) ListEligible(ctx context.Context, eventID uint, day time.Time) ([]model.RegistrationModel, error) {
	q := r.DB.WithContext(ctx).
		Model(&model.RegistrationModel{}).
		Where("registration_checked_in = true").
		Where("DATE(registration_checked_in_at) = ?", day.Format("2006-01-02")).
		Where("registration_id NOT IN (SELECT raffle_winner_registration_id FROM raffle_winners)")

	if eventID != 0 {
		q = q.Where("registration_event_id = ?", eventID)
	}

	var regs []model.RegistrationModel
	if err := q.Order("registration_id ASC").Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *GormRepository) RecordWinner(ctx context.Context, w *raffleModel.RaffleWinnerModel) error {
	return r.DB.WithContext(ctx).Create(w).Error
}

func (r *GormRepository) ListWinners(ctx context.Context) ([]raffleModel.RaffleWinnerModel, error) {
	var winners []raffleModel.RaffleWinnerModel
	if err := r.DB.WithContext(ctx).
		Order("raffle_winner_id DESC").
		Find(&winners).Error; err != nil {
		return nil, err
	}
	return winners, nil
}
