package repository

import (
	"context"
	"errors"
	"time"

	eventModel "eventku_backend/internals/features/events/model"
	raffleModel "eventku_backend/internals/features/raffle/model"
	"eventku_backend/internals/features/registrations/model"
)

var (
	ErrRegistrationNotFound = errors.New("registrasi tidak ditemukan")
	ErrEventNotFound        = errors.New("event tidak ditemukan")
)

// Repository adalah store untuk alur kiosk: registrasi, gate check-in, dan
// raffle. Implementasi produksi memakai GORM/Postgres; test memakai versi
// in-memory.
type Repository interface {
	FindEventByID(ctx context.Context, id uint) (*eventModel.EventModel, error)

	// DeleteEvent menghapus event (hard delete). Registrasi milik event ini
	// TIDAK ikut terhapus: referensi event-nya di-NULL-kan (SET NULL),
	// snapshot nama/tanggal di baris registrasi tetap utuh.
	DeleteEvent(ctx context.Context, id uint) error

	Insert(ctx context.Context, reg *model.RegistrationModel) error
	FindByID(ctx context.Context, id uint) (*model.RegistrationModel, error)

	// UpdateCheckin mencoba transisi not-checked-in → checked-in secara atomik
	// (conditional update pada flag). Mengembalikan true hanya untuk pemanggil
	// yang benar-benar melakukan transisi; pemanggil lain mendapat false.
	UpdateCheckin(ctx context.Context, id uint, at time.Time) (bool, error)

	// ResetCheckins membatalkan SEMUA check-in (aksi administratif eksplisit,
	// satu-satunya jalan flag boleh kembali false).
	ResetCheckins(ctx context.Context) (int64, error)

	// ListEligible: checked-in pada hari `day`, belum pernah muncul di
	// raffle_winners, opsional difilter event. Selalu query ulang, tanpa cache.
	ListEligible(ctx context.Context, eventID uint, day time.Time) ([]model.RegistrationModel, error)

	RecordWinner(ctx context.Context, w *raffleModel.RaffleWinnerModel) error
	ListWinners(ctx context.Context) ([]raffleModel.RaffleWinnerModel, error)
}
