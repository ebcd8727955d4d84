package database

import (
	"log"

	adminModel "eventku_backend/internals/features/admins/model"
	eventModel "eventku_backend/internals/features/events/model"
	raffleModel "eventku_backend/internals/features/raffle/model"
	registrationModel "eventku_backend/internals/features/registrations/model"
)

// Migrate menjalankan AutoMigrate untuk semua tabel.
// FK registrations → events memakai ON DELETE SET NULL: hapus event TIDAK
// menghapus registrasinya, hanya melepas referensinya.
func Migrate() {
	err := DB.AutoMigrate(
		&adminModel.AdminUserModel{},
		&adminModel.TokenBlacklist{},
		&eventModel.EventModel{},
		&eventModel.EventImageModel{},
		&registrationModel.RegistrationModel{},
		&raffleModel.RaffleWinnerModel{},
	)
	if err != nil {
		log.Fatalf("❌ Migrasi gagal: %v", err)
	}
	log.Println("✅ Migrasi database selesai")
}
