package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"eventku_backend/internals/features/admins/model"
)

// StartBlacklistCleanupScheduler membersihkan token blacklist yang sudah
// kadaluarsa setiap 24 jam, supaya tabel tidak membengkak.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	retentionDays := 1
	if raw := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			retentionDays = parsed
		}
	}

	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for {
			cutoff := time.Now().AddDate(0, 0, -retentionDays)
			res := db.Unscoped().
				Where("expired_at < ?", cutoff).
				Delete(&model.TokenBlacklist{})
			if res.Error != nil {
				log.Printf("[ERROR] Cleanup token blacklist gagal: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[INFO] Cleanup token blacklist: %d token dihapus", res.RowsAffected)
			}

			<-ticker.C
		}
	}()
}
