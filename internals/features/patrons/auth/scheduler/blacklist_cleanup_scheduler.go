package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"perpusku_backend/internals/features/patrons/auth/model"

	"gorm.io/gorm"
)

// StartBlacklistCleanupScheduler membersihkan token blacklist & refresh token
// kadaluarsa tiap 24 jam supaya tabel tidak membengkak.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ttlDays := 7
		if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil {
				ttlDays = parsed
			}
		}

		for {
			log.Println("[CLEANUP] Menjalankan pembersihan token_blacklist...")

			deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

			res := db.Unscoped().
				Where("expired_at < ?", deleteBefore).
				Delete(&model.TokenBlacklistModel{})
			if res.Error != nil {
				log.Printf("[CLEANUP ERROR] Gagal hapus token blacklist: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[CLEANUP] %d token blacklist kadaluarsa dihapus", res.RowsAffected)
			}

			res = db.
				Where("expires_at < ? OR revoked_at IS NOT NULL AND revoked_at < ?", deleteBefore, deleteBefore).
				Delete(&model.RefreshTokenModel{})
			if res.Error != nil {
				log.Printf("[CLEANUP ERROR] Gagal hapus refresh token: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[CLEANUP] %d refresh token kadaluarsa dihapus", res.RowsAffected)
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
