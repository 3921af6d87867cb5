package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"preschoolku_backend/internals/features/users/auth/model"
)

// StartAuthCleanupCron purges expired blacklist entries and refresh tokens.
// Schedule is overridable via AUTH_CLEANUP_CRON (default: daily at 02:00).
func StartAuthCleanupCron(db *gorm.DB) {
	spec := os.Getenv("AUTH_CLEANUP_CRON")
	if spec == "" {
		spec = "0 2 * * *"
	}

	ttlDays := 7
	if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			ttlDays = parsed
		}
	}

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		runCleanup(db, ttlDays)
	})
	if err != nil {
		log.Printf("[CLEANUP ERROR] invalid cron spec %q: %v", spec, err)
		return
	}
	c.Start()
	log.Printf("[CLEANUP] auth cleanup scheduled: %q", spec)
}

func runCleanup(db *gorm.DB, ttlDays int) {
	deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

	res := db.Unscoped().
		Where("expired_at < ?", deleteBefore).
		Delete(&model.TokenBlacklist{})
	if res.Error != nil {
		log.Printf("[CLEANUP ERROR] blacklist purge failed: %v", res.Error)
	} else if res.RowsAffected > 0 {
		log.Printf("[CLEANUP] %d blacklisted tokens purged", res.RowsAffected)
	}

	res = db.Where("expires_at < ?", time.Now()).
		Delete(&model.RefreshTokenModel{})
	if res.Error != nil {
		log.Printf("[CLEANUP ERROR] refresh token purge failed: %v", res.Error)
	} else if res.RowsAffected > 0 {
		log.Printf("[CLEANUP] %d expired refresh tokens purged", res.RowsAffected)
	}
}
