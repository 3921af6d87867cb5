package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"preschoolku_backend/internals/configs"
	"preschoolku_backend/internals/features/admission/terms/service"
)

// StartTermStatusCron keeps stored admission term statuses aligned with the
// calendar. Reads still recompute lazily; the sweep only narrows the window
// in which a stale status is visible to bulk queries.
func StartTermStatusCron(db *gorm.DB) *cron.Cron {
	spec := configs.GetEnv("TERM_STATUS_CRON", "15 0 * * *")

	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		runSweep(db)
	}); err != nil {
		log.Printf("[ERROR] failed to register term status cron (%s): %v", spec, err)
		return c
	}

	c.Start()
	log.Printf("[INFO] term status cron started (spec=%s)", spec)
	return c
}

func runSweep(db *gorm.DB) {
	start := time.Now()
	updated, err := service.SweepTermStatuses(db, start)
	if err != nil {
		log.Printf("[ERROR] term status sweep failed: %v", err)
		return
	}
	log.Printf("[CLEANUP] term status sweep done: %d updated in %s", updated, time.Since(start))
}
