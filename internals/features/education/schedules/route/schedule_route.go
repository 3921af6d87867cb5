package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"preschoolku_backend/internals/features/education/schedules/controller"
)

// ScheduleEducationRoutes mounts schedule and activity management under the
// education staff group.
func ScheduleEducationRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	scheduleCtl := controller.NewScheduleController(db, v)
	activityCtl := controller.NewActivityController(db, v)

	schedules := r.Group("/schedules")
	schedules.Post("/", scheduleCtl.Create)
	schedules.Patch("/:id", scheduleCtl.Update)
	schedules.Delete("/:id", scheduleCtl.Delete)
	schedules.Post("/:scheduleId/activities", activityCtl.Create)

	activities := r.Group("/activities")
	activities.Patch("/:id", activityCtl.Update)
	activities.Delete("/:id", activityCtl.Delete)
}

// ScheduleSharedRoutes mounts the authenticated read surface (teachers check
// their week plans, parents can see their child's class schedule).
func ScheduleSharedRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	scheduleCtl := controller.NewScheduleController(db, v)
	activityCtl := controller.NewActivityController(db, v)

	r.Get("/schedules", scheduleCtl.List)
	r.Get("/schedules/:id", scheduleCtl.Detail)
	r.Get("/schedules/:scheduleId/activities", activityCtl.ListBySchedule)
}
