package routes

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "preschoolku_backend/internals/features/users/auth/route"
	routeDetails "preschoolku_backend/internals/route/details"

	"preschoolku_backend/internals/constants"
	authMiddleware "preschoolku_backend/internals/middlewares/auth"
)

// SetupRoutes mounts the whole HTTP surface: public auth endpoints, the
// role-gated /api/v1 groups, and the shared authenticated /api reads.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := validator.New()

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up PARENT group...")
	parent := app.Group("/api/v1/parent",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorParent("this feature"), constants.ParentOnly...),
	)
	routeDetails.ParentRoutes(parent, db, v)

	log.Println("[INFO] Setting up ADMISSION group...")
	admission := app.Group("/api/v1/admission",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmission("this feature"), constants.AdmissionOnly...),
	)
	routeDetails.AdmissionRoutes(admission, db, v)

	log.Println("[INFO] Setting up EDUCATION group...")
	education := app.Group("/api/v1/education",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorEducation("this feature"), constants.EducationOnly...),
	)
	routeDetails.EducationRoutes(education, db, v)

	log.Println("[INFO] Setting up TEACHER group...")
	teacher := app.Group("/api/v1/teacher",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("this feature"), constants.RoleTeacher),
	)
	routeDetails.TeacherRoutes(teacher, db, v)

	log.Println("[INFO] Setting up HR group...")
	hr := app.Group("/api/v1/hr",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorHR("this feature"), constants.HROnly...),
	)
	routeDetails.HRRoutes(hr, db, v)

	log.Println("[INFO] Setting up SHARED group...")
	shared := app.Group("/api",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("You do not have access to this feature.", constants.AllRoles...),
	)
	routeDetails.SharedRoutes(shared, db, v)
}
