package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolController "kbcms_backend/internals/features/users/school/controller"
)

// SchoolRoutes: daftar sekolah publik (dipakai form create-profile).
func SchoolRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := schoolController.NewSchoolController(db)

	api.Get("/schools", ctrl.GetSchools)
}
