package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kbcms_backend/internals/features/users/school/model"
	helpers "kbcms_backend/internals/helpers"
)

type SchoolController struct {
	DB *gorm.DB
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{DB: db}
}

// SchoolItem: proyeksi dropdown untuk form profil pelajar.
// Key "_id" dipertahankan demi kompatibilitas client lama.
type SchoolItem struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// GetSchools mengembalikan daftar sekolah aktif, urut nama.
func (ctrl *SchoolController) GetSchools(c *fiber.Ctx) error {
	var schools []model.SchoolModel
	if err := ctrl.DB.
		Where("school_is_active = true").
		Order("school_name ASC").
		Find(&schools).Error; err != nil {
		return helpers.JsonAppError(c, err)
	}

	items := make([]SchoolItem, 0, len(schools))
	for _, s := range schools {
		items = append(items, SchoolItem{ID: s.SchoolID.String(), Name: s.SchoolName})
	}

	return helpers.JsonOK(c, "Schools retrieved successfully", fiber.Map{
		"schools": items,
	})
}
