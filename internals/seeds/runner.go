package seeds

import (
	"gorm.io/gorm"

	schoolSeed "kbcms_backend/internals/seeds/schools"
	userSeed "kbcms_backend/internals/seeds/users"
)

// RunAllSeeds mengisi data awal. Aman dipanggil berulang; setiap seeder
// melewati record yang sudah ada.
func RunAllSeeds(db *gorm.DB) {
	schoolSeed.SeedSchoolsFromJSON(db, "internals/seeds/schools/data_schools.json")
	userSeed.SeedDummyUsers(db)
}
