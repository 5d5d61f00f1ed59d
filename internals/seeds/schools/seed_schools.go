package schools

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"kbcms_backend/internals/features/users/school/model"
)

type SchoolSeed struct {
	SchoolName string `json:"school_name"`
}

// SeedSchoolsFromJSON mengisi tabel schools untuk dropdown create-profile.
func SeedSchoolsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var schools []SchoolSeed
	if err := json.Unmarshal(file, &schools); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return
	}

	for _, s := range schools {
		var existing model.SchoolModel
		if err := db.Where("school_name = ?", s.SchoolName).First(&existing).Error; err == nil {
			log.Printf("ℹ️ School %s sudah ada, lewati...", s.SchoolName)
			continue
		}

		newSchool := model.SchoolModel{
			SchoolName:     s.SchoolName,
			SchoolIsActive: true,
		}
		if err := db.Create(&newSchool).Error; err != nil {
			log.Printf("❌ Gagal insert school %s: %v", s.SchoolName, err)
		} else {
			log.Printf("✅ Berhasil insert school %s", newSchool.SchoolName)
		}
	}
}
