package users

import (
	"log"

	"gorm.io/gorm"

	"kbcms_backend/internals/features/users/auth/model"
)

// SeedDummyUsers memastikan akun uji QA ada: nomor HP & email dummy yang
// selalu menerima OTP tetap di lingkungan non-production.
func SeedDummyUsers(db *gorm.DB) {
	mobile := "1234567899"
	email := "abc@gmail.com"
	name := "Dummy Student"

	accounts := []model.UserModel{
		{Name: &name, MobileNumber: &mobile, IsActive: true},
		{Name: &name, Email: &email, IsActive: true},
	}

	for _, acc := range accounts {
		identifier := ""
		query := db
		if acc.MobileNumber != nil {
			identifier = *acc.MobileNumber
			query = query.Where("mobile_number = ?", identifier)
		} else {
			identifier = *acc.Email
			query = query.Where("email = ?", identifier)
		}

		var existing model.UserModel
		if err := query.First(&existing).Error; err == nil {
			log.Printf("ℹ️ Akun dummy %s sudah ada, lewati...", identifier)
			continue
		}

		u := acc
		if err := db.Create(&u).Error; err != nil {
			log.Printf("❌ Gagal insert akun dummy %s: %v", identifier, err)
		} else {
			log.Printf("✅ Berhasil insert akun dummy %s", identifier)
		}
	}
}
