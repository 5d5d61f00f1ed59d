// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "kbcms_backend/internals/features/users/auth/model"
)

/* ====================== USER ====================== */

func FindUserByIdentifier(db *gorm.DB, identifier string) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := db.Where("email = ? OR mobile_number = ?", identifier, identifier).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, userID uuid.UUID) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(db *gorm.DB, user *authModel.UserModel) error {
	return db.Create(user).Error
}

func UpdateLastLogin(db *gorm.DB, userID uuid.UUID) error {
	return db.Model(&authModel.UserModel{}).
		Where("id = ?", userID).
		Update("last_login_at", time.Now()).Error
}

// MarkIdentifierVerified mengeset flag verifikasi yang sesuai jalur login.
func MarkIdentifierVerified(db *gorm.DB, userID uuid.UUID, viaEmail bool) error {
	column := "is_mobile_verified"
	if viaEmail {
		column = "is_email_verified"
	}
	return db.Model(&authModel.UserModel{}).
		Where("id = ?", userID).
		Update(column, true).Error
}

func UpdateStudentProfile(db *gorm.DB, userID uuid.UUID, fields map[string]any) error {
	return db.Model(&authModel.UserModel{}).
		Where("id = ?", userID).
		Updates(fields).Error
}

/* ====================== OTP SESSION ====================== */

func CreateOTPSession(db *gorm.DB, session *authModel.OTPSessionModel) error {
	return db.Create(session).Error
}

// FindActiveOTPSession: sesi belum-terverifikasi terbaru untuk pasangan
// user+identifier. Expiry dan attempt cap dicek pemanggil.
func FindActiveOTPSession(db *gorm.DB, userID uuid.UUID, identifier string) (*authModel.OTPSessionModel, error) {
	var session authModel.OTPSessionModel
	if err := db.
		Where("user_id = ? AND identifier = ? AND verified = false", userID, identifier).
		Order("created_at DESC").
		First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func IncrementOTPAttempts(db *gorm.DB, sessionID uuid.UUID) error {
	return db.Model(&authModel.OTPSessionModel{}).
		Where("id = ?", sessionID).
		UpdateColumn("attempt_count", gorm.Expr("attempt_count + 1")).Error
}

func MarkOTPVerified(db *gorm.DB, sessionID uuid.UUID) error {
	return db.Model(&authModel.OTPSessionModel{}).
		Where("id = ?", sessionID).
		Update("verified", true).Error
}

// InvalidateOTPSessions menghapus sesi lama yang belum terverifikasi.
// Dipanggil sebelum menerbitkan OTP baru supaya hanya satu sesi aktif.
func InvalidateOTPSessions(db *gorm.DB, userID uuid.UUID, identifier string) error {
	return db.
		Where("user_id = ? AND identifier = ? AND verified = false", userID, identifier).
		Delete(&authModel.OTPSessionModel{}).Error
}

/* ====================== BLACKLIST TOKEN ====================== */

func BlacklistToken(db *gorm.DB, token string, ttl time.Duration) error {
	return db.Create(&authModel.TokenBlacklist{
		Token:     token,
		ExpiredAt: time.Now().UTC().Add(ttl),
	}).Error
}

func CleanupExpiredBlacklist(db *gorm.DB) (int64, error) {
	res := db.Exec(`DELETE FROM token_blacklist WHERE expired_at <= ?`, time.Now().UTC())
	return res.RowsAffected, res.Error
}
