package model

import (
	"time"

	"github.com/google/uuid"
)

// Batas percobaan verifikasi per sesi OTP.
const MaxOTPAttempts = 5

// OTPSessionModel: satu sesi OTP per login/resend. Kode tidak pernah
// disimpan plain, hanya hash bcrypt-nya.
type OTPSessionModel struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	Identifier   string    `gorm:"column:identifier;type:varchar(255);not null;index" json:"identifier"`
	OTPHash      string    `gorm:"column:otp_hash;type:varchar(100);not null" json:"-"`
	ExpiresAt    time.Time `gorm:"column:expires_at;not null" json:"expires_at"`
	AttemptCount int       `gorm:"column:attempt_count;not null;default:0" json:"attempt_count"`
	Verified     bool      `gorm:"column:verified;not null;default:false" json:"verified"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (OTPSessionModel) TableName() string {
	return "otp_sessions"
}

func (m *OTPSessionModel) IsExpired(now time.Time) bool {
	return now.After(m.ExpiresAt)
}

func (m *OTPSessionModel) AttemptsExhausted() bool {
	return m.AttemptCount >= MaxOTPAttempts
}
