package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel: akun tunggal untuk login via email ATAU nomor HP.
// Field profil pelajar (age, institution, file_path) nullable, diisi
// lewat POST /create-profile setelah verifikasi OTP.
type UserModel struct {
	ID               uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name             *string    `gorm:"column:name;type:varchar(100)" json:"name,omitempty"`
	Email            *string    `gorm:"column:email;type:varchar(255);uniqueIndex" json:"email,omitempty"`
	MobileNumber     *string    `gorm:"column:mobile_number;type:varchar(20);uniqueIndex" json:"mobile_number,omitempty"`
	IsEmailVerified  bool       `gorm:"column:is_email_verified;not null;default:false" json:"is_email_verified"`
	IsMobileVerified bool       `gorm:"column:is_mobile_verified;not null;default:false" json:"is_mobile_verified"`
	Age              *int       `gorm:"column:age" json:"age,omitempty"`
	Institution      *string    `gorm:"column:institution;type:varchar(200)" json:"institution,omitempty"`
	SchoolID         *uuid.UUID `gorm:"column:school_id;type:uuid" json:"school_id,omitempty"`
	FilePath         *string    `gorm:"column:file_path;type:text" json:"file_path,omitempty"`
	LastLoginAt      *time.Time `gorm:"column:last_login_at" json:"last_login_at,omitempty"`
	IsActive         bool       `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
