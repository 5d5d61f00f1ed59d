package dto

import (
	"time"

	"kbcms_backend/internals/features/users/auth/model"
)

// ============================
// Request DTO
// ============================

// Identifier bisa email atau nomor HP; bentuknya dicek di validator.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required,min=5,max=255"`
}

type ResendOTPRequest struct {
	Identifier string `json:"identifier" validate:"required,min=5,max=255"`
}

type VerifyOTPRequest struct {
	Identifier   string `json:"identifier" validate:"required,min=5,max=255"`
	OTP          string `json:"otp" validate:"required,min=4,max=6"`
	SessionToken string `json:"sessionToken" validate:"required"`
}

type CreateProfileRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Age         int     `json:"age" validate:"required,min=5,max=100"`
	Institution string  `json:"institution" validate:"required,min=2,max=200"`
	SchoolID    *string `json:"schoolId" validate:"omitempty,uuid4"`
}

// ============================
// Response DTO
// ============================

type UserDTO struct {
	UserID           string     `json:"userId"`
	Name             *string    `json:"name"`
	Email            *string    `json:"email"`
	MobileNumber     *string    `json:"mobileNumber"`
	IsEmailVerified  bool       `json:"isEmailVerified"`
	IsMobileVerified bool       `json:"isMobileVerified"`
	Age              *int       `json:"age,omitempty"`
	Institution      *string    `json:"institution,omitempty"`
	FilePath         *string    `json:"filePath,omitempty"`
	LastLoginAt      *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// LoginResponseData: payload setelah OTP terkirim. DevelopmentInfo hanya
// terisi untuk akun dummy di luar production.
type LoginResponseData struct {
	SessionToken    string `json:"sessionToken"`
	ExpiresIn       int    `json:"expiresIn"`
	DevelopmentInfo string `json:"developmentInfo,omitempty"`
}

type VerifyOTPResponseData struct {
	AccessToken string  `json:"accessToken"`
	ExpiresIn   int     `json:"expiresIn"`
	User        UserDTO `json:"user"`
}

func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		UserID:           m.ID.String(),
		Name:             m.Name,
		Email:            m.Email,
		MobileNumber:     m.MobileNumber,
		IsEmailVerified:  m.IsEmailVerified,
		IsMobileVerified: m.IsMobileVerified,
		Age:              m.Age,
		Institution:      m.Institution,
		FilePath:         m.FilePath,
		LastLoginAt:      m.LastLoginAt,
		CreatedAt:        m.CreatedAt,
	}
}
