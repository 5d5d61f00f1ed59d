// file: internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"kbcms_backend/internals/configs"
	"kbcms_backend/internals/features/users/auth/model"
)

const (
	SessionTokenTTL = 10 * time.Minute
	AccessTokenTTL  = 24 * time.Hour

	sessionPurpose = "otp_session"
)

var (
	ErrMissingSecret       = errors.New("missing JWT secret")
	ErrInvalidSessionToken = errors.New("invalid or expired session token")
)

// IssueSessionToken: JWT pendek (10 menit) yang mengikat langkah login ke
// langkah verify-otp. Ditandai klaim purpose supaya tidak bisa dipakai
// sebagai access token.
func IssueSessionToken(userID uuid.UUID, identifier string) (string, error) {
	secret := configs.JWTSessionSecret
	if secret == "" {
		return "", ErrMissingSecret
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":        userID.String(),
		"identifier": identifier,
		"purpose":    sessionPurpose,
		"iat":        now.Unix(),
		"exp":        now.Add(SessionTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseSessionToken memverifikasi tanda tangan, purpose, dan exp, lalu
// mengembalikan userID + identifier yang terikat di token.
func ParseSessionToken(tokenString string) (uuid.UUID, string, error) {
	secret := configs.JWTSessionSecret
	if secret == "" {
		return uuid.Nil, "", ErrMissingSecret
	}

	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSessionToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, "", ErrInvalidSessionToken
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, "", ErrInvalidSessionToken
	}
	if purpose, _ := claims["purpose"].(string); purpose != sessionPurpose {
		return uuid.Nil, "", ErrInvalidSessionToken
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, "", ErrInvalidSessionToken
	}
	identifier, _ := claims["identifier"].(string)
	if identifier == "" {
		return uuid.Nil, "", ErrInvalidSessionToken
	}

	return userID, identifier, nil
}

// IssueAccessToken: JWT 24 jam yang dibaca auth middleware (klaim user_id).
func IssueAccessToken(user *model.UserModel) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", ErrMissingSecret
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"sub":     user.ID.String(),
		"iat":     now.Unix(),
		"exp":     now.Add(AccessTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
