// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kbcms_backend/internals/configs"
	authModel "kbcms_backend/internals/features/users/auth/model"
	helpers "kbcms_backend/internals/helpers"
)

// AuthMiddleware memverifikasi bearer token: blacklist → parse JWT → exp →
// user_id ke Locals. Semua kegagalan jadi 401 bertipe UNAUTHORIZED.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusUnauthorized, err.Error(), helpers.ErrTypeUnauthorized)
		}

		// Cek blacklist (sekali per request)
		if c.Locals("token_checked") == nil {
			var existing authModel.TokenBlacklist
			if err := db.Where("token = ? AND deleted_at IS NULL", tokenString).First(&existing).Error; err == nil {
				log.Println("[WARN] Token ditemukan di blacklist")
				return helpers.JsonError(c, fiber.StatusUnauthorized, "Token has been revoked", helpers.ErrTypeUnauthorized)
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Println("[ERROR] DB error saat cek blacklist:", err)
				return helpers.JsonAppError(c, err)
			}
			c.Locals("token_checked", true)
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Missing JWT secret", helpers.ErrTypeInternal)
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid or malformed token", helpers.ErrTypeUnauthorized)
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Token expired", helpers.ErrTypeUnauthorized)
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid or missing user ID", helpers.ErrTypeUnauthorized)
		}
		c.Locals("user_id", userID.String())
		c.Locals("raw_token", tokenString)

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	const prefix = "Bearer "
	auth := c.Get("Authorization")
	if strings.HasPrefix(auth, prefix) {
		if tok := strings.TrimSpace(auth[len(prefix):]); tok != "" {
			return tok, nil
		}
	}
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v, nil
	}
	return "", errors.New("Missing or invalid authorization header")
}

// validateTokenExpiry: toleransi clock skew kecil untuk klaim exp.
func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expVal, ok := claims["exp"]
	if !ok {
		return errors.New("missing exp claim")
	}
	expFloat, ok := expVal.(float64)
	if !ok {
		return errors.New("invalid exp claim")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	for _, key := range []string{"user_id", "sub", "id"} {
		if raw, ok := claims[key].(string); ok {
			if id, err := uuid.Parse(raw); err == nil {
				return id, nil
			}
		}
	}
	return uuid.Nil, errors.New("user id claim not found")
}
