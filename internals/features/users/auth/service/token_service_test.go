package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kbcms_backend/internals/configs"
	"kbcms_backend/internals/features/users/auth/model"
)

func withTestSecrets(t *testing.T) {
	t.Helper()
	origJWT, origSession := configs.JWTSecret, configs.JWTSessionSecret
	configs.JWTSecret = "test-jwt-secret"
	configs.JWTSessionSecret = "test-session-secret"
	t.Cleanup(func() {
		configs.JWTSecret = origJWT
		configs.JWTSessionSecret = origSession
	})
}

func TestSessionTokenRoundTrip(t *testing.T) {
	withTestSecrets(t)

	userID := uuid.New()
	token, err := IssueSessionToken(userID, "abc@gmail.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	gotID, gotIdentifier, err := ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, "abc@gmail.com", gotIdentifier)
}

func TestParseSessionTokenRejectsAccessToken(t *testing.T) {
	withTestSecrets(t)

	user := &model.UserModel{ID: uuid.New(), IsActive: true}
	accessToken, err := IssueAccessToken(user)
	require.NoError(t, err)

	// Access token tidak punya klaim purpose dan ditandatangani secret lain.
	_, _, err = ParseSessionToken(accessToken)
	assert.ErrorIs(t, err, ErrInvalidSessionToken)
}

func TestParseSessionTokenRejectsWrongSignature(t *testing.T) {
	withTestSecrets(t)

	claims := jwt.MapClaims{
		"sub":        uuid.New().String(),
		"identifier": "abc@gmail.com",
		"purpose":    "otp_session",
		"iat":        time.Now().Unix(),
		"exp":        time.Now().Add(10 * time.Minute).Unix(),
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	_, _, err = ParseSessionToken(forged)
	assert.ErrorIs(t, err, ErrInvalidSessionToken)
}

func TestParseSessionTokenRejectsExpired(t *testing.T) {
	withTestSecrets(t)

	claims := jwt.MapClaims{
		"sub":        uuid.New().String(),
		"identifier": "abc@gmail.com",
		"purpose":    "otp_session",
		"iat":        time.Now().Add(-20 * time.Minute).Unix(),
		"exp":        time.Now().Add(-10 * time.Minute).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSessionSecret))
	require.NoError(t, err)

	_, _, err = ParseSessionToken(expired)
	assert.ErrorIs(t, err, ErrInvalidSessionToken)
}

func TestIssueAccessTokenCarriesUserID(t *testing.T) {
	withTestSecrets(t)

	user := &model.UserModel{ID: uuid.New(), IsActive: true}
	tokenString, err := IssueAccessToken(user)
	require.NoError(t, err)

	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)

	claims := tok.Claims.(jwt.MapClaims)
	assert.Equal(t, user.ID.String(), claims["user_id"])
	assert.Equal(t, user.ID.String(), claims["sub"])
}

func TestIssueTokensRequireSecrets(t *testing.T) {
	origJWT, origSession := configs.JWTSecret, configs.JWTSessionSecret
	configs.JWTSecret = ""
	configs.JWTSessionSecret = ""
	defer func() {
		configs.JWTSecret = origJWT
		configs.JWTSessionSecret = origSession
	}()

	_, err := IssueSessionToken(uuid.New(), "abc@gmail.com")
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = IssueAccessToken(&model.UserModel{ID: uuid.New()})
	assert.ErrorIs(t, err, ErrMissingSecret)
}
