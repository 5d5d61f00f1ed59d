package service

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kbcms_backend/internals/configs"
)

func TestGenerateOTPIsSixDigits(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9]{6}$`)
	for i := 0; i < 20; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
	}
}

func TestHashAndCompareOTP(t *testing.T) {
	code, err := GenerateOTP()
	require.NoError(t, err)

	hash, err := HashOTP(code)
	require.NoError(t, err)
	assert.NotEqual(t, code, hash, "kode tidak boleh tersimpan plain")

	assert.True(t, CompareOTP(hash, code))
	assert.False(t, CompareOTP(hash, "000000"))
	assert.False(t, CompareOTP(hash, code+"0"))
}

func TestIsDummyAccount(t *testing.T) {
	assert.True(t, IsDummyAccount("1234567899"))
	assert.True(t, IsDummyAccount("abc@gmail.com"))
	assert.False(t, IsDummyAccount("someone@example.com"))
	assert.False(t, IsDummyAccount("0812345678"))
}

func TestDevelopmentInfoOnlyOutsideProduction(t *testing.T) {
	orig := configs.AppEnv
	defer func() { configs.AppEnv = orig }()

	configs.AppEnv = "development"
	assert.Equal(t, "Use OTP 1234 for testing", DevelopmentInfo("abc@gmail.com"))
	assert.Empty(t, DevelopmentInfo("someone@example.com"))

	configs.AppEnv = "production"
	assert.Empty(t, DevelopmentInfo("abc@gmail.com"))
}
