// file: internals/features/users/auth/service/otp_service.go
package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"kbcms_backend/internals/configs"
)

const (
	OTPLength = 6
	OTPTTL    = 10 * time.Minute

	// Akun uji: selalu dapat OTP tetap supaya QA tidak butuh kanal SMS/email.
	DummyOTP = "1234"
)

var dummyAccounts = []string{"1234567899", "abc@gmail.com"}

func IsDummyAccount(identifier string) bool {
	for _, acc := range dummyAccounts {
		if identifier == acc {
			return true
		}
	}
	return false
}

// GenerateOTP menghasilkan kode numerik 6 digit (crypto/rand, bukan
// math/rand: kode ini kredensial sekali pakai).
func GenerateOTP() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < OTPLength; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", OTPLength, n), nil
}

// HashOTP: hanya hash bcrypt yang masuk ke otp_sessions.
func HashOTP(code string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CompareOTP(hash, code string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}

// DevelopmentInfo: petunjuk OTP dummy, hanya di luar production.
func DevelopmentInfo(identifier string) string {
	if IsDummyAccount(identifier) && configs.AppEnv != "production" {
		return fmt.Sprintf("Use OTP %s for testing", DummyOTP)
	}
	return ""
}
