// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kbcms_backend/internals/features/users/auth/dto"
	"kbcms_backend/internals/features/users/auth/model"
	"kbcms_backend/internals/features/users/auth/repository"
	"kbcms_backend/internals/features/users/auth/service"
	authValidator "kbcms_backend/internals/features/users/auth/validator"
	helpers "kbcms_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =============================
// 🔐 Login (identifier → OTP + session token)
// =============================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	body, ok := c.Locals(authValidator.LocalsLoginRequest).(*dto.LoginRequest)
	if !ok {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body", helpers.ErrTypeValidation)
	}

	user, err := ctrl.findOrCreateUser(body.Identifier)
	if err != nil {
		return helpers.JsonAppError(c, err)
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Account is disabled", helpers.ErrTypeUnauthorized)
	}

	sessionToken, err := ctrl.issueOTP(user, body.Identifier)
	if err != nil {
		return helpers.JsonAppError(c, err)
	}

	return helpers.JsonOK(c, "OTP sent successfully", dto.LoginResponseData{
		SessionToken:    sessionToken,
		ExpiresIn:       int(service.SessionTokenTTL.Seconds()),
		DevelopmentInfo: service.DevelopmentInfo(body.Identifier),
	})
}

// =============================
// 🔁 Resend OTP (akun harus sudah ada)
// =============================
func (ctrl *AuthController) ResendOTP(c *fiber.Ctx) error {
	body, ok := c.Locals(authValidator.LocalsResendRequest).(*dto.ResendOTPRequest)
	if !ok {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body", helpers.ErrTypeValidation)
	}

	user, err := repository.FindUserByIdentifier(ctrl.DB, body.Identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "User not found", helpers.ErrTypeUserNotFound)
		}
		return helpers.JsonAppError(c, err)
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Account is disabled", helpers.ErrTypeUnauthorized)
	}

	sessionToken, err := ctrl.issueOTP(user, body.Identifier)
	if err != nil {
		return helpers.JsonAppError(c, err)
	}

	return helpers.JsonOK(c, "OTP resent successfully", dto.LoginResponseData{
		SessionToken:    sessionToken,
		ExpiresIn:       int(service.SessionTokenTTL.Seconds()),
		DevelopmentInfo: service.DevelopmentInfo(body.Identifier),
	})
}

// =============================
// ✅ Verify OTP (session token + OTP → access token)
// =============================
func (ctrl *AuthController) VerifyOTP(c *fiber.Ctx) error {
	body, ok := c.Locals(authValidator.LocalsVerifyRequest).(*dto.VerifyOTPRequest)
	if !ok {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body", helpers.ErrTypeValidation)
	}

	userID, boundIdentifier, err := service.ParseSessionToken(body.SessionToken)
	if err != nil || boundIdentifier != body.Identifier {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid or expired session token", helpers.ErrTypeUnauthorized)
	}

	session, err := repository.FindActiveOTPSession(ctrl.DB, userID, body.Identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "No active OTP session, please login again", helpers.ErrTypeUnauthorized)
		}
		return helpers.JsonAppError(c, err)
	}

	if session.IsExpired(time.Now()) {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "OTP has expired, please request a new one", helpers.ErrTypeUnauthorized)
	}
	if session.AttemptsExhausted() {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Too many incorrect attempts, please request a new OTP", helpers.ErrTypeUnauthorized)
	}

	if !service.CompareOTP(session.OTPHash, body.OTP) {
		if err := repository.IncrementOTPAttempts(ctrl.DB, session.ID); err != nil {
			log.Printf("[WARN] gagal increment attempt OTP: %v", err)
		}
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid OTP", helpers.ErrTypeUnauthorized)
	}

	if err := repository.MarkOTPVerified(ctrl.DB, session.ID); err != nil {
		return helpers.JsonAppError(c, err)
	}
	if err := repository.MarkIdentifierVerified(ctrl.DB, userID, authValidator.IsEmail(body.Identifier)); err != nil {
		log.Printf("[WARN] gagal set flag verifikasi: %v", err)
	}
	if err := repository.UpdateLastLogin(ctrl.DB, userID); err != nil {
		log.Printf("[WARN] gagal update last_login_at: %v", err)
	}

	user, err := repository.FindUserByID(ctrl.DB, userID)
	if err != nil {
		return helpers.JsonAppError(c, err)
	}

	accessToken, err := service.IssueAccessToken(user)
	if err != nil {
		return helpers.JsonAppError(c, err)
	}

	return helpers.JsonOK(c, "Login successful", dto.VerifyOTPResponseData{
		AccessToken: accessToken,
		ExpiresIn:   int(service.AccessTokenTTL.Seconds()),
		User:        dto.ToUserDTO(*user),
	})
}

// =============================
// 👤 Get Profile
// =============================
func (ctrl *AuthController) GetProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid or missing user ID", helpers.ErrTypeUnauthorized)
	}

	user, err := repository.FindUserByID(ctrl.DB, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "User not found", helpers.ErrTypeUserNotFound)
		}
		return helpers.JsonAppError(c, err)
	}

	return helpers.JsonOK(c, "Profile retrieved successfully", fiber.Map{
		"user": dto.ToUserDTO(*user),
	})
}

// =============================
// 🚪 Logout (access token masuk blacklist)
// =============================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	rawToken, _ := c.Locals("raw_token").(string)
	if rawToken == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Missing or invalid authorization header", helpers.ErrTypeUnauthorized)
	}

	if err := repository.BlacklistToken(ctrl.DB, rawToken, service.AccessTokenTTL); err != nil {
		return helpers.JsonAppError(c, err)
	}

	return helpers.JsonOK(c, "Logged out successfully", nil)
}

// =============================
// 🎓 Create Student Profile
// =============================
func (ctrl *AuthController) CreateStudentProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid or missing user ID", helpers.ErrTypeUnauthorized)
	}

	body, ok := c.Locals(authValidator.LocalsProfileRequest).(*dto.CreateProfileRequest)
	if !ok {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body", helpers.ErrTypeValidation)
	}

	fields := map[string]any{
		"name":        body.Name,
		"age":         body.Age,
		"institution": body.Institution,
	}
	if body.SchoolID != nil {
		schoolID, perr := uuid.Parse(*body.SchoolID)
		if perr != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid school ID", helpers.ErrTypeValidation)
		}
		fields["school_id"] = schoolID
	}

	if err := repository.UpdateStudentProfile(ctrl.DB, userID, fields); err != nil {
		return helpers.JsonAppError(c, err)
	}

	user, err := repository.FindUserByID(ctrl.DB, userID)
	if err != nil {
		return helpers.JsonAppError(c, err)
	}

	return helpers.JsonCreated(c, "Profile created successfully", fiber.Map{
		"user": dto.ToUserDTO(*user),
	})
}

/* ===============================
   Helpers
=================================*/

// issueOTP: invalidasi sesi lama → kode baru (dummy account → kode tetap) →
// simpan hash → terbitkan session token. Pengiriman SMS/email di luar repo
// ini; kanal pengiriman hanya menerima event log.
func (ctrl *AuthController) issueOTP(user *model.UserModel, identifier string) (string, error) {
	if err := repository.InvalidateOTPSessions(ctrl.DB, user.ID, identifier); err != nil {
		return "", err
	}

	code := service.DummyOTP
	if !service.IsDummyAccount(identifier) {
		generated, err := service.GenerateOTP()
		if err != nil {
			return "", err
		}
		code = generated
	}

	hash, err := service.HashOTP(code)
	if err != nil {
		return "", err
	}

	if err := repository.CreateOTPSession(ctrl.DB, &model.OTPSessionModel{
		UserID:     user.ID,
		Identifier: identifier,
		OTPHash:    hash,
		ExpiresAt:  time.Now().Add(service.OTPTTL),
	}); err != nil {
		return "", err
	}

	log.Printf("[INFO] 📨 OTP diterbitkan untuk user=%s (kanal pengiriman eksternal)", user.ID)

	return service.IssueSessionToken(user.ID, identifier)
}

func (ctrl *AuthController) findOrCreateUser(identifier string) (*model.UserModel, error) {
	user, err := repository.FindUserByIdentifier(ctrl.DB, identifier)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := model.UserModel{IsActive: true}
	if authValidator.IsEmail(identifier) {
		fresh.Email = &identifier
	} else {
		fresh.MobileNumber = &identifier
	}
	if err := repository.CreateUser(ctrl.DB, &fresh); err != nil {
		return nil, err
	}
	return &fresh, nil
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	return uuid.Parse(raw)
}
