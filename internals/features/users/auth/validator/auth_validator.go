// file: internals/features/users/auth/validator/auth_validator.go
package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"kbcms_backend/internals/features/users/auth/dto"
	helpers "kbcms_backend/internals/helpers"
)

var validateAuth = validator.New()

const (
	LocalsLoginRequest   = "login_request"
	LocalsResendRequest  = "resend_request"
	LocalsVerifyRequest  = "verify_request"
	LocalsProfileRequest = "profile_request"
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobilePattern = regexp.MustCompile(`^[0-9]{10,15}$`)
	otpPattern    = regexp.MustCompile(`^[0-9]{4,6}$`)
)

var authFieldMessages = map[string]map[string]string{
	"Identifier": {
		"required": "Email or mobile number is required",
		"min":      "Identifier must be between 5 and 255 characters",
		"max":      "Identifier must be between 5 and 255 characters",
	},
	"OTP": {
		"required": "OTP is required",
		"min":      "OTP must be between 4 and 6 digits",
		"max":      "OTP must be between 4 and 6 digits",
	},
	"SessionToken": {"required": "Session token is required"},
	"Name": {
		"required": "Name is required",
		"min":      "Name must be between 2 and 100 characters",
		"max":      "Name must be between 2 and 100 characters",
	},
	"Age": {
		"required": "Age is required",
		"min":      "Age must be between 5 and 100",
		"max":      "Age must be between 5 and 100",
	},
	"Institution": {
		"required": "Institution is required",
		"min":      "Institution must be between 2 and 200 characters",
		"max":      "Institution must be between 2 and 200 characters",
	},
	"SchoolID": {"uuid4": "Invalid school ID"},
}

// IsEmail / IsMobileNumber menentukan jalur verifikasi identifier.
func IsEmail(identifier string) bool {
	return emailPattern.MatchString(identifier)
}

func IsMobileNumber(identifier string) bool {
	return mobilePattern.MatchString(identifier)
}

// ValidateLoginRequest: identifier wajib, dan harus email atau nomor HP valid.
func ValidateLoginRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body", helpers.ErrTypeValidation)
		}
		body.Identifier = strings.TrimSpace(body.Identifier)

		if errs := checkIdentifier(&body.Identifier); len(errs) > 0 {
			return helpers.JsonValidationErrors(c, errs)
		}

		c.Locals(LocalsLoginRequest, &body)
		return c.Next()
	}
}

// ValidateResendOTP: aturan identifier sama dengan login.
func ValidateResendOTP() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.ResendOTPRequest
		if err := c.BodyParser(&body); err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body", helpers.ErrTypeValidation)
		}
		body.Identifier = strings.TrimSpace(body.Identifier)

		if errs := checkIdentifier(&body.Identifier); len(errs) > 0 {
			return helpers.JsonValidationErrors(c, errs)
		}

		c.Locals(LocalsResendRequest, &body)
		return c.Next()
	}
}

// ValidateOTPVerification: identifier + kode OTP numerik + session token.
func ValidateOTPVerification() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.VerifyOTPRequest
		if err := c.BodyParser(&body); err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body", helpers.ErrTypeValidation)
		}
		body.Identifier = strings.TrimSpace(body.Identifier)
		body.OTP = strings.TrimSpace(body.OTP)

		var errs []helpers.FieldError
		errs = append(errs, checkIdentifier(&body.Identifier)...)
		errs = append(errs, structErrors(&body)...)
		if body.OTP != "" && !otpPattern.MatchString(body.OTP) {
			errs = append(errs, helpers.FieldError{
				Field: "otp", Message: "OTP must contain only digits", Value: body.OTP,
			})
		}
		if len(errs) > 0 {
			return helpers.JsonValidationErrors(c, errs)
		}

		c.Locals(LocalsVerifyRequest, &body)
		return c.Next()
	}
}

// ValidateStudentProfile: data profil pelajar setelah login.
func ValidateStudentProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.CreateProfileRequest
		if err := c.BodyParser(&body); err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body", helpers.ErrTypeValidation)
		}
		body.Name = strings.TrimSpace(body.Name)
		body.Institution = strings.TrimSpace(body.Institution)

		if errs := structErrors(&body); len(errs) > 0 {
			return helpers.JsonValidationErrors(c, errs)
		}

		c.Locals(LocalsProfileRequest, &body)
		return c.Next()
	}
}

func checkIdentifier(identifier *string) []helpers.FieldError {
	if *identifier == "" {
		return []helpers.FieldError{{Field: "identifier", Message: authFieldMessages["Identifier"]["required"]}}
	}
	if !IsEmail(*identifier) && !IsMobileNumber(*identifier) {
		return []helpers.FieldError{{
			Field:   "identifier",
			Message: "Identifier must be a valid email or mobile number",
			Value:   *identifier,
		}}
	}
	return nil
}

func structErrors(body any) []helpers.FieldError {
	err := validateAuth.Struct(body)
	if err == nil {
		return nil
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []helpers.FieldError{{Field: "body", Message: "Invalid request body"}}
	}

	var errs []helpers.FieldError
	for _, fe := range ve {
		errs = append(errs, helpers.FieldError{
			Field:   fieldName(fe),
			Message: authMessageFor(fe),
			Value:   fe.Value(),
		})
	}
	return errs
}

func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if len(name) > 0 {
		name = strings.ToLower(name[:1]) + name[1:]
	}
	return name
}

func authMessageFor(fe validator.FieldError) string {
	if byTag, ok := authFieldMessages[fe.Field()]; ok {
		if msg, ok := byTag[fe.Tag()]; ok {
			return msg
		}
	}
	return fmt.Sprintf("Invalid value for %s", fieldName(fe))
}
