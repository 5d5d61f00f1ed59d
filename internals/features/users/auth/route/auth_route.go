package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "kbcms_backend/internals/features/users/auth/controller"
	authValidator "kbcms_backend/internals/features/users/auth/validator"
	"kbcms_backend/internals/middlewares"
	authMiddleware "kbcms_backend/internals/middlewares/auth"
)

// AuthRoutes: endpoint OTP dibungkus limiter khusus, urutan
// limiter → validator → auth (bila perlu) → controller.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	api.Post("/login",
		middlewares.LoginRateLimiter(),
		authValidator.ValidateLoginRequest(),
		ctrl.Login,
	)
	api.Post("/resend-otp",
		middlewares.ResendOTPRateLimiter(),
		authValidator.ValidateResendOTP(),
		ctrl.ResendOTP,
	)
	api.Post("/verify-otp",
		middlewares.OTPVerifyRateLimiter(),
		authValidator.ValidateOTPVerification(),
		ctrl.VerifyOTP,
	)
	api.Get("/profile",
		authMiddleware.AuthMiddleware(db),
		ctrl.GetProfile,
	)
	api.Post("/logout",
		authMiddleware.AuthMiddleware(db),
		ctrl.Logout,
	)
	api.Post("/create-profile",
		authMiddleware.AuthMiddleware(db),
		authValidator.ValidateStudentProfile(),
		ctrl.CreateStudentProfile,
	)
}
