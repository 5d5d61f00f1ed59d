// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	newsRoute "kbcms_backend/internals/features/contents/news/route"
	quizRoute "kbcms_backend/internals/features/contents/quiz/route"
	authRoute "kbcms_backend/internals/features/users/auth/route"
	schoolRoute "kbcms_backend/internals/features/users/school/route"
	s3helper "kbcms_backend/internals/helpers/s3"
	"kbcms_backend/internals/middlewares"
)

var startTime time.Time

// SetupRoutes memasang semua route di group /api. Limiter global berlaku
// untuk seluruh group; endpoint OTP punya limiter tambahan di dalam
// AuthRoutes.
func SetupRoutes(app *fiber.App, db *gorm.DB, s3 *s3helper.S3Service) {
	startTime = time.Now()

	api := app.Group("/api", middlewares.GlobalRateLimiter())

	log.Println("[INFO] Mounting Auth routes...")
	authRoute.AuthRoutes(api, db)

	log.Println("[INFO] Mounting School routes...")
	schoolRoute.SchoolRoutes(api, db)

	log.Println("[INFO] Mounting News routes...")
	newsRoute.NewsRoutes(api, db, s3)

	log.Println("[INFO] Mounting Quiz routes...")
	quizRoute.QuizRoutes(api, db)
}
