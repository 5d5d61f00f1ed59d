package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	newsController "kbcms_backend/internals/features/contents/news/controller"
	newsValidator "kbcms_backend/internals/features/contents/news/validator"
	s3helper "kbcms_backend/internals/helpers/s3"
	authMiddleware "kbcms_backend/internals/middlewares/auth"
)

// NewsRoutes: create butuh auth + validator; read publik.
func NewsRoutes(api fiber.Router, db *gorm.DB, s3 *s3helper.S3Service) {
	ctrl := newsController.NewNewsController(db, s3)

	api.Post("/create-news",
		newsValidator.ValidateNewsSubmission(),
		authMiddleware.AuthMiddleware(db),
		ctrl.CreateNews,
	)
	api.Get("/news", ctrl.GetNews)
	api.Get("/news/:id", ctrl.GetNewsByID)
	api.Put("/news/:id", ctrl.UpdateNews)
	api.Delete("/news/:id", ctrl.DeleteNews)
}
