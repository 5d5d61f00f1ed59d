package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quizController "kbcms_backend/internals/features/contents/quiz/controller"
	quizValidator "kbcms_backend/internals/features/contents/quiz/validator"
	authMiddleware "kbcms_backend/internals/middlewares/auth"
)

// QuizRoutes: submit/update/delete butuh auth; read publik.
func QuizRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := quizController.NewQuizController(db)

	api.Post("/create-quiz",
		authMiddleware.AuthMiddleware(db),
		quizValidator.ValidateQuizSubmission(),
		ctrl.CreateQuiz,
	)
	api.Get("/quiz", ctrl.GetQuizzes)
	api.Get("/quiz/:id", ctrl.GetQuizByID)
	api.Put("/quiz/:id",
		authMiddleware.AuthMiddleware(db),
		quizValidator.ValidateQuizUpdate(),
		ctrl.UpdateQuiz,
	)
	api.Delete("/quiz/:id",
		authMiddleware.AuthMiddleware(db),
		ctrl.DeleteQuiz,
	)
}
