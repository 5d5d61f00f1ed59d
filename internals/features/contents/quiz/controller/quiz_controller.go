// file: internals/features/contents/quiz/controller/quiz_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kbcms_backend/internals/constants"
	"kbcms_backend/internals/features/contents/quiz/dto"
	"kbcms_backend/internals/features/contents/quiz/model"
	"kbcms_backend/internals/features/contents/quiz/repository"
	quizValidator "kbcms_backend/internals/features/contents/quiz/validator"
	helpers "kbcms_backend/internals/helpers"
)

type QuizController struct {
	Repo *repository.QuizRepository
}

func NewQuizController(db *gorm.DB) *QuizController {
	return &QuizController{Repo: repository.NewQuizRepository(db)}
}

// =============================
// ➕ Create Quiz (JSON body, totals dihitung ulang di BeforeSave)
// =============================
func (ctrl *QuizController) CreateQuiz(c *fiber.Ctx) error {
	body, ok := c.Locals(quizValidator.LocalsQuizRequest).(*dto.CreateQuizRequest)
	if !ok {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body", helpers.ErrTypeValidation)
	}

	difficulty := body.Difficulty
	if difficulty == "" {
		difficulty = constants.DifficultyEasy
	}
	timeLimit := body.TimeLimit
	if timeLimit <= 0 {
		timeLimit = constants.DefaultTimeLimitMinutes
	}

	quiz := model.QuizModel{
		QuizTitle:       body.Title,
		QuizDescription: body.Description,
		QuizCategory:    body.Category,
		QuizDifficulty:  difficulty,
		QuizTimeLimit:   timeLimit,
		QuizAuthor:      body.Author,
		QuizIsActive:    true,
	}
	if err := quiz.SetQuestions(toModelQuestions(body.Questions)); err != nil {
		return helpers.JsonAppError(c, err)
	}
	quiz.ApplyStatus(body.Status)

	if err := ctrl.Repo.Create(&quiz); err != nil {
		return helpers.JsonAppError(c, err)
	}

	return helpers.JsonCreated(c, constants.MsgQuizCreated, dto.ToCreatedQuizDTO(quiz))
}

// =============================
// 📄 Get Quizzes (filter + pagination, urut terbaru)
// =============================
func (ctrl *QuizController) GetQuizzes(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 10, 100)

	filter := map[string]any{"quiz_is_active": true}
	if v := c.Query("category"); v != "" {
		filter["quiz_category"] = v
	}
	if v := c.Query("difficulty"); v != "" {
		filter["quiz_difficulty"] = v
	}
	if v := c.Query("status"); v != "" {
		filter["quiz_status"] = v
	}
	if v := c.Query("author"); v != "" {
		filter["quiz_author"] = v
	}

	rows, pagination, err := ctrl.Repo.FindMany(filter, repository.QueryOptions{
		Page:  paging.Page,
		Limit: paging.Limit,
		Sort:  "quiz_created_at DESC",
	})
	if err != nil {
		return helpers.JsonAppError(c, err)
	}

	quizzes := make([]dto.QuizDTO, 0, len(rows))
	for _, row := range rows {
		quizzes = append(quizzes, dto.ToQuizDTO(row))
	}

	return helpers.JsonOK(c, constants.MsgQuizRetrieved, fiber.Map{
		"quizzes":    quizzes,
		"pagination": pagination,
	})
}

// =============================
// 🔍 Get Quiz By ID (attempt count naik; kegagalan counter hanya dicatat)
// =============================
func (ctrl *QuizController) GetQuizByID(c *fiber.Ctx) error {
	id := c.Params("id")

	quiz, err := ctrl.Repo.FindOne(map[string]any{"quiz_id": id, "quiz_is_active": true}, repository.QueryOptions{})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, constants.MsgQuizNotFound, helpers.ErrTypeQuizNotFound)
		}
		return helpers.JsonAppError(c, err)
	}

	if err := ctrl.Repo.IncrementCounter(map[string]any{"quiz_id": id}, "quiz_attempt_count"); err != nil {
		log.Printf("[WARN] gagal increment attempt count: %v", err)
	}
	quiz.QuizAttemptCount++

	return helpers.JsonOK(c, constants.MsgQuizRetrieved, fiber.Map{
		"quiz": dto.ToQuizDTO(*quiz),
	})
}

// =============================
// 🔄 Update Quiz (partial merge; Save memicu BeforeSave → totals segar)
// =============================
func (ctrl *QuizController) UpdateQuiz(c *fiber.Ctx) error {
	id := c.Params("id")

	body, ok := c.Locals(quizValidator.LocalsQuizUpdateRequest).(*dto.UpdateQuizRequest)
	if !ok {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body", helpers.ErrTypeValidation)
	}

	quiz, err := ctrl.Repo.FindOne(map[string]any{"quiz_id": id, "quiz_is_active": true}, repository.QueryOptions{})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, constants.MsgQuizNotFound, helpers.ErrTypeQuizNotFound)
		}
		return helpers.JsonAppError(c, err)
	}

	if body.Title != nil {
		quiz.QuizTitle = *body.Title
	}
	if body.Description != nil {
		quiz.QuizDescription = *body.Description
	}
	if body.Category != nil {
		quiz.QuizCategory = *body.Category
	}
	if body.Difficulty != nil {
		quiz.QuizDifficulty = *body.Difficulty
	}
	if body.TimeLimit != nil {
		quiz.QuizTimeLimit = *body.TimeLimit
	}
	if body.Author != nil {
		quiz.QuizAuthor = *body.Author
	}
	if body.Questions != nil {
		if err := quiz.SetQuestions(toModelQuestions(body.Questions)); err != nil {
			return helpers.JsonAppError(c, err)
		}
	}
	if body.Status != nil {
		quiz.ApplyStatus(*body.Status)
	}

	if err := ctrl.Repo.DB.Save(quiz).Error; err != nil {
		return helpers.JsonAppError(c, err)
	}

	return helpers.JsonOK(c, constants.MsgQuizUpdated, fiber.Map{
		"quiz": dto.ToQuizDTO(*quiz),
	})
}

// =============================
// 🗑️ Delete Quiz (HARD delete, beda dengan news yang soft delete)
// =============================
func (ctrl *QuizController) DeleteQuiz(c *fiber.Ctx) error {
	id := c.Params("id")

	if _, err := ctrl.Repo.DeleteByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, constants.MsgQuizNotFound, helpers.ErrTypeQuizNotFound)
		}
		return helpers.JsonAppError(c, err)
	}

	return helpers.JsonOK(c, constants.MsgQuizDeleted, nil)
}

func toModelQuestions(in []dto.QuizQuestionRequest) []model.QuizQuestion {
	out := make([]model.QuizQuestion, 0, len(in))
	for _, q := range in {
		out = append(out, model.QuizQuestion{
			Question:       q.Question,
			Options:        q.Options,
			CorrectAnswers: q.CorrectAnswers,
			Points:         q.Points,
		})
	}
	return out
}
