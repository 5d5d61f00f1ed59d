// file: internals/features/contents/quiz/validator/quiz_validator.go
package validator

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"kbcms_backend/internals/constants"
	"kbcms_backend/internals/features/contents/quiz/dto"
	helpers "kbcms_backend/internals/helpers"
)

var validateQuiz = validator.New()

const (
	LocalsQuizRequest       = "quiz_request"
	LocalsQuizUpdateRequest = "quiz_update_request"
)

var quizFieldMessages = map[string]map[string]string{
	"Title": {
		"required": "Title is required",
		"min":      "Title must be between 3 and 200 characters",
		"max":      "Title must be between 3 and 200 characters",
	},
	"Description": {
		"required": "Description is required",
		"min":      "Description must be between 10 and 1000 characters",
		"max":      "Description must be between 10 and 1000 characters",
	},
	"Category": {"required": "Category is required"},
	"Status":   {"required": "Status is required"},
	"Author": {
		"required": "Author is required",
		"min":      "Author name must be between 2 and 100 characters",
		"max":      "Author name must be between 2 and 100 characters",
	},
	"TimeLimit": {
		"min": "Time limit must be between 1 and 180 minutes",
		"max": "Time limit must be between 1 and 180 minutes",
	},
	"Questions": {
		"required": "At least one question is required",
		"min":      "At least one question is required",
	},
	"Question": {
		"required": "Question text is required",
		"min":      "Question must be between 5 and 500 characters",
		"max":      "Question must be between 5 and 500 characters",
	},
	"Options": {
		"required": "Question must have between 2 and 6 options",
		"min":      "Question must have between 2 and 6 options",
		"max":      "Question must have between 2 and 6 options",
	},
	"CorrectAnswers": {
		"required": "At least one correct answer is required",
		"min":      "At least one correct answer is required",
	},
	"Points": {
		"min": "Points must be between 1 and 10",
		"max": "Points must be between 1 and 10",
	},
}

// ValidateQuizSubmission: rule per field → cross-field → Locals.
func ValidateQuizSubmission() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.CreateQuizRequest
		if err := c.BodyParser(&body); err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body", helpers.ErrTypeValidation)
		}

		if errs := CheckQuizFields(&body); len(errs) > 0 {
			log.Printf("[WARN] Quiz submission validation failed: %d error(s) ip=%s", len(errs), c.IP())
			return helpers.JsonValidationErrors(c, errs)
		}

		if msg := CheckQuizCrossFields(body.Questions); msg != "" {
			return helpers.JsonMessageError(c, fiber.StatusBadRequest, msg)
		}

		c.Locals(LocalsQuizRequest, &body)
		return c.Next()
	}
}

// ValidateQuizUpdate: semua field opsional, rule sama.
func ValidateQuizUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.UpdateQuizRequest
		if err := c.BodyParser(&body); err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body", helpers.ErrTypeValidation)
		}

		var errs []helpers.FieldError
		if err := validateQuiz.Struct(&body); err != nil {
			if ve, ok := err.(validator.ValidationErrors); ok {
				for _, fe := range ve {
					errs = append(errs, helpers.FieldError{
						Field:   fieldName(fe),
						Message: quizMessageFor(fe),
						Value:   fe.Value(),
					})
				}
			}
		}
		errs = append(errs, checkQuizEnumsOptional(&body)...)
		if len(errs) > 0 {
			log.Printf("[WARN] Quiz update validation failed: %d error(s) ip=%s", len(errs), c.IP())
			return helpers.JsonValidationErrors(c, errs)
		}

		if body.Questions != nil {
			if msg := CheckQuizCrossFields(body.Questions); msg != "" {
				return helpers.JsonMessageError(c, fiber.StatusBadRequest, msg)
			}
		}

		c.Locals(LocalsQuizUpdateRequest, &body)
		return c.Next()
	}
}

func CheckQuizFields(body *dto.CreateQuizRequest) []helpers.FieldError {
	var errs []helpers.FieldError

	if err := validateQuiz.Struct(body); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range ve {
				errs = append(errs, helpers.FieldError{
					Field:   fieldName(fe),
					Message: quizMessageFor(fe),
					Value:   fe.Value(),
				})
			}
		}
	}

	// Enum berisi spasi ("Tips & Tricks") → dicek eksplisit, bukan lewat oneof.
	if body.Category != "" && !constants.InList(body.Category, constants.QuizCategories) {
		errs = append(errs, helpers.FieldError{Field: "category", Message: "Invalid category", Value: body.Category})
	}
	if body.Difficulty != "" && !constants.InList(body.Difficulty, constants.QuizDifficulties) {
		errs = append(errs, helpers.FieldError{Field: "difficulty", Message: "Difficulty must be Easy, Medium, or Hard", Value: body.Difficulty})
	}
	if body.Status != "" && !constants.InList(body.Status, constants.Statuses) {
		errs = append(errs, helpers.FieldError{Field: "status", Message: "Status must be either Draft or Published", Value: body.Status})
	}

	return errs
}

// CheckQuizCrossFields: jawaban benar ⊆ opsi, dan opsi unik per soal.
// Index soal pada pesan 1-based.
func CheckQuizCrossFields(questions []dto.QuizQuestionRequest) string {
	for i, q := range questions {
		for _, answer := range q.CorrectAnswers {
			if !constants.InList(answer, q.Options) {
				return fmt.Sprintf("Correct answers must be from the provided options for question %d", i+1)
			}
		}

		seen := make(map[string]struct{}, len(q.Options))
		for _, opt := range q.Options {
			if _, dup := seen[opt]; dup {
				return fmt.Sprintf("Options must be unique for question %d", i+1)
			}
			seen[opt] = struct{}{}
		}
	}
	return ""
}

func checkQuizEnumsOptional(body *dto.UpdateQuizRequest) []helpers.FieldError {
	var errs []helpers.FieldError
	if body.Category != nil && !constants.InList(*body.Category, constants.QuizCategories) {
		errs = append(errs, helpers.FieldError{Field: "category", Message: "Invalid category", Value: *body.Category})
	}
	if body.Difficulty != nil && !constants.InList(*body.Difficulty, constants.QuizDifficulties) {
		errs = append(errs, helpers.FieldError{Field: "difficulty", Message: "Difficulty must be Easy, Medium, or Hard", Value: *body.Difficulty})
	}
	if body.Status != nil && !constants.InList(*body.Status, constants.Statuses) {
		errs = append(errs, helpers.FieldError{Field: "status", Message: "Status must be either Draft or Published", Value: *body.Status})
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

func quizMessageFor(fe validator.FieldError) string {
	if byTag, ok := quizFieldMessages[fe.Field()]; ok {
		if msg, ok := byTag[fe.Tag()]; ok {
			return msg
		}
	}
	return fmt.Sprintf("Invalid value for %s", fieldName(fe))
}
