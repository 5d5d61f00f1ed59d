// file: internals/features/contents/news/validator/news_validator.go
package validator

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"kbcms_backend/internals/constants"
	"kbcms_backend/internals/features/contents/news/dto"
	helpers "kbcms_backend/internals/helpers"
)

var validateNews = validator.New()

// LocalsNewsRequest adalah key Locals untuk body yang sudah tervalidasi.
const LocalsNewsRequest = "news_request"

// Pesan per field+tag (meniru rule set deklaratif per field).
var newsFieldMessages = map[string]map[string]string{
	"Title": {
		"required": "Title is required",
		"min":      "Title must be between 3 and 200 characters",
		"max":      "Title must be between 3 and 200 characters",
	},
	"SubTitle": {
		"required": "Subtitle is required",
		"min":      "Subtitle must be between 3 and 300 characters",
		"max":      "Subtitle must be between 3 and 300 characters",
	},
	"Description": {
		"required": "Description is required",
		"min":      "Description must be between 5 and 5000 characters",
		"max":      "Description must be between 5 and 5000 characters",
	},
	"Category": {"required": "Category is required"},
	"Type":     {"required": "Type is required"},
	"Status":   {"required": "Status is required"},
	"Author": {
		"required": "Author is required",
		"min":      "Author name must be between 2 and 100 characters",
		"max":      "Author name must be between 2 and 100 characters",
	},
	"Question": {
		"required": "Quiz question text is required",
		"min":      "Quiz question must be between 5 and 500 characters",
		"max":      "Quiz question must be between 5 and 500 characters",
	},
	"Options": {
		"required": "Quiz question must have between 2 and 6 options",
		"min":      "Quiz question must have between 2 and 6 options",
		"max":      "Quiz question must have between 2 and 6 options",
	},
	"CorrectAnswers": {
		"required": "At least one correct answer is required",
		"min":      "At least one correct answer is required",
	},
}

// ValidateNewsSubmission: rule per field → cross-field → simpan DTO ke Locals.
// Short-circuit 400 sebelum handler jalan.
func ValidateNewsSubmission() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, parseErr := ParseNewsBody(c)
		if parseErr != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, parseErr.Error(), helpers.ErrTypeValidation)
		}

		if errs := CheckNewsFields(body); len(errs) > 0 {
			log.Printf("[WARN] News submission validation failed: %d error(s) ip=%s", len(errs), c.IP())
			return helpers.JsonValidationErrors(c, errs)
		}

		if msg := CheckNewsCrossFields(body); msg != "" {
			return helpers.JsonMessageError(c, fiber.StatusBadRequest, msg)
		}

		c.Locals(LocalsNewsRequest, body)
		return c.Next()
	}
}

// ParseNewsBody mendukung JSON body dan multipart form (quizQuestions dikirim
// sebagai string JSON, hasQuiz sebagai string boolean).
func ParseNewsBody(c *fiber.Ctx) (*dto.CreateNewsRequest, error) {
	var body dto.CreateNewsRequest

	ct := string(c.Request().Header.ContentType())
	if strings.HasPrefix(ct, fiber.MIMEMultipartForm) {
		body.Title = c.FormValue("title")
		body.SubTitle = c.FormValue("subTitle")
		body.Description = c.FormValue("description")
		body.Category = c.FormValue("category")
		body.Type = c.FormValue("type")
		body.ContentURL = c.FormValue("content_url")
		body.Status = c.FormValue("status")
		body.Author = c.FormValue("author")
		body.HasQuiz = c.FormValue("hasQuiz") == "true"

		if raw := c.FormValue("quizQuestions"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &body.QuizQuestions); err != nil {
				log.Printf("[WARN] Failed to parse quizQuestions JSON: %v", err)
				return nil, fmt.Errorf("Invalid JSON format for quizQuestions")
			}
		}
		return &body, nil
	}

	if err := c.BodyParser(&body); err != nil {
		return nil, fmt.Errorf("Invalid request body")
	}
	return &body, nil
}

// CheckNewsFields menjalankan rule per field dan mengubahnya jadi daftar
// {field, message, value}.
func CheckNewsFields(body *dto.CreateNewsRequest) []helpers.FieldError {
	var errs []helpers.FieldError

	if err := validateNews.Struct(body); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range ve {
				errs = append(errs, helpers.FieldError{
					Field:   fieldName(fe),
					Message: newsMessageFor(fe),
					Value:   fe.Value(),
				})
			}
		}
	}

	// Enum membership dicek eksplisit: nilai enum mengandung spasi
	// ("Tips & Tricks", "General News") sehingga tag oneof tidak bisa dipakai.
	if body.Category != "" && !constants.InList(body.Category, constants.NewsCategories) {
		errs = append(errs, helpers.FieldError{Field: "category", Message: "Invalid category", Value: body.Category})
	}
	if body.Type != "" && !constants.InList(body.Type, constants.NewsTypes) {
		errs = append(errs, helpers.FieldError{Field: "type", Message: "Invalid type", Value: body.Type})
	}
	if body.Status != "" && !constants.InList(body.Status, constants.Statuses) {
		errs = append(errs, helpers.FieldError{Field: "status", Message: "Status must be either Draft or Published", Value: body.Status})
	}

	return errs
}

// CheckNewsCrossFields jalan hanya setelah rule per-field lolos.
// Index soal pada pesan 1-based.
func CheckNewsCrossFields(body *dto.CreateNewsRequest) string {
	if body.HasQuiz && len(body.QuizQuestions) == 0 {
		return "Quiz questions are required when hasQuiz is true"
	}

	for i, q := range body.QuizQuestions {
		for _, answer := range q.CorrectAnswers {
			if !constants.InList(answer, q.Options) {
				return fmt.Sprintf("Correct answers must be from the provided options for question %d", i+1)
			}
		}
	}
	return ""
}

func fieldName(fe validator.FieldError) string {
	// Namespace ala "CreateNewsRequest.QuizQuestions[0].Question" → field terakhir,
	// huruf depan kecil supaya cocok dengan nama field JSON.
	name := fe.Field()
	if len(name) > 0 {
		name = strings.ToLower(name[:1]) + name[1:]
	}
	return name
}

func newsMessageFor(fe validator.FieldError) string {
	if byTag, ok := newsFieldMessages[fe.Field()]; ok {
		if msg, ok := byTag[fe.Tag()]; ok {
			return msg
		}
	}
	return fmt.Sprintf("Invalid value for %s", fieldName(fe))
}
