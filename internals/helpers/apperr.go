package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"kbcms_backend/internals/configs"
	"kbcms_backend/internals/constants"
)

// ErrorType adalah tag tertutup untuk taksonomi error aplikasi.
// Satu tag per entri; controller mengklasifikasi berdasarkan tag ini.
type ErrorType string

const (
	ErrTypeValidation      ErrorType = "VALIDATION_ERROR"
	ErrTypeArticleNotFound ErrorType = "ARTICLE_NOT_FOUND"
	ErrTypeQuizNotFound    ErrorType = "QUIZ_NOT_FOUND"
	ErrTypeUserNotFound    ErrorType = "USER_NOT_FOUND"
	ErrTypeFileUpload      ErrorType = "FILE_UPLOAD_ERROR"
	ErrTypeUnauthorized    ErrorType = "UNAUTHORIZED"
	ErrTypeInternal        ErrorType = "INTERNAL_ERROR"
)

type AppError struct {
	Type    ErrorType
	Status  int
	Message string
}

func (e *AppError) Error() string { return e.Message }

func NewAppError(typ ErrorType, status int, message string) *AppError {
	return &AppError{Type: typ, Status: status, Message: message}
}

func NewNotFoundError(typ ErrorType, message string) *AppError {
	return &AppError{Type: typ, Status: fiber.StatusNotFound, Message: message}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Type: ErrTypeUnauthorized, Status: fiber.StatusUnauthorized, Message: message}
}

func NewFileUploadError(message string) *AppError {
	return &AppError{Type: ErrTypeFileUpload, Status: fiber.StatusInternalServerError, Message: message}
}

// JsonAppError mengklasifikasi error: AppError → response bertipe,
// selain itu turun jadi 500 generic (pesan asli disembunyikan di luar development).
func JsonAppError(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return JsonError(c, appErr.Status, appErr.Message, appErr.Type)
	}

	log.Printf("[ERROR] unhandled: %v", err)
	msg := constants.MsgServerError
	if configs.IsDevelopment() {
		msg = err.Error()
	}
	return JsonError(c, fiber.StatusInternalServerError, msg, ErrTypeInternal)
}
