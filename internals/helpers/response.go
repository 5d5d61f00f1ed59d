package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Envelope seragam
   {success, message?, error?, type?, data?}
=================================*/

// FieldError adalah satu pelanggaran rule per field pada response validasi.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// JsonOK: response sukses generic (GET detail, dsb)
func JsonOK(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "ok"
	}
	body := fiber.Map{
		"success": true,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// JsonCreated: response sukses create (POST)
func JsonCreated(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// JsonError: error bertipe (taxonomy tag di field "type")
func JsonError(c *fiber.Ctx, status int, errMsg string, errType ErrorType) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   errMsg,
		"type":    string(errType),
	})
}

// JsonMessageError: error 400 dengan pesan tunggal (cek cross-field)
func JsonMessageError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// JsonValidationErrors: daftar pelanggaran per field (short-circuit sebelum handler)
func JsonValidationErrors(c *fiber.Ctx, errs []FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Validation failed",
		"errors":  errs,
	})
}
