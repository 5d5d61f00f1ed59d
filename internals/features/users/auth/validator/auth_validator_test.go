package validator

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("abc@gmail.com"))
	assert.True(t, IsEmail("siswa.satu@sekolah.sch.id"))
	assert.False(t, IsEmail("bukan-email"))
	assert.False(t, IsEmail("a@b"))
	assert.False(t, IsEmail("1234567899"))
}

func TestIsMobileNumber(t *testing.T) {
	assert.True(t, IsMobileNumber("1234567899"))
	assert.True(t, IsMobileNumber("081234567890"))
	assert.False(t, IsMobileNumber("12345"))
	assert.False(t, IsMobileNumber("0812-3456"))
	assert.False(t, IsMobileNumber("abc@gmail.com"))
}

func authValidatorApp() *fiber.App {
	app := fiber.New()
	app.Post("/login", ValidateLoginRequest(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})
	app.Post("/verify-otp", ValidateOTPVerification(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})
	return app
}

func postAuthJSON(t *testing.T, app *fiber.App, path string, payload map[string]any) (*http.Response, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	bodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(bodyBytes, &decoded))
	return resp, decoded
}

func TestLoginAcceptsEmailAndMobile(t *testing.T) {
	app := authValidatorApp()

	resp, _ := postAuthJSON(t, app, "/login", map[string]any{"identifier": "abc@gmail.com"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = postAuthJSON(t, app, "/login", map[string]any{"identifier": "1234567899"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginRejectsMalformedIdentifier(t *testing.T) {
	app := authValidatorApp()

	resp, body := postAuthJSON(t, app, "/login", map[string]any{"identifier": "not-an-identifier"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errs := body["errors"].([]any)
	fe := errs[0].(map[string]any)
	assert.Equal(t, "identifier", fe["field"])
	assert.Equal(t, "Identifier must be a valid email or mobile number", fe["message"])
}

func TestLoginRejectsMissingIdentifier(t *testing.T) {
	app := authValidatorApp()

	resp, body := postAuthJSON(t, app, "/login", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errs := body["errors"].([]any)
	fe := errs[0].(map[string]any)
	assert.Equal(t, "Email or mobile number is required", fe["message"])
}

func TestVerifyOTPRejectsNonNumericOTP(t *testing.T) {
	app := authValidatorApp()

	resp, body := postAuthJSON(t, app, "/verify-otp", map[string]any{
		"identifier":   "abc@gmail.com",
		"otp":          "12ab",
		"sessionToken": "some-token",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errs := body["errors"].([]any)
	messages := map[string]string{}
	for _, e := range errs {
		fe := e.(map[string]any)
		messages[fe["field"].(string)] = fe["message"].(string)
	}
	assert.Equal(t, "OTP must contain only digits", messages["otp"])
}

func TestVerifyOTPValidPayloadPasses(t *testing.T) {
	app := authValidatorApp()

	resp, _ := postAuthJSON(t, app, "/verify-otp", map[string]any{
		"identifier":   "1234567899",
		"otp":          "1234",
		"sessionToken": "some-token",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
