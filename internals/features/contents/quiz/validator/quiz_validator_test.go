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

	"kbcms_backend/internals/features/contents/quiz/dto"
)

func quizTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/create-quiz", ValidateQuizSubmission(), func(c *fiber.Ctx) error {
		body := c.Locals(LocalsQuizRequest).(*dto.CreateQuizRequest)
		return c.JSON(fiber.Map{"success": true, "title": body.Title})
	})
	app.Put("/quiz", ValidateQuizUpdate(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})
	return app
}

func sendQuizJSON(t *testing.T, app *fiber.App, method, path string, payload map[string]any) (*http.Response, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	bodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(bodyBytes, &decoded))
	return resp, decoded
}

func validQuizPayload() map[string]any {
	return map[string]any{
		"title":       "Kuis Mekanika Dasar",
		"description": "Sepuluh soal pengantar tentang gaya dan gerak.",
		"category":    "Science",
		"difficulty":  "Easy",
		"status":      "Draft",
		"author":      "Bu Sari",
		"questions": []map[string]any{
			{
				"question":       "Satuan SI untuk gaya adalah?",
				"options":        []string{"Newton", "Joule", "Watt"},
				"correctAnswers": []string{"Newton"},
			},
		},
	}
}

func TestQuizSubmissionValidPassesThrough(t *testing.T) {
	app := quizTestApp()

	resp, body := sendQuizJSON(t, app, http.MethodPost, "/create-quiz", validQuizPayload())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Kuis Mekanika Dasar", body["title"])
}

func TestQuizSubmissionShortDescriptionRejected(t *testing.T) {
	app := quizTestApp()

	payload := validQuizPayload()
	payload["description"] = "pendek"

	resp, body := sendQuizJSON(t, app, http.MethodPost, "/create-quiz", payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Validation failed", body["message"])

	errs := body["errors"].([]any)
	found := false
	for _, e := range errs {
		fe := e.(map[string]any)
		if fe["field"] == "description" {
			found = true
			assert.Equal(t, "Description must be between 10 and 1000 characters", fe["message"])
		}
	}
	assert.True(t, found, "harus ada field error untuk description")
}

func TestQuizSubmissionRequiresQuestions(t *testing.T) {
	app := quizTestApp()

	payload := validQuizPayload()
	payload["questions"] = []map[string]any{}

	resp, body := sendQuizJSON(t, app, http.MethodPost, "/create-quiz", payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errs := body["errors"].([]any)
	messages := map[string]string{}
	for _, e := range errs {
		fe := e.(map[string]any)
		messages[fe["field"].(string)] = fe["message"].(string)
	}
	assert.Equal(t, "At least one question is required", messages["questions"])
}

func TestQuizSubmissionInvalidDifficulty(t *testing.T) {
	app := quizTestApp()

	payload := validQuizPayload()
	payload["difficulty"] = "Impossible"

	resp, body := sendQuizJSON(t, app, http.MethodPost, "/create-quiz", payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errs := body["errors"].([]any)
	messages := map[string]string{}
	for _, e := range errs {
		fe := e.(map[string]any)
		messages[fe["field"].(string)] = fe["message"].(string)
	}
	assert.Equal(t, "Difficulty must be Easy, Medium, or Hard", messages["difficulty"])
}

func TestQuizSubmissionCorrectAnswerMustBeAnOption(t *testing.T) {
	app := quizTestApp()

	payload := validQuizPayload()
	payload["questions"] = []map[string]any{
		{
			"question":       "Satuan SI untuk gaya adalah?",
			"options":        []string{"Newton", "Joule"},
			"correctAnswers": []string{"Pascal"},
		},
	}

	resp, body := sendQuizJSON(t, app, http.MethodPost, "/create-quiz", payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Correct answers must be from the provided options for question 1", body["message"])
}

func TestQuizSubmissionOptionsMustBeUnique(t *testing.T) {
	app := quizTestApp()

	payload := validQuizPayload()
	payload["questions"] = []map[string]any{
		{
			"question":       "Satuan SI untuk gaya adalah?",
			"options":        []string{"Newton", "Newton"},
			"correctAnswers": []string{"Newton"},
		},
	}

	resp, body := sendQuizJSON(t, app, http.MethodPost, "/create-quiz", payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Options must be unique for question 1", body["message"])
}

func TestQuizUpdatePartialBodyAccepted(t *testing.T) {
	app := quizTestApp()

	resp, _ := sendQuizJSON(t, app, http.MethodPut, "/quiz", map[string]any{
		"title": "Judul Baru Kuis",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestQuizUpdateStillValidatesProvidedFields(t *testing.T) {
	app := quizTestApp()

	resp, body := sendQuizJSON(t, app, http.MethodPut, "/quiz", map[string]any{
		"description": "pendek",
		"status":      "Archived",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errs := body["errors"].([]any)
	messages := map[string]string{}
	for _, e := range errs {
		fe := e.(map[string]any)
		messages[fe["field"].(string)] = fe["message"].(string)
	}
	assert.Equal(t, "Description must be between 10 and 1000 characters", messages["description"])
	assert.Equal(t, "Status must be either Draft or Published", messages["status"])
}
