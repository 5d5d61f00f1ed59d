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

	"kbcms_backend/internals/features/contents/news/dto"
)

func newsTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/create-news", ValidateNewsSubmission(), func(c *fiber.Ctx) error {
		body := c.Locals(LocalsNewsRequest).(*dto.CreateNewsRequest)
		return c.JSON(fiber.Map{"success": true, "title": body.Title})
	})
	return app
}

func postNewsJSON(t *testing.T, app *fiber.App, payload map[string]any) (*http.Response, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/create-news", bytes.NewReader(raw))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	bodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(bodyBytes, &decoded))
	return resp, decoded
}

func validNewsPayload() map[string]any {
	return map[string]any{
		"title":       "Belajar Fisika Dasar",
		"subTitle":    "Seri pengantar mekanika",
		"description": "Artikel pengantar mekanika klasik untuk pelajar SMA.",
		"category":    "Education",
		"type":        "Text",
		"status":      "Draft",
		"author":      "Pak Budi",
	}
}

func TestNewsSubmissionValidPassesThrough(t *testing.T) {
	app := newsTestApp()

	resp, body := postNewsJSON(t, app, validNewsPayload())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Belajar Fisika Dasar", body["title"])
}

func TestNewsSubmissionWithoutQuizDoesNotRequireQuestions(t *testing.T) {
	app := newsTestApp()

	payload := validNewsPayload()
	payload["hasQuiz"] = false

	resp, _ := postNewsJSON(t, app, payload)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestNewsSubmissionMissingFieldsReturnsFieldErrors(t *testing.T) {
	app := newsTestApp()

	resp, body := postNewsJSON(t, app, map[string]any{
		"title": "ab", // terlalu pendek
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Validation failed", body["message"])

	errs, ok := body["errors"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, errs)

	messages := map[string]string{}
	for _, e := range errs {
		fe := e.(map[string]any)
		messages[fe["field"].(string)] = fe["message"].(string)
	}
	assert.Equal(t, "Title must be between 3 and 200 characters", messages["title"])
	assert.Equal(t, "Subtitle is required", messages["subTitle"])
	assert.Equal(t, "Author is required", messages["author"])
}

func TestNewsSubmissionRejectsUnknownEnumValues(t *testing.T) {
	app := newsTestApp()

	payload := validNewsPayload()
	payload["category"] = "Gossip"
	payload["status"] = "Archived"

	resp, body := postNewsJSON(t, app, payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errs := body["errors"].([]any)
	messages := map[string]string{}
	for _, e := range errs {
		fe := e.(map[string]any)
		messages[fe["field"].(string)] = fe["message"].(string)
	}
	assert.Equal(t, "Invalid category", messages["category"])
	assert.Equal(t, "Status must be either Draft or Published", messages["status"])
}

func TestNewsSubmissionAcceptsSpacedEnumValues(t *testing.T) {
	app := newsTestApp()

	payload := validNewsPayload()
	payload["category"] = "Tips & Tricks"

	resp, _ := postNewsJSON(t, app, payload)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestNewsSubmissionHasQuizRequiresQuestions(t *testing.T) {
	app := newsTestApp()

	payload := validNewsPayload()
	payload["hasQuiz"] = true

	resp, body := postNewsJSON(t, app, payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Quiz questions are required when hasQuiz is true", body["message"])
}

func TestNewsSubmissionCorrectAnswerMustBeAnOption(t *testing.T) {
	app := newsTestApp()

	payload := validNewsPayload()
	payload["hasQuiz"] = true
	payload["quizQuestions"] = []map[string]any{
		{
			"question":       "Berapa hasil 2+2?",
			"options":        []string{"3", "4"},
			"correctAnswers": []string{"4"},
		},
		{
			"question":       "Planet terdekat dari matahari?",
			"options":        []string{"Venus", "Merkurius"},
			"correctAnswers": []string{"Mars"}, // bukan anggota options
		},
	}

	resp, body := postNewsJSON(t, app, payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Correct answers must be from the provided options for question 2", body["message"])
}

func TestNewsSubmissionWithValidEmbeddedQuiz(t *testing.T) {
	app := newsTestApp()

	payload := validNewsPayload()
	payload["hasQuiz"] = true
	payload["quizQuestions"] = []map[string]any{
		{
			"question":       "Berapa hasil 2+2?",
			"options":        []string{"3", "4"},
			"correctAnswers": []string{"4"},
		},
	}

	resp, _ := postNewsJSON(t, app, payload)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestNewsSubmissionInvalidJSONBody(t *testing.T) {
	app := newsTestApp()

	req := httptest.NewRequest(http.MethodPost, "/create-news", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
