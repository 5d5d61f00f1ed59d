package dto

import (
	"time"

	"kbcms_backend/internals/features/contents/quiz/model"
)

// ============================
// Request DTO
// ============================

type QuizQuestionRequest struct {
	Question       string   `json:"question" validate:"required,min=5,max=500"`
	Options        []string `json:"options" validate:"required,min=2,max=6,dive,required,min=1,max=200"`
	CorrectAnswers []string `json:"correctAnswers" validate:"required,min=1,dive,required"`
	Points         int      `json:"points" validate:"omitempty,min=1,max=10"`
}

type CreateQuizRequest struct {
	Title       string                `json:"title" validate:"required,min=3,max=200"`
	Description string                `json:"description" validate:"required,min=10,max=1000"`
	Category    string                `json:"category" validate:"required"`
	Difficulty  string                `json:"difficulty"`
	TimeLimit   int                   `json:"timeLimit" validate:"omitempty,min=1,max=180"`
	Questions   []QuizQuestionRequest `json:"questions" validate:"required,min=1,dive"`
	Status      string                `json:"status" validate:"required"`
	Author      string                `json:"author" validate:"required,min=2,max=100"`
}

type UpdateQuizRequest struct {
	Title       *string               `json:"title" validate:"omitempty,min=3,max=200"`
	Description *string               `json:"description" validate:"omitempty,min=10,max=1000"`
	Category    *string               `json:"category"`
	Difficulty  *string               `json:"difficulty"`
	TimeLimit   *int                  `json:"timeLimit" validate:"omitempty,min=1,max=180"`
	Questions   []QuizQuestionRequest `json:"questions" validate:"omitempty,dive"`
	Status      *string               `json:"status"`
	Author      *string               `json:"author" validate:"omitempty,min=2,max=100"`
}

// ============================
// Response DTO
// ============================

type QuizDTO struct {
	QuizID         string               `json:"quizId"`
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	Category       string               `json:"category"`
	Difficulty     string               `json:"difficulty"`
	TimeLimit      int                  `json:"timeLimit"`
	Questions      []model.QuizQuestion `json:"questions"`
	TotalQuestions int                  `json:"totalQuestions"`
	TotalPoints    int                  `json:"totalPoints"`
	Status         string               `json:"status"`
	Author         string               `json:"author"`
	PublishedAt    *time.Time           `json:"publishedAt"`
	AttemptCount   int                  `json:"attemptCount"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

// CreatedQuizDTO: proyeksi ringkas setelah create.
type CreatedQuizDTO struct {
	QuizID         string    `json:"quizId"`
	Title          string    `json:"title"`
	Status         string    `json:"status"`
	TotalQuestions int       `json:"totalQuestions"`
	TotalPoints    int       `json:"totalPoints"`
	Difficulty     string    `json:"difficulty"`
	TimeLimit      int       `json:"timeLimit"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ============================
// Converter
// ============================

func ToQuizDTO(m model.QuizModel) QuizDTO {
	questions := m.Questions()
	if questions == nil {
		questions = []model.QuizQuestion{}
	}
	return QuizDTO{
		QuizID:         m.QuizID.String(),
		Title:          m.QuizTitle,
		Description:    m.QuizDescription,
		Category:       m.QuizCategory,
		Difficulty:     m.QuizDifficulty,
		TimeLimit:      m.QuizTimeLimit,
		Questions:      questions,
		TotalQuestions: m.QuizTotalQuestions,
		TotalPoints:    m.QuizTotalPoints,
		Status:         m.QuizStatus,
		Author:         m.QuizAuthor,
		PublishedAt:    m.QuizPublishedAt,
		AttemptCount:   m.QuizAttemptCount,
		CreatedAt:      m.QuizCreatedAt,
		UpdatedAt:      m.QuizUpdatedAt,
	}
}

func ToCreatedQuizDTO(m model.QuizModel) CreatedQuizDTO {
	return CreatedQuizDTO{
		QuizID:         m.QuizID.String(),
		Title:          m.QuizTitle,
		Status:         m.QuizStatus,
		TotalQuestions: m.QuizTotalQuestions,
		TotalPoints:    m.QuizTotalPoints,
		Difficulty:     m.QuizDifficulty,
		TimeLimit:      m.QuizTimeLimit,
		CreatedAt:      m.QuizCreatedAt,
	}
}
