package dto

import (
	"time"

	"kbcms_backend/internals/features/contents/news/model"
)

// ============================
// Request DTO
// ============================

type QuizQuestionRequest struct {
	Question       string   `json:"question" validate:"required,min=5,max=500"`
	Options        []string `json:"options" validate:"required,min=2,max=6,dive,required,min=1,max=200"`
	CorrectAnswers []string `json:"correctAnswers" validate:"required,min=1,dive,required"`
}

type CreateNewsRequest struct {
	Title         string                `json:"title" validate:"required,min=3,max=200"`
	SubTitle      string                `json:"subTitle" validate:"required,min=3,max=300"`
	Description   string                `json:"description" validate:"required,min=5,max=5000"`
	Category      string                `json:"category" validate:"required"`
	Type          string                `json:"type" validate:"required"`
	ContentURL    string                `json:"content_url"`
	HasQuiz       bool                  `json:"hasQuiz"`
	Status        string                `json:"status" validate:"required"`
	Author        string                `json:"author" validate:"required,min=2,max=100"`
	QuizQuestions []QuizQuestionRequest `json:"quizQuestions" validate:"omitempty,dive"`
}

// UpdateNewsRequest: semua field opsional; pointer membedakan "tidak dikirim"
// dari nilai kosong.
type UpdateNewsRequest struct {
	Title         *string                `json:"title" validate:"omitempty,min=3,max=200"`
	SubTitle      *string                `json:"subTitle" validate:"omitempty,min=3,max=300"`
	Description   *string                `json:"description" validate:"omitempty,min=5,max=5000"`
	Category      *string                `json:"category"`
	Type          *string                `json:"type"`
	ContentURL    *string                `json:"content_url"`
	HasQuiz       *bool                  `json:"hasQuiz"`
	Status        *string                `json:"status"`
	Author        *string                `json:"author" validate:"omitempty,min=2,max=100"`
	QuizQuestions []QuizQuestionRequest  `json:"quizQuestions" validate:"omitempty,dive"`
}

// ============================
// Response DTO
// ============================

type NewsDTO struct {
	ArticleID     string                   `json:"articleId"`
	Title         string                   `json:"title"`
	SubTitle      string                   `json:"subTitle"`
	Description   string                   `json:"description"`
	Category      string                   `json:"category"`
	Type          string                   `json:"type"`
	ContentURL    *string                  `json:"content_url"`
	UploadFile    *string                  `json:"upload_file"`
	HasQuiz       bool                     `json:"hasQuiz"`
	QuizQuestions []model.NewsQuizQuestion `json:"quizQuestions"`
	Status        string                   `json:"status"`
	Author        string                   `json:"author"`
	PublishedAt   *time.Time               `json:"publishedAt"`
	ViewCount     int                      `json:"viewCount"`
	LikeCount     int                      `json:"likeCount"`
	CreatedAt     time.Time                `json:"createdAt"`
	UpdatedAt     time.Time                `json:"updatedAt"`
}

// CreatedNewsDTO adalah proyeksi ringkas setelah create.
type CreatedNewsDTO struct {
	ArticleID string    `json:"articleId"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	HasQuiz   bool      `json:"hasQuiz"`
	QuizCount int       `json:"quizCount"`
	CreatedAt time.Time `json:"createdAt"`
}

// ============================
// Converter
// ============================

func ToNewsDTO(m model.NewsModel) NewsDTO {
	questions := m.QuizQuestions()
	if questions == nil {
		questions = []model.NewsQuizQuestion{}
	}
	return NewsDTO{
		ArticleID:     m.NewsID.String(),
		Title:         m.NewsTitle,
		SubTitle:      m.NewsSubTitle,
		Description:   m.NewsDescription,
		Category:      m.NewsCategory,
		Type:          m.NewsType,
		ContentURL:    m.NewsContentURL,
		UploadFile:    m.NewsUploadFile,
		HasQuiz:       m.NewsHasQuiz,
		QuizQuestions: questions,
		Status:        m.NewsStatus,
		Author:        m.NewsAuthor,
		PublishedAt:   m.NewsPublishedAt,
		ViewCount:     m.NewsViewCount,
		LikeCount:     m.NewsLikeCount,
		CreatedAt:     m.NewsCreatedAt,
		UpdatedAt:     m.NewsUpdatedAt,
	}
}

func ToCreatedNewsDTO(m model.NewsModel) CreatedNewsDTO {
	return CreatedNewsDTO{
		ArticleID: m.NewsID.String(),
		Title:     m.NewsTitle,
		Status:    m.NewsStatus,
		HasQuiz:   m.NewsHasQuiz,
		QuizCount: len(m.QuizQuestions()),
		CreatedAt: m.NewsCreatedAt,
	}
}
