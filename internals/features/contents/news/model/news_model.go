package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"kbcms_backend/internals/constants"
)

// NewsQuizQuestion adalah soal kuis yang EMBEDDED di artikel (salinan mandiri,
// bukan relasi ke quiz_details).
type NewsQuizQuestion struct {
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	CorrectAnswers []string `json:"correctAnswers"`
}

type NewsModel struct {
	NewsID          uuid.UUID      `gorm:"column:news_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"news_id"`
	NewsTitle       string         `gorm:"column:news_title;type:varchar(200);not null" json:"news_title"`
	NewsSubTitle    string         `gorm:"column:news_sub_title;type:varchar(300);not null" json:"news_sub_title"`
	NewsDescription string         `gorm:"column:news_description;type:text;not null" json:"news_description"`
	NewsCategory    string         `gorm:"column:news_category;type:varchar(32);not null" json:"news_category"`
	NewsType        string         `gorm:"column:news_type;type:varchar(8);not null" json:"news_type"`
	NewsContentURL  *string        `gorm:"column:news_content_url;type:text" json:"news_content_url,omitempty"`
	NewsUploadFile  *string        `gorm:"column:news_upload_file;type:text" json:"news_upload_file,omitempty"`
	NewsHasQuiz     bool           `gorm:"column:news_has_quiz;not null;default:false" json:"news_has_quiz"`
	NewsQuizzes     datatypes.JSON `gorm:"column:news_quiz_questions;type:jsonb" json:"news_quiz_questions,omitempty"`
	NewsStatus      string         `gorm:"column:news_status;type:varchar(16);not null;default:'Draft'" json:"news_status"`
	NewsAuthor      string         `gorm:"column:news_author;type:varchar(100);not null" json:"news_author"`
	NewsPublishedAt *time.Time     `gorm:"column:news_published_at" json:"news_published_at,omitempty"`
	NewsViewCount   int            `gorm:"column:news_view_count;not null;default:0" json:"news_view_count"`
	NewsLikeCount   int            `gorm:"column:news_like_count;not null;default:0" json:"news_like_count"`
	NewsIsActive    bool           `gorm:"column:news_is_active;not null;default:true" json:"news_is_active"`
	NewsCreatedAt   time.Time      `gorm:"column:news_created_at;autoCreateTime" json:"news_created_at"`
	NewsUpdatedAt   time.Time      `gorm:"column:news_updated_at;autoUpdateTime" json:"news_updated_at"`
}

func (NewsModel) TableName() string {
	return "news_details"
}

// SetQuizQuestions menyimpan soal embedded sebagai JSONB.
func (m *NewsModel) SetQuizQuestions(questions []NewsQuizQuestion) error {
	if questions == nil {
		questions = []NewsQuizQuestion{}
	}
	b, err := json.Marshal(questions)
	if err != nil {
		return err
	}
	m.NewsQuizzes = datatypes.JSON(b)
	return nil
}

func (m *NewsModel) QuizQuestions() []NewsQuizQuestion {
	if len(m.NewsQuizzes) == 0 {
		return nil
	}
	var out []NewsQuizQuestion
	if err := json.Unmarshal(m.NewsQuizzes, &out); err != nil {
		return nil
	}
	return out
}

// ApplyStatus mengeset published_at TEPAT SEKALI, pada transisi pertama ke Published.
func (m *NewsModel) ApplyStatus(status string) {
	m.NewsStatus = status
	if status == constants.StatusPublished && m.NewsPublishedAt == nil {
		now := time.Now()
		m.NewsPublishedAt = &now
	}
}
