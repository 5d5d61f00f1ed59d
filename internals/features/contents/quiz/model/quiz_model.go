package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kbcms_backend/internals/constants"
)

// QuizQuestion: soal pilihan ganda, 2–6 opsi, ≥1 jawaban benar (subset opsi).
type QuizQuestion struct {
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	CorrectAnswers []string `json:"correctAnswers"`
	Points         int      `json:"points"`
}

type QuizModel struct {
	QuizID             uuid.UUID      `gorm:"column:quiz_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"quiz_id"`
	QuizTitle          string         `gorm:"column:quiz_title;type:varchar(200);not null" json:"quiz_title"`
	QuizDescription    string         `gorm:"column:quiz_description;type:text;not null" json:"quiz_description"`
	QuizCategory       string         `gorm:"column:quiz_category;type:varchar(32);not null" json:"quiz_category"`
	QuizDifficulty     string         `gorm:"column:quiz_difficulty;type:varchar(8);not null;default:'Easy'" json:"quiz_difficulty"`
	QuizTimeLimit      int            `gorm:"column:quiz_time_limit;not null;default:30" json:"quiz_time_limit"`
	QuizQuestionsJSON  datatypes.JSON `gorm:"column:quiz_questions;type:jsonb" json:"quiz_questions,omitempty"`
	QuizTotalQuestions int            `gorm:"column:quiz_total_questions;not null;default:0" json:"quiz_total_questions"`
	QuizTotalPoints    int            `gorm:"column:quiz_total_points;not null;default:0" json:"quiz_total_points"`
	QuizStatus         string         `gorm:"column:quiz_status;type:varchar(16);not null;default:'Draft'" json:"quiz_status"`
	QuizAuthor         string         `gorm:"column:quiz_author;type:varchar(100);not null" json:"quiz_author"`
	QuizPublishedAt    *time.Time     `gorm:"column:quiz_published_at" json:"quiz_published_at,omitempty"`
	QuizAttemptCount   int            `gorm:"column:quiz_attempt_count;not null;default:0" json:"quiz_attempt_count"`
	QuizIsActive       bool           `gorm:"column:quiz_is_active;not null;default:true" json:"quiz_is_active"`
	QuizCreatedAt      time.Time      `gorm:"column:quiz_created_at;autoCreateTime" json:"quiz_created_at"`
	QuizUpdatedAt      time.Time      `gorm:"column:quiz_updated_at;autoUpdateTime" json:"quiz_updated_at"`
}

func (QuizModel) TableName() string {
	return "quiz_details"
}

// BeforeSave: totals dihitung ulang SETIAP save dari daftar soal
// (padanan pre-save hook skema aslinya).
func (m *QuizModel) BeforeSave(tx *gorm.DB) error {
	m.RecalcTotals()
	return nil
}

// RecalcTotals: totalQuestions = len(questions); totalPoints = Σ points (default 1).
func (m *QuizModel) RecalcTotals() {
	questions := m.Questions()
	m.QuizTotalQuestions = len(questions)

	total := 0
	for _, q := range questions {
		points := q.Points
		if points <= 0 {
			points = constants.DefaultQuestionPoints
		}
		total += points
	}
	m.QuizTotalPoints = total
}

func (m *QuizModel) SetQuestions(questions []QuizQuestion) error {
	if questions == nil {
		questions = []QuizQuestion{}
	}
	b, err := json.Marshal(questions)
	if err != nil {
		return err
	}
	m.QuizQuestionsJSON = datatypes.JSON(b)
	return nil
}

func (m *QuizModel) Questions() []QuizQuestion {
	if len(m.QuizQuestionsJSON) == 0 {
		return nil
	}
	var out []QuizQuestion
	if err := json.Unmarshal(m.QuizQuestionsJSON, &out); err != nil {
		return nil
	}
	return out
}

// ApplyStatus mengeset published_at TEPAT SEKALI, pada transisi pertama ke Published.
func (m *QuizModel) ApplyStatus(status string) {
	m.QuizStatus = status
	if status == constants.StatusPublished && m.QuizPublishedAt == nil {
		now := time.Now()
		m.QuizPublishedAt = &now
	}
}
