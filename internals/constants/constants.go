package constants

// Enumerasi kategori/status sesuai skema data.
var (
	NewsCategories = []string{
		"Education", "Technology", "Health", "Science",
		"Tips & Tricks", "Research", "Announcement", "General News",
	}
	NewsTypes = []string{"Video", "Image", "Text"}

	QuizCategories = []string{
		"Education", "Technology", "Health", "Science",
		"Tips & Tricks", "Research", "General",
	}
	QuizDifficulties = []string{"Easy", "Medium", "Hard"}

	Statuses = []string{"Draft", "Published"}
)

const (
	StatusDraft     = "Draft"
	StatusPublished = "Published"

	DifficultyEasy = "Easy"

	DefaultTimeLimitMinutes = 30
	DefaultQuestionPoints   = 1
)

// Batas ukuran file di ingress (terpisah dari ambang strategi uploader 100 MiB).
const MaxUploadFileSize = 50 * 1024 * 1024

// Pesan response umum.
const (
	MsgNewsCreated   = "News article created successfully"
	MsgNewsRetrieved = "News articles retrieved successfully"
	MsgNewsUpdated   = "News article updated successfully"
	MsgNewsDeleted   = "News article deleted successfully"
	MsgNewsNotFound  = "News article not found"

	MsgQuizCreated   = "Quiz submitted successfully"
	MsgQuizRetrieved = "Quizzes retrieved successfully"
	MsgQuizUpdated   = "Quiz updated successfully"
	MsgQuizDeleted   = "Quiz deleted successfully"
	MsgQuizNotFound  = "Quiz not found"

	MsgServerError = "Something went wrong"
)

func InList(v string, list []string) bool {
	for _, item := range list {
		if v == item {
			return true
		}
	}
	return false
}
