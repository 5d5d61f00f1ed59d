// file: internals/features/contents/quiz/repository/quiz_repository.go
package repository

import (
	"gorm.io/gorm"

	"kbcms_backend/internals/features/contents/quiz/model"
	helpers "kbcms_backend/internals/helpers"
)

type QueryOptions struct {
	Select  []string
	Sort    string
	Page    int
	Limit   int
	Preload []string
}

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) Create(quiz *model.QuizModel) error {
	return r.DB.Create(quiz).Error
}

// FindMany: count & fetch tidak transaksional (lihat catatan di news repository).
func (r *QuizRepository) FindMany(filter map[string]any, opts QueryOptions) ([]model.QuizModel, helpers.Pagination, error) {
	page := opts.Page
	if page < 1 {
		page = 1
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = 10
	}

	q := r.applyFilter(filter)

	var total int64
	if err := q.Model(&model.QuizModel{}).Count(&total).Error; err != nil {
		return nil, helpers.Pagination{}, err
	}

	q = r.applyOptions(q, opts)

	var rows []model.QuizModel
	if err := q.Offset((page - 1) * limit).Limit(limit).Find(&rows).Error; err != nil {
		return nil, helpers.Pagination{}, err
	}

	return rows, helpers.BuildPagination(total, page, limit), nil
}

func (r *QuizRepository) FindOne(filter map[string]any, opts QueryOptions) (*model.QuizModel, error) {
	q := r.applyOptions(r.applyFilter(filter), opts)

	var quiz model.QuizModel
	if err := q.First(&quiz).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

// DeleteByID: HARD delete, record dihapus fisik. Sengaja beda dengan news
// yang soft delete.
func (r *QuizRepository) DeleteByID(id string) (*model.QuizModel, error) {
	var quiz model.QuizModel
	if err := r.DB.First(&quiz, "quiz_id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Delete(&quiz).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) Count(filter map[string]any) (int64, error) {
	var total int64
	err := r.applyFilter(filter).Model(&model.QuizModel{}).Count(&total).Error
	return total, err
}

// IncrementCounter menaikkan kolom counter (attempt count) secara atomik.
func (r *QuizRepository) IncrementCounter(filter map[string]any, column string) error {
	return r.applyFilter(filter).Model(&model.QuizModel{}).
		UpdateColumn(column, gorm.Expr(column+" + 1")).Error
}

func (r *QuizRepository) applyFilter(filter map[string]any) *gorm.DB {
	q := r.DB
	for key, val := range filter {
		if s, ok := val.(string); ok && key == "quiz_author" {
			q = q.Where("quiz_author ILIKE ?", "%"+s+"%")
			continue
		}
		q = q.Where(key+" = ?", val)
	}
	return q
}

func (r *QuizRepository) applyOptions(q *gorm.DB, opts QueryOptions) *gorm.DB {
	if len(opts.Select) > 0 {
		q = q.Select(opts.Select)
	}
	if opts.Sort != "" {
		q = q.Order(opts.Sort)
	} else {
		q = q.Order("quiz_created_at DESC")
	}
	for _, p := range opts.Preload {
		q = q.Preload(p)
	}
	return q
}
