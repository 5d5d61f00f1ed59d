// file: internals/features/contents/news/repository/news_repository.go
package repository

import (
	"gorm.io/gorm"

	"kbcms_backend/internals/features/contents/news/model"
	helpers "kbcms_backend/internals/helpers"
)

// QueryOptions: plumbing opsi query (select/sort/paginate/preload), tanpa logika lain.
type QueryOptions struct {
	Select  []string
	Sort    string
	Page    int
	Limit   int
	Preload []string
}

type NewsRepository struct {
	DB *gorm.DB
}

func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{DB: db}
}

func (r *NewsRepository) Create(news *model.NewsModel) error {
	return r.DB.Create(news).Error
}

// FindMany: filter + opsi; count & fetch TIDAK transaksional (total dan halaman
// bisa tidak konsisten di bawah write konkuren; acceptable untuk domain ini).
func (r *NewsRepository) FindMany(filter map[string]any, opts QueryOptions) ([]model.NewsModel, helpers.Pagination, error) {
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
	if err := q.Model(&model.NewsModel{}).Count(&total).Error; err != nil {
		return nil, helpers.Pagination{}, err
	}

	q = r.applyOptions(q, opts)

	var rows []model.NewsModel
	if err := q.Offset((page - 1) * limit).Limit(limit).Find(&rows).Error; err != nil {
		return nil, helpers.Pagination{}, err
	}

	return rows, helpers.BuildPagination(total, page, limit), nil
}

func (r *NewsRepository) FindOne(filter map[string]any, opts QueryOptions) (*model.NewsModel, error) {
	q := r.applyOptions(r.applyFilter(filter), opts)

	var news model.NewsModel
	if err := q.First(&news).Error; err != nil {
		return nil, err
	}
	return &news, nil
}

// Update menerapkan patch lalu mengembalikan record terbaru.
func (r *NewsRepository) Update(filter map[string]any, patch map[string]any) (*model.NewsModel, error) {
	res := r.applyFilter(filter).Model(&model.NewsModel{}).Updates(patch)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindOne(filter, QueryOptions{})
}

// Delete: SOFT delete (flip news_is_active), record tidak dihapus fisik.
func (r *NewsRepository) Delete(filter map[string]any) (bool, error) {
	res := r.applyFilter(filter).Model(&model.NewsModel{}).Update("news_is_active", false)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *NewsRepository) Count(filter map[string]any) (int64, error) {
	var total int64
	err := r.applyFilter(filter).Model(&model.NewsModel{}).Count(&total).Error
	return total, err
}

// IncrementCounter menaikkan kolom counter (view/like) secara atomik di DB.
func (r *NewsRepository) IncrementCounter(filter map[string]any, column string) error {
	return r.applyFilter(filter).Model(&model.NewsModel{}).
		UpdateColumn(column, gorm.Expr(column+" + 1")).Error
}

func (r *NewsRepository) applyFilter(filter map[string]any) *gorm.DB {
	q := r.DB
	for key, val := range filter {
		if s, ok := val.(string); ok && key == "news_author" {
			q = q.Where("news_author ILIKE ?", "%"+s+"%")
			continue
		}
		q = q.Where(key+" = ?", val)
	}
	return q
}

func (r *NewsRepository) applyOptions(q *gorm.DB, opts QueryOptions) *gorm.DB {
	if len(opts.Select) > 0 {
		q = q.Select(opts.Select)
	}
	if opts.Sort != "" {
		q = q.Order(opts.Sort)
	} else {
		q = q.Order("news_created_at DESC")
	}
	for _, p := range opts.Preload {
		q = q.Preload(p)
	}
	return q
}
