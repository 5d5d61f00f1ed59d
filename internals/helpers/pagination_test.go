package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPagination(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		page  int
		limit int
		want  Pagination
	}{
		{
			name: "first page of several", total: 25, page: 1, limit: 10,
			want: Pagination{CurrentPage: 1, TotalPages: 3, TotalCount: 25, HasNextPage: true, HasPreviousPage: false},
		},
		{
			name: "middle page", total: 25, page: 2, limit: 10,
			want: Pagination{CurrentPage: 2, TotalPages: 3, TotalCount: 25, HasNextPage: true, HasPreviousPage: true},
		},
		{
			name: "last partial page", total: 25, page: 3, limit: 10,
			want: Pagination{CurrentPage: 3, TotalPages: 3, TotalCount: 25, HasNextPage: false, HasPreviousPage: true},
		},
		{
			name: "exact multiple", total: 20, page: 2, limit: 10,
			want: Pagination{CurrentPage: 2, TotalPages: 2, TotalCount: 20, HasNextPage: false, HasPreviousPage: true},
		},
		{
			name: "empty result", total: 0, page: 1, limit: 10,
			want: Pagination{CurrentPage: 1, TotalPages: 0, TotalCount: 0, HasNextPage: false, HasPreviousPage: false},
		},
		{
			name: "single item", total: 1, page: 1, limit: 10,
			want: Pagination{CurrentPage: 1, TotalPages: 1, TotalCount: 1, HasNextPage: false, HasPreviousPage: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildPagination(tt.total, tt.page, tt.limit)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildPaginationNormalizesInvalidInput(t *testing.T) {
	got := BuildPagination(15, 0, 0)
	assert.Equal(t, 1, got.CurrentPage)
	assert.Equal(t, 2, got.TotalPages)
	assert.True(t, got.HasNextPage)
}
