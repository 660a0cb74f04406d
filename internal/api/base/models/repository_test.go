package basemodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name           string
		page           int64
		pageSize       int64
		total          int64
		wantTotalPages int64
	}{
		{"chia het", 2, 5, 10, 2},
		{"lam tron len", 2, 5, 12, 3},
		{"khong co du lieu", 1, 10, 0, 0},
		{"mot phan tu", 1, 10, 1, 1},
		{"trang cuoi thieu", 1, 10, 95, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.pageSize, tt.total)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.pageSize, p.PageSize)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.wantTotalPages, p.TotalPages)
		})
	}
}
