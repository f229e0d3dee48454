package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func paginationContext(rawQuery string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestGetPagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantPage   int
		wantPer    int
		wantOffset int
	}{
		{"defaults", "", 1, 10, 0},
		{"explicit", "page=3&per_page=25", 3, 25, 50},
		{"page below one", "page=0", 1, 10, 0},
		{"negative page", "page=-2", 1, 10, 0},
		{"per_page capped", "per_page=5000", 1, 100, 0},
		{"per_page below one", "per_page=0", 1, 10, 0},
		{"garbage values", "page=abc&per_page=xyz", 1, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, perPage, limit, offset := getPagination(paginationContext(tt.query))
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPer, perPage)
			assert.Equal(t, tt.wantPer, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestBuildPagination(t *testing.T) {
	p := buildPagination(2, 10, 35)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 10, p.PerPage)
	assert.Equal(t, 35, p.TotalItems)
	assert.Equal(t, 4, p.TotalPages)

	p = buildPagination(1, 10, 30)
	assert.Equal(t, 3, p.TotalPages)

	p = buildPagination(1, 10, 0)
	assert.Equal(t, 0, p.TotalPages)
}
