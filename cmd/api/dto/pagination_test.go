package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio-api/cmd/api/dto"
)

func TestNormalizeClampsBounds(t *testing.T) {
	q := dto.PageQuery{Page: 0, Limit: 0}
	q.Normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)

	q = dto.PageQuery{Page: 3, Limit: 500}
	q.Normalize()
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 100, q.Limit)
}

func TestNewPageMeta(t *testing.T) {
	meta := dto.NewPageMeta(1, 10, 10, 25)
	assert.True(t, meta.HasNext)
	assert.False(t, meta.HasPrev)

	meta = dto.NewPageMeta(3, 10, 5, 25)
	assert.False(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
	assert.EqualValues(t, 25, meta.Total)
}
