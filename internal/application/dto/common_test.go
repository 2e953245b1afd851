package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/product-management/internal/application/dto"
)

func TestPageRequest_DefaultPage(t *testing.T) {
	p := dto.PageRequest{Page: -3}
	p.DefaultPage()

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, dto.DefaultPageSize, p.PageSize)
	assert.Equal(t, 0, p.Offset())
	assert.Equal(t, 10, p.Limit())

	p = dto.PageRequest{Page: 3, PageSize: 10}
	assert.Equal(t, 20, p.Offset())
}

func TestNewPageResponse_NextPrevious(t *testing.T) {
	first := dto.NewPageResponse(dto.PageRequest{Page: 1, PageSize: 10}, 25)
	assert.Nil(t, first.Previous)
	require.NotNil(t, first.Next)
	assert.Equal(t, 2, *first.Next)

	last := dto.NewPageResponse(dto.PageRequest{Page: 3, PageSize: 10}, 25)
	assert.Nil(t, last.Next)
	require.NotNil(t, last.Previous)
	assert.Equal(t, 2, *last.Previous)

	exact := dto.NewPageResponse(dto.PageRequest{Page: 2, PageSize: 10}, 20)
	assert.Nil(t, exact.Next)
}
