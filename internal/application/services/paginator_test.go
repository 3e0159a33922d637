package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajaniguide/ajani/backend/internal/domain/entities"
)

func numberedListings(n int) []entities.Listing {
	out := make([]entities.Listing, n)
	for i := range out {
		out[i] = entities.Listing{ID: i + 1, Name: fmt.Sprintf("Listing %d", i+1)}
	}
	return out
}

func TestPaginate_FirstPage(t *testing.T) {
	page := Paginate(numberedListings(7), 0, 5)

	require.Len(t, page.Items, 5)
	assert.Equal(t, 1, page.Items[0].ID)
	assert.Equal(t, 5, page.Items[4].ID)
	assert.Equal(t, 0, page.StartIndex)
	assert.Equal(t, 7, page.Total)
	assert.True(t, page.HasMore)
}

func TestPaginate_LastPartialPage(t *testing.T) {
	page := Paginate(numberedListings(7), 1, 5)

	require.Len(t, page.Items, 2)
	assert.Equal(t, 6, page.Items[0].ID)
	assert.Equal(t, 7, page.Items[1].ID)
	assert.Equal(t, 5, page.StartIndex)
	assert.False(t, page.HasMore)
}

func TestPaginate_CursorPastEnd(t *testing.T) {
	page := Paginate(numberedListings(7), 2, 5)

	assert.Empty(t, page.Items)
	assert.Equal(t, 7, page.Total)
	assert.False(t, page.HasMore)
}

func TestPaginate_ExactMultiple(t *testing.T) {
	page := Paginate(numberedListings(10), 1, 5)

	require.Len(t, page.Items, 5)
	assert.False(t, page.HasMore)
}

func TestPaginate_EmptyInput(t *testing.T) {
	page := Paginate(nil, 0, 5)

	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.Total)
	assert.False(t, page.HasMore)
}

func TestPaginate_NonPositiveSizeUsesDefault(t *testing.T) {
	page := Paginate(numberedListings(7), 0, 0)

	assert.Len(t, page.Items, DefaultPageSize)
}
