package search

import (
	"fmt"
	"testing"

	"ozicme/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stores(n int) []entity.Restaurant {
	records := make([]entity.Restaurant, n)
	for i := range records {
		records[i] = entity.Restaurant{ID: fmt.Sprintf("store-%d", i+1)}
	}

	return records
}

func TestSlice_PagesThroughFullSet(t *testing.T) {
	all := stores(45)

	first := Slice(all, 0, 20)
	require.Len(t, first.Items, 20)
	assert.Equal(t, "store-1", first.Items[0].ID)
	assert.True(t, first.HasMore)
	require.NotNil(t, first.NextCursor)
	assert.Equal(t, 20, *first.NextCursor)
	assert.Equal(t, 45, first.TotalCount)

	second := Slice(all, *first.NextCursor, 20)
	require.Len(t, second.Items, 20)
	assert.Equal(t, "store-21", second.Items[0].ID)
	assert.True(t, second.HasMore)
	require.NotNil(t, second.NextCursor)
	assert.Equal(t, 40, *second.NextCursor)

	last := Slice(all, *second.NextCursor, 20)
	require.Len(t, last.Items, 5)
	assert.Equal(t, "store-41", last.Items[0].ID)
	assert.False(t, last.HasMore)
	assert.Nil(t, last.NextCursor)
}

func TestSlice_CursorPastEnd(t *testing.T) {
	page := Slice(stores(3), 10, 20)

	assert.Empty(t, page.Items)
	assert.False(t, page.HasMore)
	assert.Nil(t, page.NextCursor)
	assert.Equal(t, 3, page.TotalCount)
}

func TestSlice_NegativeCursorClamped(t *testing.T) {
	page := Slice(stores(3), -5, 2)

	require.Len(t, page.Items, 2)
	assert.Equal(t, "store-1", page.Items[0].ID)
	assert.True(t, page.HasMore)
}

func TestSlice_EmptySet(t *testing.T) {
	page := Slice(nil, 0, 20)

	assert.Empty(t, page.Items)
	assert.False(t, page.HasMore)
	assert.Nil(t, page.NextCursor)
	assert.Zero(t, page.TotalCount)
}

func TestSlice_ExactBoundary(t *testing.T) {
	page := Slice(stores(20), 0, 20)

	require.Len(t, page.Items, 20)
	assert.False(t, page.HasMore)
	assert.Nil(t, page.NextCursor)
}

func TestSlice_CopiesItems(t *testing.T) {
	all := stores(2)
	page := Slice(all, 0, 2)

	page.Items[0].ID = "mutated"
	assert.Equal(t, "store-1", all[0].ID)
}
