package tips

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

func TestServiceImpl_List(t *testing.T) {
	t.Run("should return the full catalog", func(t *testing.T) {
		// given
		service := NewService()

		// when
		result := service.List(ctx)

		// then
		assert.Len(t, result, 5)
	})
}

func TestServiceImpl_ByCategory(t *testing.T) {
	t.Run("should only return tips of the requested category", func(t *testing.T) {
		// given
		service := NewService()

		// when
		result := service.ByCategory(ctx, "saving")

		// then
		require.NotEmpty(t, result)
		for _, tip := range result {
			assert.Equal(t, "saving", tip.Category)
		}
	})

	t.Run("should return an empty slice for an unknown category", func(t *testing.T) {
		// given
		service := NewService()

		// when
		result := service.ByCategory(ctx, "gambling")

		// then
		assert.Empty(t, result)
	})
}

func TestServiceImpl_ByDifficulty(t *testing.T) {
	t.Run("should only return tips of the requested difficulty", func(t *testing.T) {
		// given
		service := NewService()

		// when
		result := service.ByDifficulty(ctx, DifficultyIntermediate)

		// then
		require.NotEmpty(t, result)
		for _, tip := range result {
			assert.Equal(t, DifficultyIntermediate, tip.Difficulty)
		}
	})
}

func TestServiceImpl_Get(t *testing.T) {
	t.Run("should find a tip by id", func(t *testing.T) {
		// given
		service := NewService()

		// when
		tip, found := service.Get(ctx, "1")

		// then
		assert.True(t, found)
		assert.Equal(t, "The 50/30/20 Rule", tip.Title)
	})

	t.Run("should report an unknown id", func(t *testing.T) {
		// given
		service := NewService()

		// when
		_, found := service.Get(ctx, "404")

		// then
		assert.False(t, found)
	})
}
