package storage

import (
	"testing"

	"github.com/jasonxnas/elegant-expense-tracker-gkbzje/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLBackend(t *testing.T) {
	t.Run("should report a missing key without error", func(t *testing.T) {
		// given
		backend := NewSQLBackend(test_utils.SetupTestDB(t))

		// when
		_, ok, err := backend.Get(ctx, "missing")

		// then
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should store and return a value", func(t *testing.T) {
		// given
		backend := NewSQLBackend(test_utils.SetupTestDB(t))

		// when
		err := backend.Set(ctx, "transactions", `[{"id":"tx-1"}]`)
		require.NoError(t, err)
		value, ok, err := backend.Get(ctx, "transactions")

		// then
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[{"id":"tx-1"}]`, value)
	})

	t.Run("should overwrite an existing value", func(t *testing.T) {
		// given
		backend := NewSQLBackend(test_utils.SetupTestDB(t))
		require.NoError(t, backend.Set(ctx, "transactions", "old"))

		// when
		err := backend.Set(ctx, "transactions", "new")
		require.NoError(t, err)
		value, ok, err := backend.Get(ctx, "transactions")

		// then
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "new", value)
	})

	t.Run("should remove a value", func(t *testing.T) {
		// given
		backend := NewSQLBackend(test_utils.SetupTestDB(t))
		require.NoError(t, backend.Set(ctx, "transactions", "value"))

		// when
		err := backend.Remove(ctx, "transactions")
		require.NoError(t, err)
		_, ok, err := backend.Get(ctx, "transactions")

		// then
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should tolerate removing a missing key", func(t *testing.T) {
		// given
		backend := NewSQLBackend(test_utils.SetupTestDB(t))

		// when
		err := backend.Remove(ctx, "missing")

		// then
		assert.NoError(t, err)
	})
}
