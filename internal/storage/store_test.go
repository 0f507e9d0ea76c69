package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

type record struct {
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}

func TestStore_Get(t *testing.T) {
	t.Run("should fall back to the initial value when nothing is stored", func(t *testing.T) {
		// given
		backend := NewStubBackend()
		store := NewStore(backend, "records", []record{})

		// when
		value, err := store.Get(ctx)

		// then
		assert.NoError(t, err)
		assert.Empty(t, value)
		assert.NoError(t, store.Err())
	})

	t.Run("should load the durable value on first access", func(t *testing.T) {
		// given
		backend := NewStubBackend()
		raw, err := Encode([]record{{Name: "first", Date: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}})
		require.NoError(t, err)
		require.NoError(t, backend.Set(ctx, "records", string(raw)))
		store := NewStore(backend, "records", []record{})

		// when
		value, err := store.Get(ctx)

		// then
		require.NoError(t, err)
		require.Len(t, value, 1)
		assert.Equal(t, "first", value[0].Name)
	})

	t.Run("should fall back to the initial value when the stored text is undecodable", func(t *testing.T) {
		// given
		backend := NewStubBackend()
		require.NoError(t, backend.Set(ctx, "records", "{corrupted"))
		store := NewStore(backend, "records", []record{{Name: "default"}})

		// when
		value, err := store.Get(ctx)

		// then
		assert.Error(t, err)
		require.Len(t, value, 1)
		assert.Equal(t, "default", value[0].Name)
		assert.Error(t, store.Err())
	})
}

func TestStore_Update(t *testing.T) {
	t.Run("should persist the updated value", func(t *testing.T) {
		// given
		backend := NewStubBackend()
		store := NewStore(backend, "records", []record{})

		// when
		updated, err := store.Update(ctx, func(rs []record) []record {
			return append([]record{{Name: "new"}}, rs...)
		})

		// then
		require.NoError(t, err)
		require.Len(t, updated, 1)
		raw, ok := backend.Raw("records")
		require.True(t, ok)
		assert.Contains(t, raw, `"new"`)
	})

	t.Run("should reconcile with the durable value when the write fails", func(t *testing.T) {
		// given
		backend := NewStubBackend()
		store := NewStore(backend, "records", []record{})
		_, err := store.Update(ctx, func([]record) []record {
			return []record{{Name: "durable"}}
		})
		require.NoError(t, err)

		// when
		backend.SetErr = errors.New("disk full")
		_, err = store.Update(ctx, func([]record) []record {
			return []record{{Name: "lost"}}
		})

		// then
		assert.Error(t, err)
		assert.Error(t, store.Err())
		backend.SetErr = nil
		value, err := store.Get(ctx)
		require.NoError(t, err)
		require.Len(t, value, 1)
		assert.Equal(t, "durable", value[0].Name)
	})
}

func TestStore_Remove(t *testing.T) {
	t.Run("should reset the value and delete the durable copy", func(t *testing.T) {
		// given
		backend := NewStubBackend()
		store := NewStore(backend, "records", []record{{Name: "default"}})
		_, err := store.Update(ctx, func([]record) []record {
			return []record{{Name: "custom"}}
		})
		require.NoError(t, err)

		// when
		err = store.Remove(ctx)

		// then
		require.NoError(t, err)
		_, ok := backend.Raw("records")
		assert.False(t, ok)
		value, err := store.Get(ctx)
		require.NoError(t, err)
		require.Len(t, value, 1)
		assert.Equal(t, "default", value[0].Name)
	})
}

func TestStore_Flush(t *testing.T) {
	t.Run("should not touch the backend before the first load", func(t *testing.T) {
		// given
		backend := NewStubBackend()
		store := NewStore(backend, "records", []record{})

		// when
		err := store.Flush(ctx)

		// then
		assert.NoError(t, err)
		_, ok := backend.Raw("records")
		assert.False(t, ok)
	})

	t.Run("should write the in-memory value durably", func(t *testing.T) {
		// given
		backend := NewStubBackend()
		store := NewStore(backend, "records", []record{{Name: "default"}})
		_, err := store.Get(ctx)
		require.NoError(t, err)

		// when
		err = store.Flush(ctx)

		// then
		require.NoError(t, err)
		raw, ok := backend.Raw("records")
		require.True(t, ok)
		assert.Contains(t, raw, `"default"`)
	})
}

func TestRegistry_StoreFor(t *testing.T) {
	t.Run("should return the same store for repeated requests", func(t *testing.T) {
		// given
		registry := NewRegistry(NewStubBackend())

		// when
		first, err := StoreFor(registry, "records", []record{})
		require.NoError(t, err)
		second, err := StoreFor(registry, "records", []record{})

		// then
		require.NoError(t, err)
		assert.Same(t, first, second)
	})

	t.Run("should reject a second value type for the same key", func(t *testing.T) {
		// given
		registry := NewRegistry(NewStubBackend())
		_, err := StoreFor(registry, "records", []record{})
		require.NoError(t, err)

		// when
		_, err = StoreFor(registry, "records", "")

		// then
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "different value type")
	})

	t.Run("should refuse new stores after close", func(t *testing.T) {
		// given
		registry := NewRegistry(NewStubBackend())
		require.NoError(t, registry.Close(ctx))

		// when
		_, err := StoreFor(registry, "records", []record{})

		// then
		assert.Error(t, err)
	})
}

func TestRegistry_Close(t *testing.T) {
	t.Run("should flush every registered store", func(t *testing.T) {
		// given
		backend := NewStubBackend()
		registry := NewRegistry(backend)
		store, err := StoreFor(registry, "records", []record{{Name: "default"}})
		require.NoError(t, err)
		_, err = store.Get(ctx)
		require.NoError(t, err)

		// when
		err = registry.Close(ctx)

		// then
		require.NoError(t, err)
		_, ok := backend.Raw("records")
		assert.True(t, ok)
	})
}
