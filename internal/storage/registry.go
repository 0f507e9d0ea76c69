package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// flusher is the type-erased surface the registry keeps per store.
type flusher interface {
	Flush(ctx context.Context) error
}

// Registry hands out the single owning Store per storage key, so every
// consumer of a key shares one in-memory copy. Stores are created on first
// access and live until Close.
type Registry struct {
	backend Backend

	mu     sync.Mutex
	stores map[string]flusher
	closed bool
}

func NewRegistry(backend Backend) *Registry {
	return &Registry{
		backend: backend,
		stores:  map[string]flusher{},
	}
}

// StoreFor returns the store owning key, creating it on first access.
// It is a free function rather than a method because Go does not allow
// type parameters on methods. Requesting an existing key with a different
// value type is an error.
func StoreFor[T any](r *Registry, key string, initial T) (*Store[T], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, fmt.Errorf("storage registry is closed")
	}
	if existing, ok := r.stores[key]; ok {
		typed, ok := existing.(*Store[T])
		if !ok {
			return nil, fmt.Errorf("store for key %q is already registered with a different value type", key)
		}
		return typed, nil
	}

	store := NewStore(r.backend, key, initial)
	r.stores[key] = store
	return store, nil
}

// Flush writes every registered store's in-memory value durably. All
// stores are attempted; failures are collected.
func (r *Registry) Flush(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.flushLocked(ctx)
}

func (r *Registry) flushLocked(ctx context.Context) error {
	var result *multierror.Error
	for key, store := range r.stores {
		if err := store.Flush(ctx); err != nil {
			result = multierror.Append(result, fmt.Errorf("flush %q: %w", key, err))
		}
	}
	return result.ErrorOrNil()
}

// Close flushes all stores and tears the registry down. Further StoreFor
// calls fail.
func (r *Registry) Close(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.flushLocked(ctx)
	r.stores = map[string]flusher{}
	r.closed = true
	return err
}
