package storage

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Store owns the single in-memory copy of the value persisted under one
// storage key. Writes are optimistic: the in-memory copy is replaced first
// and the durable write follows; when the write fails the store reconciles
// by re-reading the last durable value, so memory and storage never stay
// permanently diverged.
type Store[T any] struct {
	key     string
	initial T
	backend Backend

	mu      sync.RWMutex
	value   T
	loaded  bool
	loading bool
	lastErr error
}

func NewStore[T any](backend Backend, key string, initial T) *Store[T] {
	return &Store[T]{
		key:     key,
		initial: initial,
		backend: backend,
		value:   initial,
	}
}

func (s *Store[T]) Key() string {
	return s.key
}

// Load reads the durable value for the store's key. An absent or
// undecodable value falls back to the initial value.
func (s *Store[T]) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

func (s *Store[T]) loadLocked(ctx context.Context) error {
	s.loading = true
	defer func() {
		s.loading = false
		s.loaded = true
	}()

	raw, ok, err := s.backend.Get(ctx, s.key)
	if err != nil {
		s.value = s.initial
		s.lastErr = err
		return fmt.Errorf("failed to load value for key %q: %w", s.key, err)
	}
	if !ok {
		s.value = s.initial
		s.lastErr = nil
		return nil
	}

	var value T
	if err := Decode([]byte(raw), &value); err != nil {
		log.Errorf("stored value for key %q is not decodable, falling back to initial value: %v", s.key, err)
		s.value = s.initial
		s.lastErr = err
		return fmt.Errorf("failed to decode value for key %q: %w", s.key, err)
	}
	s.value = value
	s.lastErr = nil
	return nil
}

// Get returns the current in-memory value, loading the durable value on
// first access. Load failures leave the initial value in place and are
// reported both on the return and through Err.
func (s *Store[T]) Get(ctx context.Context) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		if err := s.loadLocked(ctx); err != nil {
			return s.value, err
		}
	}
	return s.value, nil
}

// Set replaces the stored value.
func (s *Store[T]) Set(ctx context.Context, value T) error {
	_, err := s.Update(ctx, func(T) T { return value })
	return err
}

// Update applies fn to the current value and persists the result. fn must
// be pure; it runs under the store's lock against the last-known in-memory
// state. On persistence failure the in-memory update is discarded in favor
// of a fresh durable read.
func (s *Store[T]) Update(ctx context.Context, fn func(T) T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		// Proceed on load failure: the caller keeps working against the
		// initial value and the error stays visible through Err.
		if err := s.loadLocked(ctx); err != nil {
			log.Warnf("updating key %q over unloadable durable state: %v", s.key, err)
		}
	}

	next := fn(s.value)
	s.value = next

	if err := s.persistLocked(ctx, next); err != nil {
		if loadErr := s.loadLocked(ctx); loadErr != nil {
			log.Errorf("failed to reconcile key %q after write failure: %v", s.key, loadErr)
		}
		// The reconciling read may succeed and clear lastErr; the failed
		// write still needs to stay visible.
		s.lastErr = err
		var zero T
		return zero, err
	}
	s.lastErr = nil
	return next, nil
}

func (s *Store[T]) persistLocked(ctx context.Context, value T) error {
	raw, err := Encode(value)
	if err != nil {
		s.lastErr = err
		return fmt.Errorf("failed to encode value for key %q: %w", s.key, err)
	}
	if err := s.backend.Set(ctx, s.key, string(raw)); err != nil {
		s.lastErr = err
		return fmt.Errorf("failed to persist value for key %q: %w", s.key, err)
	}
	return nil
}

// Remove deletes the durable value and resets the in-memory copy to the
// initial value.
func (s *Store[T]) Remove(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Remove(ctx, s.key); err != nil {
		s.lastErr = err
		return fmt.Errorf("failed to remove value for key %q: %w", s.key, err)
	}
	s.value = s.initial
	s.loaded = true
	s.lastErr = nil
	return nil
}

// Flush writes the current in-memory value durably, whether or not it has
// changed.
func (s *Store[T]) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return nil
	}
	if err := s.persistLocked(ctx, s.value); err != nil {
		return err
	}
	s.lastErr = nil
	return nil
}

// Loading reports whether the initial durable read is still in progress.
func (s *Store[T]) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last storage failure, or nil after the most recent
// operation succeeded.
func (s *Store[T]) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}
