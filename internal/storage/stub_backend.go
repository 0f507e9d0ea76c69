package storage

import (
	"context"
	"sync"
)

// StubBackend is an in-memory Backend for tests. Error fields, when set,
// are returned by the corresponding operation.
type StubBackend struct {
	mu   sync.Mutex
	data map[string]string

	GetErr    error
	SetErr    error
	RemoveErr error
}

func NewStubBackend() *StubBackend {
	return &StubBackend{data: map[string]string{}}
}

func (s *StubBackend) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return "", false, s.GetErr
	}
	value, ok := s.data[key]
	return value, ok, nil
}

func (s *StubBackend) Set(ctx context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SetErr != nil {
		return s.SetErr
	}
	s.data[key] = value
	return nil
}

func (s *StubBackend) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.RemoveErr != nil {
		return s.RemoveErr
	}
	delete(s.data, key)
	return nil
}

// Raw returns the stored text for key, for assertions on the wire format.
func (s *StubBackend) Raw(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.data[key]
	return value, ok
}

func (s *StubBackend) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = map[string]string{}
}
