package budget

import (
	"context"
	"slices"
)

// StubRepository is an in-memory Repository for tests.
type StubRepository struct {
	budgets []Budget
}

func NewStubRepository() *StubRepository {
	return &StubRepository{}
}

func (s *StubRepository) List(ctx context.Context) ([]Budget, error) {
	return slices.Clone(s.budgets), nil
}

func (s *StubRepository) Prepend(ctx context.Context, b Budget) error {
	s.budgets = append([]Budget{b}, s.budgets...)
	return nil
}

func (s *StubRepository) Update(ctx context.Context, id string, fn func(Budget) Budget) (bool, error) {
	for i, b := range s.budgets {
		if b.ID == id {
			s.budgets[i] = fn(b)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubRepository) Delete(ctx context.Context, id string) (bool, error) {
	for i, b := range s.budgets {
		if b.ID == id {
			s.budgets = append(s.budgets[:i], s.budgets[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubRepository) Cleanup() {
	s.budgets = nil
}
