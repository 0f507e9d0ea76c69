package savings

import (
	"context"
	"slices"
)

// StubRepository is an in-memory Repository for tests.
type StubRepository struct {
	goals []SavingsGoal
}

func NewStubRepository() *StubRepository {
	return &StubRepository{}
}

func (s *StubRepository) List(ctx context.Context) ([]SavingsGoal, error) {
	return slices.Clone(s.goals), nil
}

func (s *StubRepository) Prepend(ctx context.Context, g SavingsGoal) error {
	s.goals = append([]SavingsGoal{g}, s.goals...)
	return nil
}

func (s *StubRepository) Update(ctx context.Context, id string, fn func(SavingsGoal) SavingsGoal) (bool, error) {
	for i, g := range s.goals {
		if g.ID == id {
			s.goals[i] = fn(g)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubRepository) Delete(ctx context.Context, id string) (bool, error) {
	for i, g := range s.goals {
		if g.ID == id {
			s.goals = append(s.goals[:i], s.goals[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubRepository) Cleanup() {
	s.goals = nil
}
