package savings

import (
	"context"
	"fmt"
	"slices"

	"github.com/jasonxnas/elegant-expense-tracker-gkbzje/internal/storage"
)

type Repository interface {
	List(ctx context.Context) ([]SavingsGoal, error)
	Prepend(ctx context.Context, g SavingsGoal) error
	Update(ctx context.Context, id string, fn func(SavingsGoal) SavingsGoal) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// StoreRepository keeps all goals as a single record collection under the
// savings goals storage key.
type StoreRepository struct {
	store *storage.Store[[]SavingsGoal]
}

func NewStoreRepository(registry *storage.Registry) (*StoreRepository, error) {
	store, err := storage.StoreFor(registry, storage.KeySavingsGoals, []SavingsGoal{})
	if err != nil {
		return nil, fmt.Errorf("failed to open savings goals store: %w", err)
	}
	return &StoreRepository{store: store}, nil
}

func (r *StoreRepository) List(ctx context.Context) ([]SavingsGoal, error) {
	goals, err := r.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(goals), nil
}

func (r *StoreRepository) Prepend(ctx context.Context, g SavingsGoal) error {
	_, err := r.store.Update(ctx, func(goals []SavingsGoal) []SavingsGoal {
		return append([]SavingsGoal{g}, goals...)
	})
	return err
}

func (r *StoreRepository) Update(ctx context.Context, id string, fn func(SavingsGoal) SavingsGoal) (bool, error) {
	found := false
	_, err := r.store.Update(ctx, func(goals []SavingsGoal) []SavingsGoal {
		next := make([]SavingsGoal, len(goals))
		for i, g := range goals {
			if g.ID == id {
				g = fn(g)
				found = true
			}
			next[i] = g
		}
		return next
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

func (r *StoreRepository) Delete(ctx context.Context, id string) (bool, error) {
	found := false
	_, err := r.store.Update(ctx, func(goals []SavingsGoal) []SavingsGoal {
		next := make([]SavingsGoal, 0, len(goals))
		for _, g := range goals {
			if g.ID == id {
				found = true
				continue
			}
			next = append(next, g)
		}
		return next
	})
	if err != nil {
		return false, err
	}
	return found, nil
}
