package budget

import (
	"context"
	"fmt"
	"slices"

	"github.com/jasonxnas/elegant-expense-tracker-gkbzje/internal/storage"
)

type Repository interface {
	List(ctx context.Context) ([]Budget, error)
	Prepend(ctx context.Context, b Budget) error
	Update(ctx context.Context, id string, fn func(Budget) Budget) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// StoreRepository keeps all budgets as a single record collection under
// the budgets storage key.
type StoreRepository struct {
	store *storage.Store[[]Budget]
}

func NewStoreRepository(registry *storage.Registry) (*StoreRepository, error) {
	store, err := storage.StoreFor(registry, storage.KeyBudgets, []Budget{})
	if err != nil {
		return nil, fmt.Errorf("failed to open budgets store: %w", err)
	}
	return &StoreRepository{store: store}, nil
}

func (r *StoreRepository) List(ctx context.Context) ([]Budget, error) {
	budgets, err := r.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(budgets), nil
}

func (r *StoreRepository) Prepend(ctx context.Context, b Budget) error {
	_, err := r.store.Update(ctx, func(budgets []Budget) []Budget {
		return append([]Budget{b}, budgets...)
	})
	return err
}

func (r *StoreRepository) Update(ctx context.Context, id string, fn func(Budget) Budget) (bool, error) {
	found := false
	_, err := r.store.Update(ctx, func(budgets []Budget) []Budget {
		next := make([]Budget, len(budgets))
		for i, b := range budgets {
			if b.ID == id {
				b = fn(b)
				found = true
			}
			next[i] = b
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
	_, err := r.store.Update(ctx, func(budgets []Budget) []Budget {
		next := make([]Budget, 0, len(budgets))
		for _, b := range budgets {
			if b.ID == id {
				found = true
				continue
			}
			next = append(next, b)
		}
		return next
	})
	if err != nil {
		return false, err
	}
	return found, nil
}
