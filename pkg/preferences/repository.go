package preferences

import (
	"context"

	"github.com/jasonxnas/elegant-expense-tracker-gkbzje/internal/storage"
)

type Repository interface {
	Get(ctx context.Context) (UserPreferences, error)
	Set(ctx context.Context, p UserPreferences) error
	OnboardingCompleted(ctx context.Context) (bool, error)
	SetOnboardingCompleted(ctx context.Context, done bool) error
}

// StoreRepository keeps preferences and the onboarding flag in two
// dedicated storage keys.
type StoreRepository struct {
	prefs      *storage.Store[UserPreferences]
	onboarding *storage.Store[bool]
}

func NewStoreRepository(registry *storage.Registry) (*StoreRepository, error) {
	prefs, err := storage.StoreFor(registry, storage.KeyUserPreferences, DefaultPreferences())
	if err != nil {
		return nil, err
	}
	onboarding, err := storage.StoreFor(registry, storage.KeyOnboardingCompleted, false)
	if err != nil {
		return nil, err
	}
	return &StoreRepository{prefs: prefs, onboarding: onboarding}, nil
}

func (r *StoreRepository) Get(ctx context.Context) (UserPreferences, error) {
	return r.prefs.Get(ctx)
}

func (r *StoreRepository) Set(ctx context.Context, p UserPreferences) error {
	return r.prefs.Set(ctx, p)
}

func (r *StoreRepository) OnboardingCompleted(ctx context.Context) (bool, error) {
	return r.onboarding.Get(ctx)
}

func (r *StoreRepository) SetOnboardingCompleted(ctx context.Context, done bool) error {
	return r.onboarding.Set(ctx, done)
}
