package preferences

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Update carries the fields of a partial preferences update; nil fields
// keep their current value.
type Update struct {
	Currency           *string
	Theme              *string
	NotificationsOn    *bool
	BudgetAlertsOn     *bool
	FirstDayOfWeek     *string
	DateFormat         *string
	HideBalanceOnStart *bool
}

type Service interface {
	Get(ctx context.Context) (UserPreferences, error)
	Update(ctx context.Context, update Update) (UserPreferences, error)
	Reset(ctx context.Context) (UserPreferences, error)
	OnboardingCompleted(ctx context.Context) (bool, error)
	CompleteOnboarding(ctx context.Context) error
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) Get(ctx context.Context) (UserPreferences, error) {
	return s.repo.Get(ctx)
}

func (s *ServiceImpl) Update(ctx context.Context, update Update) (UserPreferences, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		return UserPreferences{}, err
	}

	if update.Currency != nil {
		current.Currency = *update.Currency
	}
	if update.Theme != nil {
		current.Theme = *update.Theme
	}
	if update.NotificationsOn != nil {
		current.NotificationsOn = *update.NotificationsOn
	}
	if update.BudgetAlertsOn != nil {
		current.BudgetAlertsOn = *update.BudgetAlertsOn
	}
	if update.FirstDayOfWeek != nil {
		current.FirstDayOfWeek = *update.FirstDayOfWeek
	}
	if update.DateFormat != nil {
		current.DateFormat = *update.DateFormat
	}
	if update.HideBalanceOnStart != nil {
		current.HideBalanceOnStart = *update.HideBalanceOnStart
	}

	if err := s.repo.Set(ctx, current); err != nil {
		return UserPreferences{}, fmt.Errorf("failed to update preferences: %w", err)
	}
	return current, nil
}

func (s *ServiceImpl) Reset(ctx context.Context) (UserPreferences, error) {
	defaults := DefaultPreferences()
	if err := s.repo.Set(ctx, defaults); err != nil {
		return UserPreferences{}, fmt.Errorf("failed to reset preferences: %w", err)
	}
	log.Debug("preferences reset to defaults")
	return defaults, nil
}

func (s *ServiceImpl) OnboardingCompleted(ctx context.Context) (bool, error) {
	return s.repo.OnboardingCompleted(ctx)
}

func (s *ServiceImpl) CompleteOnboarding(ctx context.Context) error {
	if err := s.repo.SetOnboardingCompleted(ctx, true); err != nil {
		return fmt.Errorf("failed to complete onboarding: %w", err)
	}
	return nil
}
