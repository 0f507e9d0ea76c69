package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jasonxnas/elegant-expense-tracker-gkbzje/internal/utils"
	"github.com/jasonxnas/elegant-expense-tracker-gkbzje/pkg/transaction"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidAmount     = errors.New("budget amount must be positive")
	ErrMissingCategory   = errors.New("budget category is required")
	ErrInvalidPeriod     = errors.New("budget period must be weekly, monthly or yearly")
	ErrDuplicateCategory = errors.New("an active budget already exists for this category")
)

// Ledger is the slice of the transaction service the tracker reads spend
// from.
type Ledger interface {
	CategoryTotals(ctx context.Context, t transaction.Type, r *transaction.DateRange) (map[string]decimal.Decimal, error)
}

// Update carries the fields of a partial budget update; nil fields keep
// their current value. The period window is not recomputed on update.
type Update struct {
	Category *string
	Amount   *decimal.Decimal
	Period   *Period
}

type Service interface {
	List(ctx context.Context) ([]Budget, error)
	Get(ctx context.Context, id string) (Budget, bool, error)
	Create(ctx context.Context, category string, amount decimal.Decimal, period Period) (Budget, error)
	Update(ctx context.Context, id string, update Update) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	// Progress recomputes spend live from the ledger over the budget's
	// window; the percentage is clamped to [0, 100].
	Progress(ctx context.Context, b Budget) (Progress, error)
	Active(ctx context.Context) ([]Budget, error)
	Alerts(ctx context.Context) ([]Budget, error)
}

type ServiceImpl struct {
	repo           Repository
	ledger         Ledger
	clock          utils.Clock
	alertThreshold float64
}

func NewService(repo Repository, ledger Ledger, alertThreshold float64) *ServiceImpl {
	return &ServiceImpl{
		repo:           repo,
		ledger:         ledger,
		clock:          utils.SystemClock{},
		alertThreshold: alertThreshold,
	}
}

func (s *ServiceImpl) List(ctx context.Context) ([]Budget, error) {
	return s.repo.List(ctx)
}

func (s *ServiceImpl) Get(ctx context.Context, id string) (Budget, bool, error) {
	budgets, err := s.repo.List(ctx)
	if err != nil {
		return Budget{}, false, err
	}
	for _, b := range budgets {
		if b.ID == id {
			return b, true, nil
		}
	}
	return Budget{}, false, nil
}

// Create computes the budget's period window from the current time and
// rejects a second budget for a category that already has an active one.
func (s *ServiceImpl) Create(ctx context.Context, category string, amount decimal.Decimal, period Period) (Budget, error) {
	if category == "" {
		return Budget{}, ErrMissingCategory
	}
	if !amount.IsPositive() {
		return Budget{}, ErrInvalidAmount
	}
	if !period.Valid() {
		return Budget{}, ErrInvalidPeriod
	}

	now := s.clock.Now()
	existing, err := s.repo.List(ctx)
	if err != nil {
		return Budget{}, err
	}
	for _, b := range existing {
		if b.Category == category && b.IsActiveOn(now) {
			return Budget{}, ErrDuplicateCategory
		}
	}

	start, end := PeriodWindow(period, now)
	b := Budget{
		ID:        uuid.NewString(),
		Category:  category,
		Amount:    amount,
		Period:    period,
		StartDate: start,
		EndDate:   end,
	}
	if err := s.repo.Prepend(ctx, b); err != nil {
		return Budget{}, fmt.Errorf("failed to add budget: %w", err)
	}
	log.Debugf("budget added: %s (%s, %s per %s)", b.ID, b.Category, b.Amount, b.Period)
	return b, nil
}

func (s *ServiceImpl) Update(ctx context.Context, id string, update Update) (bool, error) {
	if update.Amount != nil && !update.Amount.IsPositive() {
		return false, ErrInvalidAmount
	}
	if update.Period != nil && !update.Period.Valid() {
		return false, ErrInvalidPeriod
	}

	found, err := s.repo.Update(ctx, id, func(b Budget) Budget {
		if update.Category != nil {
			b.Category = *update.Category
		}
		if update.Amount != nil {
			b.Amount = *update.Amount
		}
		if update.Period != nil {
			b.Period = *update.Period
		}
		return b
	})
	if err != nil {
		return false, fmt.Errorf("failed to update budget: %w", err)
	}
	if !found {
		log.Warnf("budget not updated because it does not exist: %s", id)
	}
	return found, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete budget: %w", err)
	}
	if !found {
		log.Warnf("budget not deleted because it does not exist: %s", id)
	}
	return found, nil
}

func (s *ServiceImpl) Progress(ctx context.Context, b Budget) (Progress, error) {
	window := transaction.DateRange{Start: b.StartDate, End: b.EndDate}
	totals, err := s.ledger.CategoryTotals(ctx, transaction.TypeExpense, &window)
	if err != nil {
		return Progress{}, fmt.Errorf("failed to compute budget spend: %w", err)
	}

	spent := totals[b.Category]
	pct := 0.0
	if b.Amount.IsPositive() {
		pct = clampPercent(spent.Div(b.Amount).InexactFloat64() * 100)
	}
	remaining := b.Amount.Sub(spent)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return Progress{
		Spent:        spent,
		Progress:     pct,
		Remaining:    remaining,
		IsOverBudget: spent.GreaterThan(b.Amount),
	}, nil
}

func (s *ServiceImpl) Active(ctx context.Context) ([]Budget, error) {
	budgets, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	active := make([]Budget, 0, len(budgets))
	for _, b := range budgets {
		if b.IsActiveOn(now) {
			active = append(active, b)
		}
	}
	return active, nil
}

// Alerts returns the active budgets whose live progress has reached the
// alert threshold.
func (s *ServiceImpl) Alerts(ctx context.Context) ([]Budget, error) {
	active, err := s.Active(ctx)
	if err != nil {
		return nil, err
	}
	alerts := make([]Budget, 0, len(active))
	for _, b := range active {
		progress, err := s.Progress(ctx, b)
		if err != nil {
			return nil, err
		}
		if progress.Progress >= s.alertThreshold {
			alerts = append(alerts, b)
		}
	}
	return alerts, nil
}
