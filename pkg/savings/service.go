package savings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jasonxnas/elegant-expense-tracker-gkbzje/internal/event_bus"
	"github.com/jasonxnas/elegant-expense-tracker-gkbzje/internal/utils"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidTarget       = errors.New("savings goal target amount must be positive")
	ErrMissingName         = errors.New("savings goal name is required")
	ErrInvalidPriority     = errors.New("savings goal priority must be low, medium or high")
	ErrGoalNotFound        = errors.New("savings goal not found")
	ErrInvalidContribution = errors.New("contribution amount must be positive")
)

// Draft is the caller-supplied part of a new goal; the service assigns the
// identifier and defaults the current amount to zero.
type Draft struct {
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    time.Time
	Category      string
	Priority      Priority
}

// Update carries the fields of a partial goal update; nil fields keep
// their current value.
type Update struct {
	Name         *string
	TargetAmount *decimal.Decimal
	TargetDate   *time.Time
	Category     *string
	Priority     *Priority
}

type Service interface {
	List(ctx context.Context) ([]SavingsGoal, error)
	Get(ctx context.Context, id string) (SavingsGoal, bool, error)
	Add(ctx context.Context, draft Draft) (SavingsGoal, error)
	Update(ctx context.Context, id string, update Update) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	// Contribute adds amount to the goal's current amount. Contributing to
	// an unknown goal is an error, never a silent no-op.
	Contribute(ctx context.Context, id string, amount decimal.Decimal) (SavingsGoal, error)
	Progress(ctx context.Context, g SavingsGoal) Progress
	Active(ctx context.Context) ([]SavingsGoal, error)
	TotalSavings(ctx context.Context) (decimal.Decimal, error)
}

type ServiceImpl struct {
	repo  Repository
	bus   *event_bus.EventBus
	clock utils.Clock
}

func NewService(repo Repository, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus, clock: utils.SystemClock{}}
}

func (s *ServiceImpl) List(ctx context.Context) ([]SavingsGoal, error) {
	return s.repo.List(ctx)
}

func (s *ServiceImpl) Get(ctx context.Context, id string) (SavingsGoal, bool, error) {
	goals, err := s.repo.List(ctx)
	if err != nil {
		return SavingsGoal{}, false, err
	}
	for _, g := range goals {
		if g.ID == id {
			return g, true, nil
		}
	}
	return SavingsGoal{}, false, nil
}

func (s *ServiceImpl) Add(ctx context.Context, draft Draft) (SavingsGoal, error) {
	if draft.Name == "" {
		return SavingsGoal{}, ErrMissingName
	}
	if !draft.TargetAmount.IsPositive() {
		return SavingsGoal{}, ErrInvalidTarget
	}
	if draft.Priority != "" && !draft.Priority.Valid() {
		return SavingsGoal{}, ErrInvalidPriority
	}

	priority := draft.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	targetDate := draft.TargetDate
	if targetDate.IsZero() {
		targetDate = s.clock.Now()
	}

	g := SavingsGoal{
		ID:            uuid.NewString(),
		Name:          draft.Name,
		TargetAmount:  draft.TargetAmount,
		CurrentAmount: draft.CurrentAmount,
		TargetDate:    targetDate,
		Category:      draft.Category,
		Priority:      priority,
	}
	if err := s.repo.Prepend(ctx, g); err != nil {
		return SavingsGoal{}, fmt.Errorf("failed to add savings goal: %w", err)
	}
	log.Debugf("savings goal added: %s (%s, target %s)", g.ID, g.Name, g.TargetAmount)
	return g, nil
}

func (s *ServiceImpl) Update(ctx context.Context, id string, update Update) (bool, error) {
	if update.TargetAmount != nil && !update.TargetAmount.IsPositive() {
		return false, ErrInvalidTarget
	}
	if update.Priority != nil && !update.Priority.Valid() {
		return false, ErrInvalidPriority
	}

	found, err := s.repo.Update(ctx, id, func(g SavingsGoal) SavingsGoal {
		if update.Name != nil {
			g.Name = *update.Name
		}
		if update.TargetAmount != nil {
			g.TargetAmount = *update.TargetAmount
		}
		if update.TargetDate != nil {
			g.TargetDate = *update.TargetDate
		}
		if update.Category != nil {
			g.Category = *update.Category
		}
		if update.Priority != nil {
			g.Priority = *update.Priority
		}
		return g
	})
	if err != nil {
		return false, fmt.Errorf("failed to update savings goal: %w", err)
	}
	if !found {
		log.Warnf("savings goal not updated because it does not exist: %s", id)
	}
	return found, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete savings goal: %w", err)
	}
	if !found {
		log.Warnf("savings goal not deleted because it does not exist: %s", id)
	}
	return found, nil
}

func (s *ServiceImpl) Contribute(ctx context.Context, id string, amount decimal.Decimal) (SavingsGoal, error) {
	if !amount.IsPositive() {
		return SavingsGoal{}, ErrInvalidContribution
	}

	var before, after SavingsGoal
	found, err := s.repo.Update(ctx, id, func(g SavingsGoal) SavingsGoal {
		before = g
		g.CurrentAmount = g.CurrentAmount.Add(amount)
		after = g
		return g
	})
	if err != nil {
		return SavingsGoal{}, fmt.Errorf("failed to contribute to savings goal: %w", err)
	}
	if !found {
		return SavingsGoal{}, ErrGoalNotFound
	}
	log.Debugf("contributed %s to savings goal %s", amount, id)

	if !before.IsCompleted() && after.IsCompleted() {
		event := event_bus.NewEvent(ctx, event_bus.EventSavingsGoalCompleted, event_bus.SavingsGoalCompleted{
			Id:           after.ID,
			Name:         after.Name,
			TargetAmount: after.TargetAmount,
		})
		if err := s.bus.Publish(event); err != nil {
			log.Warnf("savings goal completed event handling failed: %v", err)
		}
	}

	return after, nil
}

func (s *ServiceImpl) Progress(ctx context.Context, g SavingsGoal) Progress {
	return g.ProgressAt(s.clock.Now())
}

func (s *ServiceImpl) Active(ctx context.Context) ([]SavingsGoal, error) {
	goals, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	active := make([]SavingsGoal, 0, len(goals))
	for _, g := range goals {
		if g.IsActiveOn(now) {
			active = append(active, g)
		}
	}
	return active, nil
}

// TotalSavings sums the current amount across all goals, active or not.
func (s *ServiceImpl) TotalSavings(ctx context.Context) (decimal.Decimal, error) {
	goals, err := s.repo.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, g := range goals {
		total = total.Add(g.CurrentAmount)
	}
	return total, nil
}
