package transaction

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
	ErrInvalidAmount   = errors.New("transaction amount must be positive")
	ErrMissingCategory = errors.New("transaction category is required")
	ErrInvalidType     = errors.New("transaction type must be income or expense")
)

// Draft is the caller-supplied part of a new transaction; the service
// assigns the identifier and defaults the date.
type Draft struct {
	Amount             decimal.Decimal
	Category           string
	Description        string
	Date               time.Time
	Type               Type
	IsRecurring        bool
	RecurringFrequency Frequency
}

type Service interface {
	List(ctx context.Context) ([]Transaction, error)
	Add(ctx context.Context, draft Draft) (Transaction, error)
	Update(ctx context.Context, id string, update Update) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	ByDateRange(ctx context.Context, r DateRange) ([]Transaction, error)
	ByCategory(ctx context.Context, category string) ([]Transaction, error)
	TotalFor(ctx context.Context, t Type, r *DateRange) (decimal.Decimal, error)
	Balance(ctx context.Context, r *DateRange) (decimal.Decimal, error)
	CategoryTotals(ctx context.Context, t Type, r *DateRange) (map[string]decimal.Decimal, error)
}

type ServiceImpl struct {
	repo  Repository
	bus   *event_bus.EventBus
	clock utils.Clock
}

func NewService(repo Repository, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus, clock: utils.SystemClock{}}
}

func (s *ServiceImpl) List(ctx context.Context) ([]Transaction, error) {
	return s.repo.List(ctx)
}

func (s *ServiceImpl) Add(ctx context.Context, draft Draft) (Transaction, error) {
	if !draft.Amount.IsPositive() {
		return Transaction{}, ErrInvalidAmount
	}
	if draft.Category == "" {
		return Transaction{}, ErrMissingCategory
	}
	if !draft.Type.Valid() {
		return Transaction{}, ErrInvalidType
	}

	date := draft.Date
	if date.IsZero() {
		date = s.clock.Now()
	}

	tx := Transaction{
		ID:                 uuid.NewString(),
		Amount:             draft.Amount,
		Category:           draft.Category,
		Description:        draft.Description,
		Date:               date,
		Type:               draft.Type,
		IsRecurring:        draft.IsRecurring,
		RecurringFrequency: draft.RecurringFrequency,
	}
	if err := s.repo.Prepend(ctx, tx); err != nil {
		return Transaction{}, fmt.Errorf("failed to add transaction: %w", err)
	}
	log.Debugf("transaction added: %s (%s %s)", tx.ID, tx.Type, tx.Amount)

	event := event_bus.NewEvent(ctx, event_bus.EventTransactionRecorded, event_bus.TransactionRecorded{
		Id:       tx.ID,
		Category: tx.Category,
		Amount:   tx.Amount,
		Type:     string(tx.Type),
		Date:     tx.Date,
	})
	if err := s.bus.Publish(event); err != nil {
		log.Warnf("transaction recorded event handling failed: %v", err)
	}

	return tx, nil
}

func (s *ServiceImpl) Update(ctx context.Context, id string, update Update) (bool, error) {
	if update.Amount != nil && !update.Amount.IsPositive() {
		return false, ErrInvalidAmount
	}
	if update.Type != nil && !update.Type.Valid() {
		return false, ErrInvalidType
	}

	found, err := s.repo.Update(ctx, id, update.applyTo)
	if err != nil {
		return false, fmt.Errorf("failed to update transaction: %w", err)
	}
	if !found {
		log.Warnf("transaction not updated because it does not exist: %s", id)
	}
	return found, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete transaction: %w", err)
	}
	if !found {
		log.Warnf("transaction not deleted because it does not exist: %s", id)
	}
	return found, nil
}

func (s *ServiceImpl) ByDateRange(ctx context.Context, r DateRange) ([]Transaction, error) {
	txs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if r.Contains(tx.Date) {
			filtered = append(filtered, tx)
		}
	}
	return filtered, nil
}

func (s *ServiceImpl) ByCategory(ctx context.Context, category string) ([]Transaction, error) {
	txs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Category == category {
			filtered = append(filtered, tx)
		}
	}
	return filtered, nil
}

// TotalFor sums the amounts of all transactions of type t, restricted to r
// when given. Every call rescans the loaded sequence; volumes stay small
// enough on a single-user ledger that no aggregate cache is kept.
func (s *ServiceImpl) TotalFor(ctx context.Context, t Type, r *DateRange) (decimal.Decimal, error) {
	txs, err := s.repo.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return sumMatching(txs, t, r), nil
}

func (s *ServiceImpl) Balance(ctx context.Context, r *DateRange) (decimal.Decimal, error) {
	txs, err := s.repo.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return sumMatching(txs, TypeIncome, r).Sub(sumMatching(txs, TypeExpense, r)), nil
}

// CategoryTotals groups matching transactions by category and sums their
// amounts. Categories with no matching transactions are omitted.
func (s *ServiceImpl) CategoryTotals(ctx context.Context, t Type, r *DateRange) (map[string]decimal.Decimal, error) {
	txs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return totalsByCategory(txs, t, r), nil
}
