package app

import (
	"database/sql"

	"github.com/jasonxnas/elegant-expense-tracker-gkbzje/internal/config"
	"github.com/jasonxnas/elegant-expense-tracker-gkbzje/internal/event_bus"
	"github.com/jasonxnas/elegant-expense-tracker-gkbzje/internal/storage"
	"github.com/jasonxnas/elegant-expense-tracker-gkbzje/pkg/budget"
	"github.com/jasonxnas/elegant-expense-tracker-gkbzje/pkg/category"
	"github.com/jasonxnas/elegant-expense-tracker-gkbzje/pkg/preferences"
	"github.com/jasonxnas/elegant-expense-tracker-gkbzje/pkg/savings"
	"github.com/jasonxnas/elegant-expense-tracker-gkbzje/pkg/tips"
	"github.com/jasonxnas/elegant-expense-tracker-gkbzje/pkg/transaction"
	log "github.com/sirupsen/logrus"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Registry *storage.Registry
	Bus      *event_bus.EventBus

	TransactionRepo    transaction.Repository
	TransactionService transaction.Service
	TransactionHandler *transaction.Handler

	BudgetRepo     budget.Repository
	BudgetService  budget.Service
	BudgetHandler  *budget.Handler
	BudgetNotifier *budget.AlertNotifier

	SavingsRepo    savings.Repository
	SavingsService savings.Service
	SavingsHandler *savings.Handler

	PreferencesRepo    preferences.Repository
	PreferencesService preferences.Service
	PreferencesHandler *preferences.Handler

	TipsService tips.Service
	TipsHandler *tips.Handler

	CategoryHandler *category.Handler

	savingsUnsubscribe func()
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Registry = storage.NewRegistry(storage.NewSQLBackend(db))
	deps.Bus = event_bus.NewEventBus()

	transactionRepo, err := transaction.NewStoreRepository(deps.Registry)
	if err != nil {
		return nil, err
	}
	transactionService := transaction.NewService(transactionRepo, deps.Bus)
	deps.TransactionRepo = transactionRepo
	deps.TransactionService = transactionService
	deps.TransactionHandler = transaction.NewHandler(transactionService)

	budgetRepo, err := budget.NewStoreRepository(deps.Registry)
	if err != nil {
		return nil, err
	}
	deps.BudgetRepo = budgetRepo
	deps.BudgetService = budget.NewService(budgetRepo, transactionService, cfg.Budgets.AlertThreshold)
	deps.BudgetHandler = budget.NewHandler(deps.BudgetService)
	deps.BudgetNotifier = budget.NewAlertNotifier(deps.Bus, deps.BudgetService)

	savingsRepo, err := savings.NewStoreRepository(deps.Registry)
	if err != nil {
		return nil, err
	}
	deps.SavingsRepo = savingsRepo
	deps.SavingsService = savings.NewService(savingsRepo, deps.Bus)
	deps.SavingsHandler = savings.NewHandler(deps.SavingsService)

	preferencesRepo, err := preferences.NewStoreRepository(deps.Registry)
	if err != nil {
		return nil, err
	}
	deps.PreferencesRepo = preferencesRepo
	deps.PreferencesService = preferences.NewService(preferencesRepo)
	deps.PreferencesHandler = preferences.NewHandler(deps.PreferencesService)

	deps.TipsService = tips.NewService()
	deps.TipsHandler = tips.NewHandler(deps.TipsService)

	deps.CategoryHandler = category.NewHandler()

	deps.savingsUnsubscribe = event_bus.SubscribeTyped(deps.Bus, event_bus.EventSavingsGoalCompleted,
		func(e event_bus.EventT[event_bus.SavingsGoalCompleted]) error {
			log.Infof("savings goal reached: %s (%s)", e.Data.Name, e.Data.TargetAmount)
			return nil
		})

	return deps, nil
}

// Close releases event subscriptions held by the dependency graph.
func (d *Dependencies) Close() {
	if d.BudgetNotifier != nil {
		d.BudgetNotifier.Close()
	}
	if d.savingsUnsubscribe != nil {
		d.savingsUnsubscribe()
	}
}
