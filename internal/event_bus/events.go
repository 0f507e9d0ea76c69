package event_bus

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// EventTransactionRecorded fires after a transaction is added to the
	// ledger.
	EventTransactionRecorded EventType = "transaction.recorded"
	// EventBudgetThresholdReached fires when a recorded transaction leaves
	// an active budget at or over its alert threshold.
	EventBudgetThresholdReached EventType = "budget.threshold_reached"
	// EventSavingsGoalCompleted fires when a contribution pushes a goal to
	// or past its target amount.
	EventSavingsGoalCompleted EventType = "savings.goal_completed"
)

type TransactionRecorded struct {
	Id       string
	Category string
	Amount   decimal.Decimal
	Type     string
	Date     time.Time
}

type BudgetThresholdReached struct {
	Id       string
	Category string
	Amount   decimal.Decimal
	Period   string
	Progress float64
}

type SavingsGoalCompleted struct {
	Id           string
	Name         string
	TargetAmount decimal.Decimal
}
