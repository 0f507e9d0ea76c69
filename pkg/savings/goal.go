package savings

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// SavingsGoal is a funding target. CurrentAmount only moves through
// explicit contributions.
type SavingsGoal struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    time.Time       `json:"targetDate"`
	Category      string          `json:"category"`
	Priority      Priority        `json:"priority"`
}

func (g SavingsGoal) IsCompleted() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// IsActiveOn reports whether the goal is still being saved for: the target
// date is ahead of t and the target amount is not yet reached.
func (g SavingsGoal) IsActiveOn(t time.Time) bool {
	return g.TargetDate.After(t) && !g.IsCompleted()
}

// Progress is the derived funding state of a goal.
type Progress struct {
	Progress               float64         `json:"progress"`
	Remaining              decimal.Decimal `json:"remaining"`
	IsCompleted            bool            `json:"isCompleted"`
	DaysRemaining          int             `json:"daysRemaining"`
	RequiredMonthlySavings decimal.Decimal `json:"requiredMonthlySavings"`
}

// ProgressAt derives the goal's funding state as of now. The percentage is
// clamped to [0, 100]; the required monthly contribution spreads the
// remaining amount over the days left, never over less than one month.
func (g SavingsGoal) ProgressAt(now time.Time) Progress {
	pct := 0.0
	if g.TargetAmount.IsPositive() {
		pct = clampPercent(g.CurrentAmount.Div(g.TargetAmount).InexactFloat64() * 100)
	}

	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	daysRemaining := int(math.Ceil(g.TargetDate.Sub(now).Hours() / 24))
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	monthsRemaining := math.Max(1, float64(daysRemaining)/30)
	required := remaining.Div(decimal.NewFromFloat(monthsRemaining))

	return Progress{
		Progress:               pct,
		Remaining:              remaining,
		IsCompleted:            g.IsCompleted(),
		DaysRemaining:          daysRemaining,
		RequiredMonthlySavings: required,
	}
}

func clampPercent(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
