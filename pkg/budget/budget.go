package budget

import (
	"time"

	"github.com/shopspring/decimal"
)

type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

func (p Period) Valid() bool {
	return p == PeriodWeekly || p == PeriodMonthly || p == PeriodYearly
}

// Budget is a spending ceiling for one category over one period window.
// Spend against the ceiling is never stored; it is recomputed live from
// the ledger.
type Budget struct {
	ID        string          `json:"id"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Period    Period          `json:"period"`
	StartDate time.Time       `json:"startDate"`
	EndDate   time.Time       `json:"endDate"`
}

// IsActiveOn reports whether t falls within the budget's window,
// inclusive on both ends.
func (b Budget) IsActiveOn(t time.Time) bool {
	return !t.Before(b.StartDate) && !t.After(b.EndDate)
}

// Progress is the live state of a budget against the ledger.
type Progress struct {
	Spent        decimal.Decimal `json:"spent"`
	Progress     float64         `json:"progress"`
	Remaining    decimal.Decimal `json:"remaining"`
	IsOverBudget bool            `json:"isOverBudget"`
}

// PeriodWindow returns the inclusive [start, end] window for p around now:
// weekly runs from the most recent Sunday through Saturday, monthly and
// yearly cover the current calendar month and year. End dates are the last
// instant of their day so that a transaction late on the final day still
// counts.
func PeriodWindow(p Period, now time.Time) (time.Time, time.Time) {
	switch p {
	case PeriodWeekly:
		start := startOfDay(now).AddDate(0, 0, -int(now.Weekday()))
		return start, endOfDay(start.AddDate(0, 0, 6))
	case PeriodYearly:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return start, endOfDay(time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location()))
	default: // monthly
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, endOfDay(start.AddDate(0, 1, -1))
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
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
