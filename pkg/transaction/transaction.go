package transaction

import (
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Transaction is a single income or expense entry in the ledger.
type Transaction struct {
	ID                 string          `json:"id"`
	Amount             decimal.Decimal `json:"amount"`
	Category           string          `json:"category"`
	Description        string          `json:"description"`
	Date               time.Time       `json:"date"`
	Type               Type            `json:"type"`
	IsRecurring        bool            `json:"isRecurring"`
	RecurringFrequency Frequency       `json:"recurringFrequency"`
}

// DateRange is an inclusive calendar window.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls within the range, inclusive on both ends.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Update carries the fields of a partial transaction update; nil fields
// keep their current value.
type Update struct {
	Amount             *decimal.Decimal
	Category           *string
	Description        *string
	Date               *time.Time
	Type               *Type
	IsRecurring        *bool
	RecurringFrequency *Frequency
}

func (u Update) applyTo(tx Transaction) Transaction {
	if u.Amount != nil {
		tx.Amount = *u.Amount
	}
	if u.Category != nil {
		tx.Category = *u.Category
	}
	if u.Description != nil {
		tx.Description = *u.Description
	}
	if u.Date != nil {
		tx.Date = *u.Date
	}
	if u.Type != nil {
		tx.Type = *u.Type
	}
	if u.IsRecurring != nil {
		tx.IsRecurring = *u.IsRecurring
	}
	if u.RecurringFrequency != nil {
		tx.RecurringFrequency = *u.RecurringFrequency
	}
	return tx
}

func matches(tx Transaction, t Type, r *DateRange) bool {
	if tx.Type != t {
		return false
	}
	return r == nil || r.Contains(tx.Date)
}

func sumMatching(txs []Transaction, t Type, r *DateRange) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if matches(tx, t, r) {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

func totalsByCategory(txs []Transaction, t Type, r *DateRange) map[string]decimal.Decimal {
	totals := map[string]decimal.Decimal{}
	for _, tx := range txs {
		if matches(tx, t, r) {
			totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
		}
	}
	return totals
}
