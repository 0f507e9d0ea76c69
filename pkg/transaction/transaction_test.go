package transaction

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(day int) time.Time {
	return time.Date(2024, 6, day, 12, 0, 0, 0, time.UTC)
}

func TestDateRange_Contains(t *testing.T) {
	r := DateRange{Start: date(10), End: date(20)}

	tests := []struct {
		name     string
		instant  time.Time
		expected bool
	}{
		{"before the range", date(9), false},
		{"exactly on the start", date(10), true},
		{"inside the range", date(15), true},
		{"exactly on the end", date(20), true},
		{"after the range", date(21), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Contains(tt.instant))
		})
	}
}

func TestType_Valid(t *testing.T) {
	assert.True(t, TypeIncome.Valid())
	assert.True(t, TypeExpense.Valid())
	assert.False(t, Type("transfer").Valid())
	assert.False(t, Type("").Valid())
}

func TestUpdate_applyTo(t *testing.T) {
	t.Run("should only change the set fields", func(t *testing.T) {
		// given
		tx := Transaction{
			ID:       "tx-1",
			Amount:   decimal.NewFromInt(10),
			Category: "Food & Dining",
			Type:     TypeExpense,
			Date:     date(1),
		}
		amount := decimal.NewFromInt(25)
		update := Update{Amount: &amount}

		// when
		result := update.applyTo(tx)

		// then
		assert.True(t, amount.Equal(result.Amount))
		assert.Equal(t, "Food & Dining", result.Category)
		assert.Equal(t, TypeExpense, result.Type)
		assert.True(t, date(1).Equal(result.Date))
	})
}

func TestSumMatching(t *testing.T) {
	txs := []Transaction{
		{Amount: decimal.NewFromInt(100), Type: TypeIncome, Date: date(1)},
		{Amount: decimal.NewFromInt(30), Type: TypeExpense, Date: date(5)},
		{Amount: decimal.NewFromInt(20), Type: TypeExpense, Date: date(25)},
	}

	t.Run("should sum a single type across all dates", func(t *testing.T) {
		assert.True(t, decimal.NewFromInt(50).Equal(sumMatching(txs, TypeExpense, nil)))
	})

	t.Run("should restrict the sum to the given range", func(t *testing.T) {
		r := DateRange{Start: date(1), End: date(10)}
		assert.True(t, decimal.NewFromInt(30).Equal(sumMatching(txs, TypeExpense, &r)))
	})

	t.Run("should return zero when nothing matches", func(t *testing.T) {
		r := DateRange{Start: date(26), End: date(28)}
		assert.True(t, sumMatching(txs, TypeIncome, &r).IsZero())
	})
}

func TestTotalsByCategory(t *testing.T) {
	t.Run("should group expense amounts by category", func(t *testing.T) {
		// given
		txs := []Transaction{
			{Amount: decimal.NewFromInt(30), Category: "Food & Dining", Type: TypeExpense, Date: date(1)},
			{Amount: decimal.NewFromInt(12), Category: "Food & Dining", Type: TypeExpense, Date: date(2)},
			{Amount: decimal.NewFromInt(50), Category: "Travel", Type: TypeExpense, Date: date(3)},
			{Amount: decimal.NewFromInt(900), Category: "Salary", Type: TypeIncome, Date: date(3)},
		}

		// when
		totals := totalsByCategory(txs, TypeExpense, nil)

		// then
		assert.Len(t, totals, 2)
		assert.True(t, decimal.NewFromInt(42).Equal(totals["Food & Dining"]))
		assert.True(t, decimal.NewFromInt(50).Equal(totals["Travel"]))
	})
}
