package storage

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	Tags   []string        `json:"tags"`
}

func TestEncode(t *testing.T) {
	t.Run("should tag dates with a type marker", func(t *testing.T) {
		// given
		date := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
		value := entry{ID: "tx-1", Amount: decimal.NewFromInt(42), Date: date}

		// when
		raw, err := Encode(value)

		// then
		require.NoError(t, err)
		var tree map[string]any
		require.NoError(t, json.Unmarshal(raw, &tree))
		tagged, ok := tree["date"].(map[string]any)
		require.True(t, ok, "date should be encoded as an object")
		assert.Equal(t, "Date", tagged["__type"])
		assert.Equal(t, "2024-03-15T10:30:00Z", tagged["value"])
	})

	t.Run("should keep decimal amounts as plain strings", func(t *testing.T) {
		// given
		value := entry{ID: "tx-1", Amount: decimal.RequireFromString("12.34")}

		// when
		raw, err := Encode(value)

		// then
		require.NoError(t, err)
		var tree map[string]any
		require.NoError(t, json.Unmarshal(raw, &tree))
		assert.Equal(t, "12.34", tree["amount"])
	})

	t.Run("should tag dates nested in slices and maps", func(t *testing.T) {
		// given
		date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		value := map[string][]entry{
			"entries": {{ID: "tx-1", Date: date}},
		}

		// when
		raw, err := Encode(value)

		// then
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"__type":"Date"`)
	})

	t.Run("should reject maps with non-string keys", func(t *testing.T) {
		// when
		_, err := Encode(map[int]string{1: "a"})

		// then
		assert.Error(t, err)
	})
}

func TestDecode(t *testing.T) {
	t.Run("should restore tagged dates as times", func(t *testing.T) {
		// given
		date := time.Date(2024, 3, 15, 10, 30, 0, 123456789, time.UTC)
		original := entry{ID: "tx-1", Amount: decimal.RequireFromString("99.90"), Date: date, Tags: []string{"a"}}
		raw, err := Encode(original)
		require.NoError(t, err)

		// when
		var restored entry
		err = Decode(raw, &restored)

		// then
		require.NoError(t, err)
		assert.Equal(t, original.ID, restored.ID)
		assert.True(t, original.Amount.Equal(restored.Amount))
		assert.True(t, original.Date.Equal(restored.Date))
		assert.Equal(t, original.Tags, restored.Tags)
	})

	t.Run("should restore dates nested in slices", func(t *testing.T) {
		// given
		dates := []time.Time{
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC),
		}
		raw, err := Encode(dates)
		require.NoError(t, err)

		// when
		var restored []time.Time
		err = Decode(raw, &restored)

		// then
		require.NoError(t, err)
		require.Len(t, restored, 2)
		assert.True(t, dates[0].Equal(restored[0]))
		assert.True(t, dates[1].Equal(restored[1]))
	})

	t.Run("should leave objects that merely resemble the tag alone", func(t *testing.T) {
		// given
		raw := []byte(`{"__type":"Date","value":"not-a-date","extra":true}`)

		// when
		var restored map[string]any
		err := Decode(raw, &restored)

		// then
		require.NoError(t, err)
		assert.Equal(t, "Date", restored["__type"])
		assert.Equal(t, "not-a-date", restored["value"])
		assert.Equal(t, true, restored["extra"])
	})

	t.Run("should fail on malformed input", func(t *testing.T) {
		// when
		var restored entry
		err := Decode([]byte(`{not json`), &restored)

		// then
		assert.Error(t, err)
	})
}
