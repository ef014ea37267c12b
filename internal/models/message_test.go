package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMessageData(t *testing.T) {
	t.Parallel()

	t.Run("spending summary", func(t *testing.T) {
		t.Parallel()

		raw := json.RawMessage(`{"type":"spending_summary","category":"Groceries","amount":450,"budget":500,"percentage":90,"trend":"+5%"}`)
		data, err := DecodeMessageData(raw)
		require.NoError(t, err)

		summary, ok := data.(SpendingSummary)
		require.True(t, ok, "got %T", data)
		assert.Equal(t, "Groceries", summary.Category)
		assert.True(t, decimal.NewFromInt(500).Equal(summary.Budget))
	})

	t.Run("spending comparison", func(t *testing.T) {
		t.Parallel()

		raw := json.RawMessage(`{"type":"spending_comparison","category":"Dining","current":300,"previous":260,"change":"+15%","visits":12}`)
		data, err := DecodeMessageData(raw)
		require.NoError(t, err)

		comparison, ok := data.(SpendingComparison)
		require.True(t, ok, "got %T", data)
		assert.Equal(t, 12, comparison.Visits)
	})

	t.Run("empty and null decode to nil", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []json.RawMessage{nil, json.RawMessage("null")} {
			data, err := DecodeMessageData(raw)
			require.NoError(t, err)
			assert.Nil(t, data)
		}
	})

	t.Run("unknown type is an error", func(t *testing.T) {
		t.Parallel()

		_, err := DecodeMessageData(json.RawMessage(`{"type":"pie_chart"}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pie_chart")
	})
}

func TestChatMessage_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	payload := `{
		"id": "m2",
		"type": "assistant",
		"content": "Based on your receipts...",
		"timestamp": "2024-01-15T10:30:05Z",
		"data": {"type":"spending_summary","category":"Groceries","amount":450,"budget":500,"percentage":90}
	}`

	var msg ChatMessage
	require.NoError(t, json.Unmarshal([]byte(payload), &msg))
	assert.Equal(t, MessageTypeAssistant, msg.Type)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 30, 5, 0, time.UTC), msg.Timestamp)

	summary, ok := msg.Data.(SpendingSummary)
	require.True(t, ok, "got %T", msg.Data)
	assert.Equal(t, float64(90), summary.Percentage)

	t.Run("message without data", func(t *testing.T) {
		t.Parallel()

		var plain ChatMessage
		require.NoError(t, json.Unmarshal([]byte(`{"id":"m1","type":"user","content":"hi","timestamp":"2024-01-15T10:30:00Z"}`), &plain))
		assert.Nil(t, plain.Data)
	})
}
