package assistant

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/thuraaung/receipt-wallet/internal/models"
)

func TestReply(t *testing.T) {
	t.Parallel()

	t.Run("grocery queries carry a spending summary", func(t *testing.T) {
		t.Parallel()

		reply, data := Reply("How much did I spend on GROCERIES last month?")
		assert.Contains(t, reply, "$450")

		summary, ok := data.(models.SpendingSummary)
		require.True(t, ok, "expected SpendingSummary, got %T", data)
		assert.Equal(t, models.DataKindSpendingSummary, summary.Kind())
		assert.Equal(t, "Groceries", summary.Category)
		assert.True(t, decimal.NewFromInt(450).Equal(summary.Amount))
		assert.Equal(t, float64(90), summary.Percentage)
	})

	t.Run("dining and restaurant queries carry a comparison", func(t *testing.T) {
		t.Parallel()

		for _, query := range []string{
			"what's my dining budget",
			"how often do I eat at a restaurant",
		} {
			_, data := Reply(query)
			comparison, ok := data.(models.SpendingComparison)
			require.True(t, ok, "query %q: expected SpendingComparison, got %T", query, data)
			assert.Equal(t, "Dining", comparison.Category)
			assert.Equal(t, 12, comparison.Visits)
			assert.Equal(t, "+15%", comparison.Change)
		}
	})

	t.Run("subscription, recipe and saving replies have no data payload", func(t *testing.T) {
		t.Parallel()

		cases := map[string]string{
			"show my subscriptions":      "$46.97/month",
			"what can I cook tonight":    "Chicken stir-fry",
			"help me save money":         "Total potential savings",
			"any good recipe ideas":      "Banana bread",
			"where are my savings going": "Total potential savings",
		}
		for query, fragment := range cases {
			reply, data := Reply(query)
			assert.Contains(t, reply, fragment, "query %q", query)
			assert.Nil(t, data, "query %q", query)
		}
	})

	t.Run("unmatched queries get the generic reply", func(t *testing.T) {
		t.Parallel()

		reply, data := Reply("tell me about the weather")
		assert.Equal(t, genericReply, reply)
		assert.Nil(t, data)
	})

	t.Run("first matching rule wins", func(t *testing.T) {
		t.Parallel()

		// Mentions both groceries and dining; the grocery rule is earlier.
		_, data := Reply("compare my grocery and dining spend")
		_, ok := data.(models.SpendingSummary)
		require.True(t, ok, "expected the grocery rule to win, got %T", data)
	})
}

func TestQuickQuestionsAreAnswerable(t *testing.T) {
	t.Parallel()

	// Every suggested prompt should hit a specific rule, not the generic reply.
	for _, question := range QuickQuestions {
		reply, _ := Reply(question)
		assert.NotEqual(t, genericReply, reply, "question %q", question)
	}
}
