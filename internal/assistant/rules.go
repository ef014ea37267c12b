// Package assistant provides the canned offline replies used when the
// remote assistant is unreachable.
package assistant

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"gitlab.com/thuraaung/receipt-wallet/internal/models"
)

// FallbackDelay simulates assistant latency before a canned reply is shown.
const FallbackDelay = 1500 * time.Millisecond

// Greeting is the assistant message seeding every new conversation.
const Greeting = "Hi! I'm your AI financial assistant. I can help you understand your spending patterns, track budgets, and provide personalized insights. What would you like to know?"

// QuickQuestions are suggested prompts shown at the start of a conversation.
var QuickQuestions = []string{
	"How much did I spend on groceries last month?",
	"What's my dining budget status?",
	"Show me my recurring subscriptions",
	"What can I cook with my recent purchases?",
	"Find ways to save money this month",
}

const genericReply = "I understand you're asking about your finances. Let me analyze your spending data and provide you with relevant insights. Is there a specific category or time period you'd like me to focus on?"

// rule maps query keywords to a canned reply with optional structured data.
type rule struct {
	keywords []string
	reply    string
	data     models.MessageData
}

// rules are evaluated in order; the first rule with any keyword contained in
// the lowercased query wins. Ordering is part of the observable behavior.
var rules = []rule{
	{
		keywords: []string{"grocery", "groceries"},
		reply:    "Based on your receipts, you spent $450 on groceries last month. This is within your $500 budget (90% used). Your most frequent grocery store is Walmart, and you typically spend $112 per week.",
		data: models.SpendingSummary{
			Type:       models.DataKindSpendingSummary,
			Category:   "Groceries",
			Amount:     decimal.NewFromInt(450),
			Budget:     decimal.NewFromInt(500),
			Percentage: 90,
			Trend:      "+5%",
		},
	},
	{
		keywords: []string{"dining", "restaurant"},
		reply:    "Your dining expenses for this month are $300, which is 15% higher than last month ($260). You've visited restaurants 12 times this month. Consider reducing dining out by 2-3 times to save approximately $50.",
		data: models.SpendingComparison{
			Type:     models.DataKindSpendingComparison,
			Category: "Dining",
			Current:  decimal.NewFromInt(300),
			Previous: decimal.NewFromInt(260),
			Change:   "+15%",
			Visits:   12,
		},
	},
	{
		keywords: []string{"subscription"},
		reply:    "I found 3 recurring subscriptions in your spending: Netflix ($15.99/month), Spotify ($9.99/month), and Adobe Creative Suite ($20.99/month). Total: $46.97/month or $563.64/year.",
	},
	{
		keywords: []string{"cook", "recipe"},
		reply:    "Based on your recent grocery purchases, you have ingredients for: Pasta with marinara sauce, Chicken stir-fry, and Banana bread. Would you like specific recipes for any of these?",
	},
	{
		keywords: []string{"save", "saving"},
		reply:    "Here are 3 ways to save money this month: 1) Reduce dining out by $50, 2) Cancel unused subscriptions to save $20, 3) Buy generic brands for groceries to save $30. Total potential savings: $100/month.",
	},
}

// Reply returns the canned response for a query. Matching is a
// case-insensitive substring check; unmatched queries get a generic reply
// with no data payload.
func Reply(query string) (string, models.MessageData) {
	lowered := strings.ToLower(query)

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lowered, kw) {
				return r.reply, r.data
			}
		}
	}

	return genericReply, nil
}
