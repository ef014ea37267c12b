// Package demo holds the fixed fallback datasets shown when live data
// cannot be fetched. The UI is never empty: pages degrade to these
// snapshots instead of surfacing load errors.
package demo

import (
	"time"

	"github.com/shopspring/decimal"

	"gitlab.com/thuraaung/receipt-wallet/internal/models"
)

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func budget(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// Receipts returns the dashboard fallback receipts.
func Receipts() []models.Receipt {
	return []models.Receipt{
		{
			ID:        "1",
			Merchant:  "Walmart",
			Date:      "2024-01-15",
			Total:     decimal.RequireFromString("67.89"),
			Items:     []models.ReceiptItem{},
			Category:  "Groceries",
			ImageURL:  "/placeholder.svg?height=100&width=100",
			CreatedAt: mustTime("2024-01-15T10:30:00Z"),
		},
		{
			ID:        "2",
			Merchant:  "Pizza Palace",
			Date:      "2024-01-14",
			Total:     decimal.RequireFromString("28.50"),
			Items:     []models.ReceiptItem{},
			Category:  "Dining",
			ImageURL:  "/placeholder.svg?height=100&width=100",
			CreatedAt: mustTime("2024-01-14T19:45:00Z"),
		},
		{
			ID:        "3",
			Merchant:  "Shell Gas",
			Date:      "2024-01-13",
			Total:     decimal.RequireFromString("35.00"),
			Items:     []models.ReceiptItem{},
			Category:  "Transportation",
			ImageURL:  "/placeholder.svg?height=100&width=100",
			CreatedAt: mustTime("2024-01-13T08:15:00Z"),
		},
		{
			ID:        "4",
			Merchant:  "Starbucks",
			Date:      "2024-01-12",
			Total:     decimal.RequireFromString("4.50"),
			Items:     []models.ReceiptItem{},
			Category:  "Dining",
			ImageURL:  "/placeholder.svg?height=100&width=100",
			CreatedAt: mustTime("2024-01-12T07:30:00Z"),
		},
	}
}

// MonthlySpending returns the dashboard fallback snapshot: five categories
// summing to the 1250 total.
func MonthlySpending() models.MonthlySpending {
	return models.MonthlySpending{
		Month: "January 2024",
		Total: decimal.NewFromInt(1250),
		Categories: []models.SpendingCategory{
			{Name: "Groceries", Amount: decimal.NewFromInt(450), Percentage: 36},
			{Name: "Dining", Amount: decimal.NewFromInt(300), Percentage: 24},
			{Name: "Transportation", Amount: decimal.NewFromInt(200), Percentage: 16},
			{Name: "Utilities", Amount: decimal.NewFromInt(150), Percentage: 12},
			{Name: "Entertainment", Amount: decimal.NewFromInt(150), Percentage: 12},
		},
		Insights: []models.SpendingInsight{
			{
				ID:          "1",
				Title:       "Dining Increase",
				Description: "Your dining spending is 15% higher than last month",
				Type:        models.InsightTypeWarning,
				Amount:      decimal.NewFromInt(45),
				Category:    "Dining",
			},
			{
				ID:          "2",
				Title:       "Budget On Track",
				Description: "Grocery spending is within budget (85% used)",
				Type:        models.InsightTypeSuccess,
				Category:    "Groceries",
			},
		},
	}
}

// InsightsSpending returns the insights-page fallback snapshot with
// per-category budgets and trend annotations.
func InsightsSpending() models.MonthlySpending {
	return models.MonthlySpending{
		Month:  "January 2024",
		Total:  decimal.NewFromInt(1250),
		Budget: budget(1500),
		Categories: []models.SpendingCategory{
			{Name: "Groceries", Amount: decimal.NewFromInt(450), Budget: budget(500), Percentage: 90, Trend: "+5%"},
			{Name: "Dining", Amount: decimal.NewFromInt(300), Budget: budget(250), Percentage: 120, Trend: "+15%"},
			{Name: "Transportation", Amount: decimal.NewFromInt(200), Budget: budget(200), Percentage: 100, Trend: "0%"},
			{Name: "Utilities", Amount: decimal.NewFromInt(150), Budget: budget(180), Percentage: 83, Trend: "-8%"},
			{Name: "Entertainment", Amount: decimal.NewFromInt(150), Budget: budget(120), Percentage: 125, Trend: "+25%"},
		},
		Insights: []models.SpendingInsight{
			{
				ID:             "1",
				Type:           models.InsightTypeWarning,
				Title:          "Dining Budget Exceeded",
				Description:    "You've spent 20% more on dining than budgeted this month.",
				Amount:         decimal.NewFromInt(50),
				Recommendation: "Consider cooking at home 2-3 more times per week to save $50-75.",
				Category:       "Dining",
			},
			{
				ID:             "2",
				Type:           models.InsightTypeSuccess,
				Title:          "Utilities Savings",
				Description:    "Great job! You've saved 8% on utilities compared to last month.",
				Amount:         decimal.NewFromInt(-15),
				Recommendation: "Keep up the energy-saving habits!",
				Category:       "Utilities",
			},
			{
				ID:             "3",
				Type:           models.InsightTypeInfo,
				Title:          "Subscription Review",
				Description:    "You have 3 recurring subscriptions totaling $46.97/month.",
				Amount:         decimal.RequireFromString("46.97"),
				Recommendation: "Review subscriptions and cancel unused ones to save money.",
				Category:       "Entertainment",
			},
		},
	}
}

// Trends returns the insights-page fallback trend series.
func Trends() []models.TrendPoint {
	return []models.TrendPoint{
		{Period: "Dec 2023", Amount: decimal.NewFromInt(1180)},
		{Period: "Jan 2024", Amount: decimal.NewFromInt(1250)},
		{Period: "Projected Feb", Amount: decimal.NewFromInt(1200)},
	}
}

// ExtractedReceipt returns the upload-page fallback: a locally identified
// extraction the user can still review and save best-effort.
func ExtractedReceipt(tempID, imageURL string) models.Receipt {
	now := time.Now().UTC()
	return models.Receipt{
		ID:       models.TempIDPrefix + tempID,
		Merchant: "Walmart Supercenter",
		Date:     now.Format("2006-01-02"),
		Total:    decimal.RequireFromString("67.89"),
		Items: []models.ReceiptItem{
			{Name: "Bananas", Price: decimal.RequireFromString("2.99"), Quantity: 1},
			{Name: "Milk", Price: decimal.RequireFromString("3.49"), Quantity: 1},
			{Name: "Bread", Price: decimal.RequireFromString("2.99"), Quantity: 2},
			{Name: "Eggs", Price: decimal.RequireFromString("4.99"), Quantity: 1},
		},
		Category:   "Groceries",
		UserID:     "demo-user",
		Status:     models.ReceiptStatusCompleted,
		CreatedAt:  now,
		ImageURL:   imageURL,
		Confidence: 0.95,
	}
}

// Budgets returns the settings-page fallback budget mapping.
func Budgets() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"groceries":      decimal.NewFromInt(500),
		"dining":         decimal.NewFromInt(250),
		"transportation": decimal.NewFromInt(200),
		"utilities":      decimal.NewFromInt(180),
		"entertainment":  decimal.NewFromInt(120),
	}
}

// Notifications returns the settings-page fallback notification flags.
func Notifications() models.NotificationSettings {
	return models.NotificationSettings{
		Spending: true,
		Budget:   true,
		Insights: false,
		Receipts: true,
	}
}

// Profile returns the settings-page fallback profile.
func Profile() models.User {
	return models.User{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@example.com",
		Currency:  models.DefaultCurrency,
		Settings: models.UserSettings{
			Budgets:       Budgets(),
			Notifications: Notifications(),
			Privacy:       models.PrivacySettings{DataAnalytics: true, AIProcessing: true},
			Wallet:        models.WalletSettings{AutoCreatePasses: true, SyncGooglePay: true},
		},
	}
}
