package view

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"gitlab.com/thuraaung/receipt-wallet/internal/models"
	"gitlab.com/thuraaung/receipt-wallet/internal/pages"
)

const demoBanner = "⚠ Showing demo data (live data unavailable)\n\n"

// Dashboard renders the landing page.
func Dashboard(data pages.DashboardData) string {
	var b strings.Builder

	b.WriteString("Receipt Wallet\n")
	b.WriteString("==============\n\n")
	if data.FromDemo {
		b.WriteString(demoBanner)
	}

	b.WriteString(fmt.Sprintf("Monthly Spending (%s): %s\n\n", data.Spending.Month, Money(data.Spending.Total)))

	b.WriteString("Spending Breakdown\n")
	for _, cat := range data.Spending.Categories {
		b.WriteString(fmt.Sprintf("  %s %-16s %8s  (%s of total)\n",
			CategoryIcon(cat.Name), cat.Name, Money(cat.Amount), Percent(cat.Percentage)))
	}

	if len(data.Spending.Insights) > 0 {
		b.WriteString("\nSmart Insights\n")
		for _, insight := range data.Spending.Insights {
			b.WriteString(renderInsight(insight))
		}
	}

	b.WriteString(fmt.Sprintf("\nRecent Receipts (%d)\n", len(data.Receipts)))
	for _, receipt := range data.Receipts {
		b.WriteString(fmt.Sprintf("  %s %-20s %s  %8s  [%s]\n",
			CategoryIcon(receipt.Category), receipt.Merchant, receipt.Date, Money(receipt.Total), receipt.Category))
	}

	return b.String()
}

// Insights renders the financial-insights page, including the over-budget
// indicator for categories past their budget.
func Insights(data pages.InsightsData) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Financial Insights (%s)\n", data.Spending.Month))
	b.WriteString("==================\n\n")
	if data.FromDemo {
		b.WriteString(demoBanner)
	}

	if data.Spending.Budget != nil {
		remaining := data.Spending.Budget.Sub(data.Spending.Total)
		b.WriteString(fmt.Sprintf("Total: %s of %s budget (%s remaining)\n\n",
			Money(data.Spending.Total), Money(*data.Spending.Budget), Money(remaining)))
	} else {
		b.WriteString(fmt.Sprintf("Total: %s\n\n", Money(data.Spending.Total)))
	}

	b.WriteString("Spending by Category\n")
	for _, cat := range data.Spending.Categories {
		b.WriteString(CategoryLine(cat))
	}

	if len(data.Spending.Insights) > 0 {
		b.WriteString("\nSmart Insights\n")
		for _, insight := range data.Spending.Insights {
			b.WriteString(renderInsight(insight))
		}
	}

	if len(data.Trends) > 0 {
		b.WriteString("\nSpending Trends\n")
		b.WriteString(TrendLines(data.Trends))
	}

	return b.String()
}

// CategoryLine renders one category row. Categories past 100% get an
// explicit over-budget amount; those at or under do not.
func CategoryLine(cat models.SpendingCategory) string {
	var b strings.Builder

	line := fmt.Sprintf("  %s %-16s %8s", CategoryIcon(cat.Name), cat.Name, Money(cat.Amount))
	if cat.Budget != nil {
		line += fmt.Sprintf(" of %s budget", Money(*cat.Budget))
	}
	line += fmt.Sprintf("  %s", Percent(cat.Percentage))
	if cat.Trend != "" {
		line += fmt.Sprintf("  (%s)", cat.Trend)
	}
	b.WriteString(line + "\n")

	if over, ok := cat.OverBudget(); ok {
		b.WriteString(fmt.Sprintf("      Over budget by %s\n", Money(over)))
	}

	return b.String()
}

// TrendLines renders the trend series with period-over-period change.
func TrendLines(trends []models.TrendPoint) string {
	var b strings.Builder
	for i, point := range trends {
		line := fmt.Sprintf("  %-14s %8s", point.Period, Money(point.Amount))
		if i > 0 && !trends[i-1].Amount.IsZero() {
			change := point.Amount.Sub(trends[i-1].Amount).
				Div(trends[i-1].Amount).
				Mul(decimal.NewFromInt(100)).
				Round(1)
			direction := "↓"
			if change.IsPositive() {
				direction = "↑"
			}
			line += fmt.Sprintf("  %s %s%%", direction, change.Abs().String())
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func renderInsight(insight models.SpendingInsight) string {
	marker := map[string]string{
		models.InsightTypeWarning: "⚠",
		models.InsightTypeSuccess: "✔",
		models.InsightTypeInfo:    "ℹ",
	}[insight.Type]
	if marker == "" {
		marker = "ℹ"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %s %s: %s\n", marker, insight.Title, insight.Description))
	if insight.Recommendation != "" {
		b.WriteString(fmt.Sprintf("      💡 %s\n", insight.Recommendation))
	}
	return b.String()
}

// Message renders one chat entry, including any structured data payload.
func Message(msg models.ChatMessage) string {
	prefix := "You"
	if msg.Type == models.MessageTypeAssistant {
		prefix = "Assistant"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s: %s\n", msg.Timestamp.Format("15:04"), prefix, msg.Content))

	switch data := msg.Data.(type) {
	case models.SpendingSummary:
		b.WriteString(fmt.Sprintf("    %s: %s of %s budget (%s used, trend %s)\n",
			data.Category, Money(data.Amount), Money(data.Budget), Percent(data.Percentage), data.Trend))
	case models.SpendingComparison:
		b.WriteString(fmt.Sprintf("    %s: this month %s, last month %s (%s, %d visits)\n",
			data.Category, Money(data.Current), Money(data.Previous), data.Change, data.Visits))
	}

	return b.String()
}

// Settings renders the settings page with the live budget total.
func Settings(s *pages.Settings) string {
	var b strings.Builder

	b.WriteString("Settings\n")
	b.WriteString("========\n\n")
	if s.FromDemo {
		b.WriteString(demoBanner)
	}

	b.WriteString(fmt.Sprintf("Profile: %s %s <%s>\n\n", s.Profile.FirstName, s.Profile.LastName, s.Profile.Email))

	b.WriteString("Monthly Budgets\n")
	for _, category := range sortedKeys(s.Budgets) {
		b.WriteString(fmt.Sprintf("  %-16s %8s\n", category, Money(s.Budgets[category])))
	}
	b.WriteString(fmt.Sprintf("  %-16s %8s\n", "Total", Money(s.TotalBudget())))

	b.WriteString("\nNotifications\n")
	b.WriteString(fmt.Sprintf("  Spending alerts:    %s\n", onOff(s.Notifications.Spending)))
	b.WriteString(fmt.Sprintf("  Budget reminders:   %s\n", onOff(s.Notifications.Budget)))
	b.WriteString(fmt.Sprintf("  Smart insights:     %s\n", onOff(s.Notifications.Insights)))
	b.WriteString(fmt.Sprintf("  Receipt processing: %s\n", onOff(s.Notifications.Receipts)))

	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
