// Package models defines the domain entities shared by the Receipt Wallet client.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The backend serializes currency amounts as bare JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// DefaultCurrency is the display currency for amounts.
const DefaultCurrency = "USD"

// Receipt processing statuses. The only valid transitions are
// processing -> completed and processing -> failed.
const (
	ReceiptStatusProcessing = "processing"
	ReceiptStatusCompleted  = "completed"
	ReceiptStatusFailed     = "failed"
)

// TempIDPrefix marks receipts that only exist locally and have no durable
// backend identifier yet.
const TempIDPrefix = "temp-"

// Receipt represents a recorded purchase with its extracted line items.
type Receipt struct {
	ID         string          `json:"id"`
	Merchant   string          `json:"merchant"`
	Date       string          `json:"date"`
	Total      decimal.Decimal `json:"total"`
	Items      []ReceiptItem   `json:"items"`
	Category   string          `json:"category"`
	ImageURL   string          `json:"imageUrl"`
	Status     string          `json:"status,omitempty"`
	Confidence float64         `json:"confidence,omitempty"`
	UserID     string          `json:"userId,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  *time.Time      `json:"updatedAt,omitempty"`
}

// HasDurableID reports whether the receipt has been persisted by the backend.
func (r Receipt) HasDurableID() bool {
	return r.ID != "" && !strings.HasPrefix(r.ID, TempIDPrefix)
}

// ReceiptItem is a single line item, owned exclusively by one receipt.
type ReceiptItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Category string          `json:"category,omitempty"`
}

// ReceiptUpdate carries the fields of a receipt edit. Only set fields are
// serialized; the backend treats the body as the new state of the record.
type ReceiptUpdate struct {
	Merchant *string          `json:"merchant,omitempty"`
	Date     *string          `json:"date,omitempty"`
	Total    *decimal.Decimal `json:"total,omitempty"`
	Category *string          `json:"category,omitempty"`
	Items    []ReceiptItem    `json:"items,omitempty"`
}

// Insight severities.
const (
	InsightTypeWarning = "warning"
	InsightTypeInfo    = "info"
	InsightTypeSuccess = "success"
)

// Insight priorities.
const (
	InsightPriorityHigh   = "high"
	InsightPriorityMedium = "medium"
	InsightPriorityLow    = "low"
)

// SpendingInsight is a backend-generated observation about spending behavior.
type SpendingInsight struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Type           string          `json:"type"`
	Amount         decimal.Decimal `json:"amount,omitempty"`
	Category       string          `json:"category,omitempty"`
	Recommendation string          `json:"recommendation,omitempty"`
	Priority       string          `json:"priority,omitempty"`
}

// SpendingCategory is one slice of a monthly spending breakdown. Percentage
// may exceed 100 when the category is over budget.
type SpendingCategory struct {
	Name       string           `json:"name"`
	Amount     decimal.Decimal  `json:"amount"`
	Percentage float64          `json:"percentage"`
	Budget     *decimal.Decimal `json:"budget,omitempty"`
	Trend      string           `json:"trend,omitempty"`
}

// OverBudget returns how far the category exceeded its budget. The second
// return is false when the category is at or under budget, or has no budget.
func (c SpendingCategory) OverBudget() (decimal.Decimal, bool) {
	if c.Budget == nil || c.Percentage <= 100 {
		return decimal.Zero, false
	}
	return c.Amount.Sub(*c.Budget), true
}

// PreviousMonth summarizes the prior month for comparison.
type PreviousMonth struct {
	Total            decimal.Decimal `json:"total"`
	Change           decimal.Decimal `json:"change"`
	ChangePercentage float64         `json:"changePercentage"`
}

// MonthlySpending is an immutable snapshot of one month's aggregates.
// Total is advisory; it is not enforced to equal the category sum.
type MonthlySpending struct {
	Month         string             `json:"month"`
	Total         decimal.Decimal    `json:"total"`
	Budget        *decimal.Decimal   `json:"budget,omitempty"`
	Categories    []SpendingCategory `json:"categories"`
	Insights      []SpendingInsight  `json:"insights"`
	PreviousMonth *PreviousMonth     `json:"previousMonth,omitempty"`
}

// TrendPoint is one period in an aggregate spending trend series.
type TrendPoint struct {
	Period string          `json:"period"`
	Amount decimal.Decimal `json:"amount"`
}

// Wallet pass types.
const (
	PassTypeReceipt  = "receipt"
	PassTypeInsight  = "insight"
	PassTypeReminder = "reminder"
)

// Wallet pass statuses.
const (
	PassStatusActive   = "active"
	PassStatusExpired  = "expired"
	PassStatusArchived = "archived"
)

// WalletPass is an externally issued digital pass referencing a receipt
// or insight.
type WalletPass struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"`
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	Amount       decimal.Decimal `json:"amount,omitempty"`
	Date         string          `json:"date,omitempty"`
	Category     string          `json:"category,omitempty"`
	ReceiptID    string          `json:"receiptId,omitempty"`
	Status       string          `json:"status"`
	GooglePassID string          `json:"googlePassId,omitempty"`
}

// WalletPassUpdate carries editable wallet-pass fields.
type WalletPassUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// NotificationSettings holds per-channel notification flags.
type NotificationSettings struct {
	Spending bool `json:"spending"`
	Budget   bool `json:"budget"`
	Insights bool `json:"insights"`
	Receipts bool `json:"receipts"`
	Email    bool `json:"email"`
	Push     bool `json:"push"`
}

// PrivacySettings holds data-use consent flags.
type PrivacySettings struct {
	DataAnalytics bool `json:"dataAnalytics"`
	AIProcessing  bool `json:"aiProcessing"`
}

// WalletSettings holds wallet-integration flags.
type WalletSettings struct {
	AutoCreatePasses bool `json:"autoCreatePasses"`
	SyncGooglePay    bool `json:"syncGooglePay"`
}

// UserSettings is the mutable settings document, loaded and updated wholesale.
type UserSettings struct {
	Budgets       map[string]decimal.Decimal `json:"budgets"`
	Notifications NotificationSettings       `json:"notifications"`
	Privacy       PrivacySettings            `json:"privacy"`
	Wallet        WalletSettings             `json:"wallet"`
}

// User is the account holder profile.
type User struct {
	ID        string       `json:"id"`
	Email     string       `json:"email"`
	FirstName string       `json:"firstName"`
	LastName  string       `json:"lastName"`
	Currency  string       `json:"currency"`
	Language  string       `json:"language,omitempty"`
	Timezone  string       `json:"timezone,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	Settings  UserSettings `json:"settings"`
}

// UserProfileUpdate carries editable profile fields.
type UserProfileUpdate struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
	Currency  *string `json:"currency,omitempty"`
	Language  *string `json:"language,omitempty"`
}

// AuthSession is the result of a successful authentication flow.
type AuthSession struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// AssistantContext is optional conversational context sent with an assistant
// query. Empty fields are omitted so the backend picks its own defaults.
type AssistantContext struct {
	Month         string   `json:"month,omitempty"`
	RecentQueries []string `json:"recentQueries,omitempty"`
}
