package pages

import (
	"context"

	"github.com/shopspring/decimal"

	"gitlab.com/thuraaung/receipt-wallet/internal/api"
	"gitlab.com/thuraaung/receipt-wallet/internal/demo"
	"gitlab.com/thuraaung/receipt-wallet/internal/logger"
	"gitlab.com/thuraaung/receipt-wallet/internal/models"
)

// Settings owns the settings page state: the profile, per-category budgets
// and notification flags. Budgets are edited locally and pushed wholesale.
type Settings struct {
	api *api.Client

	Profile       models.User
	Budgets       map[string]decimal.Decimal
	Notifications models.NotificationSettings
	FromDemo      bool
	LoadErr       error
}

// NewSettings creates the settings controller.
func NewSettings(client *api.Client) *Settings {
	return &Settings{api: client}
}

// Load fetches the profile with its settings document, falling back to the
// demo profile on failure.
func (s *Settings) Load(ctx context.Context) {
	profile, err := s.api.GetUserProfile(ctx)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Settings load failed, using demo profile")
		profile = demo.Profile()
		s.FromDemo = true
		s.LoadErr = err
	}

	s.Profile = profile
	s.Notifications = profile.Settings.Notifications
	s.Budgets = make(map[string]decimal.Decimal, len(profile.Settings.Budgets))
	for category, amount := range profile.Settings.Budgets {
		s.Budgets[category] = amount
	}
}

// SetBudget updates one category's budget locally.
func (s *Settings) SetBudget(category string, amount decimal.Decimal) {
	if s.Budgets == nil {
		s.Budgets = make(map[string]decimal.Decimal)
	}
	s.Budgets[category] = amount
}

// SetNotification flips one notification flag locally.
func (s *Settings) SetNotification(key string, value bool) {
	switch key {
	case "spending":
		s.Notifications.Spending = value
	case "budget":
		s.Notifications.Budget = value
	case "insights":
		s.Notifications.Insights = value
	case "receipts":
		s.Notifications.Receipts = value
	case "email":
		s.Notifications.Email = value
	case "push":
		s.Notifications.Push = value
	}
}

// TotalBudget recomputes the sum of all current per-category budgets on
// every call; there is no cached total to go stale.
func (s *Settings) TotalBudget() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range s.Budgets {
		total = total.Add(amount)
	}
	return total
}

// Save pushes budgets and notification flags wholesale.
func (s *Settings) Save(ctx context.Context) error {
	if _, err := s.api.UpdateBudgets(ctx, s.Budgets); err != nil {
		return err
	}
	if _, err := s.api.UpdateNotificationSettings(ctx, s.Notifications); err != nil {
		return err
	}
	return nil
}
