package api

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"gitlab.com/thuraaung/receipt-wallet/internal/models"
)

// GetUserProfile fetches the account profile with its settings document.
func (c *Client) GetUserProfile(ctx context.Context) (models.User, error) {
	return doJSON[models.User](ctx, c, http.MethodGet, endpointUserProfile, nil)
}

// UpdateUserProfile updates editable profile fields.
func (c *Client) UpdateUserProfile(ctx context.Context, update models.UserProfileUpdate) (models.User, error) {
	return doJSON[models.User](ctx, c, http.MethodPut, endpointUserProfile, update)
}

// UpdateBudgets replaces the per-category budget mapping wholesale.
func (c *Client) UpdateBudgets(ctx context.Context, budgets map[string]decimal.Decimal) (models.UserSettings, error) {
	body := map[string]map[string]decimal.Decimal{"budgets": budgets}
	return doJSON[models.UserSettings](ctx, c, http.MethodPut, endpointUserProfile+"/budgets", body)
}

// UpdateNotificationSettings replaces the notification flags wholesale.
func (c *Client) UpdateNotificationSettings(ctx context.Context, settings models.NotificationSettings) (models.UserSettings, error) {
	return doJSON[models.UserSettings](ctx, c, http.MethodPut, endpointUserProfile+"/notifications", settings)
}
