package api

import (
	"context"
	"net/http"
	"net/url"

	"gitlab.com/thuraaung/receipt-wallet/internal/models"
)

// DefaultTrendPeriod is the trend window requested when none is given.
const DefaultTrendPeriod = "6months"

// GetSpendingInsights fetches the monthly spending snapshot. An empty month
// is omitted from the query string so the backend picks its default period.
func (c *Client) GetSpendingInsights(ctx context.Context, month string) (models.MonthlySpending, error) {
	endpoint := endpointInsights
	if month != "" {
		endpoint += "?month=" + url.QueryEscape(month)
	}
	return doJSON[models.MonthlySpending](ctx, c, http.MethodGet, endpoint, nil)
}

// GetSpendingTrends fetches the aggregate trend series. Unlike the other
// aggregate queries, an empty period is defaulted client-side and always
// sent.
func (c *Client) GetSpendingTrends(ctx context.Context, period string) ([]models.TrendPoint, error) {
	if period == "" {
		period = DefaultTrendPeriod
	}
	endpoint := endpointSpending + "/trends?period=" + url.QueryEscape(period)
	return doJSON[[]models.TrendPoint](ctx, c, http.MethodGet, endpoint, nil)
}

// GetSpendingByCategory fetches the aggregate category series. An empty
// period is omitted so the backend chooses its default.
func (c *Client) GetSpendingByCategory(ctx context.Context, period string) ([]models.SpendingCategory, error) {
	endpoint := endpointSpending + "/categories"
	if period != "" {
		endpoint += "?period=" + url.QueryEscape(period)
	}
	return doJSON[[]models.SpendingCategory](ctx, c, http.MethodGet, endpoint, nil)
}
