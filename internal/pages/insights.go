package pages

import (
	"context"
	"errors"
	"sync"

	"gitlab.com/thuraaung/receipt-wallet/internal/api"
	"gitlab.com/thuraaung/receipt-wallet/internal/demo"
	"gitlab.com/thuraaung/receipt-wallet/internal/logger"
	"gitlab.com/thuraaung/receipt-wallet/internal/models"
)

// Insights loads the financial-insights page: the monthly snapshot with
// per-category budgets plus the aggregate trend series.
type Insights struct {
	api *api.Client
}

// NewInsights creates the insights controller.
func NewInsights(client *api.Client) *Insights {
	return &Insights{api: client}
}

// InsightsData is the page state after a load.
type InsightsData struct {
	Spending models.MonthlySpending
	Trends   []models.TrendPoint
	FromDemo bool
	LoadErr  error
}

// Load fetches the snapshot and trend series concurrently. Either branch
// failing replaces both with the demo dataset, matching the dashboard's
// all-or-nothing degrade policy.
func (i *Insights) Load(ctx context.Context, month string) InsightsData {
	var (
		wg          sync.WaitGroup
		spending    models.MonthlySpending
		trends      []models.TrendPoint
		spendingErr error
		trendsErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		spending, spendingErr = i.api.GetSpendingInsights(ctx, month)
	}()
	go func() {
		defer wg.Done()
		trends, trendsErr = i.api.GetSpendingTrends(ctx, "")
	}()
	wg.Wait()

	if err := errors.Join(spendingErr, trendsErr); err != nil {
		logger.Log.Warn().Err(err).Msg("Insights load failed, using demo data")
		return InsightsData{
			Spending: demo.InsightsSpending(),
			Trends:   demo.Trends(),
			FromDemo: true,
			LoadErr:  err,
		}
	}

	return InsightsData{Spending: spending, Trends: trends}
}
