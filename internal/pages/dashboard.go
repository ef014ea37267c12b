// Package pages implements the page controllers. Each controller owns its
// local state, talks to the backend only through the API client, and
// degrades to the embedded demo dataset when a load sequence fails.
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

// DashboardReceiptLimit is how many recent receipts the dashboard shows.
const DashboardReceiptLimit = 4

// Dashboard loads the landing page: recent receipts plus the current
// monthly spending snapshot.
type Dashboard struct {
	api *api.Client
}

// NewDashboard creates the dashboard controller.
func NewDashboard(client *api.Client) *Dashboard {
	return &Dashboard{api: client}
}

// DashboardData is the dashboard's local state after a load. FromDemo marks
// data replaced wholesale by the demo fallback; LoadErr then carries the
// underlying failure for the page to report or ignore.
type DashboardData struct {
	Receipts []models.Receipt
	Spending models.MonthlySpending
	FromDemo bool
	LoadErr  error
}

// Load fetches receipts and spending insights concurrently and joins the
// results. A failure on either branch discards both and falls back to the
// full demo dataset; there is no partial merge and no retry.
func (d *Dashboard) Load(ctx context.Context) DashboardData {
	var (
		wg          sync.WaitGroup
		receipts    []models.Receipt
		spending    models.MonthlySpending
		receiptsErr error
		spendingErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		receipts, receiptsErr = d.api.GetReceipts(ctx, DashboardReceiptLimit)
	}()
	go func() {
		defer wg.Done()
		spending, spendingErr = d.api.GetSpendingInsights(ctx, "")
	}()
	wg.Wait()

	if err := errors.Join(receiptsErr, spendingErr); err != nil {
		logger.Log.Warn().Err(err).Msg("Dashboard load failed, using demo data")
		return DashboardData{
			Receipts: demo.Receipts(),
			Spending: demo.MonthlySpending(),
			FromDemo: true,
			LoadErr:  err,
		}
	}

	return DashboardData{Receipts: receipts, Spending: spending}
}
