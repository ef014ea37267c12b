package view

import (
	"fmt"

	"github.com/go-analyze/charts"

	"gitlab.com/thuraaung/receipt-wallet/internal/models"
)

// CategoryChart renders the spending breakdown as a pie chart PNG.
func CategoryChart(spending models.MonthlySpending) ([]byte, error) {
	if len(spending.Categories) == 0 {
		return nil, fmt.Errorf("no categories to chart")
	}

	values := make([]float64, 0, len(spending.Categories))
	names := make([]string, 0, len(spending.Categories))
	for _, cat := range spending.Categories {
		values = append(values, cat.Amount.InexactFloat64())
		names = append(names, cat.Name)
	}

	p, err := charts.PieRender(
		values,
		charts.TitleOptionFunc(charts.TitleOption{
			Text: fmt.Sprintf("Spending Breakdown - %s", spending.Month),
		}),
		charts.LegendLabelsOptionFunc(names),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf, nil
}

// TrendChart renders the aggregate trend series as a line chart PNG.
func TrendChart(trends []models.TrendPoint) ([]byte, error) {
	if len(trends) == 0 {
		return nil, fmt.Errorf("no trend points to chart")
	}

	values := make([]float64, 0, len(trends))
	labels := make([]string, 0, len(trends))
	for _, point := range trends {
		values = append(values, point.Amount.InexactFloat64())
		labels = append(labels, point.Period)
	}

	p, err := charts.LineRender(
		[][]float64{values},
		charts.TitleOptionFunc(charts.TitleOption{
			Text: "Spending Trends",
		}),
		charts.XAxisLabelsOptionFunc(labels),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf, nil
}
