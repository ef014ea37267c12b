package view

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"gitlab.com/thuraaung/receipt-wallet/internal/models"
)

// ReceiptsCSV renders receipts as a CSV document, one row per receipt with
// an item count rather than exploded line items.
func ReceiptsCSV(receipts []models.Receipt) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"ID", "Date", "Merchant", "Total", "Category", "Items", "Status"}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := range receipts {
		row := []string{
			receipts[i].ID,
			receipts[i].Date,
			receipts[i].Merchant,
			receipts[i].Total.StringFixed(2),
			receipts[i].Category,
			strconv.Itoa(len(receipts[i].Items)),
			receipts[i].Status,
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportFilename creates a dated filename for a receipts export.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("receipts_%s.csv", now.Format("2006-01-02"))
}
