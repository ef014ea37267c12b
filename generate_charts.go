//go:build ignore
// +build ignore

package main

import (
	"fmt"
	"os"

	"gitlab.com/thuraaung/receipt-wallet/internal/demo"
	"gitlab.com/thuraaung/receipt-wallet/internal/view"
)

func main() {
	pie, err := view.CategoryChart(demo.InsightsSpending())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile("breakdown.png", pie, 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	line, err := view.TrendChart(demo.Trends())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile("trends.png", line, 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✓ Created breakdown.png and trends.png from the demo dataset")
}
