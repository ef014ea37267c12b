// Package main is the entry point for the Receipt Wallet terminal client.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"gitlab.com/thuraaung/receipt-wallet/internal/api"
	"gitlab.com/thuraaung/receipt-wallet/internal/config"
	"gitlab.com/thuraaung/receipt-wallet/internal/logger"
	"gitlab.com/thuraaung/receipt-wallet/internal/pages"
	"gitlab.com/thuraaung/receipt-wallet/internal/telemetry"
	"gitlab.com/thuraaung/receipt-wallet/internal/view"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usage = `Usage: receipt-wallet <command>

Commands:
  dashboard             Show recent receipts and monthly spending
  insights [month]      Show the financial insights page
  chart <out.png>       Write spending breakdown and trend charts
  upload <image>        Upload a receipt image for extraction and save it
  assistant [question]  Ask the assistant (interactive without a question)
  export [out.csv]      Export receipts to CSV
  settings              Show profile, budgets and notification settings
  login <email>         Log in (password read from stdin)
  logout                Log out and clear the stored token
  version               Print version information`

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("receipt-wallet %s (commit: %s, built: %s)\n", version, commit, date)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.SetLevel(cfg.LogLevel)

	shutdown, err := telemetry.Setup(ctx, cfg.OTLPEndpoint, cfg.LogLevel == "debug")
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to set up telemetry")
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Log.Warn().Err(err).Msg("Telemetry shutdown failed")
		}
	}()

	tokens := api.NewFileTokenStore(cfg.AuthTokenFile)
	client := api.New(cfg.APIBaseURL, tokens, cfg.RequestTimeout)

	command := "dashboard"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	if err := run(ctx, command, os.Args[2:], client); err != nil {
		logger.Log.Fatal().Err(err).Str("command", command).Msg("Command failed")
	}
}

func run(ctx context.Context, command string, args []string, client *api.Client) error {
	switch command {
	case "dashboard":
		data := pages.NewDashboard(client).Load(ctx)
		fmt.Print(view.Dashboard(data))
		return nil

	case "insights":
		month := ""
		if len(args) > 0 {
			month = args[0]
		}
		data := pages.NewInsights(client).Load(ctx, month)
		fmt.Print(view.Insights(data))
		return nil

	case "chart":
		if len(args) < 1 {
			return fmt.Errorf("chart requires an output file")
		}
		return writeCharts(ctx, client, args[0])

	case "upload":
		if len(args) < 1 {
			return fmt.Errorf("upload requires an image file")
		}
		return uploadReceipt(ctx, client, args[0])

	case "assistant":
		return runAssistant(ctx, client, strings.Join(args, " "))

	case "export":
		out := view.ExportFilename(time.Now())
		if len(args) > 0 {
			out = args[0]
		}
		return exportReceipts(ctx, client, out)

	case "settings":
		settings := pages.NewSettings(client)
		settings.Load(ctx)
		fmt.Print(view.Settings(settings))
		return nil

	case "login":
		if len(args) < 1 {
			return fmt.Errorf("login requires an email")
		}
		return login(ctx, client, args[0])

	case "logout":
		if err := client.Logout(ctx); err != nil {
			return fmt.Errorf("logout failed (token kept): %w", err)
		}
		fmt.Println("Logged out.")
		return nil

	default:
		fmt.Println(usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func writeCharts(ctx context.Context, client *api.Client, out string) error {
	data := pages.NewInsights(client).Load(ctx, "")

	pie, err := view.CategoryChart(data.Spending)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, pie, 0o600); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	fmt.Printf("Wrote %s\n", out)

	if len(data.Trends) > 0 {
		line, err := view.TrendChart(data.Trends)
		if err != nil {
			return err
		}
		trendOut := strings.TrimSuffix(out, ".png") + "_trends.png"
		if err := os.WriteFile(trendOut, line, 0o600); err != nil {
			return fmt.Errorf("failed to write trend chart: %w", err)
		}
		fmt.Printf("Wrote %s\n", trendOut)
	}
	return nil
}

func exportReceipts(ctx context.Context, client *api.Client, out string) error {
	receipts, err := client.GetReceipts(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to fetch receipts: %w", err)
	}

	data, err := view.ReceiptsCSV(receipts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, data, 0o600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Printf("Exported %d receipts to %s\n", len(receipts), out)
	return nil
}

func uploadReceipt(ctx context.Context, client *api.Client, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer func() { _ = file.Close() }()

	upload := pages.NewUpload(client)
	processed := upload.Process(ctx, path, file)
	if processed.FromDemo {
		fmt.Println("⚠ Extraction unavailable, showing demo data")
	}

	receipt := processed.Receipt
	fmt.Printf("Merchant:   %s\n", receipt.Merchant)
	fmt.Printf("Date:       %s\n", receipt.Date)
	fmt.Printf("Total:      %s\n", view.Money(receipt.Total))
	fmt.Printf("Category:   %s\n", receipt.Category)
	if receipt.Confidence > 0 {
		fmt.Printf("Confidence: %.0f%%\n", receipt.Confidence*100)
	}
	for _, item := range receipt.Items {
		fmt.Printf("  %-20s x%d %8s\n", item.Name, item.Quantity, view.Money(item.Price))
	}

	result := upload.Save(ctx, receipt)
	if result.Pass != nil {
		fmt.Printf("Wallet pass created: %s\n", result.Pass.ID)
	}
	fmt.Println("Receipt saved.")
	return nil
}

func runAssistant(ctx context.Context, client *api.Client, question string) error {
	controller := pages.NewAssistant(client)
	for _, msg := range controller.Messages() {
		fmt.Print(view.Message(msg))
	}

	if question != "" {
		reply := controller.Send(ctx, question)
		fmt.Print(view.Message(reply))
		return nil
	}

	fmt.Println("\nQuick questions:")
	for _, q := range controller.QuickQuestions() {
		fmt.Printf("  - %s\n", q)
	}
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || text == "exit" || text == "quit" {
			break
		}
		reply := controller.Send(ctx, text)
		fmt.Print(view.Message(reply))
		fmt.Print("> ")
	}
	return scanner.Err()
}

func login(ctx context.Context, client *api.Client, email string) error {
	fmt.Print("Password: ")
	reader := bufio.NewReader(os.Stdin)
	password, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	password = strings.TrimSpace(password)

	loginCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	session, err := client.Login(loginCtx, email, password)
	if err != nil {
		return err
	}
	if err := client.SetAuthToken(session.Token); err != nil {
		return fmt.Errorf("failed to store auth token: %w", err)
	}

	logger.Log.Info().Str("token", logger.RedactToken(session.Token)).Msg("Logged in")
	fmt.Printf("Welcome back, %s!\n", session.User.FirstName)
	return nil
}
