package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Supa-mustea/Visualfind-store/internal/config"
	"github.com/Supa-mustea/Visualfind-store/internal/paystack"
)

func main() {
	// PAYSTACK_SECRET_KEY usually lives in .env during development
	_ = godotenv.Load()

	status := flag.String("status", "", "filter by status (success, failed, abandoned)")
	from := flag.String("from", "", "start date, e.g. 2026-01-01")
	to := flag.String("to", "", "end date")
	page := flag.Int("page", 1, "page number")
	perPage := flag.Int("per-page", 50, "results per page")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	client := paystack.NewClient(cfg.Paystack, logger)
	transactions, err := client.ListTransactions(context.Background(), paystack.ListTransactionsParams{
		Status:  *status,
		From:    *from,
		To:      *to,
		Page:    *page,
		PerPage: *perPage,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to list transactions: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Fetched %d transactions (page %d):\n\n", len(transactions), *page)
	for _, tx := range transactions {
		fmt.Printf("%-30s  %-10s  %10.2f %s  %s\n",
			tx.Reference, tx.Status, paystack.KoboToNaira(tx.Amount), tx.Currency, tx.Customer.Email)
	}
}
