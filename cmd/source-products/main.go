package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Supa-mustea/Visualfind-store/internal/sourcing"
)

func main() {
	// Load .env if present; the suppliers are mocks so no keys are required
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: source-products <search query>")
		os.Exit(1)
	}
	query := strings.Join(os.Args[1:], " ")

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	svc := sourcing.NewService(logger)
	products := svc.SourceProducts(context.Background(), query)

	fmt.Printf("Sourced %d offers for %q:\n\n", len(products), query)
	for i, p := range products {
		fmt.Printf("%2d. %s (%s, %s)\n", i+1, p.Name, p.SupplierName, p.Country)
		fmt.Printf("    landed $%.2f  resale $%.2f  profit $%.2f  delivery %dd\n",
			p.OriginalPrice, p.SellingPrice, p.Profit, p.DeliveryDays)
		fmt.Printf("    %s\n", p.SupplierURL)
	}
}
