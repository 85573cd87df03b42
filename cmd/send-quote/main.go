package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/bytewave/siteapi/internal/cart"
	"github.com/bytewave/siteapi/internal/catalog"
	"github.com/bytewave/siteapi/internal/client"
	"github.com/bytewave/siteapi/internal/domain"
	"github.com/bytewave/siteapi/pkg/errors"
)

func main() {
	_ = godotenv.Load(".env")

	name := flag.String("name", "", "customer name (required)")
	email := flag.String("email", "", "customer email (required)")
	phone := flag.String("phone", "", "customer phone")
	message := flag.String("message", "", "customer message")
	items := flag.String("items", "", "comma-separated component-id:quantity pairs, e.g. logo-design:2,web-app:1")
	baseURL := flag.String("base-url", envOr("RELAY_BASE_URL", "http://localhost:8080"), "mail relay base URL")
	token := flag.String("token", os.Getenv("RELAY_API_TOKEN"), "relay API token")
	demoMode := flag.Bool("demo-mode", os.Getenv("DEMO_MODE_404_OK") == "true", "treat a 404 from the relay as success")
	flag.Parse()

	if *name == "" || *email == "" || *items == "" {
		fmt.Fprintln(os.Stderr, "Usage: send-quote -name NAME -email EMAIL -items id:qty[,id:qty...]")
		fmt.Fprintln(os.Stderr, "Run cmd/list-catalog to see available component ids.")
		os.Exit(1)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	store := cart.NewStore(cart.NewZapNotifier(logger))
	for _, pair := range strings.Split(*items, ",") {
		id, qty, err := parseItem(pair)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid item %q: %v\n", pair, err)
			os.Exit(1)
		}
		comp, serviceType, ok := catalog.FindComponentByID(id)
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown component id %q (see cmd/list-catalog)\n", id)
			os.Exit(1)
		}
		store.Add(*comp, serviceType)
		if qty > 1 {
			store.SetQuantity(id, qty)
		}
	}

	qc := client.NewQuoteClient(client.Options{
		BaseURL:                *baseURL,
		APIToken:               *token,
		TreatNotFoundAsSuccess: *demoMode,
	}, store, logger)

	customer := domain.CustomerInfo{
		Name:    *name,
		Email:   *email,
		Phone:   *phone,
		Message: *message,
	}

	result, err := qc.Submit(context.Background(), customer)
	if err != nil {
		if verr, ok := err.(*errors.ErrValidation); ok {
			fmt.Fprintln(os.Stderr, "Validation failed:")
			for _, msg := range verr.Errors {
				fmt.Fprintf(os.Stderr, "  - %s\n", msg)
			}
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Failed to submit quote: %v\n", err)
		fmt.Fprintln(os.Stderr, "Your selection was kept; fix the problem and retry.")
		os.Exit(1)
	}

	fmt.Printf("Quote requested: %s\n", result.QuoteID)
	fmt.Printf("  %s\n", result.Message)
}

func parseItem(pair string) (id string, qty int, err error) {
	pair = strings.TrimSpace(pair)
	id, qtyStr, found := strings.Cut(pair, ":")
	if !found {
		return pair, 1, nil
	}
	qty, err = strconv.Atoi(qtyStr)
	if err != nil {
		return "", 0, fmt.Errorf("quantity must be numeric")
	}
	if qty < 1 {
		return "", 0, fmt.Errorf("quantity must be at least 1")
	}
	return id, qty, nil
}

func envOr(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}
