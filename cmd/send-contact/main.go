package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/bytewave/siteapi/internal/client"
	"github.com/bytewave/siteapi/internal/domain"
	"github.com/bytewave/siteapi/pkg/errors"
)

func main() {
	_ = godotenv.Load(".env")

	name := flag.String("name", "", "your name (required)")
	email := flag.String("email", "", "your email (required)")
	subject := flag.String("subject", "", "service category title (required)")
	component := flag.String("component", "", "optional component name within the service")
	message := flag.String("message", "", "message text (required)")
	baseURL := flag.String("base-url", envOr("RELAY_BASE_URL", "http://localhost:8080"), "mail relay base URL")
	token := flag.String("token", os.Getenv("RELAY_API_TOKEN"), "relay API token")
	demoMode := flag.Bool("demo-mode", os.Getenv("DEMO_MODE_404_OK") == "true", "treat a 404 from the relay as success")
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	cc := client.NewContactClient(client.Options{
		BaseURL:                *baseURL,
		APIToken:               *token,
		TreatNotFoundAsSuccess: *demoMode,
	}, logger)

	result, err := cc.Send(context.Background(), domain.ContactSubmission{
		Name:      *name,
		Email:     *email,
		Subject:   *subject,
		Component: *component,
		Message:   *message,
	})
	if err != nil {
		if verr, ok := err.(*errors.ErrValidation); ok {
			fmt.Fprintln(os.Stderr, "Validation failed:")
			for _, msg := range verr.Errors {
				fmt.Fprintf(os.Stderr, "  - %s\n", msg)
			}
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Failed to send message: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(result.Message)
}

func envOr(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}
