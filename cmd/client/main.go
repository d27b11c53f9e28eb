package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-stock-keeper/internal/adapter"
	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	var (
		action   string
		login    string
		password string
		name     string
		search   string

		productID int64
		moveType  string
		quantity  float64
		price     float64
	)

	// client-side flags must be registered before the config layer parses
	flag.StringVar(&action, "action", "summary", "Action: register | summary | products | recommendations | movement")
	flag.StringVar(&login, "login", "", "Login for authentication")
	flag.StringVar(&password, "password", "", "Password for authentication")
	flag.StringVar(&name, "name", "", "Display name (register action)")
	flag.StringVar(&search, "search", "", "Product search term (products action)")
	flag.Int64Var(&productID, "product", 0, "Product ID (movement action)")
	flag.StringVar(&moveType, "type", models.MovementIn, "Movement type: in | out (movement action)")
	flag.Float64Var(&quantity, "qty", 0, "Movement quantity (movement action)")
	flag.Float64Var(&price, "price", 0, "Movement price per unit (movement action)")

	log := logger.NewLogger("go-stock-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx := context.Background()

	if action == "register" {
		user, err := serverAdapter.Register(ctx, models.User{Login: login, Password: password, Name: name})
		if err != nil {
			log.Fatal().Err(err).Msg("registration failed")
		}
		printResult(log, user)
		return
	}

	if _, err = serverAdapter.Login(ctx, models.User{Login: login, Password: password}); err != nil {
		log.Fatal().Err(err).Msg("login failed")
	}

	var result any
	switch action {
	case "summary":
		result, err = serverAdapter.SummaryMetrics(ctx)
	case "products":
		result, err = serverAdapter.ListProducts(ctx, models.ProductFilter{Search: search})
	case "recommendations":
		result, err = serverAdapter.Recommendations(ctx)
	case "movement":
		result, err = serverAdapter.RecordMovement(ctx, models.StockMovement{
			ProductID:    productID,
			Type:         moveType,
			Quantity:     quantity,
			PricePerUnit: price,
		})
	default:
		log.Fatal().Str("action", action).Msg("unknown action")
	}
	if err != nil {
		log.Fatal().Err(err).Str("action", action).Msg("request failed")
	}

	printResult(log, result)
}

func printResult(log *logger.Logger, result any) {
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("encode result")
	}

	fmt.Fprintln(os.Stdout, string(out))
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
