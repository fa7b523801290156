package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/fintrack/internal/core/services"
	"github.com/SscSPs/fintrack/internal/dto"
	"github.com/SscSPs/fintrack/internal/platform/config"
	"github.com/SscSPs/fintrack/internal/repositories/database/pgsql"
	"github.com/SscSPs/fintrack/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// seedCreator is recorded as creator of currencies loaded by this command.
const seedCreator = "SYSTEM"

// currency_seed creates or re-rates one currency from the environment:
//
//	SEED_CURRENCY_CODE=EUR SEED_CURRENCY_NAME=Euro SEED_CURRENCY_SYMBOL=€ SEED_VALUE_IN_USD=1.085 go run ./cmd/currency_seed
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	v := viper.New()
	v.AutomaticEnv()
	code := v.GetString("SEED_CURRENCY_CODE")
	name := v.GetString("SEED_CURRENCY_NAME")
	rawRate := v.GetString("SEED_VALUE_IN_USD")
	if code == "" || name == "" || rawRate == "" {
		logger.Error("SEED_CURRENCY_CODE, SEED_CURRENCY_NAME and SEED_VALUE_IN_USD must be set")
		os.Exit(1)
	}

	rate, err := decimal.NewFromString(rawRate)
	if err != nil {
		logger.Error("SEED_VALUE_IN_USD is not a decimal", slog.String("value", rawRate))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	repos := pgsql.NewRepositoryProvider(dbPool)
	currencyService := services.NewCurrencyService(repos.CurrencyRepo)

	currency, err := currencyService.CreateCurrency(ctx, dto.CreateCurrencyRequest{
		CurrencyCode: code,
		Name:         name,
		Symbol:       v.GetString("SEED_CURRENCY_SYMBOL"),
		ValueInUSD:   rate,
	}, seedCreator)
	if err != nil {
		logger.Error("Failed to seed currency", slog.String("currency_code", code), slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Currency seeded",
		slog.String("currency_code", currency.CurrencyCode),
		slog.String("value_in_usd", currency.ValueInUSD.StringFixed(3)))
}
