package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"pos/cmd"
	"pos/internal/adapters/in/http"
	"pos/internal/adapters/out/postgres/catalogrepo"
	"pos/internal/adapters/out/postgres/orderrepo"
	"pos/internal/adapters/out/postgres/partnerrepo"
	"pos/internal/core/domain/services"
	"pos/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config := getConfigs(logger)

	gormDB, err := openDatabase(config)
	if err != nil {
		logger.Error("Database connection failed", "error", err)
		os.Exit(1)
	}

	root, err := cmd.NewCompositionRoot(config, gormDB, logger)
	if err != nil {
		logger.Error("Composition root failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool := root.DispatchPool()
	pool.Start(ctx)
	defer pool.Stop()

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		logger.Error("Job manager failed", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)

	server := http.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateUpdateOrderStatusCommandHandler(),
		root.CreateIngestPartnerEventsCommandHandler(),
		root.CreateSavePartnerConfigCommandHandler(),
		root.CreateRefreshPartnerTokenCommandHandler(),
		root.CreateSimulatePartnerOrdersCommandHandler(),
		root.CreateListOrdersQueryHandler(),
		root.CreateGetDispatchQueueQueryHandler(),
		root.CreateGetPartnerConfigQueryHandler(),
		logger,
	)
	server.RegisterRoutes(e)

	go func() {
		if startErr := e.Start("0.0.0.0:" + config.HTTPPort); startErr != nil {
			logger.Info("HTTP server stopped", "error", startErr)
			stop()
		}
	}()

	<-ctx.Done()
	if shutdownErr := e.Shutdown(context.Background()); shutdownErr != nil {
		logger.Error("HTTP shutdown failed", "error", shutdownErr)
	}
}

func openDatabase(config cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.PaymentDTO{},
		&partnerrepo.CorrelationDTO{},
		&partnerrepo.ConfigDTO{},
		&catalogrepo.ProductDTO{},
	)
	if err != nil {
		return nil, err
	}
	return gormDB, nil
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("No .env file found, using process environment")
	}

	return cmd.Config{
		HTTPPort:   envOrDefault("HTTP_PORT", "8080"),
		DBHost:     envOrDefault("DB_HOST", "localhost"),
		DBPort:     envOrDefault("DB_PORT", "5432"),
		DBUser:     envOrDefault("DB_USER", "postgres"),
		DBPassword: envOrDefault("DB_PASSWORD", "postgres"),
		DBName:     envOrDefault("DB_NAME", "pos"),
		DBSslMode:  envOrDefault("DB_SSLMODE", "disable"),

		PartnerBaseURL: envOrDefault("PARTNER_BASE_URL", "https://merchant-api.partner.example"),

		DispatchSweepSeconds:       envIntOrDefault("DISPATCH_SWEEP_SECONDS", jobs.DefaultSweepSeconds),
		DispatchMaxAttempts:        envIntOrDefault("DISPATCH_MAX_ATTEMPTS", services.DefaultMaxAttempts),
		DispatchAttemptSeconds:     envIntOrDefault("DISPATCH_ATTEMPT_SECONDS", 5),
		DeliverySuccessProbability: envFloatOrDefault("DELIVERY_SUCCESS_PROBABILITY", 0.6),
		DeliverySimulationSeed:     int64(envIntOrDefault("DELIVERY_SIMULATION_SEED", 0)),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func envFloatOrDefault(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return value
}
