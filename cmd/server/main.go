// Package main is the entry point for the hardpos API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hardpos/internal/domain/auth"
	"hardpos/internal/domain/billing"
	"hardpos/internal/domain/calculation"
	"hardpos/internal/domain/customer"
	"hardpos/internal/domain/reports"
	"hardpos/internal/domain/stock"
	v1 "hardpos/internal/infrastructure/http/v1"
	"hardpos/internal/infrastructure/storage/postgres"
	"hardpos/pkg/logger"
	"hardpos/pkg/numerator"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting hardpos server")

	// --- Database ---
	dsn := mustEnv("DATABASE_URL")
	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dsn))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	// --- Repositories ---
	stockRepo := postgres.NewStockRepo(txManager)
	customerRepo := postgres.NewCustomerRepo(txManager)
	billRepo := postgres.NewBillRepo(txManager)
	calcRepo := postgres.NewCalculationRepo(txManager)
	salesRepo := postgres.NewSalesRepo(txManager)
	userRepo := postgres.NewUserRepo(txManager)

	activityStore, err := postgres.NewActivityStore(txManager)
	if err != nil {
		log.Fatalw("failed to initialize activity store", "error", err)
	}

	// --- Services ---
	numeratorService := numerator.New(pool.Unwrap())

	jwtSecret := getEnv("JWT_SECRET", "change-me-in-production")
	jwtService := auth.NewJWTService(auth.DefaultJWTConfig(jwtSecret))

	authService := auth.NewService(userRepo, jwtService)
	stockService := stock.NewService(stockRepo, activityStore)
	customerService := customer.NewService(customerRepo, activityStore)
	billingService := billing.NewService(billRepo, customerService, txManager, numeratorService, activityStore)
	calculationService := calculation.NewService(calcRepo, txManager, numeratorService, activityStore)
	reportsService := reports.NewService(salesRepo, stockRepo, customerRepo, activityStore)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:               pool,
		Logger:             log,
		JWTValidator:       jwtService,
		AuthService:        authService,
		BillingService:     billingService,
		CalculationService: calculationService,
		StockService:       stockService,
		CustomerService:    customerService,
		ReportsService:     reportsService,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}
