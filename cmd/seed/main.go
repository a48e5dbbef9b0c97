// Package main seeds the hardpos database: schema, admin account and
// optional demo data for a fresh store.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"hardpos/internal/core/id"
	"hardpos/internal/core/types"
	"hardpos/internal/domain/customer"
	"hardpos/internal/domain/stock"
	"hardpos/internal/infrastructure/storage/postgres"
	"hardpos/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	if err := ensureSchema(ctx, pool); err != nil {
		log.Fatalw("failed to create schema", "error", err)
	}
	log.Info("schema ready")

	if err := seedAdminUser(ctx, pool, log); err != nil {
		log.Fatalw("failed to seed admin user", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(ctx, pool, log); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func ensureSchema(ctx context.Context, pool *postgres.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			version INT NOT NULL DEFAULT 1,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL,
			username TEXT NOT NULL UNIQUE,
			display_name TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL,
			disabled BOOLEAN NOT NULL DEFAULT false
		)`,
		`CREATE TABLE IF NOT EXISTS stock_items (
			id UUID PRIMARY KEY,
			version INT NOT NULL DEFAULT 1,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			quantity BIGINT NOT NULL DEFAULT 0,
			min_quantity BIGINT NOT NULL DEFAULT 0,
			unit_price NUMERIC(15,2) NOT NULL DEFAULT 0,
			supplier TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS customers (
			id UUID PRIMARY KEY,
			version INT NOT NULL DEFAULT 1,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL,
			name TEXT NOT NULL,
			phone TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			total_purchases NUMERIC(15,2) NOT NULL DEFAULT 0,
			last_purchase_at TIMESTAMPTZ,
			status TEXT NOT NULL DEFAULT 'active'
		)`,
		`CREATE TABLE IF NOT EXISTS bills (
			id UUID PRIMARY KEY,
			version INT NOT NULL DEFAULT 1,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL,
			number TEXT NOT NULL UNIQUE,
			customer_name TEXT NOT NULL,
			customer_phone TEXT NOT NULL DEFAULT '',
			subtotal NUMERIC(15,2) NOT NULL,
			total_quantity NUMERIC(15,3) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS bill_lines (
			line_id UUID PRIMARY KEY,
			bill_id UUID NOT NULL REFERENCES bills(id) ON DELETE CASCADE,
			line_no INT NOT NULL,
			name TEXT NOT NULL,
			quantity NUMERIC(15,3) NOT NULL,
			unit_price NUMERIC(15,2) NOT NULL,
			line_total NUMERIC(15,2) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS calculations (
			id UUID PRIMARY KEY,
			version INT NOT NULL DEFAULT 1,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL,
			number TEXT NOT NULL UNIQUE,
			subtotal NUMERIC(15,2) NOT NULL,
			discount_percent NUMERIC(7,3) NOT NULL,
			discount_amount NUMERIC(15,2) NOT NULL,
			taxable_amount NUMERIC(15,2) NOT NULL,
			tax_percent NUMERIC(7,3) NOT NULL,
			tax_amount NUMERIC(15,2) NOT NULL,
			final_total NUMERIC(15,2) NOT NULL,
			total_quantity NUMERIC(15,3) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS calculation_lines (
			line_id UUID PRIMARY KEY,
			calculation_id UUID NOT NULL REFERENCES calculations(id) ON DELETE CASCADE,
			line_no INT NOT NULL,
			name TEXT NOT NULL,
			unit TEXT NOT NULL DEFAULT 'piece',
			quantity NUMERIC(15,3) NOT NULL,
			unit_price NUMERIC(15,2) NOT NULL,
			line_total NUMERIC(15,2) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS activity_log (
			id UUID PRIMARY KEY,
			entity_type TEXT NOT NULL,
			entity_id UUID NOT NULL,
			action TEXT NOT NULL,
			actor TEXT NOT NULL DEFAULT '',
			summary TEXT NOT NULL,
			payload BYTEA,
			compression_algo TEXT NOT NULL DEFAULT 'none',
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_activity_log_created_at ON activity_log (created_at DESC)`,
		`CREATE TABLE IF NOT EXISTS sys_sequences (
			sequence_type TEXT NOT NULL,
			year INT NOT NULL,
			current_val BIGINT NOT NULL,
			PRIMARY KEY (sequence_type, year)
		)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("execute DDL: %w", err)
		}
	}
	return nil
}

func seedAdminUser(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	adminUsername := os.Getenv("ADMIN_USERNAME")
	if adminUsername == "" {
		adminUsername = "admin"
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "Admin123!"
	}

	var existingID id.ID
	err := pool.QueryRow(ctx,
		`SELECT id FROM users WHERE username = $1`,
		adminUsername,
	).Scan(&existingID)
	if err == nil {
		log.Infow("admin user already exists", "username", adminUsername, "user_id", existingID)
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("check admin exists: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	userID := id.New()
	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, version, created_at, updated_at, username, display_name, password_hash, role, disabled)
		VALUES ($1, 1, now(), now(), $2, 'Store Admin', $3, 'admin', false)
	`, userID, adminUsername, string(passwordHash))
	if err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}

	log.Infow("admin user created", "username", adminUsername, "user_id", userID)
	return nil
}

func seedDemoData(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	log.Info("seeding demo data...")

	items := []*stock.Item{
		stock.NewItem("Cement Bag 50kg", "building-material", 45, 20, types.MustMoney("350"), "UltraTech"),
		stock.NewItem("PVC Pipe 1 inch", "plumbing", 8, 15, types.MustMoney("120"), "Finolex"),
		stock.NewItem("Hammer 500g", "tools", 25, 10, types.MustMoney("180"), "Taparia"),
		stock.NewItem("Wire 1.5mm (90m)", "electrical", 0, 5, types.MustMoney("1450"), "Havells"),
		stock.NewItem("Wall Paint 1L White", "paint", 30, 12, types.MustMoney("220"), "Asian Paints"),
		stock.NewItem("Door Hinges 4 inch", "hardware", 60, 24, types.MustMoney("45"), "Godrej"),
	}
	for _, item := range items {
		_, err := pool.Exec(ctx, `
			INSERT INTO stock_items (id, version, created_at, updated_at, name, category, quantity, min_quantity, unit_price, supplier)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (id) DO NOTHING
		`, item.ID, item.Version, item.CreatedAt, item.UpdatedAt,
			item.Name, item.Category, item.Quantity, item.MinQuantity, item.UnitPrice, item.Supplier)
		if err != nil {
			return fmt.Errorf("insert stock item: %w", err)
		}
	}
	log.Infow("stock items seeded", "count", len(items))

	customers := []*customer.Customer{
		customer.NewCustomer("Rajesh Kumar", "9876543210", "rajesh@example.com", "12 MG Road"),
		customer.NewCustomer("Sunita Sharma", "9123456780", "", "45 Nehru Nagar"),
		customer.NewCustomer("Amit Traders", "9988776655", "amit.traders@example.com", "Plot 7, Industrial Area"),
	}
	for _, c := range customers {
		_, err := pool.Exec(ctx, `
			INSERT INTO customers (id, version, created_at, updated_at, name, phone, email, address, total_purchases, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (phone) DO NOTHING
		`, c.ID, c.Version, c.CreatedAt, c.UpdatedAt,
			c.Name, c.Phone, c.Email, c.Address, c.TotalPurchases, c.Status)
		if err != nil {
			return fmt.Errorf("insert customer: %w", err)
		}
	}
	log.Infow("customers seeded", "count", len(customers))

	return nil
}
