package db

import (
	"context"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logrus.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logrus.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		logrus.Fatal("Postgres connection failed: ", err)
	}

	logrus.Info("connected to PostgreSQL")

	if err := initSchema(pool); err != nil {
		logrus.Fatal("Failed to initialize schema: ", err)
	}

	return pool
}

// initSchema creates or updates the database schema.
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	statements := []string{
		// -------------------------------
		// STAFF USERS
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'STAFF',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		// -------------------------------
		// CATALOG
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS categories (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			is_side BOOLEAN NOT NULL DEFAULT false,
			rank INT NOT NULL DEFAULT 0
		)`,

		`CREATE TABLE IF NOT EXISTS menu_items (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price INT NOT NULL,
			active BOOLEAN NOT NULL DEFAULT true,
			category_id VARCHAR(64) NOT NULL REFERENCES categories(id),
			image_url VARCHAR(500),
			allergens TEXT[] NOT NULL DEFAULT '{}',
			always_available BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS side_configurations (
			main_item_id UUID NOT NULL REFERENCES menu_items(id),
			side_item_id UUID NOT NULL REFERENCES menu_items(id),
			is_required BOOLEAN NOT NULL DEFAULT false,
			min_select INT NOT NULL DEFAULT 0,
			max_select INT NOT NULL DEFAULT 1,
			is_default BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (main_item_id, side_item_id)
		)`,

		// -------------------------------
		// DAILY OFFERS
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS daily_offers (
			id UUID PRIMARY KEY,
			date DATE NOT NULL UNIQUE,
			package_price INT NOT NULL,
			max_portions INT NOT NULL DEFAULT 0,
			remaining_portions INT NOT NULL DEFAULT 0,
			note TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS daily_offer_items (
			id UUID PRIMARY KEY,
			offer_id UUID NOT NULL REFERENCES daily_offers(id),
			menu_item_id UUID NOT NULL REFERENCES menu_items(id),
			is_menu_part BOOLEAN NOT NULL DEFAULT false,
			menu_role VARCHAR(16)
		)`,

		// -------------------------------
		// SESSION STATE (cart + favorites, keyed JSON documents)
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS cart_sessions (
			session_id VARCHAR(64) PRIMARY KEY,
			data JSONB NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS favorites (
			session_id VARCHAR(64) PRIMARY KEY,
			data JSONB NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		// -------------------------------
		// ORDERS
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			session_id VARCHAR(64) NOT NULL,
			customer_name VARCHAR(255) NOT NULL,
			phone VARCHAR(64) NOT NULL,
			email VARCHAR(255),
			pickup_time VARCHAR(16) NOT NULL,
			payment_method VARCHAR(16) NOT NULL,
			status VARCHAR(32) NOT NULL DEFAULT 'NEW',
			note TEXT,
			total INT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS order_items (
			id UUID PRIMARY KEY,
			order_id UUID NOT NULL REFERENCES orders(id),
			item_id VARCHAR(128) NOT NULL,
			name VARCHAR(255) NOT NULL,
			unit_price INT NOT NULL,
			quantity INT NOT NULL,
			sides JSONB NOT NULL DEFAULT '[]',
			modifiers JSONB NOT NULL DEFAULT '[]',
			daily_type VARCHAR(16),
			daily_id UUID,
			line_total INT NOT NULL
		)`,

		// -------------------------------
		// ANNOUNCEMENTS
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS announcements (
			id UUID PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			body TEXT NOT NULL DEFAULT '',
			active_from TIMESTAMP NOT NULL,
			active_until TIMESTAMP NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders (created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders (status)`,
		`CREATE INDEX IF NOT EXISTS idx_daily_offer_items_offer ON daily_offer_items (offer_id)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	logrus.Info("schema initialized")
	return nil
}
