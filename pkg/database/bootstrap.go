package database

import (
	"context"
	"fmt"
	"time"

	"velvet-vogue/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price DOUBLE PRECISION NOT NULL,
		image TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		stock INT NOT NULL DEFAULT 0,
		featured BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users (id),
		order_details JSONB NOT NULL,
		total_amount DOUBLE PRECISION NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

type seedProduct struct {
	name        string
	description string
	price       float64
	image       string
	category    string
	stock       int
	featured    bool
}

var seedProducts = []seedProduct{
	{
		name:        "Elegant Evening Dress",
		description: "A stunning evening dress perfect for special occasions. Made with premium fabric for maximum comfort and style.",
		price:       129.99,
		image:       "https://images.unsplash.com/photo-1595777457583-95e059d581b8?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
		category:    "dresses",
		stock:       15,
		featured:    true,
	},
	{
		name:        "Classic Blazer",
		description: "A timeless blazer that adds sophistication to any outfit. Perfect for both professional and casual settings.",
		price:       89.99,
		image:       "https://images.unsplash.com/photo-1583394838336-acd977736f90?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
		category:    "jackets",
		stock:       20,
		featured:    true,
	},
	{
		name:        "Casual Summer Top",
		description: "Light and comfortable top ideal for warm weather. Features a modern design with breathable fabric.",
		price:       39.99,
		image:       "https://images.unsplash.com/photo-1576566588028-4147f3842f27?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
		category:    "tops",
		stock:       25,
		featured:    true,
	},
	{
		name:        "Designer Handbag",
		description: "Luxurious handbag with ample space and elegant design. Crafted from high-quality materials.",
		price:       199.99,
		image:       "https://images.unsplash.com/photo-1582418702059-97ebafb35d09?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
		category:    "accessories",
		stock:       10,
		featured:    true,
	},
	{
		name:        "Slim Fit Jeans",
		description: "Comfortable and stylish slim fit jeans that flatter your figure. Made from durable denim material.",
		price:       59.99,
		image:       "https://images.unsplash.com/photo-1542272604-787c3835535d?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
		category:    "bottoms",
		stock:       30,
		featured:    false,
	},
	{
		name:        "Winter Wool Coat",
		description: "Warm and cozy wool coat for cold weather. Features a classic design with modern touches.",
		price:       149.99,
		image:       "https://images.unsplash.com/photo-1591047139829-d91aecb6caea?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
		category:    "jackets",
		stock:       12,
		featured:    false,
	},
	{
		name:        "Silk Scarf",
		description: "Elegant silk scarf with beautiful patterns. Perfect accessory for any outfit.",
		price:       29.99,
		image:       "https://images.unsplash.com/photo-1548036328-c9fa89d128fa?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
		category:    "accessories",
		stock:       50,
		featured:    false,
	},
	{
		name:        "Leather Boots",
		description: "High-quality leather boots that combine style and durability. Perfect for all seasons.",
		price:       119.99,
		image:       "https://images.unsplash.com/photo-1542280756-74b2f55e73ab?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
		category:    "shoes",
		stock:       18,
		featured:    false,
	},
}

// Bootstrap creates the schema and seeds the default admin, a demo user and
// the starter catalog. Safe to run on every startup.
func Bootstrap(ctx context.Context, db PgxIface, log *zap.Logger) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	if err := seedUser(ctx, db, "Admin User", "admin@velvetvogue.com", "admin123", "admin"); err != nil {
		return err
	}
	if err := seedUser(ctx, db, "Demo User", "user@example.com", "user123", "user"); err != nil {
		return err
	}

	// Only seed the catalog into an empty table, so restarts don't
	// duplicate products.
	var count int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		log.Debug("Catalog already seeded", zap.Int64("products", count))
		return nil
	}

	insert := `
		INSERT INTO products (id, name, description, price, image, category, stock, featured, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	for i, p := range seedProducts {
		// Stagger created_at so catalog ordering matches insertion order.
		createdAt := time.Now().Add(time.Duration(i) * time.Millisecond)
		_, err := db.Exec(ctx, insert,
			uuid.New(), p.name, p.description, p.price, p.image, p.category, p.stock, p.featured, createdAt)
		if err != nil {
			return fmt.Errorf("seed product %s: %w", p.name, err)
		}
	}

	log.Info("Database seeded", zap.Int("products", len(seedProducts)))
	return nil
}

func seedUser(ctx context.Context, db PgxIface, name, email, password, role string) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	query := `
		INSERT INTO users (id, name, email, password, role, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (email) DO NOTHING
	`
	if _, err := db.Exec(ctx, query, uuid.New(), name, email, hash, role); err != nil {
		return fmt.Errorf("seed user %s: %w", email, err)
	}

	return nil
}
