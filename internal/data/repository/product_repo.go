package repository

import (
	"context"
	"fmt"
	"strings"

	"velvet-vogue/internal/data/entity"
	"velvet-vogue/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// FindAll applies an optional exact category filter and an optional
	// case-insensitive substring search over name and description, both
	// composed with AND, ordered by name ascending.
	FindAll(ctx context.Context, category, search *string) ([]*entity.Product, error)
	FindFeatured(ctx context.Context, limit int) ([]*entity.Product, error)
	FindByCategory(ctx context.Context, category string) ([]*entity.Product, error)
	FindAllAdmin(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	CountAll(ctx context.Context) (int64, error)
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

const productColumns = `id, name, description, price, image, category, stock, featured, created_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Image,
		&p.Category,
		&p.Stock,
		&p.Featured,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, image, category,
		                     stock, featured, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.Image,
		product.Category,
		product.Stock,
		product.Featured,
		product.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
		)
		return fmt.Errorf("create product: %w", err)
	}

	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return nil, fmt.Errorf("find product by ID %s: %w", id.String(), err)
	}

	return product, nil
}

func (r *productRepository) FindAll(ctx context.Context, category, search *string) ([]*entity.Product, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + productColumns + ` FROM products WHERE 1=1`)

	args := []interface{}{}
	argCount := 1

	if category != nil && *category != "" && *category != entity.CategoryAll {
		queryBuilder.WriteString(fmt.Sprintf(" AND category = $%d", argCount))
		args = append(args, *category)
		argCount++
	}

	if search != nil && *search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND (name ILIKE $%d OR description ILIKE $%d)", argCount, argCount))
		args = append(args, "%"+*search+"%")
		argCount++
	}

	queryBuilder.WriteString(" ORDER BY name")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find products",
			zap.Error(err),
			zap.Stringp("category", category),
			zap.Stringp("search", search),
		)
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer rows.Close()

	return r.collectProducts(rows)
}

// FindFeatured returns at most limit featured products in insertion order.
func (r *productRepository) FindFeatured(ctx context.Context, limit int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE featured = TRUE
		ORDER BY created_at
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to find featured products", zap.Error(err))
		return nil, fmt.Errorf("find featured products: %w", err)
	}
	defer rows.Close()

	return r.collectProducts(rows)
}

func (r *productRepository) FindByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category = $1`

	rows, err := r.db.Query(ctx, query, category)
	if err != nil {
		r.log.Error("Failed to find products by category",
			zap.Error(err),
			zap.String("category", category),
		)
		return nil, fmt.Errorf("find products by category %s: %w", category, err)
	}
	defer rows.Close()

	return r.collectProducts(rows)
}

func (r *productRepository) FindAllAdmin(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all products", zap.Error(err))
		return nil, fmt.Errorf("find all products: %w", err)
	}
	defer rows.Close()

	return r.collectProducts(rows)
}

// Update replaces every editable column. Returns false when no row matched.
func (r *productRepository) Update(ctx context.Context, product *entity.Product) (bool, error) {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, image = $5,
		    category = $6, stock = $7, featured = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.Image,
		product.Category,
		product.Stock,
		product.Featured,
	)

	if err != nil {
		r.log.Error("Failed to update product",
			zap.Error(err),
			zap.String("product_id", product.ID.String()),
		)
		return false, fmt.Errorf("update product %s: %w", product.ID.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

// Delete removes the row. Returns false when no row matched.
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM products WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete product",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return false, fmt.Errorf("delete product %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return false, nil
	}

	r.log.Info("Product deleted", zap.String("product_id", id.String()))
	return true, nil
}

func (r *productRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count products", zap.Error(err))
		return 0, fmt.Errorf("count products: %w", err)
	}

	return count, nil
}

func (r *productRepository) collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var products []*entity.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			r.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}
