package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"velvet-vogue/internal/data/entity"
	"velvet-vogue/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	// FindByUser returns the user's orders newest first, with the owner's
	// display fields joined in.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.OrderWithUser, error)
	// FindAll returns every order newest first, same join.
	FindAll(ctx context.Context) ([]*entity.OrderWithUser, error)
	// UpdateStatus is last-write-wins; no optimistic concurrency check.
	// Returns false when no row matched.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (bool, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error)
	SumTotalByStatus(ctx context.Context, status entity.OrderStatus) (float64, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	details, err := json.Marshal(order.Details)
	if err != nil {
		return fmt.Errorf("marshal order details: %w", err)
	}

	query := `
		INSERT INTO orders (id, user_id, order_details, total_amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = r.db.Exec(ctx, query,
		order.ID,
		order.UserID,
		details,
		order.Total,
		order.Status,
		order.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("user_id", order.UserID.String()),
		)
		return fmt.Errorf("create order: %w", err)
	}

	return nil
}

func (r *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.OrderWithUser, error) {
	query := `
		SELECT o.id, o.user_id, o.order_details, o.total_amount, o.status, o.created_at,
		       u.name AS user_name, u.email AS user_email
		FROM orders o
		JOIN users u ON o.user_id = u.id
		WHERE o.user_id = $1
		ORDER BY o.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find orders by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find orders for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return r.collectOrders(rows)
}

func (r *orderRepository) FindAll(ctx context.Context) ([]*entity.OrderWithUser, error) {
	query := `
		SELECT o.id, o.user_id, o.order_details, o.total_amount, o.status, o.created_at,
		       u.name AS user_name, u.email AS user_email
		FROM orders o
		JOIN users u ON o.user_id = u.id
		ORDER BY o.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all orders", zap.Error(err))
		return nil, fmt.Errorf("find all orders: %w", err)
	}
	defer rows.Close()

	return r.collectOrders(rows)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (bool, error) {
	query := `UPDATE orders SET status = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", id.String()),
			zap.String("status", string(status)),
		)
		return false, fmt.Errorf("update order %s status: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return false, nil
	}

	r.log.Info("Order status updated",
		zap.String("order_id", id.String()),
		zap.String("status", string(status)))
	return true, nil
}

func (r *orderRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count orders", zap.Error(err))
		return 0, fmt.Errorf("count orders: %w", err)
	}

	return count, nil
}

func (r *orderRepository) CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE status = $1`, status).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count orders by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return 0, fmt.Errorf("count %s orders: %w", status, err)
	}

	return count, nil
}

func (r *orderRepository) SumTotalByStatus(ctx context.Context, status entity.OrderStatus) (float64, error) {
	var total float64
	query := `SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE status = $1`
	err := r.db.QueryRow(ctx, query, status).Scan(&total)
	if err != nil {
		r.log.Error("Failed to sum order totals",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return 0, fmt.Errorf("sum %s order totals: %w", status, err)
	}

	return total, nil
}

func (r *orderRepository) collectOrders(rows pgx.Rows) ([]*entity.OrderWithUser, error) {
	var orders []*entity.OrderWithUser
	for rows.Next() {
		var order entity.OrderWithUser
		var details []byte
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&details,
			&order.Total,
			&order.Status,
			&order.CreatedAt,
			&order.UserName,
			&order.UserEmail,
		)
		if err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}

		if err := json.Unmarshal(details, &order.Details); err != nil {
			r.log.Error("Failed to unmarshal order details",
				zap.Error(err),
				zap.String("order_id", order.ID.String()),
			)
			return nil, fmt.Errorf("unmarshal order %s details: %w", order.ID.String(), err)
		}

		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}
