package usecase

import (
	"context"
	"fmt"
	"time"

	"velvet-vogue/internal/data/entity"
	"velvet-vogue/internal/data/repository"
	"velvet-vogue/internal/dto/request"
	"velvet-vogue/internal/dto/response"
	"velvet-vogue/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, req *request.CreateOrderRequest) (*response.CreateOrderResponse, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]response.OrderResponse, error)
	// ListAll is admin-only; the role check happens at the route boundary.
	ListAll(ctx context.Context) ([]response.OrderResponse, error)
	UpdateStatus(ctx context.Context, orderID string, req *request.UpdateOrderStatusRequest) error
}

type orderService struct {
	orderRepo repository.OrderRepository
	log       *zap.Logger
}

func NewOrderService(orderRepo repository.OrderRepository, log *zap.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		log:       log,
	}
}

// CreateOrder persists a pending order from the submitted cart snapshot.
// The total is recomputed from the line items and overwrites whatever the
// client sent; the server is the source of truth for money. Stock is
// neither checked nor decremented, matching the storefront's checkout
// behavior.
func (s *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, req *request.CreateOrderRequest) (*response.CreateOrderResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create order validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", utils.ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Build the line-item snapshot and recompute the total
	items := make([]entity.OrderItem, len(req.Items))
	var total float64
	for i, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid product ID in items", utils.ErrValidation)
		}

		items[i] = entity.OrderItem{
			ProductID: productID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
		}
		total += item.Price * float64(item.Quantity)
	}

	// 3. Persist
	order := &entity.Order{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID: userID,
		Details: entity.OrderDetails{
			ShippingAddress: req.ShippingAddress,
			PaymentMethod:   req.PaymentMethod,
			Items:           items,
		},
		Total:  total,
		Status: entity.OrderStatusPending,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Float64("total", total),
		zap.Int("items", len(items)))

	return &response.CreateOrderResponse{
		OrderID: order.ID.String(),
		Total:   total,
	}, nil
}

func (s *orderService) ListForUser(ctx context.Context, userID uuid.UUID) ([]response.OrderResponse, error) {
	orders, err := s.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list orders for user",
			zap.Error(err),
			zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return response.OrdersToResponse(orders), nil
}

func (s *orderService) ListAll(ctx context.Context) ([]response.OrderResponse, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list all orders", zap.Error(err))
		return nil, fmt.Errorf("list all orders: %w", err)
	}

	return response.OrdersToResponse(orders), nil
}

// UpdateStatus accepts any member of the status set as the new value. There
// is no transition graph: completed and canceled orders may move back to
// pending. Concurrent updates are last-write-wins.
func (s *orderService) UpdateStatus(ctx context.Context, orderID string, req *request.UpdateOrderStatusRequest) error {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return fmt.Errorf("%w: invalid order ID", utils.ErrValidation)
	}

	if !entity.ValidOrderStatus(req.Status) {
		return fmt.Errorf("%w: invalid status %q", utils.ErrValidation, req.Status)
	}

	updated, err := s.orderRepo.UpdateStatus(ctx, id, entity.OrderStatus(req.Status))
	if err != nil {
		s.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", orderID))
		return fmt.Errorf("update order status: %w", err)
	}
	if !updated {
		return fmt.Errorf("%w: order", utils.ErrNotFound)
	}

	return nil
}
