package usecase

import (
	"context"
	"fmt"

	"velvet-vogue/internal/data/entity"
	"velvet-vogue/internal/data/repository"
	"velvet-vogue/internal/dto/response"

	"go.uber.org/zap"
)

type StatsService interface {
	Dashboard(ctx context.Context) (*response.StatsResponse, error)
}

type statsService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewStatsService(repo *repository.Repository, log *zap.Logger) StatsService {
	return &statsService{
		repo: repo,
		log:  log,
	}
}

// Dashboard runs four independent aggregate queries per request; nothing is
// maintained incrementally. If any query fails the whole response fails.
func (s *statsService) Dashboard(ctx context.Context) (*response.StatsResponse, error) {
	totalOrders, err := s.repo.Order.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count orders for stats", zap.Error(err))
		return nil, fmt.Errorf("stats orders: %w", err)
	}

	totalProducts, err := s.repo.Product.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count products for stats", zap.Error(err))
		return nil, fmt.Errorf("stats products: %w", err)
	}

	pendingOrders, err := s.repo.Order.CountByStatus(ctx, entity.OrderStatusPending)
	if err != nil {
		s.log.Error("Failed to count pending orders for stats", zap.Error(err))
		return nil, fmt.Errorf("stats pending orders: %w", err)
	}

	// Revenue counts completed orders only
	totalRevenue, err := s.repo.Order.SumTotalByStatus(ctx, entity.OrderStatusCompleted)
	if err != nil {
		s.log.Error("Failed to sum revenue for stats", zap.Error(err))
		return nil, fmt.Errorf("stats revenue: %w", err)
	}

	return &response.StatsResponse{
		TotalOrders:   totalOrders,
		TotalProducts: totalProducts,
		PendingOrders: pendingOrders,
		TotalRevenue:  totalRevenue,
	}, nil
}
