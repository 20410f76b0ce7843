package usecase

import (
	"velvet-vogue/internal/data/repository"
	"velvet-vogue/pkg/token"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Catalog CatalogService
	Order   OrderService
	Stats   StatsService
}

func NewService(repo *repository.Repository, tokens *token.Manager, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, tokens, log),
		Catalog: NewCatalogService(repo.Product, log),
		Order:   NewOrderService(repo.Order, log),
		Stats:   NewStatsService(repo, log),
	}
}
