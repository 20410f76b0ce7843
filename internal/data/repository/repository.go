package repository

import (
	"velvet-vogue/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Product ProductRepository
	Order   OrderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Product: NewProductRepository(db, log),
		Order:   NewOrderRepository(db, log),
	}
}
