package wire

import (
	"velvet-vogue/internal/adaptor"
	"velvet-vogue/pkg/middleware"
	"velvet-vogue/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	tokens *token.Manager,
	log *zap.Logger,
) {
	// Checkout and order history require a logged-in user
	r.Route("/api/orders", func(r chi.Router) {
		r.Use(middleware.Authenticate(tokens, log))

		r.Post("/", orderHandler.Create)
		r.Get("/my-orders", orderHandler.MyOrders)
	})
}
