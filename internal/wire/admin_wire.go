package wire

import (
	"velvet-vogue/internal/adaptor"
	"velvet-vogue/pkg/middleware"
	"velvet-vogue/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	handler *adaptor.Handler,
	tokens *token.Manager,
	log *zap.Logger,
) {
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.Authenticate(tokens, log))
		r.Use(middleware.Admin(log))

		// Order management
		r.Get("/orders", handler.Order.ListAll)
		r.Put("/orders/{id}", handler.Order.UpdateStatus)

		// Product management
		r.Get("/products", handler.Product.ListAll)
		r.Post("/products", handler.Product.Create)
		r.Put("/products/{id}", handler.Product.Update)
		r.Delete("/products/{id}", handler.Product.Delete)

		// Dashboard stats
		r.Get("/stats", handler.Stats.Dashboard)
	})
}
