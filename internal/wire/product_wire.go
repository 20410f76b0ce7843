package wire

import (
	"velvet-vogue/internal/adaptor"
	"velvet-vogue/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	tokens *token.Manager,
	log *zap.Logger,
) {
	// Catalog browsing is public. The literal "featured" route has to be
	// registered before the {id} route so chi does not treat it as an id.
	r.Get("/api/products", productHandler.List)
	r.Get("/api/products/featured", productHandler.GetFeatured)
	r.Get("/api/products/category/{category}", productHandler.GetByCategory)
	r.Get("/api/products/{id}", productHandler.GetByID)
}
