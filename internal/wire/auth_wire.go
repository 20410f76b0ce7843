package wire

import (
	"velvet-vogue/internal/adaptor"
	"velvet-vogue/pkg/middleware"
	"velvet-vogue/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	tokens *token.Manager,
	log *zap.Logger,
) {
	// Public routes
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)

	// Protected routes
	r.With(middleware.Authenticate(tokens, log)).Get("/api/auth/me", authHandler.Me)
}
