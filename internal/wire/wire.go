package wire

import (
	"net/http"

	"velvet-vogue/internal/adaptor"
	"velvet-vogue/internal/data/repository"
	"velvet-vogue/internal/usecase"
	"velvet-vogue/pkg/middleware"
	"velvet-vogue/pkg/token"
	"velvet-vogue/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependency graph
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	tokens := token.NewManager(config.JWT.Secret, config.JWT.ExpiryHours)

	service := usecase.NewService(repo, tokens, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, tokens, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, tokens *token.Manager, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, tokens, logger)
	wireProduct(r, handler.Product, tokens, logger)
	wireOrder(r, handler.Order, tokens, logger)
	wireAdmin(r, handler, tokens, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
