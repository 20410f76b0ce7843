package adaptor

import (
	"errors"
	"net/http"

	"velvet-vogue/internal/usecase"
	"velvet-vogue/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Product *ProductHandler
	Order   *OrderHandler
	Stats   *StatsHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Product: NewProductHandler(service.Catalog, log),
		Order:   NewOrderHandler(service.Order, log),
		Stats:   NewStatsHandler(service.Stats, log),
	}
}

// writeServiceError maps the service error taxonomy to HTTP status codes.
// Anything outside the taxonomy becomes a generic 500 with no internal
// detail leaked to the caller.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, utils.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, utils.ErrConflict):
		log.Warn(operation+" conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, utils.ErrInvalidCredentials),
		errors.Is(err, utils.ErrUnauthorized),
		errors.Is(err, utils.ErrInvalidToken):
		log.Warn(operation+" unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, utils.ErrForbidden):
		log.Warn(operation+" forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, utils.ErrNotFound):
		log.Warn(operation+" not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
