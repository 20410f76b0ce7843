package adaptor

import (
	"encoding/json"
	"net/http"

	"velvet-vogue/internal/dto/request"
	"velvet-vogue/internal/usecase"
	"velvet-vogue/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "order")),
	}
}

// Create handles POST /api/orders
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.CreateOrder(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create order")
		return
	}

	utils.ResponseCreated(w, "Order created successfully", response)
}

// MyOrders handles GET /api/orders/my-orders
func (h *OrderHandler) MyOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	orders, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.log, err, "list orders")
		return
	}

	utils.ResponseSuccess(w, "Orders retrieved successfully", orders)
}

// ListAll handles GET /api/admin/orders
func (h *OrderHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListAll(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list all orders")
		return
	}

	utils.ResponseSuccess(w, "Orders retrieved successfully", orders)
}

// UpdateStatus handles PUT /api/admin/orders/{id}
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		utils.ResponseBadRequest(w, "Order ID is required", nil)
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), orderID, &req); err != nil {
		writeServiceError(w, h.log, err, "update order status")
		return
	}

	utils.ResponseSuccess(w, "Order status updated successfully", nil)
}
