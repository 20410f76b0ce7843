package response

import (
	"time"

	"velvet-vogue/internal/data/entity"
)

type OrderResponse struct {
	ID              string             `json:"id"`
	UserID          string             `json:"user_id"`
	UserName        string             `json:"user_name"`
	UserEmail       string             `json:"user_email"`
	ShippingAddress string             `json:"shippingAddress"`
	PaymentMethod   string             `json:"paymentMethod"`
	Items           []entity.OrderItem `json:"items"`
	Total           float64            `json:"total"`
	Status          entity.OrderStatus `json:"status"`
	CreatedAt       time.Time          `json:"created_at"`
}

type CreateOrderResponse struct {
	OrderID string  `json:"orderId"`
	Total   float64 `json:"total"`
}

func OrderToResponse(order *entity.OrderWithUser) OrderResponse {
	items := order.Details.Items
	if items == nil {
		items = []entity.OrderItem{}
	}

	return OrderResponse{
		ID:              order.ID.String(),
		UserID:          order.UserID.String(),
		UserName:        order.UserName,
		UserEmail:       order.UserEmail,
		ShippingAddress: order.Details.ShippingAddress,
		PaymentMethod:   order.Details.PaymentMethod,
		Items:           items,
		Total:           order.Total,
		Status:          order.Status,
		CreatedAt:       order.CreatedAt,
	}
}

func OrdersToResponse(orders []*entity.OrderWithUser) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = OrderToResponse(order)
	}
	return responses
}
