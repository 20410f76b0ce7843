package request

type OrderItemRequest struct {
	ProductID string  `json:"productId" validate:"required,uuid"`
	Name      string  `json:"name" validate:"required"`
	Price     float64 `json:"price" validate:"gte=0"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	Size      *string `json:"size,omitempty"`
	Color     *string `json:"color,omitempty"`
}

type CreateOrderRequest struct {
	ShippingAddress string             `json:"shippingAddress" validate:"required"`
	PaymentMethod   string             `json:"paymentMethod" validate:"required"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Total           *float64           `json:"total" validate:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending completed canceled"`
}
