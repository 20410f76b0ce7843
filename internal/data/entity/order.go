package entity

import (
	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCanceled  OrderStatus = "canceled"
)

// ValidOrderStatus reports whether s is a member of the status set. Any
// member may transition to any other member; there is no transition graph.
func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCanceled:
		return true
	}
	return false
}

// OrderItem is a line item copied from the cart at checkout. It is a
// snapshot: later catalog edits never touch it.
type OrderItem struct {
	ProductID uuid.UUID `json:"productId"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	Size      *string   `json:"size,omitempty"`
	Color     *string   `json:"color,omitempty"`
}

// OrderDetails is the JSONB payload persisted alongside each order.
type OrderDetails struct {
	ShippingAddress string      `json:"shippingAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	Items           []OrderItem `json:"items"`
}

type Order struct {
	Base
	UserID  uuid.UUID    `db:"user_id"`
	Details OrderDetails `db:"order_details"`
	Total   float64      `db:"total_amount"`
	Status  OrderStatus  `db:"status"`
}

// OrderWithUser is an order joined with display fields of its owner.
type OrderWithUser struct {
	Order
	UserName  string `db:"user_name"`
	UserEmail string `db:"user_email"`
}
