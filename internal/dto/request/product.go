package request

// ProductRequest is used for both create and full-replace update.
// Name, price and category are mandatory; the rest default to zero values.
type ProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Image       string   `json:"image"`
	Category    string   `json:"category" validate:"required"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Featured    bool     `json:"featured"`
}
