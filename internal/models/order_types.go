package models

import "time"

// Order is the model for the 'orders' table
type Order struct {
	ID              int64     `json:"id" db:"id"`
	UserID          int64     `json:"user_id" db:"user_id"`
	TotalAmount     float64   `json:"total_amount" db:"total_amount"`
	Status          string    `json:"status" db:"status"` // pending, processing, shipped, delivered, cancelled
	ShippingAddress string    `json:"shipping_address" db:"shipping_address"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`

	// Joins (populated manually)
	Items []OrderItem `json:"order_items" db:"-"`
}

// OrderItem is the model for the 'order_items' table
type OrderItem struct {
	ID        int64   `json:"id" db:"id"`
	OrderID   int64   `json:"order_id" db:"order_id"`
	ProductID int64   `json:"product_id" db:"product_id"`
	Quantity  int     `json:"quantity" db:"quantity"`
	Price     float64 `json:"price" db:"price"` // Snapshot of the product price at order time

	Product *Product `json:"product,omitempty" db:"-"`
}
