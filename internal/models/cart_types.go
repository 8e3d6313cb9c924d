package models

import "time"

// CartItem defines the struct for the 'cart_items' table.
// At most one row exists per (user_id, product_id); the table enforces it
// with a unique key, which also backs the add-to-cart merge.
type CartItem struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	ProductID int64     `json:"product_id" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	// Join (not in the table, populated by the cart handlers)
	Product *Product `json:"product,omitempty" db:"-"`
}
