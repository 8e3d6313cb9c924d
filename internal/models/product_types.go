package models

import (
	"time"
)

// Product is the model for the 'products' table.
// Nullable columns use pointers for clean JSON serialization.
type Product struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Category string `json:"category" db:"category"` // men, women, kid
	ImageURL string `json:"image_url" db:"image_url"`

	// --- Pricing & Stock ---
	NewPrice float64  `json:"new_price" db:"new_price"`
	OldPrice *float64 `json:"old_price,omitempty" db:"old_price"`
	Stock    int      `json:"stock" db:"stock"`

	Description *string `json:"description,omitempty" db:"description"`

	// --- Review Aggregates ---
	// Overwritten after every review write; mean rating rounded to 1 decimal.
	Rating      float64 `json:"rating" db:"rating"`
	ReviewCount int     `json:"review_count" db:"review_count"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
