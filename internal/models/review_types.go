package models

import "time"

// Review is the model for the 'reviews' table.
// One row per (product_id, user_id); a second submission by the same user
// replaces the rating and comment via upsert.
type Review struct {
	ID        int64     `json:"id" db:"id"`
	ProductID int64     `json:"product_id" db:"product_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Rating    float64   `json:"rating" db:"rating"` // 1..5
	Comment   *string   `json:"comment,omitempty" db:"comment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Join against users, for the public review listing
	UserEmail string `json:"user_email,omitempty" db:"-"`
}
