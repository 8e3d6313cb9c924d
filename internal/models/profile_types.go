package models

import "time"

// Profile is the model for the 'profiles' table, one-to-one with users
// (id = users.id). Every writable field is nullable: the profile update
// endpoint writes NULL for anything the caller omits.
type Profile struct {
	ID         int64     `json:"id" db:"id"`
	FullName   *string   `json:"full_name" db:"full_name"`
	Phone      *string   `json:"phone" db:"phone"`
	Address    *string   `json:"address" db:"address"`
	City       *string   `json:"city" db:"city"`
	State      *string   `json:"state" db:"state"`
	Country    *string   `json:"country" db:"country"`
	PostalCode *string   `json:"postal_code" db:"postal_code"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
