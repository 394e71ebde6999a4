package entity

import "time"

// User is an account. Password holds the bcrypt hash, never the plaintext,
// and is excluded from JSON.
type User struct {
	ID        string    `json:"_id"`
	Email     string    `json:"email" validate:"required"`
	Password  string    `json:"-" validate:"required"`
	CreatedAt time.Time `json:"createdAt"`
}
