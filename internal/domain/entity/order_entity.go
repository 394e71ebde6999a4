package entity

import "time"

// Order holds weak references to a User and to Products. Neither reference
// is resolved against its store, and Total is the caller's figure.
type Order struct {
	ID        string    `json:"_id"`
	User      string    `json:"user"`
	Products  []string  `json:"products"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}
