// Package event holds the domain events published after a successful write.
package event

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeUserRegistered = "user.registered"
	TypeOrderPlaced    = "order.placed"
)

type Event struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Data       map[string]any `json:"data"`
}

func New(typ string, data map[string]any) Event {
	return Event{ID: uuid.NewString(), Type: typ, OccurredAt: time.Now().UTC(), Data: data}
}

func UserRegistered(userID, email string) Event {
	return New(TypeUserRegistered, map[string]any{"user_id": userID, "email": email})
}

func OrderPlaced(orderID, userID string, products []string, total float64) Event {
	return New(TypeOrderPlaced, map[string]any{
		"order_id": orderID,
		"user_id":  userID,
		"products": products,
		"total":    total,
	})
}
