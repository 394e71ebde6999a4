package repository

import (
	"context"

	"github.com/oksasatya/storefront-api/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, o *entity.Order) error
	// ListByUser returns the user's orders in insertion order, or an empty slice.
	ListByUser(ctx context.Context, userID string) ([]entity.Order, error)
}
