package repository

import (
	"context"

	"github.com/oksasatya/storefront-api/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	// List returns every product in store order.
	List(ctx context.Context) ([]entity.Product, error)
	// Search matches q case-insensitively against name and category.
	Search(ctx context.Context, q string, limit int) ([]entity.Product, error)
}

// ProductIndex is an optional full-text index kept alongside the store.
type ProductIndex interface {
	Index(ctx context.Context, p *entity.Product) error
	Search(ctx context.Context, q string, limit int) ([]entity.Product, error)
}
