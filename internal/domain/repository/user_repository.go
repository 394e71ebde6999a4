package repository

import (
	"context"

	"github.com/oksasatya/storefront-api/internal/domain/entity"
)

// UserRepository defines the interface for user persistence. Create assigns
// ID and CreatedAt and fails with apperror.Conflict on a duplicate email.
// GetByID and GetByEmail fail with apperror.NotFound when nothing matches.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
