// Package memory is an in-process implementation of the repositories with
// the same observable semantics as the MongoDB store: ObjectID-hex ids,
// unique emails and insertion order.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/storefront-api/internal/domain/entity"
	"github.com/oksasatya/storefront-api/internal/domain/repository"
	"github.com/oksasatya/storefront-api/pkg/apperror"
)

// Store owns all three collections behind one lock.
type Store struct {
	mu       sync.RWMutex
	users    []entity.User
	products []entity.Product
	orders   []entity.Order
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

func (s *Store) Users() *UserRepository       { return &UserRepository{s: s} }
func (s *Store) Products() *ProductRepository { return &ProductRepository{s: s} }
func (s *Store) Orders() *OrderRepository     { return &OrderRepository{s: s} }

// Ping always succeeds; it lets the store stand in for a database health check.
func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) newID() string { return primitive.NewObjectID().Hex() }

type UserRepository struct{ s *Store }

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return apperror.New(apperror.Conflict, "email already registered")
		}
	}
	u.ID = r.s.newID()
	u.CreatedAt = r.s.now().UTC()
	r.s.users = append(r.s.users, *u)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, apperror.New(apperror.NotFound, "user not found")
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, apperror.New(apperror.NotFound, "user not found")
}

// CountByEmail is a test helper for the uniqueness invariant.
func (r *UserRepository) CountByEmail(email string) int {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, u := range r.s.users {
		if u.Email == email {
			n++
		}
	}
	return n
}

type ProductRepository struct{ s *Store }

func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID = r.s.newID()
	p.CreatedAt = r.s.now().UTC()
	r.s.products = append(r.s.products, *p)
	return nil
}

func (r *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.Product, len(r.s.products))
	copy(out, r.s.products)
	return out, nil
}

func (r *ProductRepository) Search(ctx context.Context, q string, limit int) ([]entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]entity.Product, 0)
	for _, p := range r.s.products {
		if limit > 0 && len(out) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

type OrderRepository struct{ s *Store }

func (r *OrderRepository) Create(ctx context.Context, o *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o.ID = r.s.newID()
	o.CreatedAt = r.s.now().UTC()
	stored := *o
	stored.Products = cloneIDs(o.Products)
	r.s.orders = append(r.s.orders, stored)
	return nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]entity.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.Order, 0)
	for _, o := range r.s.orders {
		if o.User == userID {
			o.Products = cloneIDs(o.Products)
			out = append(out, o)
		}
	}
	return out, nil
}

var (
	_ repository.UserRepository    = (*UserRepository)(nil)
	_ repository.ProductRepository = (*ProductRepository)(nil)
	_ repository.OrderRepository   = (*OrderRepository)(nil)
)

// cloneIDs keeps an empty list non-nil so it encodes as [] rather than null.
func cloneIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
