package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/storefront-api/internal/domain/entity"
	repo "github.com/oksasatya/storefront-api/internal/domain/repository"
	"github.com/oksasatya/storefront-api/pkg/apperror"
	"github.com/oksasatya/storefront-api/pkg/helpers"
	"github.com/oksasatya/storefront-api/pkg/validation"
)

type ProductService struct {
	Products repo.ProductRepository
	Index    repo.ProductIndex // optional
	Logger   *logrus.Logger
}

func NewProductService(products repo.ProductRepository, index repo.ProductIndex, logger *logrus.Logger) *ProductService {
	if logger == nil {
		logger = helpers.NewNopLogger()
	}
	return &ProductService{Products: products, Index: index, Logger: logger}
}

// AddProductInput uses a pointer for Price so an explicit 0 is accepted
// while a missing price is not.
type AddProductInput struct {
	Name     string   `json:"name" validate:"required"`
	Price    *float64 `json:"price" validate:"required"`
	Category string   `json:"category" validate:"required"`
}

func (s *ProductService) List(ctx context.Context) ([]entity.Product, error) {
	return s.Products.List(ctx)
}

// Add persists the product verbatim. Anyone may add products.
func (s *ProductService) Add(ctx context.Context, in AddProductInput) (*entity.Product, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	p := &entity.Product{Name: in.Name, Price: *in.Price, Category: in.Category}
	if err := s.Products.Create(ctx, p); err != nil {
		return nil, err
	}
	productsAdded.Add(1)
	if s.Index != nil {
		if err := s.Index.Index(ctx, p); err != nil {
			s.Logger.WithError(err).WithField("product_id", p.ID).Warn("index product failed")
		}
	}
	return p, nil
}

// Search prefers the full-text index and falls back to the store when the
// index is absent or failing.
func (s *ProductService) Search(ctx context.Context, q string, limit int) ([]entity.Product, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, apperror.Validation(map[string]string{"q": "is required"})
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	if s.Index != nil {
		res, err := s.Index.Search(ctx, q, limit)
		if err == nil {
			return res, nil
		}
		s.Logger.WithError(err).Warn("product index search failed, falling back to store")
	}
	return s.Products.Search(ctx, q, limit)
}
