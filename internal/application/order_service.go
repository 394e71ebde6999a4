package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/storefront-api/internal/domain/entity"
	"github.com/oksasatya/storefront-api/internal/domain/event"
	repo "github.com/oksasatya/storefront-api/internal/domain/repository"
	"github.com/oksasatya/storefront-api/pkg/helpers"
	"github.com/oksasatya/storefront-api/pkg/validation"
)

type OrderService struct {
	Orders repo.OrderRepository
	Events EventPublisher
	Logger *logrus.Logger
}

func NewOrderService(orders repo.OrderRepository, events EventPublisher, logger *logrus.Logger) *OrderService {
	if logger == nil {
		logger = helpers.NewNopLogger()
	}
	return &OrderService{Orders: orders, Events: events, Logger: logger}
}

type PlaceOrderInput struct {
	User     string   `json:"user" validate:"required,objectid"`
	Products []string `json:"products" validate:"required,dive,objectid"`
	Total    *float64 `json:"total" validate:"required"`
}

// Place stores the order as submitted, ids in canonical lowercase hex.
// Referenced user and products are not looked up and the total is not
// recomputed from product prices.
func (s *OrderService) Place(ctx context.Context, in PlaceOrderInput) (*entity.Order, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	products := make([]string, len(in.Products))
	for i, p := range in.Products {
		products[i] = strings.ToLower(p)
	}
	o := &entity.Order{User: strings.ToLower(in.User), Products: products, Total: *in.Total}
	if err := s.Orders.Create(ctx, o); err != nil {
		return nil, err
	}
	ordersPlaced.Add(1)
	s.Logger.WithFields(logrus.Fields{"order_id": o.ID, "user_id": o.User}).Info("order placed")
	publish(ctx, s.Events, s.Logger, event.OrderPlaced(o.ID, o.User, o.Products, o.Total))
	return o, nil
}

func (s *OrderService) ListForUser(ctx context.Context, userID string) ([]entity.Order, error) {
	if err := validation.Struct(struct {
		UserID string `json:"userId" validate:"required,objectid"`
	}{userID}); err != nil {
		return nil, err
	}
	orders, err := s.Orders.ListByUser(ctx, strings.ToLower(userID))
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []entity.Order{}
	}
	return orders, nil
}
