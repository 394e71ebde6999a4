// Package container builds the application's shared components once at
// startup and releases them at shutdown. It is constructed explicitly and
// passed down; nothing here is package-level state.
package container

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/storefront-api/config"
	"github.com/oksasatya/storefront-api/internal/application"
	repo "github.com/oksasatya/storefront-api/internal/domain/repository"
	"github.com/oksasatya/storefront-api/internal/infrastructure/memory"
	"github.com/oksasatya/storefront-api/internal/infrastructure/messaging"
	mongostore "github.com/oksasatya/storefront-api/internal/infrastructure/mongo"
	"github.com/oksasatya/storefront-api/internal/infrastructure/search"
	"github.com/oksasatya/storefront-api/pkg/helpers"
)

// Store is the health-check view of whichever persistence driver is active.
type Store interface {
	Ping(ctx context.Context) error
}

type Container struct {
	Config *config.Config
	Logger *logrus.Logger

	Store        Store
	Users        repo.UserRepository
	Products     repo.ProductRepository
	Orders       repo.OrderRepository
	ProductIndex repo.ProductIndex

	JWT    *helpers.JWTManager
	Redis  *redis.Client
	Events application.EventPublisher

	closers []func(context.Context) error
}

// New wires every component the configuration asks for. Optional
// integrations (Redis, RabbitMQ, Elasticsearch) are only dialled when
// enabled, and an enabled integration that cannot be reached is an error.
func New(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger, JWT: helpers.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)}

	if err := c.initStore(ctx); err != nil {
		return nil, err
	}

	if cfg.RateLimitEnabled {
		rdb, err := helpers.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			_ = c.Close(ctx)
			return nil, fmt.Errorf("redis: %w", err)
		}
		c.Redis = rdb
		c.onClose(func(context.Context) error { return rdb.Close() })
	}

	if cfg.EventsEnabled {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEventsQueue)
		if err != nil {
			_ = c.Close(ctx)
			return nil, fmt.Errorf("rabbitmq: %w", err)
		}
		c.Events = messaging.NewRabbitEvents(pub)
		c.onClose(func(context.Context) error { pub.Close(); return nil })
	}

	if cfg.SearchEnabled {
		es, err := helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
		if err != nil {
			_ = c.Close(ctx)
			return nil, fmt.Errorf("elasticsearch: %w", err)
		}
		c.ProductIndex = search.NewProductIndex(es, cfg.ESProductsIndex, logger)
	}

	return c, nil
}

func (c *Container) initStore(ctx context.Context) error {
	switch c.Config.StoreDriver {
	case "memory":
		c.UseMemoryStore(memory.NewStore())
		c.Logger.Warn("using in-memory store; data is lost on restart")
		return nil
	default:
		s, err := mongostore.NewStore(ctx, c.Config.MongoURI, c.Config.MongoDatabase, c.Config.MongoTimeout)
		if err != nil {
			return fmt.Errorf("mongo connect: %w", err)
		}
		c.onClose(s.Close)
		if err := s.EnsureIndexes(ctx); err != nil {
			_ = c.Close(ctx)
			return fmt.Errorf("mongo indexes: %w", err)
		}
		c.Store, c.Users, c.Products, c.Orders = s, s.Users(), s.Products(), s.Orders()
		return nil
	}
}

// UseMemoryStore points every repository at s.
func (c *Container) UseMemoryStore(s *memory.Store) {
	c.Store, c.Users, c.Products, c.Orders = s, s.Users(), s.Products(), s.Orders()
}

func (c *Container) onClose(fn func(context.Context) error) {
	c.closers = append(c.closers, fn)
}

// Close releases resources in reverse acquisition order.
func (c *Container) Close(ctx context.Context) error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

func (c *Container) AuthService() *application.AuthService {
	return application.NewAuthService(c.Users, c.JWT, c.Config.BcryptCost, c.Events, c.Logger)
}

func (c *Container) ProductService() *application.ProductService {
	return application.NewProductService(c.Products, c.ProductIndex, c.Logger)
}

func (c *Container) OrderService() *application.OrderService {
	return application.NewOrderService(c.Orders, c.Events, c.Logger)
}
