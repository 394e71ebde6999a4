package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/storefront-api/config"
	"github.com/oksasatya/storefront-api/internal/application"
	"github.com/oksasatya/storefront-api/internal/container"
	"github.com/oksasatya/storefront-api/pkg/apperror"
	"github.com/oksasatya/storefront-api/pkg/helpers"
)

type seedProduct struct {
	name     string
	price    float64
	category string
}

var demoProducts = []seedProduct{
	{"Milk", 2.5, "Dairy"},
	{"Paneer", 3.2, "Dairy"},
	{"Bread", 1.8, "Bakery"},
	{"Croissant", 1.2, "Bakery"},
	{"Bananas", 0.9, "Fruits"},
	{"Tomatoes", 1.4, "Vegetables"},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	// Seeding should not fan out notifications.
	cfg.EventsEnabled = false
	cfg.RateLimitEnabled = false

	ctx := context.Background()
	c, err := container.New(ctx, cfg, helpers.NewLogger(cfg.AppName+"-seed", cfg.Env))
	if err != nil {
		log.Fatalf("failed to build container: %v", err)
	}
	defer func() { _ = c.Close(ctx) }()

	email := "demo@blinkit.test"
	password := "password123"
	u, err := c.AuthService().Register(ctx, application.Credentials{Email: email, Password: password})
	switch {
	case err == nil:
		fmt.Printf("seeded user: id=%s email=%s password=%s\n", u.ID, email, password)
	case apperror.KindOf(err) == apperror.Conflict:
		fmt.Printf("user %s already exists\n", email)
	default:
		log.Fatalf("failed to seed user: %v", err)
	}

	existing, err := c.ProductService().List(ctx)
	if err != nil {
		log.Fatalf("failed to list products: %v", err)
	}
	have := make(map[string]bool, len(existing))
	for _, p := range existing {
		have[p.Name] = true
	}

	products := c.ProductService()
	for _, sp := range demoProducts {
		if have[sp.name] {
			continue
		}
		price := sp.price
		p, err := products.Add(ctx, application.AddProductInput{Name: sp.name, Price: &price, Category: sp.category})
		if err != nil {
			log.Fatalf("failed to seed product %s: %v", sp.name, err)
		}
		fmt.Printf("seeded product: id=%s name=%s\n", p.ID, p.Name)
	}
}
