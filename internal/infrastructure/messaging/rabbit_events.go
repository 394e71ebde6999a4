// Package messaging adapts the RabbitMQ publisher to the application's
// EventPublisher port.
package messaging

import (
	"context"
	"time"

	"github.com/oksasatya/storefront-api/internal/domain/event"
	"github.com/oksasatya/storefront-api/pkg/helpers"
)

// jsonPublisher is the subset of helpers.RabbitPublisher used here.
type jsonPublisher interface {
	PublishJSON(ctx context.Context, msgType, msgID string, body any) error
}

type RabbitEvents struct {
	Pub     jsonPublisher
	Timeout time.Duration
}

func NewRabbitEvents(pub *helpers.RabbitPublisher) *RabbitEvents {
	return &RabbitEvents{Pub: pub, Timeout: 2 * time.Second}
}

func (r *RabbitEvents) Publish(ctx context.Context, e event.Event) error {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()
	return r.Pub.PublishJSON(ctx, e.Type, e.ID, e)
}
