package application

import (
	"context"
	"expvar"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/storefront-api/internal/domain/event"
)

// EventPublisher delivers domain events after a successful write.
type EventPublisher interface {
	Publish(ctx context.Context, e event.Event) error
}

var (
	usersRegistered = expvar.NewInt("users_registered")
	loginsFailed    = expvar.NewInt("logins_failed")
	productsAdded   = expvar.NewInt("products_added")
	ordersPlaced    = expvar.NewInt("orders_placed")
	eventsDropped   = expvar.NewInt("events_dropped")
)

// publish is best-effort: the write already happened, so a broker failure
// is logged and counted but never fails the request.
func publish(ctx context.Context, pub EventPublisher, logger *logrus.Logger, e event.Event) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, e); err != nil {
		eventsDropped.Add(1)
		logger.WithError(err).WithFields(logrus.Fields{"event_id": e.ID, "event_type": e.Type}).Warn("publish event failed")
	}
}
