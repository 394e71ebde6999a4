package main

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/storefront-api/internal/application"
	"github.com/oksasatya/storefront-api/internal/domain/event"
)

const handleTimeout = 15 * time.Second

type eventHandler interface {
	Handle(ctx context.Context, e event.Event) error
}

// consume handles deliveries one at a time and returns once msgs is closed,
// which happens after the consumer is cancelled or the channel closes.
func consume(ctx context.Context, msgs <-chan amqp.Delivery, h eventHandler, logger *logrus.Logger) {
	for msg := range msgs {
		handleDelivery(ctx, msg, h, logger)
	}
}

// handleDelivery acks on success. Undecodable messages and permanent
// failures are dropped; transient failures are requeued once.
func handleDelivery(ctx context.Context, msg amqp.Delivery, h eventHandler, logger *logrus.Logger) {
	var ev event.Event
	if err := json.Unmarshal(msg.Body, &ev); err != nil {
		logger.WithError(err).WithField("message_id", msg.MessageId).Warn("bad message")
		_ = msg.Nack(false, false)
		return
	}

	hctx, cancel := context.WithTimeout(ctx, handleTimeout)
	err := h.Handle(hctx, ev)
	cancel()
	if err != nil {
		requeue := application.Retryable(err) && !msg.Redelivered
		logger.WithError(err).WithFields(logrus.Fields{
			"event_id":   ev.ID,
			"event_type": ev.Type,
			"requeue":    requeue,
		}).Warn("notification failed")
		_ = msg.Nack(false, requeue)
		return
	}
	_ = msg.Ack(false)
}
