package messaging

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/storefront-api/internal/domain/event"
)

type recordingPublisher struct {
	msgType, msgID string
	body           any
	hadDeadline    bool
}

func (p *recordingPublisher) PublishJSON(ctx context.Context, msgType, msgID string, body any) error {
	_, p.hadDeadline = ctx.Deadline()
	p.msgType, p.msgID, p.body = msgType, msgID, body
	return nil
}

func TestRabbitEventsPublish(t *testing.T) {
	rec := &recordingPublisher{}
	events := &RabbitEvents{Pub: rec, Timeout: time.Second}

	e := event.OrderPlaced("o1", "u1", []string{"p1"}, 2.5)
	require.NoError(t, events.Publish(context.Background(), e))

	assert.Equal(t, event.TypeOrderPlaced, rec.msgType)
	assert.Equal(t, e.ID, rec.msgID)
	assert.Equal(t, e, rec.body)
	assert.True(t, rec.hadDeadline)
}
