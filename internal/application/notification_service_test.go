package application

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/storefront-api/internal/domain/entity"
	"github.com/oksasatya/storefront-api/internal/domain/event"
	"github.com/oksasatya/storefront-api/internal/infrastructure/memory"
	"github.com/oksasatya/storefront-api/pkg/apperror"
	"github.com/oksasatya/storefront-api/pkg/mailer/templates"
)

type sentMail struct{ to, subject, text string }

type fakeSender struct {
	sent []sentMail
	err  error
}

func (f *fakeSender) Send(_ context.Context, to, subject, text, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to, subject, text})
	return nil
}

// roundTrip mimics the broker hop so payload types match what the worker sees.
func roundTrip(t *testing.T, e event.Event) event.Event {
	t.Helper()
	b, err := json.Marshal(e)
	require.NoError(t, err)
	var out event.Event
	require.NoError(t, json.Unmarshal(b, &out))
	return out
}

func newNotify(t *testing.T) (*NotificationService, *memory.UserRepository, *fakeSender) {
	t.Helper()
	users := memory.NewStore().Users()
	s := &fakeSender{}
	return NewNotificationService(users, s, templates.Brand{CompanyName: "Blinkit Demo"}, nil), users, s
}

func TestNotifyUserRegistered(t *testing.T) {
	svc, _, sender := newNotify(t)

	err := svc.Handle(context.Background(), roundTrip(t, event.UserRegistered("64b7f0c2a1b2c3d4e5f60718", "ann@shop.test")))
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "ann@shop.test", sender.sent[0].to)
	assert.Equal(t, "Welcome to Blinkit Demo", sender.sent[0].subject)
}

func TestNotifyOrderPlaced(t *testing.T) {
	ctx := context.Background()
	svc, users, sender := newNotify(t)
	u := &entity.User{Email: "bob@shop.test", Password: "hash"}
	require.NoError(t, users.Create(ctx, u))

	ev := roundTrip(t, event.OrderPlaced("64b7f0c2a1b2c3d4e5f60799", u.ID, []string{"a", "b"}, 4.3))
	require.NoError(t, svc.Handle(ctx, ev))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "bob@shop.test", sender.sent[0].to)
	assert.Equal(t, "Order 64b7f0c2a1b2c3d4e5f60799 received", sender.sent[0].subject)
	assert.Contains(t, sender.sent[0].text, "Items: 2")
	assert.Contains(t, sender.sent[0].text, "Total: 4.30")
}

func TestNotifyFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user is not retried", func(t *testing.T) {
		svc, _, sender := newNotify(t)
		err := svc.Handle(ctx, roundTrip(t, event.OrderPlaced("o1", "64b7f0c2a1b2c3d4e5f60700", nil, 1)))
		require.Error(t, err)
		assert.Equal(t, apperror.NotFound, apperror.KindOf(err))
		assert.False(t, Retryable(err))
		assert.Empty(t, sender.sent)
	})

	t.Run("malformed payload", func(t *testing.T) {
		svc, _, _ := newNotify(t)
		err := svc.Handle(ctx, event.New(event.TypeOrderPlaced, map[string]any{"order_id": "o1"}))
		assert.Equal(t, apperror.ValidationFailed, apperror.KindOf(err))
	})

	t.Run("send failure is retryable", func(t *testing.T) {
		svc, _, sender := newNotify(t)
		sender.err = errors.New("mailgun down")
		err := svc.Handle(ctx, event.UserRegistered("u1", "ann@shop.test"))
		require.Error(t, err)
		assert.True(t, Retryable(err))
	})

	t.Run("other event types are ignored", func(t *testing.T) {
		svc, _, sender := newNotify(t)
		require.NoError(t, svc.Handle(ctx, event.New("product.added", nil)))
		assert.Empty(t, sender.sent)
	})
}
