package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/storefront-api/pkg/helpers"
	"github.com/oksasatya/storefront-api/pkg/mailer/templates"
)

type recordingSender struct {
	to, subject, text, html string
	err                     error
}

func (r *recordingSender) Send(_ context.Context, to, subject, text, html string) error {
	r.to, r.subject, r.text, r.html = to, subject, text, html
	return r.err
}

func TestEmailJobDeliver(t *testing.T) {
	job := &EmailJob{
		To:       "ann@shop.test",
		Template: templates.Welcome,
		Data:     templates.NewEmailData(templates.Brand{CompanyName: "Blinkit Demo"}, "ann@shop.test"),
	}
	s := &recordingSender{}
	require.NoError(t, job.Deliver(context.Background(), s))
	assert.Equal(t, "ann@shop.test", s.to)
	assert.Equal(t, "Welcome to Blinkit Demo", s.subject)
	assert.NotEmpty(t, s.text)
	assert.NotEmpty(t, s.html)
}

func TestEmailJobWithoutTemplate(t *testing.T) {
	job := &EmailJob{To: "a@b.test", Subject: "hi", Text: "plain"}
	s := &recordingSender{err: errors.New("down")}
	err := job.Deliver(context.Background(), s)
	assert.EqualError(t, err, "down")
	assert.Equal(t, "hi", s.subject)
	assert.Equal(t, "plain", s.text)
}

func TestLogSender(t *testing.T) {
	assert.NoError(t, LogSender{Logger: helpers.NewNopLogger()}.Send(context.Background(), "a@b.test", "s", "t", "h"))
}
