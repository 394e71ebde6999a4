package mailer

import (
	"context"

	"github.com/oksasatya/storefront-api/pkg/mailer/templates"
)

// Sender delivers one rendered message.
type Sender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// EmailJob is one outgoing mail. When Template is set, Render fills
// Subject, Text and HTML from it using Data.
type EmailJob struct {
	To       string              `json:"to"`
	Subject  string              `json:"subject,omitempty"`
	Text     string              `json:"text,omitempty"`
	HTML     string              `json:"html,omitempty"`
	Template string              `json:"template,omitempty"` // "welcome", "order_placed"
	Data     templates.EmailData `json:"data"`
}

func (j *EmailJob) Render() error {
	if j.Template == "" {
		return nil
	}
	s, t, h, err := templates.Render(j.Template, j.Data)
	if err != nil {
		return err
	}
	j.Subject, j.Text, j.HTML = s, t, h
	return nil
}

// Deliver renders the job if needed and hands it to s.
func (j *EmailJob) Deliver(ctx context.Context, s Sender) error {
	if err := j.Render(); err != nil {
		return err
	}
	return s.Send(ctx, j.To, j.Subject, j.Text, j.HTML)
}
