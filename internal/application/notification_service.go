package application

import (
	"context"
	"expvar"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/storefront-api/internal/domain/event"
	repo "github.com/oksasatya/storefront-api/internal/domain/repository"
	"github.com/oksasatya/storefront-api/pkg/apperror"
	"github.com/oksasatya/storefront-api/pkg/helpers"
	"github.com/oksasatya/storefront-api/pkg/mailer"
	"github.com/oksasatya/storefront-api/pkg/mailer/templates"
)

var emailsSent = expvar.NewInt("emails_sent")

// NotificationService turns domain events into customer email.
type NotificationService struct {
	Users  repo.UserRepository
	Mailer mailer.Sender
	Brand  templates.Brand
	Logger *logrus.Logger
}

func NewNotificationService(users repo.UserRepository, sender mailer.Sender, brand templates.Brand, logger *logrus.Logger) *NotificationService {
	if logger == nil {
		logger = helpers.NewNopLogger()
	}
	return &NotificationService{Users: users, Mailer: sender, Brand: brand, Logger: logger}
}

// JobFor builds the mail for e. Event types without a mail yield (nil, nil).
// Malformed payloads are ValidationFailed; an order for an unknown user is
// NotFound.
func (s *NotificationService) JobFor(ctx context.Context, e event.Event) (*mailer.EmailJob, error) {
	switch e.Type {
	case event.TypeUserRegistered:
		email, _ := e.Data["email"].(string)
		if email == "" {
			return nil, apperror.Validation(map[string]string{"email": "is required"})
		}
		return &mailer.EmailJob{
			To:       email,
			Template: templates.Welcome,
			Data:     templates.NewEmailData(s.Brand, email, templates.WithTime(e.OccurredAt)),
		}, nil

	case event.TypeOrderPlaced:
		orderID, _ := e.Data["order_id"].(string)
		userID, _ := e.Data["user_id"].(string)
		total, okTotal := e.Data["total"].(float64)
		if orderID == "" || userID == "" || !okTotal {
			return nil, apperror.Validation(map[string]string{"data": "order_id, user_id and total are required"})
		}
		u, err := s.Users.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &mailer.EmailJob{
			To:       u.Email,
			Template: templates.OrderPlaced,
			Data: templates.NewEmailData(s.Brand, u.Email,
				templates.WithTime(e.OccurredAt),
				templates.WithOrder(orderID, itemCount(e.Data["products"]), total),
			),
		}, nil
	}
	return nil, nil
}

// Handle builds, renders and sends the mail for e.
func (s *NotificationService) Handle(ctx context.Context, e event.Event) error {
	job, err := s.JobFor(ctx, e)
	if err != nil {
		return err
	}
	log := s.Logger.WithFields(logrus.Fields{"event_id": e.ID, "event_type": e.Type})
	if job == nil {
		log.Debug("no mail for event")
		return nil
	}
	if err := job.Render(); err != nil {
		return apperror.Wrap(apperror.Internal, "render email", err)
	}
	if err := s.Mailer.Send(ctx, job.To, job.Subject, job.Text, job.HTML); err != nil {
		return apperror.Wrap(apperror.StoreUnavailable, fmt.Sprintf("send %s email", job.Template), err)
	}
	emailsSent.Add(1)
	log.WithField("template", job.Template).Info("email sent")
	return nil
}

// Retryable reports whether a failed Handle may succeed on redelivery.
func Retryable(err error) bool {
	return apperror.KindOf(err) == apperror.StoreUnavailable
}

func itemCount(v any) int {
	switch p := v.(type) {
	case []any:
		return len(p)
	case []string:
		return len(p)
	}
	return 0
}
