package services

import (
	"context"
	"log/slog"

	"github.com/meenakannan/portfolio-api/internal/api/validate"
	"github.com/meenakannan/portfolio-api/internal/mailer"
	"github.com/meenakannan/portfolio-api/internal/metrics"
	"github.com/meenakannan/portfolio-api/internal/models"
	"github.com/meenakannan/portfolio-api/internal/query"
	repo "github.com/meenakannan/portfolio-api/internal/repository"
	"github.com/meenakannan/portfolio-api/internal/worker"
)

type ContactService struct {
	r        repo.Contacts
	mail     mailer.Sender
	wp       *worker.Pool
	notifyTo string
}

func NewContactService(r repo.Contacts, mail mailer.Sender, wp *worker.Pool, notifyTo string) *ContactService {
	return &ContactService{r: r, mail: mail, wp: wp, notifyTo: notifyTo}
}

// Submit stores the message and queues the notification mails. Mail
// outcome never affects the returned record or error: the response
// reflects persistence only.
func (s *ContactService) Submit(ctx context.Context, c models.Contact) (models.Contact, error) {
	if err := c.Validate(); err != nil {
		return models.Contact{}, err
	}
	created, err := s.r.Create(ctx, c)
	if err != nil {
		return models.Contact{}, err
	}
	metrics.ContactsTotal.Inc()
	s.notify(created)
	return created, nil
}

func (s *ContactService) List(ctx context.Context, f query.ContactFilter, pg query.Page) ([]models.Contact, int64, error) {
	items, err := s.r.List(ctx, f, pg)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.r.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *ContactService) UpdateStatus(ctx context.Context, id string, status models.ContactStatus) (models.Contact, error) {
	switch status {
	case models.ContactNew, models.ContactRead, models.ContactReplied, models.ContactArchived:
	default:
		return models.Contact{}, validate.Errs{{Field: "status", Msg: "must be one of new|read|replied|archived"}}
	}
	return s.r.UpdateStatus(ctx, id, status)
}

func (s *ContactService) notify(c models.Contact) {
	if s.mail == nil || s.wp == nil {
		return
	}
	s.wp.Submit(func() {
		subject, body := mailer.ContactNotification(c)
		if err := s.mail.Send(s.notifyTo, subject, body); err != nil {
			slog.Error("contact notification", "id", c.ID, "err", err)
			metrics.NotificationFailures.Inc()
		}
		subject, body = mailer.AutoReply(c)
		if err := s.mail.Send(c.Email, subject, body); err != nil {
			slog.Error("contact auto-reply", "id", c.ID, "err", err)
			metrics.NotificationFailures.Inc()
		}
	})
}
