// Package services implements the mail sender: it resolves the
// recipients of a service, composes the expiration reminder and sends it
// over SMTP, then records the dispatch on the service record.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Aaryashkc/Client-domain-management/internal/config"
	"github.com/Aaryashkc/Client-domain-management/internal/lib/days"
	"github.com/Aaryashkc/Client-domain-management/internal/lib/sl"
	"github.com/Aaryashkc/Client-domain-management/internal/lib/smtp"
	"github.com/Aaryashkc/Client-domain-management/internal/models"
)

// ErrServiceNotFound reports a manual trigger for an unknown service ID.
// Distinct from a send failure so the API can answer 404 instead of 500.
var ErrServiceNotFound = errors.New("service not found")

// ServiceRepository defines the storage reads and the single write the
// sender needs.
type ServiceRepository interface {
	// ReadServiceInfo returns one service with client/provider display fields.
	ReadServiceInfo(ctx context.Context, id string) (*models.ServiceInfo, error)
	// ListServiceRecipients resolves the service's recipient references.
	ListServiceRecipients(ctx context.Context, id string) ([]models.EmailAddress, error)
	// SetLastEmailSent records a successful dispatch.
	SetLastEmailSent(ctx context.Context, id string, sentAt time.Time) (int, error)
}

// SenderService sends expiration reminders for single services, either
// from the queue or from the operator-facing "send now" trigger.
type SenderService struct {
	repo      ServiceRepository
	transport smtp.TransportInterface
	notify    config.Notify
	log       *slog.Logger
	now       func() time.Time
}

// NewSenderService creates a new SenderService. The SMTP transport is an
// injected dependency, never package state.
func NewSenderService(repo ServiceRepository, transport smtp.TransportInterface, notify config.Notify, log *slog.Logger) *SenderService {
	return &SenderService{
		repo:      repo,
		transport: transport,
		notify:    notify,
		log:       log,
		now:       time.Now,
	}
}

// HandleExpiringService is the queue consumer handler. It unmarshals the
// scheduler's message and runs the send sequence for that service.
func (s *SenderService) HandleExpiringService(body []byte) error {
	var message models.ExpiringService
	if err := json.Unmarshal(body, &message); err != nil {
		s.log.Error("failed to unmarshal message body", sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	err := s.SendExpirationEmail(context.Background(), message.ServiceID)
	if errors.Is(err, ErrServiceNotFound) {
		// The service was deleted between scan and send; nothing to retry.
		s.log.Warn("expiring service no longer exists", slog.String("service_id", message.ServiceID))
		return nil
	}
	return err
}

// SendExpirationEmail resolves, composes, sends and records the reminder
// for one service. It does not check the notification threshold — the
// scheduler filters before publishing and the manual trigger bypasses the
// threshold on purpose. An empty recipient list is a logged no-op, not an
// error. The last-sent timestamp is only written after a successful send.
func (s *SenderService) SendExpirationEmail(ctx context.Context, serviceID string) error {
	info, err := s.repo.ReadServiceInfo(ctx, serviceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrServiceNotFound
		}
		return fmt.Errorf("failed to read service %s: %w", serviceID, err)
	}

	to, err := s.resolveRecipients(ctx, serviceID)
	if err != nil {
		return fmt.Errorf("failed to resolve recipients for service %s: %w", serviceID, err)
	}
	if len(to) == 0 {
		s.log.Info("no recipients configured for service, skipping",
			slog.String("service_id", serviceID))
		return nil
	}

	subject, body := composeExpirationMail(info, days.Until(info.EndDate, s.now()))

	if err := s.sendEmail(to, subject, body); err != nil {
		s.log.Error("failed to send expiration email",
			slog.String("service_id", serviceID), sl.Err(err))
		return err
	}

	if _, err := s.repo.SetLastEmailSent(ctx, serviceID, s.now()); err != nil {
		// The mail is out; a failed bookkeeping write must not fail the send.
		s.log.Error("failed to record last email sent",
			slog.String("service_id", serviceID), sl.Err(err))
	}

	s.log.Info("expiration email sent",
		slog.String("service_id", serviceID), slog.Any("to", to))
	return nil
}

// resolveRecipients picks the recipient addresses for a service. The
// default strategy resolves the service's stored references; the "admin"
// strategy sends every reminder to the configured distribution list.
func (s *SenderService) resolveRecipients(ctx context.Context, serviceID string) ([]string, error) {
	if s.notify.RecipientStrategy == "admin" {
		return s.notify.AdminRecipients(), nil
	}

	emails, err := s.repo.ListServiceRecipients(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	var to []string
	for _, e := range emails {
		to = append(to, e.Email)
	}
	return to, nil
}

func (s *SenderService) sendEmail(to []string, subject, bodyText string) error {
	msg := strings.Join([]string{
		"From: " + s.transport.From(),
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer func() { _ = client.Close() }()

	if err := client.Mail(s.transport.From()); err != nil {
		s.log.Error("failed to set MAIL FROM", slog.String("from", s.transport.From()), sl.Err(err))
		return err
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			s.log.Error("failed to set RCPT TO", slog.String("recipient", addr), sl.Err(err))
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get data writer", sl.Err(err))
		return err
	}

	if _, err = wc.Write([]byte(msg)); err != nil {
		s.log.Error("failed to write email body", sl.Err(err))
		return err
	}

	if err = wc.Close(); err != nil {
		s.log.Error("failed to close data writer", sl.Err(err))
		return err
	}

	if err = client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP client", sl.Err(err))
		return err
	}

	return nil
}
