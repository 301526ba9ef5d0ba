// Package services contains the business logic for the reusable
// notification address pool.
package services

import (
	"context"
	"log/slog"

	"github.com/Aaryashkc/Client-domain-management/internal/models"
)

// EmailRepository defines the storage methods for notification addresses.
type EmailRepository interface {
	// CreateEmail inserts a new address and returns its ID.
	CreateEmail(ctx context.Context, email string) (string, error)
	// ListEmails returns all addresses.
	ListEmails(ctx context.Context) ([]*models.EmailAddress, error)
	// RemoveEmail deletes an address and returns the number of rows removed.
	RemoveEmail(ctx context.Context, id string) (int, error)
}

// EmailService implements the address pool business logic. Removing an
// address leaves the services referencing it untouched; their dangling
// references are simply skipped at send time.
type EmailService struct {
	repo EmailRepository
	log  *slog.Logger
}

// NewEmailService creates a new EmailService.
func NewEmailService(repo EmailRepository, log *slog.Logger) *EmailService {
	return &EmailService{
		repo: repo,
		log:  log,
	}
}

// Create stores a new notification address.
func (s *EmailService) Create(ctx context.Context, req models.DummyEmail) (string, error) {
	id, err := s.repo.CreateEmail(ctx, req.Email)
	if err != nil {
		return "", err
	}
	s.log.Info("created new notification email", slog.String("id", id))
	return id, nil
}

// List returns all notification addresses.
func (s *EmailService) List(ctx context.Context) ([]*models.EmailAddress, error) {
	return s.repo.ListEmails(ctx)
}

// Remove deletes an address and returns the number of rows removed
// (0 when the ID is unknown).
func (s *EmailService) Remove(ctx context.Context, id string) (int, error) {
	count, err := s.repo.RemoveEmail(ctx, id)
	if err != nil {
		return 0, err
	}
	s.log.Info("removed notification email", slog.String("id", id), slog.Int("count", count))
	return count, nil
}
