// Package services contains the business logic for service providers.
package services

import (
	"context"
	"log/slog"

	"github.com/Aaryashkc/Client-domain-management/internal/models"
)

// ProviderRepository defines the storage methods for providers.
type ProviderRepository interface {
	// CreateProvider inserts a new provider and returns its ID.
	CreateProvider(ctx context.Context, provider models.Provider) (string, error)
	// ReadProvider returns a provider by ID.
	ReadProvider(ctx context.Context, id string) (*models.Provider, error)
	// ListProviders returns all providers.
	ListProviders(ctx context.Context) ([]*models.Provider, error)
}

// ProviderService implements the provider business logic.
type ProviderService struct {
	repo ProviderRepository
	log  *slog.Logger
}

// NewProviderService creates a new ProviderService.
func NewProviderService(repo ProviderRepository, log *slog.Logger) *ProviderService {
	return &ProviderService{
		repo: repo,
		log:  log,
	}
}

// Create stores a new provider. Providers start active.
func (s *ProviderService) Create(ctx context.Context, req models.DummyProvider) (string, error) {
	provider := models.Provider{
		ProviderName:    req.ProviderName,
		ProviderEmail:   req.ProviderEmail,
		ProviderPhone:   req.ProviderPhone,
		ProviderAddress: req.ProviderAddress,
		Status:          true,
	}

	id, err := s.repo.CreateProvider(ctx, provider)
	if err != nil {
		return "", err
	}
	s.log.Info("created new provider", slog.String("id", id))
	return id, nil
}

// Read returns a provider by ID.
func (s *ProviderService) Read(ctx context.Context, id string) (*models.Provider, error) {
	return s.repo.ReadProvider(ctx, id)
}

// List returns all providers ordered by name.
func (s *ProviderService) List(ctx context.Context) ([]*models.Provider, error) {
	return s.repo.ListProviders(ctx)
}
