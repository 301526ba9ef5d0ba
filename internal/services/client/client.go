// Package services contains the business logic for client companies.
package services

import (
	"context"
	"log/slog"

	"github.com/Aaryashkc/Client-domain-management/internal/models"
)

// ClientRepository defines the storage methods for clients.
type ClientRepository interface {
	// CreateClient inserts a new client and returns its ID.
	CreateClient(ctx context.Context, client models.Client) (string, error)
	// ReadClient returns a client by ID.
	ReadClient(ctx context.Context, id string) (*models.Client, error)
	// ListClients returns all clients.
	ListClients(ctx context.Context) ([]*models.Client, error)
	// ToggleClientStatus flips the active flag and returns the new value.
	ToggleClientStatus(ctx context.Context, id string) (bool, error)
}

// ClientService implements the client business logic.
type ClientService struct {
	repo ClientRepository
	log  *slog.Logger
}

// NewClientService creates a new ClientService.
func NewClientService(repo ClientRepository, log *slog.Logger) *ClientService {
	return &ClientService{
		repo: repo,
		log:  log,
	}
}

// Create stores a new client. New clients start inactive; the status is
// only ever changed through ToggleStatus.
func (s *ClientService) Create(ctx context.Context, req models.DummyClient) (string, error) {
	client := models.Client{
		CompanyName:  req.CompanyName,
		ClientName:   req.ClientName,
		ClientEmail:  req.ClientEmail,
		ClientPhone:  req.ClientPhone,
		Address:      req.Address,
		ClientType:   req.ClientType,
		ClientStatus: false,
	}

	id, err := s.repo.CreateClient(ctx, client)
	if err != nil {
		return "", err
	}
	s.log.Info("created new client", slog.String("id", id))
	return id, nil
}

// Read returns a client by ID.
func (s *ClientService) Read(ctx context.Context, id string) (*models.Client, error) {
	return s.repo.ReadClient(ctx, id)
}

// List returns all clients ordered by company name.
func (s *ClientService) List(ctx context.Context) ([]*models.Client, error) {
	return s.repo.ListClients(ctx)
}

// ToggleStatus flips the client's active flag and returns the new value.
func (s *ClientService) ToggleStatus(ctx context.Context, id string) (bool, error) {
	status, err := s.repo.ToggleClientStatus(ctx, id)
	if err != nil {
		return false, err
	}
	s.log.Info("toggled client status", slog.String("id", id), slog.Bool("status", status))
	return status, nil
}
