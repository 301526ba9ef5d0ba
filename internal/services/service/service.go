// Package services implements the business logic for managed services:
// creation with the derived end date, cached reads, listing and recipient
// list replacement.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Aaryashkc/Client-domain-management/internal/lib/duration"
	"github.com/Aaryashkc/Client-domain-management/internal/models"
)

// ServiceRepository defines the storage methods for services.
type ServiceRepository interface {
	// CreateService inserts a service with its recipient references and returns its ID.
	CreateService(ctx context.Context, svc models.Service) (string, error)
	// ReadServiceInfo returns one service with display fields resolved.
	ReadServiceInfo(ctx context.Context, id string) (*models.ServiceInfo, error)
	// ListServiceInfos returns all services with display fields resolved.
	ListServiceInfos(ctx context.Context) ([]*models.ServiceInfo, error)
	// UpdateServiceEmails replaces the recipient list and returns the update count.
	UpdateServiceEmails(ctx context.Context, id string, emailIDs []string) (int, error)
}

// Cache describes the caching methods used for single-service reads.
type Cache interface {
	// Get tries to fetch a value from the cache by key.
	Get(key string, result any) (bool, error)
	// Set stores a value in the cache with a TTL.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate removes a value from the cache by key.
	Invalidate(key string) error
}

// ServiceService implements the service business logic, including caching.
type ServiceService struct {
	repo  ServiceRepository
	cache Cache
	log   *slog.Logger
}

// NewServiceService creates a new ServiceService.
func NewServiceService(repo ServiceRepository, cache Cache, log *slog.Logger) *ServiceService {
	return &ServiceService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create stores a new service and returns its ID. The end date is derived
// here, once, from the start date and the duration label; it is never
// recomputed after creation.
func (s *ServiceService) Create(ctx context.Context, req models.DummyService) (string, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return "", fmt.Errorf("invalid start date: %w", err)
	}

	svc := models.Service{
		ClientID:    req.ClientID,
		ProviderID:  req.ProviderID,
		ServiceName: req.ServiceName,
		ServiceType: req.ServiceType,
		StartDate:   startDate,
		Duration:    req.Duration,
		EndDate:     duration.EndDate(startDate, req.Duration),
		DomainCost:  req.DomainCost,
		HostingCost: req.HostingCost,
		EmailIDs:    req.Emails,
	}

	id, err := s.repo.CreateService(ctx, svc)
	if err != nil {
		return "", err
	}
	s.log.Info("created new service", slog.String("id", id))
	return id, nil
}

// Read returns one service by ID, through the cache when possible.
func (s *ServiceService) Read(ctx context.Context, id string) (*models.ServiceInfo, error) {
	var result *models.ServiceInfo
	key := cacheKey(id)
	found, err := s.cache.Get(key, &result)
	if err != nil {
		s.log.Warn("cache read failed", slog.String("key", key), slog.Any("err", err))
	}
	if found {
		return result, nil
	}

	result, err = s.repo.ReadServiceInfo(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(key, result, time.Hour); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", key), slog.Any("err", err))
	}
	return result, nil
}

// List returns all services ordered by end date.
func (s *ServiceService) List(ctx context.Context) ([]*models.ServiceInfo, error) {
	return s.repo.ListServiceInfos(ctx)
}

// UpdateEmails replaces the recipient list of a service and invalidates
// its cache entry. Returns 0 when the service does not exist.
func (s *ServiceService) UpdateEmails(ctx context.Context, id string, req models.DummyServiceEmails) (int, error) {
	count, err := s.repo.UpdateServiceEmails(ctx, id, req.Emails)
	if err != nil {
		return 0, err
	}

	key := cacheKey(id)
	if err := s.cache.Invalidate(key); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", key), slog.Any("err", err))
	}
	return count, nil
}

func cacheKey(id string) string {
	return fmt.Sprintf("service:%s", id)
}
