package repository

import (
	"context"
	"fmt"

	"github.com/Aaryashkc/Client-domain-management/internal/models"
)

// CreateProvider inserts a new service provider and returns its ID.
func (s *Storage) CreateProvider(ctx context.Context, provider models.Provider) (string, error) {
	const op = "storage.CreateProvider"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO providers (provider_name, provider_email, provider_phone, provider_address, status)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		provider.ProviderName, provider.ProviderEmail, provider.ProviderPhone,
		provider.ProviderAddress, provider.Status).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadProvider returns a provider by ID.
func (s *Storage) ReadProvider(ctx context.Context, id string) (*models.Provider, error) {
	const op = "storage.ReadProvider"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, provider_name, provider_email, provider_phone, provider_address, status, created_at
			  FROM providers WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Provider
	if err := row.Scan(&result.ID, &result.ProviderName, &result.ProviderEmail,
		&result.ProviderPhone, &result.ProviderAddress, &result.Status, &result.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// ListProviders returns all providers ordered by name.
func (s *Storage) ListProviders(ctx context.Context) ([]*models.Provider, error) {
	const op = "storage.ListProviders"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, provider_name, provider_email, provider_phone, provider_address, status, created_at
			  FROM providers
			  ORDER BY provider_name`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var result []*models.Provider
	for rows.Next() {
		var item models.Provider
		if err := rows.Scan(&item.ID, &item.ProviderName, &item.ProviderEmail,
			&item.ProviderPhone, &item.ProviderAddress, &item.Status, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
