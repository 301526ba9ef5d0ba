package repository

import (
	"context"
	"fmt"

	"github.com/Aaryashkc/Client-domain-management/internal/models"
)

// CreateClient inserts a new client and returns its generated ID.
func (s *Storage) CreateClient(ctx context.Context, client models.Client) (string, error) {
	const op = "storage.CreateClient"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO clients (company_name, client_name, client_email, client_phone, address, client_type, client_status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		client.CompanyName, client.ClientName, client.ClientEmail, client.ClientPhone,
		client.Address, client.ClientType, client.ClientStatus).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadClient returns a client by ID.
func (s *Storage) ReadClient(ctx context.Context, id string) (*models.Client, error) {
	const op = "storage.ReadClient"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, company_name, client_name, client_email, client_phone, address, client_type, client_status, created_at
			  FROM clients WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Client
	if err := row.Scan(&result.ID, &result.CompanyName, &result.ClientName, &result.ClientEmail,
		&result.ClientPhone, &result.Address, &result.ClientType, &result.ClientStatus, &result.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// ListClients returns all clients ordered by company name.
func (s *Storage) ListClients(ctx context.Context) ([]*models.Client, error) {
	const op = "storage.ListClients"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, company_name, client_name, client_email, client_phone, address, client_type, client_status, created_at
			  FROM clients
			  ORDER BY company_name`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var result []*models.Client
	for rows.Next() {
		var item models.Client
		if err := rows.Scan(&item.ID, &item.CompanyName, &item.ClientName, &item.ClientEmail,
			&item.ClientPhone, &item.Address, &item.ClientType, &item.ClientStatus, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ToggleClientStatus flips the active flag and returns the new value.
func (s *Storage) ToggleClientStatus(ctx context.Context, id string) (bool, error) {
	const op = "storage.ToggleClientStatus"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE clients SET client_status = NOT client_status WHERE id = $1 RETURNING client_status`
	var status bool
	if err := s.DB.QueryRowContext(ctx, query, id).Scan(&status); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return status, nil
}
