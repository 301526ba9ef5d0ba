package repository

import (
	"context"
	"fmt"

	"github.com/Aaryashkc/Client-domain-management/internal/models"
)

// CreateEmail inserts a reusable notification address and returns its ID.
func (s *Storage) CreateEmail(ctx context.Context, email string) (string, error) {
	const op = "storage.CreateEmail"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO emails (email) VALUES ($1) RETURNING id`
	var newID string
	if err := s.DB.QueryRowContext(ctx, query, email).Scan(&newID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListEmails returns all stored notification addresses.
func (s *Storage) ListEmails(ctx context.Context) ([]*models.EmailAddress, error) {
	const op = "storage.ListEmails"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, created_at FROM emails ORDER BY email`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var result []*models.EmailAddress
	for rows.Next() {
		var item models.EmailAddress
		if err := rows.Scan(&item.ID, &item.Email, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// RemoveEmail deletes an address by ID and returns the number of removed
// rows. Services referencing it keep their dangling reference; the
// resolver drops it silently.
func (s *Storage) RemoveEmail(ctx context.Context, id string) (int, error) {
	const op = "storage.RemoveEmail"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM emails WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
