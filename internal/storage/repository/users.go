package repository

import (
	"context"
	"fmt"

	"github.com/Aaryashkc/Client-domain-management/internal/models"
)

// RegisterUser stores a new dashboard user and returns the generated UID.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.RegisterUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (email, full_name, password_hash) VALUES ($1, $2, $3) RETURNING uid`
	var uid string
	if err := s.DB.QueryRowContext(ctx, query, user.Email, user.FullName, user.PasswordHash).Scan(&uid); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return uid, nil
}

// GetUserByEmail returns a user by email or an error when not found.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, email, full_name, password_hash, created_at FROM users WHERE email = $1`
	row := s.DB.QueryRowContext(ctx, query, email)

	var result models.User
	if err := row.Scan(&result.UID, &result.Email, &result.FullName, &result.PasswordHash, &result.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}
