// Package services contains the business logic for dashboard user
// accounts and authentication.
package services

import (
	"context"
	"errors"

	"github.com/Aaryashkc/Client-domain-management/internal/lib/jwt"
	"github.com/Aaryashkc/Client-domain-management/internal/lib/password"
	"github.com/Aaryashkc/Client-domain-management/internal/models"
)

// ErrInvalidCredentials reports a failed login without leaking whether
// the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository describes the storage contract for users.
type UserRepository interface {
	// RegisterUser stores a new user and returns the generated UID.
	RegisterUser(ctx context.Context, user models.User) (string, error)
	// GetUserByEmail returns a user by email or an error when not found.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService handles registration, login and JWT validation.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register creates a new user with a hashed password and returns the UID.
func (s *AuthService) Register(ctx context.Context, req models.DummyRegister) (string, error) {
	hashed, err := password.GetHash(req.Password)
	if err != nil {
		return "", err
	}
	user := models.User{
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: hashed,
	}
	return s.users.RegisterUser(ctx, user)
}

// Login checks the user's password and generates a JWT.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.jwtMaker.GenerateToken(user.Email, user.FullName, user.UID)
}

// ValidateToken checks the JWT and returns the user it identifies.
func (s *AuthService) ValidateToken(_ context.Context, token string) (*models.User, bool, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, false, err
	}
	user := &models.User{
		UID:      claims.UserUID,
		Email:    claims.Email,
		FullName: claims.FullName,
	}
	return user, true, nil
}
