package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	customjwt "github.com/Aaryashkc/Client-domain-management/internal/lib/jwt"
	"github.com/Aaryashkc/Client-domain-management/internal/lib/password"
	"github.com/Aaryashkc/Client-domain-management/internal/models"
	services "github.com/Aaryashkc/Client-domain-management/internal/services/auth"
)

type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) RegisterUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *UserRepoMock) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type JwtMakerMock struct {
	mock.Mock
}

func (m *JwtMakerMock) GenerateToken(email, fullName, userUID string) (string, error) {
	args := m.Called(email, fullName, userUID)
	return args.String(0), args.Error(1)
}

func (m *JwtMakerMock) ParseToken(token string) (*customjwt.CustomClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customjwt.CustomClaims), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name       string
		req        models.DummyRegister
		setupMocks func(r *UserRepoMock)
		wantUID    string
		wantErr    bool
	}{
		{
			name: "successful registration",
			req: models.DummyRegister{
				Email:    "admin@softech.example",
				FullName: "Admin User",
				Password: "password123",
			},
			setupMocks: func(r *UserRepoMock) {
				r.On("RegisterUser", mock.Anything, mock.MatchedBy(func(user models.User) bool {
					return user.Email == "admin@softech.example" &&
						user.FullName == "Admin User" &&
						user.PasswordHash != "" &&
						user.PasswordHash != "password123"
				})).Return("some-uuid-string", nil).Once()
			},
			wantUID: "some-uuid-string",
		},
		{
			name: "repository error",
			req: models.DummyRegister{
				Email:    "admin@softech.example",
				FullName: "Admin User",
				Password: "password123",
			},
			setupMocks: func(r *UserRepoMock) {
				r.On("RegisterUser", mock.Anything, mock.Anything).Return("", errors.New("db error")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			jwtMock := new(JwtMakerMock)
			svc := services.NewAuthService(repo, jwtMock)

			tt.setupMocks(repo)

			got, err := svc.Register(context.Background(), tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantUID, got)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	rawPassword := "correctpassword"

	hashedPassword, err := password.GetHash(rawPassword)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	testUser := &models.User{
		UID:          "uid-1",
		Email:        "admin@softech.example",
		FullName:     "Admin User",
		PasswordHash: hashedPassword,
	}

	tests := []struct {
		name       string
		email      string
		password   string
		setupMocks func(r *UserRepoMock, j *JwtMakerMock)
		wantToken  string
		wantErr    error
	}{
		{
			name:     "successful login",
			email:    "admin@softech.example",
			password: rawPassword,
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "admin@softech.example").Return(testUser, nil).Once()
				j.On("GenerateToken", "admin@softech.example", "Admin User", "uid-1").
					Return("jwt-token-123", nil).Once()
			},
			wantToken: "jwt-token-123",
		},
		{
			name:     "user not found",
			email:    "nobody@softech.example",
			password: "password",
			setupMocks: func(r *UserRepoMock, _ *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "nobody@softech.example").
					Return(nil, errors.New("user not found")).Once()
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "admin@softech.example",
			password: "wrongpassword",
			setupMocks: func(r *UserRepoMock, _ *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "admin@softech.example").Return(testUser, nil).Once()
			},
			wantErr: services.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			jwtMock := new(JwtMakerMock)
			svc := services.NewAuthService(repo, jwtMock)

			tt.setupMocks(repo, jwtMock)

			token, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}

			repo.AssertExpectations(t)
			jwtMock.AssertExpectations(t)
		})
	}
}

func TestAuthService_ValidateToken(t *testing.T) {
	validClaims := &customjwt.CustomClaims{
		Email:    "admin@softech.example",
		FullName: "Admin User",
		UserUID:  "uid-1",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	tests := []struct {
		name       string
		token      string
		setupMocks func(j *JwtMakerMock)
		wantUser   *models.User
		wantValid  bool
		wantErr    bool
	}{
		{
			name:  "valid token",
			token: "valid-token",
			setupMocks: func(j *JwtMakerMock) {
				j.On("ParseToken", "valid-token").Return(validClaims, nil).Once()
			},
			wantUser: &models.User{
				UID:      "uid-1",
				Email:    "admin@softech.example",
				FullName: "Admin User",
			},
			wantValid: true,
		},
		{
			name:  "invalid token",
			token: "invalid-token",
			setupMocks: func(j *JwtMakerMock) {
				j.On("ParseToken", "invalid-token").Return(nil, errors.New("invalid token")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			jwtMock := new(JwtMakerMock)
			svc := services.NewAuthService(repo, jwtMock)

			tt.setupMocks(jwtMock)

			user, valid, err := svc.ValidateToken(context.Background(), tt.token)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.wantUser, user)
			assert.Equal(t, tt.wantValid, valid)

			jwtMock.AssertExpectations(t)
		})
	}
}
