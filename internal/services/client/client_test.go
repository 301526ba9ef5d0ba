package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Aaryashkc/Client-domain-management/internal/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateClient(ctx context.Context, client models.Client) (string, error) {
	args := m.Called(ctx, client)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) ReadClient(ctx context.Context, id string) (*models.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockRepository) ListClients(ctx context.Context) ([]*models.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Client), args.Error(1)
}

func (m *MockRepository) ToggleClientStatus(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestClientService_Create_StartsInactive(t *testing.T) {
	repo := new(MockRepository)
	service := NewClientService(repo, newNoopLogger())

	repo.On("CreateClient", mock.Anything, mock.MatchedBy(func(client models.Client) bool {
		return !client.ClientStatus && client.CompanyName == "Acme Pvt Ltd"
	})).Return("new-id", nil).Once()

	id, err := service.Create(context.Background(), models.DummyClient{
		CompanyName: "Acme Pvt Ltd",
		ClientName:  "Acme",
		ClientEmail: "contact@acme.example",
		ClientPhone: "+977-1-5555555",
		Address:     "Kathmandu",
		ClientType:  "external",
	})

	require.NoError(t, err)
	assert.Equal(t, "new-id", id)
	repo.AssertExpectations(t)
}

func TestClientService_ToggleStatus(t *testing.T) {
	repo := new(MockRepository)
	service := NewClientService(repo, newNoopLogger())

	repo.On("ToggleClientStatus", mock.Anything, "c1").Return(true, nil).Once()

	status, err := service.ToggleStatus(context.Background(), "c1")

	require.NoError(t, err)
	assert.True(t, status)
	repo.AssertExpectations(t)
}

func TestClientService_ToggleStatus_Error(t *testing.T) {
	repo := new(MockRepository)
	service := NewClientService(repo, newNoopLogger())

	repo.On("ToggleClientStatus", mock.Anything, "missing").
		Return(false, errors.New("no rows in result set")).Once()

	_, err := service.ToggleStatus(context.Background(), "missing")
	assert.Error(t, err)
}
