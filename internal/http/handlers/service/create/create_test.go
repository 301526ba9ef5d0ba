package create

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Aaryashkc/Client-domain-management/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, req models.DummyService) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	validBody := `{
		"client_id": "3f0c1b8e-0000-0000-0000-000000000001",
		"provider_id": "3f0c1b8e-0000-0000-0000-000000000002",
		"service_name": "acme.com",
		"service_type": "domain only",
		"start_date": "2025-04-10",
		"duration": "1 year",
		"domain_cost": 25.0
	}`

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "successful creation",
			body: validBody,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.Anything).Return("new-id", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":"new-id"`,
		},
		{
			name:           "invalid json",
			body:           "{not json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid request body`,
		},
		{
			name: "missing required field",
			body: `{
				"client_id": "3f0c1b8e-0000-0000-0000-000000000001",
				"provider_id": "3f0c1b8e-0000-0000-0000-000000000002",
				"service_type": "domain only",
				"start_date": "2025-04-10",
				"duration": "1 year",
				"domain_cost": 25.0
			}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field ServiceName is a required field`,
		},
		{
			name: "hosting cost missing for hosting type",
			body: `{
				"client_id": "3f0c1b8e-0000-0000-0000-000000000001",
				"provider_id": "3f0c1b8e-0000-0000-0000-000000000002",
				"service_name": "acme.com",
				"service_type": "hosting only",
				"start_date": "2025-04-10",
				"duration": "1 year"
			}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field hosting_cost is required for this service type`,
		},
		{
			name: "domain cost not allowed for hosting type",
			body: `{
				"client_id": "3f0c1b8e-0000-0000-0000-000000000001",
				"provider_id": "3f0c1b8e-0000-0000-0000-000000000002",
				"service_name": "acme.com",
				"service_type": "hosting only",
				"start_date": "2025-04-10",
				"duration": "1 year",
				"domain_cost": 25.0,
				"hosting_cost": 80.0
			}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field domain_cost is not allowed for this service type`,
		},
		{
			name: "unknown service type",
			body: `{
				"client_id": "3f0c1b8e-0000-0000-0000-000000000001",
				"provider_id": "3f0c1b8e-0000-0000-0000-000000000002",
				"service_name": "acme.com",
				"service_type": "ssl certificate",
				"start_date": "2025-04-10",
				"duration": "1 year"
			}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field service_type must be one of`,
		},
		{
			name: "service error",
			body: validBody,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.Anything).Return("", errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `could not create service`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/services", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
