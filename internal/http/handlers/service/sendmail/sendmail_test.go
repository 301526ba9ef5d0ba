package sendmail

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	senderservice "github.com/Aaryashkc/Client-domain-management/internal/services/sender"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) SendExpirationEmail(ctx context.Context, serviceID string) error {
	args := m.Called(ctx, serviceID)
	return args.Error(0)
}

func TestSendMailHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		id             string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "successful send",
			id:   "svc-1",
			setupMock: func(m *MockService) {
				m.On("SendExpirationEmail", mock.Anything, "svc-1").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `expiration email sent`,
		},
		{
			name: "unknown service",
			id:   "missing",
			setupMock: func(m *MockService) {
				m.On("SendExpirationEmail", mock.Anything, "missing").
					Return(senderservice.ErrServiceNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `service not found`,
		},
		{
			name: "send failure",
			id:   "svc-2",
			setupMock: func(m *MockService) {
				m.On("SendExpirationEmail", mock.Anything, "svc-2").
					Return(errors.New("smtp unreachable"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `could not send expiration email`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/services/"+tt.id+"/send-email", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
