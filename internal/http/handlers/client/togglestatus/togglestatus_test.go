package togglestatus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) ToggleStatus(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestToggleStatusHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		id             string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "successful toggle",
			id:   "c1",
			setupMock: func(m *MockService) {
				m.On("ToggleStatus", mock.Anything, "c1").Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"client_status":true`,
		},
		{
			name: "unknown client",
			id:   "missing",
			setupMock: func(m *MockService) {
				m.On("ToggleStatus", mock.Anything, "missing").
					Return(false, fmt.Errorf("storage.ToggleClientStatus: %w", sql.ErrNoRows))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `client not found`,
		},
		{
			name: "storage error",
			id:   "c2",
			setupMock: func(m *MockService) {
				m.On("ToggleStatus", mock.Anything, "c2").Return(false, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `could not toggle client status`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPatch, "/clients/"+tt.id+"/toggle-status", nil)
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
