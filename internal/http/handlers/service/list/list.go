// Package list implements the HTTP handler returning all services with
// their client and provider display fields.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/Aaryashkc/Client-domain-management/internal/http/response"
	"github.com/Aaryashkc/Client-domain-management/internal/lib/sl"
	"github.com/Aaryashkc/Client-domain-management/internal/models"
)

// Handler handles HTTP requests listing services.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the service listing business logic.
type Service interface {
	List(ctx context.Context) ([]*models.ServiceInfo, error)
}

// New creates a new Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary List services
// @Description Returns all services ordered by end date, with client and provider names resolved.
// @Tags Services
// @Produce  json
// @Success 200 {object} map[string]any "Service list"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /services [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.service.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	services, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list services", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list services"))
		return
	}

	log.Info("services listed", slog.Int("count", len(services)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"services": services,
	}))
}
