// Package list implements the HTTP handler returning all clients.
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

// Handler handles HTTP requests listing clients.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the client listing business logic.
type Service interface {
	List(ctx context.Context) ([]*models.Client, error)
}

// New creates a new Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary List clients
// @Description Returns all clients ordered by company name.
// @Tags Clients
// @Produce  json
// @Success 200 {object} map[string]any "Client list"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /clients [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.client.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	clients, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list clients", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list clients"))
		return
	}

	log.Info("clients listed", slog.Int("count", len(clients)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"clients": clients,
	}))
}
