// Package read implements the HTTP handler returning one client by ID.
package read

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/Aaryashkc/Client-domain-management/internal/http/response"
	"github.com/Aaryashkc/Client-domain-management/internal/lib/sl"
	"github.com/Aaryashkc/Client-domain-management/internal/models"
)

// Handler handles HTTP requests reading a client by ID.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the client read business logic.
type Service interface {
	Read(ctx context.Context, id string) (*models.Client, error)
}

// New creates a new Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Get a client
// @Description Returns one client by ID.
// @Tags Clients
// @Produce  json
// @Param id path string true "Client ID"
// @Success 200 {object} map[string]any "Client data"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 404 {object} response.ErrorResponse "Client not found"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /clients/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.client.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	client, err := h.service.Read(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn("client not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("client not found"))
			return
		}
		log.Error("failed to read client", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read client"))
		return
	}

	log.Info("client read", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"client": client,
	}))
}
