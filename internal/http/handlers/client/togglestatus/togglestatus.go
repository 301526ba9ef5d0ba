// Package togglestatus implements the HTTP handler flipping a client's
// active flag. The flag has exactly two states, so the endpoint takes no
// body and answers with the new value.
package togglestatus

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
)

// Handler handles HTTP requests toggling a client's status.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the status toggle business logic.
type Service interface {
	ToggleStatus(ctx context.Context, id string) (bool, error)
}

// New creates a new Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Toggle client status
// @Description Flips the client's active flag and returns the new value.
// @Tags Clients
// @Produce  json
// @Param id path string true "Client ID"
// @Success 200 {object} map[string]any "New status"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 404 {object} response.ErrorResponse "Client not found"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /clients/{id}/toggle-status [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.client.togglestatus"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	status, err := h.service.ToggleStatus(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn("client not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("client not found"))
			return
		}
		log.Error("failed to toggle client status", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not toggle client status"))
		return
	}

	log.Info("client status toggled", slog.String("id", id), slog.Bool("status", status))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id":            id,
		"client_status": status,
	}))
}
