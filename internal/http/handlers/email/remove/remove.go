// Package remove implements the HTTP handler deleting a notification
// address from the pool. Services referencing the address keep their
// reference; it is skipped at send time.
package remove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/Aaryashkc/Client-domain-management/internal/http/response"
	"github.com/Aaryashkc/Client-domain-management/internal/lib/sl"
)

// Handler handles HTTP requests removing a notification address.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the address removal business logic.
type Service interface {
	Remove(ctx context.Context, id string) (int, error)
}

// New creates a new Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Remove a notification email address
// @Description Deletes an address from the pool. Services referencing it are not modified.
// @Tags Emails
// @Produce  json
// @Param id path string true "Address ID"
// @Success 200 {object} map[string]any "Address removed"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 404 {object} response.ErrorResponse "Address not found"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /emails/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.email.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	count, err := h.service.Remove(r.Context(), id)
	if err != nil {
		log.Error("failed to remove email", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not remove email"))
		return
	}
	if count == 0 {
		log.Warn("email not found", slog.String("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("email not found"))
		return
	}

	log.Info("email removed", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id":      id,
		"message": "email removed",
	}))
}
