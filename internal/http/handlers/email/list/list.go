// Package list implements the HTTP handler returning the notification
// address pool.
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

// Handler handles HTTP requests listing notification addresses.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the address listing business logic.
type Service interface {
	List(ctx context.Context) ([]*models.EmailAddress, error)
}

// New creates a new Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary List notification email addresses
// @Description Returns all addresses in the reusable pool.
// @Tags Emails
// @Produce  json
// @Success 200 {object} map[string]any "Address list"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /emails [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.email.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	emails, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list emails", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list emails"))
		return
	}

	log.Info("emails listed", slog.Int("count", len(emails)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"emails": emails,
	}))
}
