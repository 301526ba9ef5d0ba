// Package updateemails implements the HTTP handler replacing the
// recipient list of a service. The list is the only mutable part of a
// service after creation.
package updateemails

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/Aaryashkc/Client-domain-management/internal/http/response"
	"github.com/Aaryashkc/Client-domain-management/internal/lib/sl"
	"github.com/Aaryashkc/Client-domain-management/internal/models"
)

// Handler handles HTTP requests replacing a service's recipient list.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service describes the recipient list update business logic.
type Service interface {
	UpdateEmails(ctx context.Context, id string, req models.DummyServiceEmails) (int, error)
}

// New creates a new Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Replace a service's notification recipients
// @Description Replaces the ordered recipient reference list of a service.
// @Tags Services
// @Accept  json
// @Produce  json
// @Param id path string true "Service ID"
// @Param request body models.DummyServiceEmails true "Replacement recipient list"
// @Success 200 {object} map[string]any "Recipients updated"
// @Failure 400 {object} response.ErrorResponse "Invalid JSON"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 404 {object} response.ErrorResponse "Service not found"
// @Failure 422 {object} response.ErrorResponse "Validation error"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /services/{id}/emails [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.service.updateemails"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	var req models.DummyServiceEmails
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	count, err := h.service.UpdateEmails(r.Context(), id, req)
	if err != nil {
		log.Error("failed to update service emails", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update service emails"))
		return
	}
	if count == 0 {
		log.Warn("service not found", slog.String("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("service not found"))
		return
	}

	log.Info("service emails updated", slog.String("id", id), slog.Int("emails", len(req.Emails)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id":     id,
		"emails": req.Emails,
	}))
}
