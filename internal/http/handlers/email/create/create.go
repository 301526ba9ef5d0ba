// Package create implements the HTTP handler adding notification
// addresses to the reusable pool.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/Aaryashkc/Client-domain-management/internal/http/response"
	"github.com/Aaryashkc/Client-domain-management/internal/lib/sl"
	"github.com/Aaryashkc/Client-domain-management/internal/models"
)

// Handler handles HTTP requests for address creation.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service describes the address creation business logic.
type Service interface {
	Create(ctx context.Context, req models.DummyEmail) (string, error)
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
// @Summary Add a notification email address
// @Description Adds an address to the reusable pool services can reference.
// @Tags Emails
// @Accept  json
// @Produce  json
// @Param request body models.DummyEmail true "New address"
// @Success 200 {object} map[string]any "Address created"
// @Failure 400 {object} response.ErrorResponse "Invalid JSON"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 422 {object} response.ErrorResponse "Validation error"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /emails [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.email.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyEmail
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("email", req.Email))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	id, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to create email", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create email"))
		return
	}

	log.Info("email created", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id": id,
	}))
}
