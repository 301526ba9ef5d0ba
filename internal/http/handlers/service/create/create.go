// Package create implements the HTTP handler creating services.
//
// On top of the struct tag validation, the request passes the domain
// rules in models.ValidateService: the service type decides which cost
// fields must be present and which must be absent.
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

// Handler handles HTTP requests for service creation.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service describes the service creation business logic.
type Service interface {
	Create(ctx context.Context, req models.DummyService) (string, error)
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
// @Summary Create a new service
// @Description Creates a tracked service. The end date is derived from the start date and the duration label. Returns the ID of the new record.
// @Tags Services
// @Accept  json
// @Produce  json
// @Param request body models.DummyService true "New service data"
// @Success 200 {object} map[string]any "Service created"
// @Failure 400 {object} response.ErrorResponse "Invalid JSON"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 422 {object} response.ErrorResponse "Validation error"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /services [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.service.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyService
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
	if errs := models.ValidateService(req); len(errs) > 0 {
		log.Error("domain validation failed", slog.Any("errors", errs))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.FieldErrors(errs))
		return
	}
	log.Info("all fields are validated")

	id, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to create service", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create service"))
		return
	}

	log.Info("service created", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id": id,
	}))
}
