// Package create implements the HTTP handler creating client companies.
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

// Handler handles HTTP requests for client creation.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service describes the client creation business logic.
type Service interface {
	Create(ctx context.Context, req models.DummyClient) (string, error)
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
// @Summary Create a new client
// @Description Creates a client company. New clients start inactive. Returns the ID of the new record.
// @Tags Clients
// @Accept  json
// @Produce  json
// @Param request body models.DummyClient true "New client data"
// @Success 200 {object} map[string]any "Client created"
// @Failure 400 {object} response.ErrorResponse "Invalid JSON"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 422 {object} response.ErrorResponse "Validation error"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /clients [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.client.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyClient
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

	id, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to create client", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create client"))
		return
	}

	log.Info("client created", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id": id,
	}))
}
