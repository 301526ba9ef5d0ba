// Package register implements the HTTP handler creating dashboard user
// accounts.
package register

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

// Handler handles HTTP requests for user registration.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service describes the registration business logic.
type Service interface {
	Register(ctx context.Context, req models.DummyRegister) (string, error)
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
// @Summary Register a new user
// @Description Creates a dashboard user account. Returns the UID of the new user.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body models.DummyRegister true "New user data"
// @Success 200 {object} map[string]any "User created"
// @Failure 400 {object} response.ErrorResponse "Invalid JSON"
// @Failure 422 {object} response.ErrorResponse "Validation error"
// @Failure 500 {object} response.ErrorResponse "Registration failed"
// @Router /register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyRegister
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

	uid, err := h.service.Register(r.Context(), req)
	if err != nil {
		log.Error("registration failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to register user"))
		return
	}

	log.Info("user registered", slog.String("uid", uid))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"uid":     uid,
		"message": "user created successfully",
	}))
}
