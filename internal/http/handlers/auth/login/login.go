// Package login implements the HTTP handler authenticating dashboard
// users. A successful login answers with a signed JWT.
package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/Aaryashkc/Client-domain-management/internal/http/response"
	"github.com/Aaryashkc/Client-domain-management/internal/lib/sl"
	"github.com/Aaryashkc/Client-domain-management/internal/models"
	authservice "github.com/Aaryashkc/Client-domain-management/internal/services/auth"
)

// Handler handles HTTP requests for user login.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service describes the login business logic.
type Service interface {
	Login(ctx context.Context, email, password string) (string, error)
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
// @Summary Authenticate a user
// @Description Checks the credentials and returns a JWT on success.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body models.DummyLogin true "User credentials"
// @Success 200 {object} map[string]any "Login succeeded"
// @Failure 400 {object} response.ErrorResponse "Invalid JSON"
// @Failure 401 {object} response.ErrorResponse "Invalid credentials"
// @Failure 422 {object} response.ErrorResponse "Validation error"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyLogin
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

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			log.Warn("invalid credentials", slog.String("email", req.Email))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid credentials"))
			return
		}
		log.Error("login failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not log in"))
		return
	}

	log.Info("login success", slog.String("email", req.Email))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"token": token,
		"email": req.Email,
	}))
}
