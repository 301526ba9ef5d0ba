// Package list implements the HTTP handler returning all providers.
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

// Handler handles HTTP requests listing providers.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the provider listing business logic.
type Service interface {
	List(ctx context.Context) ([]*models.Provider, error)
}

// New creates a new Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary List providers
// @Description Returns all providers ordered by name.
// @Tags Providers
// @Produce  json
// @Success 200 {object} map[string]any "Provider list"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /providers [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.provider.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	providers, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list providers", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list providers"))
		return
	}

	log.Info("providers listed", slog.Int("count", len(providers)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"providers": providers,
	}))
}
