// Package read implements the HTTP handler returning one provider by ID.
package read

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
	"github.com/Aaryashkc/Client-domain-management/internal/models"
)

// Handler handles HTTP requests reading a provider by ID.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the provider read business logic.
type Service interface {
	Read(ctx context.Context, id string) (*models.Provider, error)
}

// New creates a new Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Get a provider
// @Description Returns one provider by ID.
// @Tags Providers
// @Produce  json
// @Param id path string true "Provider ID"
// @Success 200 {object} map[string]any "Provider data"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 404 {object} response.ErrorResponse "Provider not found"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /providers/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.provider.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	provider, err := h.service.Read(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn("provider not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("provider not found"))
			return
		}
		log.Error("failed to read provider", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read provider"))
		return
	}

	log.Info("provider read", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"provider": provider,
	}))
}
