// Package sendmail implements the HTTP handler triggering an expiration
// reminder for one service on demand. The manual trigger skips the
// threshold check on purpose, so an operator can re-send a reminder at
// any point before or after the scheduled one.
package sendmail

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/Aaryashkc/Client-domain-management/internal/http/response"
	"github.com/Aaryashkc/Client-domain-management/internal/lib/sl"
	senderservice "github.com/Aaryashkc/Client-domain-management/internal/services/sender"
)

// Handler handles HTTP requests triggering a reminder send.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the reminder sending business logic.
type Service interface {
	SendExpirationEmail(ctx context.Context, serviceID string) error
}

// New creates a new Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Send an expiration reminder now
// @Description Sends the expiration reminder for one service immediately, regardless of the notification threshold.
// @Tags Services
// @Produce  json
// @Param id path string true "Service ID"
// @Success 200 {object} map[string]any "Reminder sent"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 404 {object} response.ErrorResponse "Service not found"
// @Failure 500 {object} response.ErrorResponse "Send failed"
// @Router /services/{id}/send-email [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.service.sendmail"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	if err := h.service.SendExpirationEmail(r.Context(), id); err != nil {
		if errors.Is(err, senderservice.ErrServiceNotFound) {
			log.Warn("service not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("service not found"))
			return
		}
		log.Error("failed to send expiration email", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not send expiration email"))
		return
	}

	log.Info("expiration email triggered", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id":      id,
		"message": "expiration email sent",
	}))
}
