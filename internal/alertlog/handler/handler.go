package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"safesignal/internal/alertlog"
	"safesignal/internal/domain"
	"safesignal/internal/platform/middleware"
	dErrors "safesignal/pkg/domain-errors"
	"safesignal/pkg/platform/httputil"
)

// Service defines the alert operations the HTTP layer depends on.
type Service interface {
	Trigger(ctx context.Context, input alertlog.TriggerInput) (domain.AlertRecord, error)
	List(ctx context.Context) ([]domain.AlertRecord, error)
}

// Handler handles alert ingestion and log endpoints.
type Handler struct {
	logger *slog.Logger
	alerts Service
}

// New creates a new alerts Handler.
func New(alerts Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, alerts: alerts}
}

// Register registers the alert routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/alert", h.handleTrigger)
	r.Get("/alerts", h.handleList)
}

type triggerRequest struct {
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	DeviceInfo string   `json:"deviceInfo"`
}

func (h *Handler) handleTrigger(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// A malformed body is tolerated: an emergency trigger with a garbled
	// payload still produces an alert record with defaulted fields.
	var req triggerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "malformed alert payload, using defaults",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		req = triggerRequest{}
	}

	record, err := h.alerts.Trigger(ctx, alertlog.TriggerInput{
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		DeviceInfo: req.DeviceInfo,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to ingest alert",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to ingest alert"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"message":  fmt.Sprintf("Alert sent to %d contact(s).", len(record.Notified)),
		"alertId":  record.ID,
		"notified": record.Notified,
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := h.alerts.List(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list alerts",
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to list alerts"))
		return
	}
	if records == nil {
		records = []domain.AlertRecord{}
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"alerts": records})
}
