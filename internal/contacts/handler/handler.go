package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"safesignal/internal/domain"
	"safesignal/internal/platform/middleware"
	dErrors "safesignal/pkg/domain-errors"
	"safesignal/pkg/platform/httputil"
)

// Service defines the contact operations the HTTP layer depends on.
type Service interface {
	List(ctx context.Context) ([]domain.Contact, error)
	Add(ctx context.Context, contact domain.Contact) (domain.Contact, error)
	Remove(ctx context.Context, id int64) error
}

// Handler handles the contacts resource endpoints.
type Handler struct {
	logger   *slog.Logger
	contacts Service
}

// New creates a new contacts Handler.
func New(contacts Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, contacts: contacts}
}

// Register registers the contacts routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/contacts", h.handleList)
	r.Post("/contacts", h.handleCreate)
	r.Delete("/contacts/{id}", h.handleDelete)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contacts.List(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list contacts",
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to list contacts"))
		return
	}
	if contacts == nil {
		contacts = []domain.Contact{}
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"contacts": contacts})
}

type createContactRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid create contact request",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	created, err := h.contacts.Add(ctx, domain.Contact{
		Name:     req.Name,
		Phone:    req.Phone,
		Relation: req.Relation,
	})
	if err != nil {
		if dErrors.Is(err, dErrors.CodeBadRequest) {
			httputil.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "failed to add contact",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to add contact"))
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"contact": created,
	})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		// Unparsable ids behave like ids that were never assigned.
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "contact not found"))
		return
	}

	if err := h.contacts.Remove(ctx, id); err != nil {
		if dErrors.Is(err, dErrors.CodeNotFound) {
			httputil.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "failed to remove contact",
			"request_id", middleware.GetRequestID(ctx),
			"id", id,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to remove contact"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}
