package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"fundmyfuture/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the Ledger usecase, a structured logger, the request
// validator and the administrative token for the verification endpoint.
type Handler struct {
	svc        port.Ledger
	logger     *slog.Logger
	validate   *validator.Validate
	adminToken string
	router     chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.Ledger, logger *slog.Logger, adminToken string) *Handler {
	h := &Handler{
		svc:        svc,
		logger:     logger,
		validate:   validator.New(),
		adminToken: adminToken,
	}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/campaigns", h.handleCreateCampaign)
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Patch("/campaigns/{id}", h.handleUpdateCampaign)
		r.Get("/campaigns/{id}/donations", h.handleListDonations)
		r.Post("/campaigns/{id}/verify", h.handleVerifyCampaign)
		r.Post("/campaigns/{id}/donate", h.handleDonate)
		r.Post("/webhook/payment", h.handlePaymentWebhook)
		r.Get("/stats/overview", h.handleStatsOverview)
		r.Post("/newsletter/subscribe", h.handleNewsletterSubscribe)
		r.Post("/contact", h.handleContact)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// writeJSON encodes v into the response with the given status.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// decodeValid decodes the request body into v and runs struct
// validation. Returns false after writing a 400 response on failure.
func (h *Handler) decodeValid(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		http.Error(w, "invalid request: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}
