package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"fundmyfuture/internal/core/domain"
	"fundmyfuture/internal/core/port"
)

type donateRequest struct {
	AmountCents int64  `json:"amount_cents" validate:"required,gt=0"`
	Currency    string `json:"currency" validate:"required,len=3"`
	FunderID    string `json:"funder_id"`
	FunderEmail string `json:"funder_email" validate:"omitempty,email"`
	Message     string `json:"message" validate:"max=500"`
	Anonymous   bool   `json:"anonymous"`
}

// handleDonate opens a checkout session for a donation to the campaign
// in the path. The donation stays pending until the payment webhook
// confirms settlement.
func (h *Handler) handleDonate(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req donateRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	in := port.DonationIntentInput{
		CampaignID: id,
		Amount:     domain.NewMoney(req.AmountCents, req.Currency),
		Message:    req.Message,
		Anonymous:  req.Anonymous,
	}
	if req.FunderID != "" {
		in.FunderID = &req.FunderID
	}
	if req.FunderEmail != "" {
		in.FunderEmail = &req.FunderEmail
	}
	intent, err := h.svc.CreateDonationIntent(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{
		"donation_id":  intent.DonationID,
		"order_id":     intent.OrderID,
		"redirect_url": intent.RedirectURL,
	})
}

// handlePaymentWebhook receives gateway notifications. The signature is
// verified before anything else; a mismatch is the only NACK besides
// malformed input, because the gateway retries every non-2xx delivery.
// Once the donation is durably applied or deduplicated the response is
// 200 either way.
func (h *Handler) handlePaymentWebhook(w http.ResponseWriter, r *http.Request) {
	var n port.PaymentNotification
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		http.Error(w, "invalid notification format", http.StatusBadRequest)
		return
	}
	outcome, err := h.svc.SettlePayment(r.Context(), n)
	if err != nil {
		// The delivery contract wants a 400 on signature failure
		// specifically, not the usual 401 mapping.
		if errors.Is(err, domain.ErrUnauthenticated) {
			http.Error(w, "invalid signature", http.StatusBadRequest)
			return
		}
		h.writeError(w, r, err)
		return
	}
	if outcome == nil {
		h.writeJSON(w, http.StatusOK, map[string]string{"status": "ignored"})
		return
	}
	status := "applied"
	if outcome.Deduplicated {
		status = "duplicate"
	}
	h.logger.Info("webhook processed",
		slog.String("order_id", n.OrderID),
		slog.String("donation_id", outcome.DonationID),
		slog.String("result", status))
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status":      status,
		"donation_id": outcome.DonationID,
	})
}
