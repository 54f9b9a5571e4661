package httpadapter

import (
	"net/http"

	"fundmyfuture/internal/core/port"
)

type newsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// handleNewsletterSubscribe registers a newsletter address. Subscribing
// twice is fine; the welcome mail is only queued for new addresses.
func (h *Handler) handleNewsletterSubscribe(w http.ResponseWriter, r *http.Request) {
	var req newsletterRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	if err := h.svc.SubscribeNewsletter(r.Context(), req.Email); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "subscribed"})
}

type contactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,max=2000"`
}

// handleContact accepts a contact-form submission and queues the
// confirmation mail.
func (h *Handler) handleContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	err := h.svc.SubmitContact(r.Context(), port.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "received"})
}
