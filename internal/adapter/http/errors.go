package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"fundmyfuture/internal/core/domain"
)

// errStatus maps a domain error to an HTTP status and a short
// human-readable message. Internal error detail never reaches the
// browser; it is logged server-side instead.
func errStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, "Invalid amount"
	case errors.Is(err, domain.ErrCampaignNotFound):
		return http.StatusNotFound, "Campaign not found"
	case errors.Is(err, domain.ErrDonationNotFound):
		return http.StatusNotFound, "Donation not found"
	case errors.Is(err, domain.ErrCampaignClosed):
		return http.StatusConflict, "This campaign is no longer accepting donations"
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, "This campaign cannot be updated that way"
	case errors.Is(err, domain.ErrPermissionDenied):
		return http.StatusForbidden, "Permission denied"
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "Unauthenticated"
	default:
		return http.StatusInternalServerError, "Something went wrong, please try again later"
	}
}

// writeError logs the full error and answers with its mapped status.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := errStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("path", r.URL.Path), slog.Any("error", err))
	}
	h.writeJSON(w, status, map[string]string{"error": msg})
}
