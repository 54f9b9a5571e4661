package domain

import "errors"

// Domain errors are pure — no infrastructure dependency. Adapters wrap
// them with context and the HTTP layer maps them to status codes.
var (
	// Validation errors — terminal for the call, never retried.
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrDonationNotFound  = errors.New("donation not found")
	ErrCampaignClosed    = errors.New("campaign is not accepting donations")
	ErrInvalidTransition = errors.New("invalid campaign state transition")

	// Authorization errors.
	ErrPermissionDenied = errors.New("permission denied")
	ErrUnauthenticated  = errors.New("unauthenticated")

	// Money errors.
	ErrUnderflow = errors.New("amount underflow")

	// ErrStorageUnavailable marks transient storage failures. The only
	// class the caller may retry with backoff; the ledger never loops
	// internally.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
