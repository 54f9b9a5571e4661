package port

import (
	"context"
	"time"

	"fundmyfuture/internal/core/domain"
)

// LedgerRepository defines the persistence layer for the funding ledger.
// It is an outbound port in hexagonal architecture. Implementations must
// be concurrency-safe: ApplyDonation runs its read-check-increment
// sequence atomically scoped to a single campaign, and deduplication by
// external transaction id is enforced by the storage layer, not by an
// application-level pre-check.
type LedgerRepository interface {
	// CreateCampaign persists a new campaign in pending state.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// GetCampaign returns a campaign by id, or nil when absent.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	// UpdateCampaign persists the descriptive fields of a campaign.
	// Money aggregates, state and verification are out of its reach.
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error
	// ListCampaigns returns campaigns matching the filter, newest first.
	ListCampaigns(ctx context.Context, f CampaignFilter) ([]domain.Campaign, error)

	// CreatePendingDonation stores a donation awaiting gateway
	// confirmation. The external transaction id must be unique.
	CreatePendingDonation(ctx context.Context, d *domain.Donation) error
	// ApplyDonation records a completed donation and updates the
	// campaign's aggregates in one atomic unit: it flips a matching
	// pending donation to completed (or inserts a completed donation when
	// none exists), increments the running total and donor count, and
	// transitions the campaign to completed when the goal is reached.
	// A donation already completed under the same external transaction id
	// yields a Deduplicated outcome and touches nothing.
	ApplyDonation(ctx context.Context, app DonationApplication) (*DonationOutcome, error)
	// MarkDonationFailed moves a pending donation to failed. Unknown or
	// already-settled transactions are a no-op.
	MarkDonationFailed(ctx context.Context, externalTxnID string) error
	// FindDonationByTxnID returns the donation holding the external
	// transaction id, or nil when absent.
	FindDonationByTxnID(ctx context.Context, externalTxnID string) (*domain.Donation, error)
	// ListCampaignDonations returns completed donations for a campaign,
	// newest first.
	ListCampaignDonations(ctx context.Context, campaignID string) ([]domain.Donation, error)

	// SetVerification applies the verification decision to a pending
	// campaign: approved moves it to active, otherwise rejected. Returns
	// false when the campaign exists but is not pending.
	SetVerification(ctx context.Context, campaignID string, approved bool) (bool, error)
	// ListExpired returns ids of active campaigns whose end time has
	// passed at the given instant.
	ListExpired(ctx context.Context, now time.Time) ([]string, error)
	// CompleteCampaign transitions a single active campaign to completed.
	// Returns false when the campaign is no longer active, which makes
	// the expiry sweep idempotent and safe against concurrent donations.
	CompleteCampaign(ctx context.Context, campaignID string) (bool, error)

	// GetStats returns aggregated donation statistics for a period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)

	// EnqueueMail appends one message to the mail queue.
	EnqueueMail(ctx context.Context, m domain.MailMessage) error
	// SubscribeNewsletter registers an email address, idempotently.
	// Returns false when the address was already subscribed.
	SubscribeNewsletter(ctx context.Context, email string) (bool, error)
}

// DonationApplication carries everything ApplyDonation needs to record a
// completed donation. DonationID is used only when no pending donation
// exists for the external transaction id.
type DonationApplication struct {
	DonationID    string
	CampaignID    string
	FunderID      *string
	FunderEmail   *string
	Amount        domain.Money
	Message       string
	Anonymous     bool
	ExternalTxnID string
}

// DonationOutcome reports the effect of applying a donation.
type DonationOutcome struct {
	DonationID string
	// NewTotal is the campaign's running total after the apply (or the
	// unchanged total when deduplicated).
	NewTotal domain.Money
	// Deduplicated is set when the external transaction id had already
	// been applied; the call was a no-op treated as success.
	Deduplicated bool
	// GoalReached is set when this apply pushed the total past the goal
	// and transitioned the campaign to completed.
	GoalReached bool
}

// CampaignFilter narrows ListCampaigns. Nil fields are ignored.
type CampaignFilter struct {
	State     *domain.CampaignState
	Featured  *bool
	StudentID *string
	Limit     int
}

// StatsReq selects the period and optional campaign for GetStats.
type StatsReq struct {
	From       time.Time
	To         time.Time
	CampaignID *string
}

// StatsResp aggregates completed donations: how many and how much, in
// minor units.
type StatsResp struct {
	Donations   int64
	RaisedCents int64
}
