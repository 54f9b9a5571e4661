package port

import (
	"context"
	"time"

	"fundmyfuture/internal/core/domain"
)

// Ledger defines the business operations of the funding ledger. This is
// the primary port into the application domain. Mock implementations can
// be generated from this interface for testing.
type Ledger interface {
	// CreateCampaign registers a new campaign in pending state awaiting
	// verification.
	CreateCampaign(ctx context.Context, in CreateCampaignInput) (*domain.Campaign, error)
	// GetCampaign fetches one campaign.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	// UpdateCampaign lets the owning student change the descriptive
	// fields of a campaign that is not in a terminal state. Goal, state
	// and aggregates are never updatable.
	UpdateCampaign(ctx context.Context, campaignID, studentID string, in UpdateCampaignInput) (*domain.Campaign, error)
	// ListCampaigns browses campaigns, newest first.
	ListCampaigns(ctx context.Context, f CampaignFilter) ([]domain.Campaign, error)
	// ListDonations returns the completed donations of a campaign.
	ListDonations(ctx context.Context, campaignID string) ([]domain.Donation, error)

	// CreateDonationIntent stores a pending donation and opens a checkout
	// session with the payment gateway, returning the redirect URL.
	CreateDonationIntent(ctx context.Context, in DonationIntentInput) (*DonationIntent, error)
	// RecordDonation applies a confirmed donation to its campaign.
	// Idempotent on the external transaction id: repeated delivery
	// returns the existing donation id as success.
	RecordDonation(ctx context.Context, in RecordDonationInput) (*DonationOutcome, error)
	// SettlePayment consumes a verified gateway notification, completing
	// or failing the referenced donation. The outcome is nil for
	// non-settlement events.
	SettlePayment(ctx context.Context, n PaymentNotification) (*DonationOutcome, error)

	// VerifyCampaign applies an administrative verification decision.
	// The privilege check happens upstream; adminID is recorded for audit.
	VerifyCampaign(ctx context.Context, campaignID string, approved bool, adminID string) error
	// SweepExpiredCampaigns completes every active campaign past its end
	// time and reports how many transitioned. Individual failures are
	// logged and skipped.
	SweepExpiredCampaigns(ctx context.Context, now time.Time) (int, error)

	// GetStats aggregates completed donations over a period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
	// SubscribeNewsletter registers an address and queues a welcome mail.
	SubscribeNewsletter(ctx context.Context, email string) error
	// SubmitContact queues a confirmation mail for a contact-form message.
	SubmitContact(ctx context.Context, in ContactInput) error
}

// CreateCampaignInput is the validated payload for CreateCampaign.
type CreateCampaignInput struct {
	StudentID   string
	OwnerEmail  string
	Title       string
	Description string
	Category    string
	Institution string
	Course      string
	YearOfStudy int
	Goal        domain.Money
	EndTime     *time.Time
}

// UpdateCampaignInput carries the owner-editable campaign fields. Nil
// pointers leave the stored value untouched.
type UpdateCampaignInput struct {
	Title       *string
	Description *string
	Category    *string
	Institution *string
	Course      *string
	YearOfStudy *int
	EndTime     *time.Time
}

// DonationIntentInput starts a checkout for a campaign donation.
type DonationIntentInput struct {
	CampaignID  string
	FunderID    *string
	FunderEmail *string
	Amount      domain.Money
	Message     string
	Anonymous   bool
}

// DonationIntent is the result of opening a checkout session.
type DonationIntent struct {
	DonationID  string
	OrderID     string
	RedirectURL string
}

// RecordDonationInput applies a confirmed payment to a campaign.
type RecordDonationInput struct {
	CampaignID    string
	FunderID      *string
	FunderEmail   *string
	Amount        domain.Money
	Message       string
	Anonymous     bool
	ExternalTxnID string
}

// ContactInput is a contact-form submission.
type ContactInput struct {
	Name    string
	Email   string
	Message string
}
