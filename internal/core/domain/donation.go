package domain

import "time"

// PaymentStatus is the settlement state of a donation.
type PaymentStatus string

const (
	// PaymentPending is the initial state of a donation awaiting
	// gateway confirmation.
	PaymentPending PaymentStatus = "pending"
	// PaymentCompleted marks a donation that has been applied exactly
	// once to its campaign's aggregates.
	PaymentCompleted PaymentStatus = "completed"
	// PaymentFailed marks a donation whose payment did not settle. Never
	// applied to aggregates.
	PaymentFailed PaymentStatus = "failed"
)

// Donation is an immutable record of a single funding event. The only
// permitted mutation after creation is the status transition
// pending -> completed or pending -> failed. ExternalTxnID is the
// idempotency key deduplicating repeated webhook deliveries.
type Donation struct {
	ID            string
	CampaignID    string
	FunderID      *string
	FunderEmail   *string
	Amount        Money
	Message       string
	Anonymous     bool
	Status        PaymentStatus
	ExternalTxnID string
	CreatedAt     time.Time
}

// DisplayName returns the funder identity suitable for public listing,
// honouring the anonymous flag.
func (d *Donation) DisplayName() string {
	if d.Anonymous || d.FunderID == nil {
		return "Anonymous"
	}
	return *d.FunderID
}
