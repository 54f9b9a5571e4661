package domain

import (
	"fmt"
	"time"
)

// CampaignState is the lifecycle state of a funding campaign.
type CampaignState string

const (
	// CampaignPending awaits an administrative verification decision.
	CampaignPending CampaignState = "pending"
	// CampaignActive is verified and accepting donations.
	CampaignActive CampaignState = "active"
	// CampaignCompleted reached its goal or passed its end time. Terminal.
	CampaignCompleted CampaignState = "completed"
	// CampaignRejected failed verification. Terminal.
	CampaignRejected CampaignState = "rejected"
)

// Campaign represents a student's funding request.
// Amounts are stored in integer minor units (cents).
type Campaign struct {
	ID          string
	StudentID   string
	OwnerEmail  string
	Title       string
	Description string
	Category    string
	Institution string
	Course      string
	YearOfStudy int
	Goal        Money
	Current     Money
	// DonorCount counts completed donations, not unique funders;
	// the column name is kept for continuity with the stored schema.
	DonorCount int
	State      CampaignState
	Verified   bool
	Featured   bool
	EndTime    *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AcceptsDonations reports whether the campaign may receive donations.
// Only active campaigns accept; completed campaigns reject overflow
// donations past the goal.
func (c *Campaign) AcceptsDonations() bool {
	return c.State == CampaignActive
}

// GoalReached reports whether the running total has met or exceeded the goal.
func (c *Campaign) GoalReached() bool {
	return c.Current.GTE(c.Goal)
}

// Expired reports whether an end time is set and has passed.
func (c *Campaign) Expired(now time.Time) bool {
	return c.EndTime != nil && !now.Before(*c.EndTime)
}

// ValidTransition reports whether moving from one state to another is
// permitted by the campaign lifecycle.
func ValidTransition(from, to CampaignState) bool {
	switch from {
	case CampaignPending:
		return to == CampaignActive || to == CampaignRejected
	case CampaignActive:
		return to == CampaignCompleted
	default:
		// completed and rejected are terminal
		return false
	}
}

// Transition applies a state change in place, failing with
// ErrInvalidTransition when the lifecycle forbids it.
func (c *Campaign) Transition(to CampaignState) error {
	if !ValidTransition(c.State, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.State, to)
	}
	c.State = to
	return nil
}
