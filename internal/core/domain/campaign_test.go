package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidTransition(t *testing.T) {
	cases := []struct {
		from, to CampaignState
		ok       bool
	}{
		{CampaignPending, CampaignActive, true},
		{CampaignPending, CampaignRejected, true},
		{CampaignActive, CampaignCompleted, true},
		{CampaignPending, CampaignCompleted, false},
		{CampaignActive, CampaignRejected, false},
		{CampaignActive, CampaignPending, false},
		{CampaignCompleted, CampaignActive, false},
		{CampaignRejected, CampaignActive, false},
		{CampaignRejected, CampaignRejected, false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.ok, ValidTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTransition(t *testing.T) {
	c := &Campaign{State: CampaignPending}
	assert.NoError(t, c.Transition(CampaignActive))
	assert.Equal(t, CampaignActive, c.State)

	err := c.Transition(CampaignRejected)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, CampaignActive, c.State, "state untouched on invalid transition")
}

func TestAcceptsDonations(t *testing.T) {
	for _, tc := range []struct {
		state CampaignState
		want  bool
	}{
		{CampaignPending, false},
		{CampaignActive, true},
		{CampaignCompleted, false},
		{CampaignRejected, false},
	} {
		c := &Campaign{State: tc.state}
		assert.Equalf(t, tc.want, c.AcceptsDonations(), "state %s", tc.state)
	}
}

func TestGoalReached(t *testing.T) {
	c := &Campaign{
		Goal:    NewMoney(100000, "ZAR"),
		Current: NewMoney(99999, "ZAR"),
	}
	assert.False(t, c.GoalReached())
	c.Current = NewMoney(100000, "ZAR")
	assert.True(t, c.GoalReached())
}

func TestExpired(t *testing.T) {
	now := time.Now()

	open := &Campaign{}
	assert.False(t, open.Expired(now), "no end time never expires")

	past := now.Add(-time.Hour)
	assert.True(t, (&Campaign{EndTime: &past}).Expired(now))

	future := now.Add(time.Hour)
	assert.False(t, (&Campaign{EndTime: &future}).Expired(now))

	exact := now
	assert.True(t, (&Campaign{EndTime: &exact}).Expired(now), "end time equal to now counts as expired")
}
