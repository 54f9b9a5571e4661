package usecase

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fundmyfuture/internal/core/domain"
	"fundmyfuture/internal/core/port"
	"fundmyfuture/internal/core/port/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func activeCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:         "camp-1",
		StudentID:  "student-1",
		OwnerEmail: "student@example.com",
		Title:      "Tuition for final year",
		Goal:       domain.NewMoney(1000, "ZAR"),
		Current:    domain.NewMoney(900, "ZAR"),
		State:      domain.CampaignActive,
	}
}

func strptr(s string) *string { return &s }

// TestRecordDonationGoalCrossing checks that a donation pushing the
// total past the goal reports the completed transition and queues both
// notification mails.
func TestRecordDonationGoalCrossing(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	gateway := mocks.NewMockPaymentGateway(t)
	c := activeCampaign()

	repo.EXPECT().GetCampaign(mock.Anything, "camp-1").Return(c, nil)
	repo.EXPECT().
		ApplyDonation(mock.Anything, mock.AnythingOfType("port.DonationApplication")).
		Return(&port.DonationOutcome{
			DonationID:  "don-1",
			NewTotal:    domain.NewMoney(1050, "ZAR"),
			GoalReached: true,
		}, nil)
	// thank-you to the funder plus goal-reached to the owner
	repo.EXPECT().EnqueueMail(mock.Anything, mock.AnythingOfType("domain.MailMessage")).Return(nil)

	svc := NewLedgerService(repo, gateway, testLogger())
	out, err := svc.RecordDonation(context.Background(), port.RecordDonationInput{
		CampaignID:    "camp-1",
		FunderEmail:   strptr("funder@example.com"),
		Amount:        domain.NewMoney(150, "ZAR"),
		ExternalTxnID: "txn-1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1050), out.NewTotal.Cents)
	assert.True(t, out.GoalReached)
	assert.False(t, out.Deduplicated)
	repo.AssertNumberOfCalls(t, "EnqueueMail", 2)
}

// TestRecordDonationIdempotent checks that a repeated delivery of the
// same external transaction id is reported as success without mails.
func TestRecordDonationIdempotent(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	gateway := mocks.NewMockPaymentGateway(t)

	repo.EXPECT().GetCampaign(mock.Anything, "camp-1").Return(activeCampaign(), nil)
	repo.EXPECT().
		ApplyDonation(mock.Anything, mock.AnythingOfType("port.DonationApplication")).
		Return(&port.DonationOutcome{
			DonationID:   "don-1",
			NewTotal:     domain.NewMoney(1050, "ZAR"),
			Deduplicated: true,
		}, nil)

	svc := NewLedgerService(repo, gateway, testLogger())
	out, err := svc.RecordDonation(context.Background(), port.RecordDonationInput{
		CampaignID:    "camp-1",
		FunderEmail:   strptr("funder@example.com"),
		Amount:        domain.NewMoney(150, "ZAR"),
		ExternalTxnID: "txn-1",
	})
	require.NoError(t, err)
	assert.True(t, out.Deduplicated)
	assert.Equal(t, "don-1", out.DonationID)
	repo.AssertNotCalled(t, "EnqueueMail", mock.Anything, mock.Anything)
}

// TestRecordDonationValidation covers the terminal validation failures.
func TestRecordDonationValidation(t *testing.T) {
	t.Run("non-positive amount", func(t *testing.T) {
		repo := mocks.NewMockLedgerRepository(t)
		gateway := mocks.NewMockPaymentGateway(t)
		repo.EXPECT().GetCampaign(mock.Anything, "camp-1").Return(activeCampaign(), nil)

		svc := NewLedgerService(repo, gateway, testLogger())
		_, err := svc.RecordDonation(context.Background(), port.RecordDonationInput{
			CampaignID:    "camp-1",
			Amount:        domain.NewMoney(0, "ZAR"),
			ExternalTxnID: "txn-1",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
		repo.AssertNotCalled(t, "ApplyDonation", mock.Anything, mock.Anything)
	})

	t.Run("currency mismatch", func(t *testing.T) {
		repo := mocks.NewMockLedgerRepository(t)
		gateway := mocks.NewMockPaymentGateway(t)
		repo.EXPECT().GetCampaign(mock.Anything, "camp-1").Return(activeCampaign(), nil)

		svc := NewLedgerService(repo, gateway, testLogger())
		_, err := svc.RecordDonation(context.Background(), port.RecordDonationInput{
			CampaignID:    "camp-1",
			Amount:        domain.NewMoney(150, "USD"),
			ExternalTxnID: "txn-1",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	t.Run("unknown campaign", func(t *testing.T) {
		repo := mocks.NewMockLedgerRepository(t)
		gateway := mocks.NewMockPaymentGateway(t)
		repo.EXPECT().GetCampaign(mock.Anything, "nope").Return(nil, nil)

		svc := NewLedgerService(repo, gateway, testLogger())
		_, err := svc.RecordDonation(context.Background(), port.RecordDonationInput{
			CampaignID:    "nope",
			Amount:        domain.NewMoney(150, "ZAR"),
			ExternalTxnID: "txn-1",
		})
		assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
	})
}

// TestRecordDonationClosedCampaign propagates the authoritative state
// gate from the storage transaction.
func TestRecordDonationClosedCampaign(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	gateway := mocks.NewMockPaymentGateway(t)
	c := activeCampaign()

	repo.EXPECT().GetCampaign(mock.Anything, "camp-1").Return(c, nil)
	repo.EXPECT().
		ApplyDonation(mock.Anything, mock.AnythingOfType("port.DonationApplication")).
		Return(nil, domain.ErrCampaignClosed)

	svc := NewLedgerService(repo, gateway, testLogger())
	_, err := svc.RecordDonation(context.Background(), port.RecordDonationInput{
		CampaignID:    "camp-1",
		Amount:        domain.NewMoney(150, "ZAR"),
		ExternalTxnID: "txn-1",
	})
	assert.ErrorIs(t, err, domain.ErrCampaignClosed)
	repo.AssertNotCalled(t, "EnqueueMail", mock.Anything, mock.Anything)
}

// TestConcurrentDonations simulates N concurrent settlements with
// distinct transaction ids: every increment must land, none lost.
func TestConcurrentDonations(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	gateway := mocks.NewMockPaymentGateway(t)

	c := activeCampaign()
	c.Goal = domain.NewMoney(10_000_000, "ZAR") // keep the goal out of reach

	var (
		mu    sync.Mutex
		total = c.Current.Cents
	)
	repo.EXPECT().GetCampaign(mock.Anything, "camp-1").Return(c, nil)
	repo.EXPECT().
		ApplyDonation(mock.Anything, mock.AnythingOfType("port.DonationApplication")).
		RunAndReturn(func(ctx context.Context, app port.DonationApplication) (*port.DonationOutcome, error) {
			mu.Lock()
			defer mu.Unlock()
			total += app.Amount.Cents
			return &port.DonationOutcome{
				DonationID: app.DonationID,
				NewTotal:   domain.NewMoney(total, "ZAR"),
			}, nil
		})

	svc := NewLedgerService(repo, gateway, testLogger())

	const n = 10
	const amount = int64(100)
	before := total
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := svc.RecordDonation(context.Background(), port.RecordDonationInput{
				CampaignID:    "camp-1",
				Amount:        domain.NewMoney(amount, "ZAR"),
				ExternalTxnID: "txn-" + string(rune('a'+i)),
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, before+n*amount, total, "no lost updates")
}

// TestCreateDonationIntent opens a checkout after the pending donation
// is stored; a closed campaign never reaches the gateway.
func TestCreateDonationIntent(t *testing.T) {
	t.Run("active campaign", func(t *testing.T) {
		repo := mocks.NewMockLedgerRepository(t)
		gateway := mocks.NewMockPaymentGateway(t)

		repo.EXPECT().GetCampaign(mock.Anything, "camp-1").Return(activeCampaign(), nil)
		repo.EXPECT().CreatePendingDonation(mock.Anything, mock.AnythingOfType("*domain.Donation")).Return(nil)
		gateway.EXPECT().
			CreateCheckout(mock.Anything, mock.AnythingOfType("string"), domain.NewMoney(150, "ZAR"), "").
			Return("https://pay.example/redirect", nil)

		svc := NewLedgerService(repo, gateway, testLogger())
		intent, err := svc.CreateDonationIntent(context.Background(), port.DonationIntentInput{
			CampaignID: "camp-1",
			Amount:     domain.NewMoney(150, "ZAR"),
			Anonymous:  true,
		})
		require.NoError(t, err)
		assert.Equal(t, "https://pay.example/redirect", intent.RedirectURL)
		assert.NotEmpty(t, intent.OrderID)
	})

	t.Run("pending campaign rejected", func(t *testing.T) {
		repo := mocks.NewMockLedgerRepository(t)
		gateway := mocks.NewMockPaymentGateway(t)

		c := activeCampaign()
		c.State = domain.CampaignPending
		repo.EXPECT().GetCampaign(mock.Anything, "camp-1").Return(c, nil)

		svc := NewLedgerService(repo, gateway, testLogger())
		_, err := svc.CreateDonationIntent(context.Background(), port.DonationIntentInput{
			CampaignID: "camp-1",
			Amount:     domain.NewMoney(150, "ZAR"),
		})
		assert.ErrorIs(t, err, domain.ErrCampaignClosed)
		repo.AssertNotCalled(t, "CreatePendingDonation", mock.Anything, mock.Anything)
	})
}

// TestSettlePayment covers the webhook consumption paths.
func TestSettlePayment(t *testing.T) {
	settled := port.PaymentNotification{
		OrderID:           "DON-1",
		TransactionStatus: "settlement",
	}

	t.Run("signature failure", func(t *testing.T) {
		repo := mocks.NewMockLedgerRepository(t)
		gateway := mocks.NewMockPaymentGateway(t)
		gateway.EXPECT().VerifyNotification(settled).Return(domain.ErrUnauthenticated)

		svc := NewLedgerService(repo, gateway, testLogger())
		_, err := svc.SettlePayment(context.Background(), settled)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("terminal failure marks donation failed", func(t *testing.T) {
		repo := mocks.NewMockLedgerRepository(t)
		gateway := mocks.NewMockPaymentGateway(t)
		n := port.PaymentNotification{OrderID: "DON-1", TransactionStatus: "expire"}
		gateway.EXPECT().VerifyNotification(n).Return(nil)
		repo.EXPECT().MarkDonationFailed(mock.Anything, "DON-1").Return(nil)

		svc := NewLedgerService(repo, gateway, testLogger())
		out, err := svc.SettlePayment(context.Background(), n)
		require.NoError(t, err)
		assert.Nil(t, out)
	})

	t.Run("non-settlement ignored", func(t *testing.T) {
		repo := mocks.NewMockLedgerRepository(t)
		gateway := mocks.NewMockPaymentGateway(t)
		n := port.PaymentNotification{OrderID: "DON-1", TransactionStatus: "pending"}
		gateway.EXPECT().VerifyNotification(n).Return(nil)

		svc := NewLedgerService(repo, gateway, testLogger())
		out, err := svc.SettlePayment(context.Background(), n)
		require.NoError(t, err)
		assert.Nil(t, out)
	})

	t.Run("unknown order", func(t *testing.T) {
		repo := mocks.NewMockLedgerRepository(t)
		gateway := mocks.NewMockPaymentGateway(t)
		gateway.EXPECT().VerifyNotification(settled).Return(nil)
		repo.EXPECT().FindDonationByTxnID(mock.Anything, "DON-1").Return(nil, nil)

		svc := NewLedgerService(repo, gateway, testLogger())
		_, err := svc.SettlePayment(context.Background(), settled)
		assert.ErrorIs(t, err, domain.ErrDonationNotFound)
	})

	t.Run("settlement applies pending donation", func(t *testing.T) {
		repo := mocks.NewMockLedgerRepository(t)
		gateway := mocks.NewMockPaymentGateway(t)

		gateway.EXPECT().VerifyNotification(settled).Return(nil)
		repo.EXPECT().FindDonationByTxnID(mock.Anything, "DON-1").Return(&domain.Donation{
			ID:            "don-1",
			CampaignID:    "camp-1",
			Amount:        domain.NewMoney(150, "ZAR"),
			Status:        domain.PaymentPending,
			ExternalTxnID: "DON-1",
		}, nil)
		repo.EXPECT().GetCampaign(mock.Anything, "camp-1").Return(activeCampaign(), nil)
		repo.EXPECT().
			ApplyDonation(mock.Anything, mock.AnythingOfType("port.DonationApplication")).
			Return(&port.DonationOutcome{DonationID: "don-1", NewTotal: domain.NewMoney(1050, "ZAR")}, nil)

		svc := NewLedgerService(repo, gateway, testLogger())
		out, err := svc.SettlePayment(context.Background(), settled)
		require.NoError(t, err)
		assert.Equal(t, "don-1", out.DonationID)
	})
}

// TestUpdateCampaign covers the owner-edit path: only the owning
// student may edit, terminal campaigns are frozen, and only the
// descriptive fields move.
func TestUpdateCampaign(t *testing.T) {
	t.Run("owner edits title", func(t *testing.T) {
		repo := mocks.NewMockLedgerRepository(t)
		gateway := mocks.NewMockPaymentGateway(t)

		repo.EXPECT().GetCampaign(mock.Anything, "camp-1").Return(activeCampaign(), nil)
		repo.EXPECT().UpdateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).Return(nil)

		svc := NewLedgerService(repo, gateway, testLogger())
		c, err := svc.UpdateCampaign(context.Background(), "camp-1", "student-1", port.UpdateCampaignInput{
			Title: strptr("Tuition and textbooks"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Tuition and textbooks", c.Title)
		// untouched fields keep their stored values
		assert.Equal(t, int64(1000), c.Goal.Cents)
		assert.Equal(t, domain.CampaignActive, c.State)
	})

	t.Run("not the owner", func(t *testing.T) {
		repo := mocks.NewMockLedgerRepository(t)
		gateway := mocks.NewMockPaymentGateway(t)
		repo.EXPECT().GetCampaign(mock.Anything, "camp-1").Return(activeCampaign(), nil)

		svc := NewLedgerService(repo, gateway, testLogger())
		_, err := svc.UpdateCampaign(context.Background(), "camp-1", "someone-else", port.UpdateCampaignInput{
			Title: strptr("hijacked"),
		})
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)
		repo.AssertNotCalled(t, "UpdateCampaign", mock.Anything, mock.Anything)
	})

	t.Run("terminal campaign frozen", func(t *testing.T) {
		repo := mocks.NewMockLedgerRepository(t)
		gateway := mocks.NewMockPaymentGateway(t)

		c := activeCampaign()
		c.State = domain.CampaignCompleted
		repo.EXPECT().GetCampaign(mock.Anything, "camp-1").Return(c, nil)

		svc := NewLedgerService(repo, gateway, testLogger())
		_, err := svc.UpdateCampaign(context.Background(), "camp-1", "student-1", port.UpdateCampaignInput{
			Description: strptr("still going!"),
		})
		assert.ErrorIs(t, err, domain.ErrCampaignClosed)
		repo.AssertNotCalled(t, "UpdateCampaign", mock.Anything, mock.Anything)
	})
}

// TestVerifyCampaign covers the verification gate, including the
// rejection-is-terminal property.
func TestVerifyCampaign(t *testing.T) {
	t.Run("rejection", func(t *testing.T) {
		repo := mocks.NewMockLedgerRepository(t)
		gateway := mocks.NewMockPaymentGateway(t)

		c := activeCampaign()
		c.State = domain.CampaignPending
		repo.EXPECT().GetCampaign(mock.Anything, "camp-1").Return(c, nil)
		repo.EXPECT().SetVerification(mock.Anything, "camp-1", false).Return(true, nil)
		repo.EXPECT().EnqueueMail(mock.Anything, mock.AnythingOfType("domain.MailMessage")).Return(nil)

		svc := NewLedgerService(repo, gateway, testLogger())
		require.NoError(t, svc.VerifyCampaign(context.Background(), "camp-1", false, "admin-1"))
	})

	t.Run("approve after rejection fails", func(t *testing.T) {
		repo := mocks.NewMockLedgerRepository(t)
		gateway := mocks.NewMockPaymentGateway(t)

		c := activeCampaign()
		c.State = domain.CampaignRejected
		repo.EXPECT().GetCampaign(mock.Anything, "camp-1").Return(c, nil)
		repo.EXPECT().SetVerification(mock.Anything, "camp-1", true).Return(false, nil)

		svc := NewLedgerService(repo, gateway, testLogger())
		err := svc.VerifyCampaign(context.Background(), "camp-1", true, "admin-1")
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("missing admin id", func(t *testing.T) {
		repo := mocks.NewMockLedgerRepository(t)
		gateway := mocks.NewMockPaymentGateway(t)

		svc := NewLedgerService(repo, gateway, testLogger())
		err := svc.VerifyCampaign(context.Background(), "camp-1", true, "")
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)
		repo.AssertNotCalled(t, "SetVerification", mock.Anything, mock.Anything, mock.Anything)
	})
}

// TestSweepExpiredCampaigns checks that one failing transition does not
// sink the batch and that an immediate re-run is a no-op.
func TestSweepExpiredCampaigns(t *testing.T) {
	now := time.Now().UTC()

	t.Run("partial failure", func(t *testing.T) {
		repo := mocks.NewMockLedgerRepository(t)
		gateway := mocks.NewMockPaymentGateway(t)

		repo.EXPECT().ListExpired(mock.Anything, now).Return([]string{"a", "b", "c"}, nil)
		repo.EXPECT().CompleteCampaign(mock.Anything, "a").Return(true, nil)
		// already completed by a concurrent goal-crossing donation
		repo.EXPECT().CompleteCampaign(mock.Anything, "b").Return(false, nil)
		repo.EXPECT().CompleteCampaign(mock.Anything, "c").Return(false, domain.ErrStorageUnavailable)

		svc := NewLedgerService(repo, gateway, testLogger())
		count, err := svc.SweepExpiredCampaigns(context.Background(), now)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("rerun is a no-op", func(t *testing.T) {
		repo := mocks.NewMockLedgerRepository(t)
		gateway := mocks.NewMockPaymentGateway(t)

		repo.EXPECT().ListExpired(mock.Anything, now).Return(nil, nil)

		svc := NewLedgerService(repo, gateway, testLogger())
		count, err := svc.SweepExpiredCampaigns(context.Background(), now)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

// TestSubscribeNewsletter only queues the welcome mail for a fresh
// subscription.
func TestSubscribeNewsletter(t *testing.T) {
	t.Run("fresh", func(t *testing.T) {
		repo := mocks.NewMockLedgerRepository(t)
		gateway := mocks.NewMockPaymentGateway(t)
		repo.EXPECT().SubscribeNewsletter(mock.Anything, "a@b.com").Return(true, nil)
		repo.EXPECT().EnqueueMail(mock.Anything, mock.AnythingOfType("domain.MailMessage")).Return(nil)

		svc := NewLedgerService(repo, gateway, testLogger())
		require.NoError(t, svc.SubscribeNewsletter(context.Background(), "a@b.com"))
	})

	t.Run("repeat", func(t *testing.T) {
		repo := mocks.NewMockLedgerRepository(t)
		gateway := mocks.NewMockPaymentGateway(t)
		repo.EXPECT().SubscribeNewsletter(mock.Anything, "a@b.com").Return(false, nil)

		svc := NewLedgerService(repo, gateway, testLogger())
		require.NoError(t, svc.SubscribeNewsletter(context.Background(), "a@b.com"))
		repo.AssertNotCalled(t, "EnqueueMail", mock.Anything, mock.Anything)
	})
}
