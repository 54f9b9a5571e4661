package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"fundmyfuture/internal/core/domain"
	"fundmyfuture/internal/core/port"
)

// LedgerService implements the funding ledger business logic. It
// orchestrates the repository and the payment gateway; all atomicity
// guarantees live at the storage transaction boundary, so the service
// itself holds no shared state and is safe for concurrent use.
type LedgerService struct {
	repo    port.LedgerRepository
	gateway port.PaymentGateway
	logger  *slog.Logger
}

// NewLedgerService creates the service with its dependencies injected.
func NewLedgerService(repo port.LedgerRepository, gateway port.PaymentGateway, logger *slog.Logger) *LedgerService {
	return &LedgerService{repo: repo, gateway: gateway, logger: logger}
}

// CreateCampaign registers a new campaign in pending state and queues a
// submission confirmation for the owner.
func (s *LedgerService) CreateCampaign(ctx context.Context, in port.CreateCampaignInput) (*domain.Campaign, error) {
	if !in.Goal.IsPositive() {
		return nil, fmt.Errorf("%w: goal must be positive", domain.ErrInvalidAmount)
	}
	now := time.Now().UTC()
	c := &domain.Campaign{
		ID:          uuid.NewString(),
		StudentID:   in.StudentID,
		OwnerEmail:  in.OwnerEmail,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Institution: in.Institution,
		Course:      in.Course,
		YearOfStudy: in.YearOfStudy,
		Goal:        in.Goal,
		Current:     domain.NewMoney(0, in.Goal.Currency),
		State:       domain.CampaignPending,
		EndTime:     in.EndTime,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.CreateCampaign(ctx, c); err != nil {
		return nil, err
	}
	s.logger.Info("campaign created", slog.String("campaign_id", c.ID), slog.String("student_id", c.StudentID))
	if c.OwnerEmail != "" {
		s.enqueueMail(ctx, domain.MailMessage{
			To:      c.OwnerEmail,
			Subject: "Your campaign has been submitted",
			Text:    fmt.Sprintf("Your campaign %q was submitted and is awaiting verification.", c.Title),
			HTML:    fmt.Sprintf("<p>Your campaign <strong>%s</strong> was submitted and is awaiting verification.</p>", c.Title),
		})
	}
	return c, nil
}

// GetCampaign fetches one campaign.
func (s *LedgerService) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := s.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrCampaignNotFound, id)
	}
	return c, nil
}

// UpdateCampaign applies owner edits to the descriptive fields of a
// campaign. Only the owning student may edit, and terminal campaigns
// are frozen. Goal, state and aggregates are not editable.
func (s *LedgerService) UpdateCampaign(ctx context.Context, campaignID, studentID string, in port.UpdateCampaignInput) (*domain.Campaign, error) {
	c, err := s.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if studentID == "" || c.StudentID != studentID {
		return nil, fmt.Errorf("%w: campaign %s is not owned by %q", domain.ErrPermissionDenied, campaignID, studentID)
	}
	if c.State == domain.CampaignCompleted || c.State == domain.CampaignRejected {
		return nil, fmt.Errorf("%w: campaign %s is %s", domain.ErrCampaignClosed, campaignID, c.State)
	}

	if in.Title != nil {
		c.Title = *in.Title
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.Category != nil {
		c.Category = *in.Category
	}
	if in.Institution != nil {
		c.Institution = *in.Institution
	}
	if in.Course != nil {
		c.Course = *in.Course
	}
	if in.YearOfStudy != nil {
		c.YearOfStudy = *in.YearOfStudy
	}
	if in.EndTime != nil {
		c.EndTime = in.EndTime
	}
	if err = s.repo.UpdateCampaign(ctx, c); err != nil {
		return nil, err
	}
	c.UpdatedAt = time.Now().UTC()
	s.logger.Info("campaign updated", slog.String("campaign_id", campaignID), slog.String("student_id", studentID))
	return c, nil
}

// ListCampaigns browses campaigns, newest first.
func (s *LedgerService) ListCampaigns(ctx context.Context, f port.CampaignFilter) ([]domain.Campaign, error) {
	return s.repo.ListCampaigns(ctx, f)
}

// ListDonations returns the completed donations of a campaign.
func (s *LedgerService) ListDonations(ctx context.Context, campaignID string) ([]domain.Donation, error) {
	if _, err := s.GetCampaign(ctx, campaignID); err != nil {
		return nil, err
	}
	return s.repo.ListCampaignDonations(ctx, campaignID)
}

// CreateDonationIntent stores a pending donation and opens a gateway
// checkout session. The definitive state gate runs again when the
// payment settles; the pre-check here only spares the funder a checkout
// that can never be applied.
func (s *LedgerService) CreateDonationIntent(ctx context.Context, in port.DonationIntentInput) (*port.DonationIntent, error) {
	c, err := s.GetCampaign(ctx, in.CampaignID)
	if err != nil {
		return nil, err
	}
	if err = validateAmount(in.Amount, c); err != nil {
		return nil, err
	}
	if !c.AcceptsDonations() {
		return nil, fmt.Errorf("%w: campaign %s is %s", domain.ErrCampaignClosed, c.ID, c.State)
	}

	orderID := "DON-" + uuid.NewString()
	d := &domain.Donation{
		ID:            uuid.NewString(),
		CampaignID:    c.ID,
		FunderID:      in.FunderID,
		FunderEmail:   in.FunderEmail,
		Amount:        in.Amount,
		Message:       in.Message,
		Anonymous:     in.Anonymous,
		Status:        domain.PaymentPending,
		ExternalTxnID: orderID,
		CreatedAt:     time.Now().UTC(),
	}
	if err = s.repo.CreatePendingDonation(ctx, d); err != nil {
		return nil, err
	}

	donorName := ""
	if !in.Anonymous && in.FunderID != nil {
		donorName = *in.FunderID
	}
	redirectURL, err := s.gateway.CreateCheckout(ctx, orderID, in.Amount, donorName)
	if err != nil {
		return nil, err
	}
	s.logger.Info("donation intent created",
		slog.String("order_id", orderID), slog.String("campaign_id", c.ID))
	return &port.DonationIntent{DonationID: d.ID, OrderID: orderID, RedirectURL: redirectURL}, nil
}

// RecordDonation applies a confirmed donation to its campaign. The call
// is idempotent on the external transaction id; a duplicate delivery
// returns the existing donation id as success without touching the
// aggregates.
func (s *LedgerService) RecordDonation(ctx context.Context, in port.RecordDonationInput) (*port.DonationOutcome, error) {
	c, err := s.GetCampaign(ctx, in.CampaignID)
	if err != nil {
		return nil, err
	}
	if err = validateAmount(in.Amount, c); err != nil {
		return nil, err
	}

	outcome, err := s.repo.ApplyDonation(ctx, port.DonationApplication{
		DonationID:    uuid.NewString(),
		CampaignID:    in.CampaignID,
		FunderID:      in.FunderID,
		FunderEmail:   in.FunderEmail,
		Amount:        in.Amount,
		Message:       in.Message,
		Anonymous:     in.Anonymous,
		ExternalTxnID: in.ExternalTxnID,
	})
	if err != nil {
		return nil, err
	}
	if outcome.Deduplicated {
		s.logger.Info("duplicate donation delivery",
			slog.String("external_txn_id", in.ExternalTxnID), slog.String("donation_id", outcome.DonationID))
		return outcome, nil
	}

	s.logger.Info("donation applied",
		slog.String("donation_id", outcome.DonationID),
		slog.String("campaign_id", in.CampaignID),
		slog.String("new_total", outcome.NewTotal.String()),
		slog.Bool("goal_reached", outcome.GoalReached))

	if in.FunderEmail != nil && *in.FunderEmail != "" {
		s.enqueueMail(ctx, domain.MailMessage{
			To:      *in.FunderEmail,
			Subject: "Thank you for your donation",
			Text:    fmt.Sprintf("Your donation of %s to %q has been received.", in.Amount, c.Title),
			HTML:    fmt.Sprintf("<p>Your donation of <strong>%s</strong> to <strong>%s</strong> has been received.</p>", in.Amount, c.Title),
		})
	}
	if outcome.GoalReached && c.OwnerEmail != "" {
		s.enqueueMail(ctx, domain.MailMessage{
			To:      c.OwnerEmail,
			Subject: "Campaign goal reached!",
			Text:    fmt.Sprintf("Your campaign %q reached its goal of %s.", c.Title, c.Goal),
			HTML:    fmt.Sprintf("<p>Your campaign <strong>%s</strong> reached its goal of <strong>%s</strong>.</p>", c.Title, c.Goal),
		})
	}
	return outcome, nil
}

// SettlePayment consumes a verified gateway notification. Settlements
// drive RecordDonation; terminal failures mark the donation failed;
// anything else is acknowledged without effect.
func (s *LedgerService) SettlePayment(ctx context.Context, n port.PaymentNotification) (*port.DonationOutcome, error) {
	if err := s.gateway.VerifyNotification(n); err != nil {
		return nil, err
	}
	if n.Failed() {
		if err := s.repo.MarkDonationFailed(ctx, n.OrderID); err != nil {
			return nil, err
		}
		s.logger.Info("payment failed", slog.String("order_id", n.OrderID), slog.String("status", n.TransactionStatus))
		return nil, nil
	}
	if !n.Settled() {
		s.logger.Info("ignoring non-settlement event",
			slog.String("order_id", n.OrderID), slog.String("status", n.TransactionStatus))
		return nil, nil
	}

	d, err := s.repo.FindDonationByTxnID(ctx, n.OrderID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("%w: no donation for order %s", domain.ErrDonationNotFound, n.OrderID)
	}
	return s.RecordDonation(ctx, port.RecordDonationInput{
		CampaignID:    d.CampaignID,
		FunderID:      d.FunderID,
		FunderEmail:   d.FunderEmail,
		Amount:        d.Amount,
		Message:       d.Message,
		Anonymous:     d.Anonymous,
		ExternalTxnID: d.ExternalTxnID,
	})
}

// VerifyCampaign applies an administrative verification decision. The
// capability check happens upstream in the transport layer; the empty
// adminID guard is defense only.
func (s *LedgerService) VerifyCampaign(ctx context.Context, campaignID string, approved bool, adminID string) error {
	if adminID == "" {
		return domain.ErrPermissionDenied
	}
	c, err := s.GetCampaign(ctx, campaignID)
	if err != nil {
		return err
	}
	ok, err := s.repo.SetVerification(ctx, campaignID, approved)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: campaign %s is %s, not pending", domain.ErrInvalidTransition, campaignID, c.State)
	}
	s.logger.Info("campaign verification decided",
		slog.String("campaign_id", campaignID), slog.Bool("approved", approved), slog.String("admin_id", adminID))

	if c.OwnerEmail != "" {
		subject, text := "Your campaign was not approved",
			fmt.Sprintf("Unfortunately your campaign %q did not pass verification.", c.Title)
		if approved {
			subject, text = "Your campaign is live!",
				fmt.Sprintf("Your campaign %q has been verified and is now accepting donations.", c.Title)
		}
		s.enqueueMail(ctx, domain.MailMessage{To: c.OwnerEmail, Subject: subject, Text: text,
			HTML: "<p>" + text + "</p>"})
	}
	return nil
}

// SweepExpiredCampaigns completes every active campaign whose end time
// has passed. Each transition is independently scoped; one failure is
// logged and skipped so the rest of the batch proceeds. Re-running at
// the same instant is a no-op.
func (s *LedgerService) SweepExpiredCampaigns(ctx context.Context, now time.Time) (int, error) {
	ids, err := s.repo.ListExpired(ctx, now)
	if err != nil {
		return 0, err
	}
	transitioned := 0
	for _, id := range ids {
		ok, err := s.repo.CompleteCampaign(ctx, id)
		if err != nil {
			s.logger.Error("expiry transition failed, skipping",
				slog.String("campaign_id", id), slog.Any("error", err))
			continue
		}
		if ok {
			transitioned++
		}
	}
	s.logger.Info("expiry sweep finished",
		slog.Int("candidates", len(ids)), slog.Int("transitioned", transitioned))
	return transitioned, nil
}

// GetStats aggregates completed donations over a period.
func (s *LedgerService) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	return s.repo.GetStats(ctx, req)
}

// SubscribeNewsletter registers an address and queues a welcome mail for
// first-time subscribers.
func (s *LedgerService) SubscribeNewsletter(ctx context.Context, email string) error {
	fresh, err := s.repo.SubscribeNewsletter(ctx, email)
	if err != nil {
		return err
	}
	if fresh {
		s.enqueueMail(ctx, domain.MailMessage{
			To:      email,
			Subject: "Welcome to FundMyFuture!",
			Text:    "Thank you for subscribing to the FundMyFuture newsletter.",
			HTML:    "<p>Thank you for subscribing to the FundMyFuture newsletter.</p>",
		})
	}
	return nil
}

// SubmitContact queues a confirmation mail for a contact-form message.
func (s *LedgerService) SubmitContact(ctx context.Context, in port.ContactInput) error {
	return s.repo.EnqueueMail(ctx, domain.MailMessage{
		To:      in.Email,
		Subject: "Thank you for contacting FundMyFuture!",
		Text:    fmt.Sprintf("Hi %s, we received your message and will get back to you soon.", in.Name),
		HTML:    fmt.Sprintf("<p>Hi %s, we received your message and will get back to you soon.</p>", in.Name),
	})
}

// enqueueMail appends to the mail queue on a best-effort basis; the
// donation path never fails because a notification could not be queued.
func (s *LedgerService) enqueueMail(ctx context.Context, m domain.MailMessage) {
	if err := s.repo.EnqueueMail(ctx, m); err != nil {
		s.logger.Error("mail enqueue failed", slog.String("to", m.To), slog.Any("error", err))
	}
}

// validateAmount rejects non-positive amounts and amounts not expressed
// in the campaign's currency.
func validateAmount(amount domain.Money, c *domain.Campaign) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", domain.ErrInvalidAmount)
	}
	if !amount.SameCurrency(c.Goal) {
		return fmt.Errorf("%w: amount currency %s does not match campaign currency %s",
			domain.ErrInvalidAmount, amount.Currency, c.Goal.Currency)
	}
	return nil
}
