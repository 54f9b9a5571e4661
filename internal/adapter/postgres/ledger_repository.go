package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"fundmyfuture/internal/core/domain"
	"fundmyfuture/internal/core/port"
)

// db is the subset of pgxpool.Pool the repository depends on. Tests
// stand in for the pool through it.
type db interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// LedgerRepository implements port.LedgerRepository using pgxpool for
// PostgreSQL. Aggregate updates run inside serializable transactions
// with row locks on the campaign, and donation deduplication rides on
// the unique index over external_txn_id.
type LedgerRepository struct {
	pool db
}

// NewLedgerRepository returns a new repository instance.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// storage wraps infrastructure failures as ErrStorageUnavailable so
// callers can distinguish the one retryable class. Domain errors pass
// through untouched.
func storage(err error) error {
	if err == nil {
		return nil
	}
	for _, sentinel := range []error{
		domain.ErrCampaignNotFound, domain.ErrCampaignClosed,
		domain.ErrInvalidTransition, domain.ErrInvalidAmount,
	} {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
}

const campaignColumns = `id, student_id, owner_email, title, description, category,
	institution, course, year_of_study, goal_cents, current_cents, currency,
	donor_count, state, verified, featured, end_time, created_at, updated_at`

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c                      domain.Campaign
		goalCents, currentCent int64
		currency               string
	)
	err := row.Scan(
		&c.ID, &c.StudentID, &c.OwnerEmail, &c.Title, &c.Description, &c.Category,
		&c.Institution, &c.Course, &c.YearOfStudy, &goalCents, &currentCent, &currency,
		&c.DonorCount, &c.State, &c.Verified, &c.Featured, &c.EndTime, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Goal = domain.NewMoney(goalCents, currency)
	c.Current = domain.NewMoney(currentCent, currency)
	return &c, nil
}

// CreateCampaign persists a new campaign in pending state.
func (r *LedgerRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO campaigns
		(id, student_id, owner_email, title, description, category, institution,
		 course, year_of_study, goal_cents, current_cents, currency, donor_count,
		 state, verified, featured, end_time, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,0,$11,0,$12,false,false,$13,$14,$14)`,
		c.ID, c.StudentID, c.OwnerEmail, c.Title, c.Description, c.Category, c.Institution,
		c.Course, c.YearOfStudy, c.Goal.Cents, c.Goal.Currency,
		c.State, c.EndTime, c.CreatedAt)
	return storage(err)
}

// GetCampaign returns a campaign by id, or nil when absent.
func (r *LedgerRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storage(err)
	}
	return c, nil
}

// UpdateCampaign writes the descriptive columns only. Aggregates, state
// and verification have their own dedicated paths.
func (r *LedgerRepository) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	_, err := r.pool.Exec(ctx, `UPDATE campaigns SET
			title = $1, description = $2, category = $3, institution = $4,
			course = $5, year_of_study = $6, end_time = $7, updated_at = now()
		WHERE id = $8`,
		c.Title, c.Description, c.Category, c.Institution,
		c.Course, c.YearOfStudy, c.EndTime, c.ID)
	return storage(err)
}

// ListCampaigns returns campaigns matching the filter, newest first.
func (r *LedgerRepository) ListCampaigns(ctx context.Context, f port.CampaignFilter) ([]domain.Campaign, error) {
	var (
		conds []string
		args  []any
	)
	if f.State != nil {
		args = append(args, *f.State)
		conds = append(conds, fmt.Sprintf("state = $%d", len(args)))
	}
	if f.Featured != nil {
		args = append(args, *f.Featured)
		conds = append(conds, fmt.Sprintf("featured = $%d", len(args)))
	}
	if f.StudentID != nil {
		args = append(args, *f.StudentID)
		conds = append(conds, fmt.Sprintf("student_id = $%d", len(args)))
	}
	query := `SELECT ` + campaignColumns + ` FROM campaigns`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storage(err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
	return out, storage(err)
}

// CreatePendingDonation stores a donation awaiting gateway confirmation.
func (r *LedgerRepository) CreatePendingDonation(ctx context.Context, d *domain.Donation) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO donations
		(id, campaign_id, funder_id, funder_email, amount_cents, currency,
		 message, anonymous, status, external_txn_id, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		d.ID, d.CampaignID, d.FunderID, d.FunderEmail, d.Amount.Cents, d.Amount.Currency,
		d.Message, d.Anonymous, domain.PaymentPending, d.ExternalTxnID, d.CreatedAt)
	return storage(err)
}

// ApplyDonation records a completed donation and updates the campaign's
// aggregates as one atomic unit. See port.LedgerRepository for the
// contract.
func (r *LedgerRepository) ApplyDonation(ctx context.Context, app port.DonationApplication) (out *port.DonationOutcome, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, storage(err)
	}
	// Named returns so a COMMIT failure reaches the caller. Serialization
	// conflicts surface at COMMIT under this isolation level, and the
	// caller must not acknowledge a donation that never committed.
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if err = storage(tx.Commit(ctx)); err != nil {
			out = nil
		}
	}()

	// Lock any existing donation holding this transaction id so two
	// concurrent deliveries serialize here rather than both applying.
	var (
		donationID, campaignID string
		amountCents            int64
		status                 domain.PaymentStatus
		havePending            bool
	)
	err = tx.QueryRow(ctx, `SELECT id, campaign_id, amount_cents, status
		FROM donations WHERE external_txn_id = $1 FOR UPDATE`, app.ExternalTxnID).
		Scan(&donationID, &campaignID, &amountCents, &status)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		err = nil
		donationID = app.DonationID
		campaignID = app.CampaignID
		amountCents = app.Amount.Cents
	case err != nil:
		return nil, storage(err)
	case status == domain.PaymentCompleted:
		// Already applied exactly once; report the current total.
		var total int64
		var currency string
		if err = tx.QueryRow(ctx, `SELECT current_cents, currency FROM campaigns WHERE id = $1`,
			campaignID).Scan(&total, &currency); err != nil {
			return nil, storage(err)
		}
		return &port.DonationOutcome{
			DonationID:   donationID,
			NewTotal:     domain.NewMoney(total, currency),
			Deduplicated: true,
		}, nil
	case status == domain.PaymentFailed:
		err = fmt.Errorf("%w: donation %s already failed", domain.ErrInvalidTransition, donationID)
		return nil, err
	default:
		havePending = true
	}

	// Lock the campaign row for the read-check-increment-transition
	// sequence.
	var (
		state               domain.CampaignState
		goalCents, curCents int64
		currency            string
	)
	err = tx.QueryRow(ctx, `SELECT state, goal_cents, current_cents, currency
		FROM campaigns WHERE id = $1 FOR UPDATE`, campaignID).
		Scan(&state, &goalCents, &curCents, &currency)
	if errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("%w: %s", domain.ErrCampaignNotFound, campaignID)
		return nil, err
	}
	if err != nil {
		return nil, storage(err)
	}
	if state != domain.CampaignActive {
		err = fmt.Errorf("%w: campaign %s is %s", domain.ErrCampaignClosed, campaignID, state)
		return nil, err
	}

	if havePending {
		if _, err = tx.Exec(ctx, `UPDATE donations SET status = $1 WHERE id = $2`,
			domain.PaymentCompleted, donationID); err != nil {
			return nil, storage(err)
		}
	} else {
		var inserted string
		err = tx.QueryRow(ctx, `INSERT INTO donations
			(id, campaign_id, funder_id, funder_email, amount_cents, currency,
			 message, anonymous, status, external_txn_id, created_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
			ON CONFLICT (external_txn_id) DO NOTHING
			RETURNING id`,
			donationID, campaignID, app.FunderID, app.FunderEmail, amountCents, currency,
			app.Message, app.Anonymous, domain.PaymentCompleted, app.ExternalTxnID, time.Now().UTC()).
			Scan(&inserted)
		if errors.Is(err, pgx.ErrNoRows) {
			// A concurrent delivery inserted first; nothing to apply.
			err = nil
			return &port.DonationOutcome{
				DonationID:   donationID,
				NewTotal:     domain.NewMoney(curCents, currency),
				Deduplicated: true,
			}, nil
		}
		if err != nil {
			return nil, storage(err)
		}
	}

	// Relative increment plus goal evaluation in one statement; the
	// campaign row is locked so the total cannot move underneath.
	var newTotal int64
	var newState domain.CampaignState
	err = tx.QueryRow(ctx, `UPDATE campaigns SET
			current_cents = current_cents + $1,
			donor_count = donor_count + 1,
			state = CASE WHEN current_cents + $1 >= goal_cents THEN 'completed' ELSE state END,
			updated_at = now()
		WHERE id = $2
		RETURNING current_cents, state`, amountCents, campaignID).
		Scan(&newTotal, &newState)
	if err != nil {
		return nil, storage(err)
	}

	return &port.DonationOutcome{
		DonationID:  donationID,
		NewTotal:    domain.NewMoney(newTotal, currency),
		GoalReached: newState == domain.CampaignCompleted,
	}, nil
}

// MarkDonationFailed moves a pending donation to failed. Settled or
// unknown transactions are left untouched.
func (r *LedgerRepository) MarkDonationFailed(ctx context.Context, externalTxnID string) error {
	_, err := r.pool.Exec(ctx, `UPDATE donations SET status = $1
		WHERE external_txn_id = $2 AND status = $3`,
		domain.PaymentFailed, externalTxnID, domain.PaymentPending)
	return storage(err)
}

// FindDonationByTxnID returns the donation holding the external
// transaction id, or nil when absent.
func (r *LedgerRepository) FindDonationByTxnID(ctx context.Context, externalTxnID string) (*domain.Donation, error) {
	row := r.pool.QueryRow(ctx, `SELECT id, campaign_id, funder_id, funder_email,
			amount_cents, currency, message, anonymous, status, external_txn_id, created_at
		FROM donations WHERE external_txn_id = $1`, externalTxnID)
	d, err := scanDonation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storage(err)
	}
	return d, nil
}

func scanDonation(row pgx.Row) (*domain.Donation, error) {
	var (
		d           domain.Donation
		amountCents int64
		currency    string
	)
	err := row.Scan(&d.ID, &d.CampaignID, &d.FunderID, &d.FunderEmail,
		&amountCents, &currency, &d.Message, &d.Anonymous, &d.Status, &d.ExternalTxnID, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	d.Amount = domain.NewMoney(amountCents, currency)
	return &d, nil
}

// ListCampaignDonations returns completed donations, newest first.
func (r *LedgerRepository) ListCampaignDonations(ctx context.Context, campaignID string) ([]domain.Donation, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, campaign_id, funder_id, funder_email,
			amount_cents, currency, message, anonymous, status, external_txn_id, created_at
		FROM donations WHERE campaign_id = $1 AND status = $2
		ORDER BY created_at DESC`, campaignID, domain.PaymentCompleted)
	if err != nil {
		return nil, storage(err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Donation, error) {
		d, err := scanDonation(row)
		if err != nil {
			return domain.Donation{}, err
		}
		return *d, nil
	})
	return out, storage(err)
}

// SetVerification applies the verification decision to a pending
// campaign. The conditional WHERE makes the call idempotent and rejects
// decisions on campaigns past verification.
func (r *LedgerRepository) SetVerification(ctx context.Context, campaignID string, approved bool) (bool, error) {
	to := domain.CampaignRejected
	if approved {
		to = domain.CampaignActive
	}
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns
		SET state = $1, verified = $2, updated_at = now()
		WHERE id = $3 AND state = $4`,
		to, approved, campaignID, domain.CampaignPending)
	if err != nil {
		return false, storage(err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListExpired returns ids of active campaigns whose end time has passed.
func (r *LedgerRepository) ListExpired(ctx context.Context, now time.Time) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM campaigns
		WHERE state = $1 AND end_time IS NOT NULL AND end_time <= $2`,
		domain.CampaignActive, now)
	if err != nil {
		return nil, storage(err)
	}
	ids, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (string, error) {
		var id string
		err := row.Scan(&id)
		return id, err
	})
	return ids, storage(err)
}

// CompleteCampaign transitions one active campaign to completed. The
// state condition keeps the sweep idempotent and safe against a
// concurrent donation that already crossed the goal.
func (r *LedgerRepository) CompleteCampaign(ctx context.Context, campaignID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns
		SET state = $1, updated_at = now()
		WHERE id = $2 AND state = $3`,
		domain.CampaignCompleted, campaignID, domain.CampaignActive)
	if err != nil {
		return false, storage(err)
	}
	return tag.RowsAffected() == 1, nil
}

// GetStats aggregates completed donations over a period.
func (r *LedgerRepository) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	args := []any{domain.PaymentCompleted, req.From, req.To}
	whereCampaign := ""
	if req.CampaignID != nil {
		whereCampaign = "AND campaign_id = $4"
		args = append(args, *req.CampaignID)
	}
	query := fmt.Sprintf(`SELECT COALESCE(count(*),0), COALESCE(sum(amount_cents),0)
		FROM donations
		WHERE status = $1 AND created_at >= $2 AND created_at <= $3 %s`, whereCampaign)
	var resp port.StatsResp
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&resp.Donations, &resp.RaisedCents); err != nil {
		return nil, storage(err)
	}
	return &resp, nil
}

// EnqueueMail appends one message to the mail queue.
func (r *LedgerRepository) EnqueueMail(ctx context.Context, m domain.MailMessage) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO mail_queue (recipient, subject, html, text)
		VALUES ($1,$2,$3,$4)`, m.To, m.Subject, m.HTML, m.Text)
	return storage(err)
}

// SubscribeNewsletter registers an address idempotently. Returns false
// when the address was already subscribed.
func (r *LedgerRepository) SubscribeNewsletter(ctx context.Context, email string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `INSERT INTO newsletter_subscriptions (email, status, source)
		VALUES ($1, 'active', 'website')
		ON CONFLICT (email) DO NOTHING`, email)
	if err != nil {
		return false, storage(err)
	}
	return tag.RowsAffected() == 1, nil
}
