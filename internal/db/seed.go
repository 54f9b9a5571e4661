package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data for local runs: a handful of verified
// campaigns with settled donations, plus one pending and one expired
// campaign for exercising verification and the sweep.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	categories := []string{"tuition", "textbooks", "accommodation", "research"}
	institutions := []string{"University of Cape Town", "Wits University", "Stellenbosch University"}

	var campaignIDs []string
	for i := 1; i <= 5; i++ {
		id := uuid.NewString()
		endTime := time.Now().AddDate(0, 1, 0)
		goalCents := int64((r.Intn(40) + 10) * 100000) // 1000.00 to 5000.00
		_, err := db.Exec(ctx, `INSERT INTO campaigns
			(id, student_id, owner_email, title, description, category, institution,
			 course, year_of_study, goal_cents, current_cents, currency, donor_count,
			 state, verified, featured, end_time, created_at, updated_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,0,'ZAR',0,'active',true,$11,$12,now(),now())
			ON CONFLICT DO NOTHING`,
			id, fmt.Sprintf("student-%d", i), fmt.Sprintf("student%d@example.com", i),
			fmt.Sprintf("Help fund my studies %d", i),
			"Demo campaign seeded for local development.",
			categories[r.Intn(len(categories))], institutions[r.Intn(len(institutions))],
			"BSc Computer Science", r.Intn(4)+1, goalCents, i <= 2, endTime)
		if err != nil {
			return err
		}
		campaignIDs = append(campaignIDs, id)
	}

	// one pending campaign awaiting verification
	_, err := db.Exec(ctx, `INSERT INTO campaigns
		(id, student_id, owner_email, title, description, category, institution,
		 course, year_of_study, goal_cents, current_cents, currency, donor_count,
		 state, verified, featured, end_time, created_at, updated_at)
		VALUES ($1,'student-pending','pending@example.com','Awaiting verification',
		 'Seeded pending campaign.','tuition','University of Cape Town','LLB',2,
		 200000,0,'ZAR',0,'pending',false,false,NULL,now(),now())
		ON CONFLICT DO NOTHING`, uuid.NewString())
	if err != nil {
		return err
	}

	// one active campaign already past its end time, picked up by the sweep
	_, err = db.Exec(ctx, `INSERT INTO campaigns
		(id, student_id, owner_email, title, description, category, institution,
		 course, year_of_study, goal_cents, current_cents, currency, donor_count,
		 state, verified, featured, end_time, created_at, updated_at)
		VALUES ($1,'student-expired','expired@example.com','Past its end date',
		 'Seeded expired campaign.','textbooks','Wits University','BCom',3,
		 300000,0,'ZAR',0,'active',true,false,$2,now(),now())
		ON CONFLICT DO NOTHING`, uuid.NewString(), time.Now().AddDate(0, 0, -1))
	if err != nil {
		return err
	}

	// settled donations against the active campaigns, aggregates kept
	// consistent with the donation rows
	for _, cid := range campaignIDs {
		count := r.Intn(5) + 1
		var total int64
		for j := 0; j < count; j++ {
			amount := int64((r.Intn(20) + 1) * 5000) // 50.00 to 1000.00
			funder := fmt.Sprintf("funder-%d", r.Intn(50)+1)
			_, err = db.Exec(ctx, `INSERT INTO donations
				(id, campaign_id, funder_id, funder_email, amount_cents, currency,
				 message, anonymous, status, external_txn_id, created_at)
				VALUES ($1,$2,$3,$4,$5,'ZAR','Good luck!',false,'completed',$6,now())
				ON CONFLICT DO NOTHING`,
				uuid.NewString(), cid, funder, funder+"@example.com", amount, "SEED-"+uuid.NewString())
			if err != nil {
				return err
			}
			total += amount
		}
		_, err = db.Exec(ctx, `UPDATE campaigns
			SET current_cents = current_cents + $1, donor_count = donor_count + $2
			WHERE id = $3`, total, count, cid)
		if err != nil {
			return err
		}
	}
	return nil
}
