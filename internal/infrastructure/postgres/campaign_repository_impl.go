package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/crowdfund-backend/internal/domain/entity"
	"github.com/oksasatya/crowdfund-backend/internal/domain/repository"
)

type CampaignRepository struct {
	pool *pgxpool.Pool
}

func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *CampaignRepository) Create(c *entity.Campaign) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO campaigns (campaign_id, name, description, image_ref,
			contact_email, contact_phone, payout_id, funding_goal, amount_raised)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, c.CampaignID, c.Name, c.Description, c.ImageRef,
		c.Contact.Email, c.Contact.Phone, c.Contact.PayoutID, c.FundingGoal, c.AmountRaised)

	if err := row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *CampaignRepository) ExistsByCampaignID(campaignID string) (bool, error) {
	ctx := context.Background()
	var exists bool
	row := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM campaigns WHERE campaign_id = $1)
	`, campaignID)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// List returns every campaign with no ORDER BY clause; callers must not
// rely on any particular ordering.
func (r *CampaignRepository) List() ([]entity.Campaign, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, campaign_id, name, description, image_ref,
			contact_email, contact_phone, payout_id, funding_goal, amount_raised,
			created_at, updated_at
		FROM campaigns
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Campaign, 0)
	for rows.Next() {
		var c entity.Campaign
		if err := rows.Scan(&c.ID, &c.CampaignID, &c.Name, &c.Description, &c.ImageRef,
			&c.Contact.Email, &c.Contact.Phone, &c.Contact.PayoutID, &c.FundingGoal, &c.AmountRaised,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

var _ repository.CampaignRepository = (*CampaignRepository)(nil)
