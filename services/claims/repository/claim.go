package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fleetdesk/backoffice/internal/pkg/models"
	"github.com/fleetdesk/backoffice/services/claims"
)

// ClaimRepo implements claims.ClaimRepo on PostgreSQL
type ClaimRepo struct {
	db *sqlx.DB
}

// NewClaimRepo creates a new claim repository
func NewClaimRepo(db *sqlx.DB) claims.ClaimRepo {
	return &ClaimRepo{db: db}
}

const claimColumns = `id, claim_no, owner_id, transit_id, transit_price, reason,
	incident_description, status, completion_mode, creation_date,
	completion_date, change_date`

// GetClaim fetches a claim by id, (nil, nil) when absent
func (r *ClaimRepo) GetClaim(ctx context.Context, claimID int64) (*models.Claim, error) {
	query := fmt.Sprintf(`SELECT %s FROM claims WHERE id = $1`, claimColumns)

	var claim models.Claim
	err := r.db.GetContext(ctx, &claim, query, claimID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query claim: %w", err)
	}

	return &claim, nil
}

// Create stores a new claim and fills in its generated id
func (r *ClaimRepo) Create(ctx context.Context, claim *models.Claim) error {
	query := `
		INSERT INTO claims (claim_no, owner_id, transit_id, transit_price, reason,
			incident_description, status, creation_date)
		VALUES (:claim_no, :owner_id, :transit_id, :transit_price, :reason,
			:incident_description, :status, :creation_date)
		RETURNING id
	`

	rows, err := r.db.NamedQueryContext(ctx, query, claim)
	if err != nil {
		return fmt.Errorf("failed to insert claim: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&claim.ID); err != nil {
			return fmt.Errorf("failed to scan claim id: %w", err)
		}
	}

	return nil
}

// Update persists lifecycle fields after a state transition
func (r *ClaimRepo) Update(ctx context.Context, claim *models.Claim) error {
	query := `
		UPDATE claims
		SET status = :status, completion_mode = :completion_mode,
			completion_date = :completion_date, change_date = :change_date
		WHERE id = :id
	`

	if _, err := r.db.NamedExecContext(ctx, query, claim); err != nil {
		return fmt.Errorf("failed to update claim: %w", err)
	}

	return nil
}

// ListByOwner returns the owner's claims, newest first
func (r *ClaimRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Claim, error) {
	query := fmt.Sprintf(`SELECT %s FROM claims WHERE owner_id = $1 ORDER BY creation_date DESC`, claimColumns)

	var result []*models.Claim
	if err := r.db.SelectContext(ctx, &result, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to query claims: %w", err)
	}

	return result, nil
}
