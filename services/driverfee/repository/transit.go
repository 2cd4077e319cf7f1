package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fleetdesk/backoffice/internal/pkg/models"
	"github.com/fleetdesk/backoffice/services/driverfee"
)

// TransitRepo implements driverfee.TransitRepo on PostgreSQL
type TransitRepo struct {
	db *sqlx.DB
}

// NewTransitRepo creates a new transit repository
func NewTransitRepo(db *sqlx.DB) driverfee.TransitRepo {
	return &TransitRepo{db: db}
}

// GetTransit fetches the fee-relevant transit projection. A missing transit
// is not an error at this layer; callers see (nil, nil).
func (r *TransitRepo) GetTransit(ctx context.Context, transitID int64) (*models.Transit, error) {
	query := `
		SELECT id, driver_id, price, drivers_fee
		FROM transits
		WHERE id = $1
	`

	var transit models.Transit
	err := r.db.GetContext(ctx, &transit, query, transitID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query transit: %w", err)
	}

	return &transit, nil
}

// SaveDriversFee memoizes the computed fee on the transit row
func (r *TransitRepo) SaveDriversFee(ctx context.Context, transitID int64, fee int64) error {
	query := `
		UPDATE transits
		SET drivers_fee = $2
		WHERE id = $1
	`

	if _, err := r.db.ExecContext(ctx, query, transitID, fee); err != nil {
		return fmt.Errorf("failed to save drivers fee: %w", err)
	}

	return nil
}
