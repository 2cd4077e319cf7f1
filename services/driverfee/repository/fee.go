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

// DriverFeeRepo implements driverfee.DriverFeeRepo on PostgreSQL
type DriverFeeRepo struct {
	db *sqlx.DB
}

// NewDriverFeeRepo creates a new driver fee policy repository
func NewDriverFeeRepo(db *sqlx.DB) driverfee.DriverFeeRepo {
	return &DriverFeeRepo{db: db}
}

// FindByDriverID fetches the driver's fee policy, (nil, nil) when absent
func (r *DriverFeeRepo) FindByDriverID(ctx context.Context, driverID string) (*models.DriverFee, error) {
	query := `
		SELECT id, driver_id, fee_type, amount, min
		FROM driver_fees
		WHERE driver_id = $1
	`

	var fee models.DriverFee
	err := r.db.GetContext(ctx, &fee, query, driverID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query driver fee: %w", err)
	}

	return &fee, nil
}

// Save creates or replaces the driver's fee policy
func (r *DriverFeeRepo) Save(ctx context.Context, fee *models.DriverFee) error {
	query := `
		INSERT INTO driver_fees (driver_id, fee_type, amount, min)
		VALUES (:driver_id, :fee_type, :amount, :min)
		ON CONFLICT (driver_id) DO UPDATE
		SET fee_type = EXCLUDED.fee_type, amount = EXCLUDED.amount, min = EXCLUDED.min
		RETURNING id
	`

	rows, err := r.db.NamedQueryContext(ctx, query, fee)
	if err != nil {
		return fmt.Errorf("failed to save driver fee: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&fee.ID); err != nil {
			return fmt.Errorf("failed to scan driver fee id: %w", err)
		}
	}

	return nil
}
