package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/fleetdesk/backoffice/internal/pkg/models"
	"github.com/fleetdesk/backoffice/services/driverreport"
)

// PositionRepo implements driverreport.PositionRepo on PostgreSQL
type PositionRepo struct {
	db *sqlx.DB
}

// NewPositionRepo creates a new position repository
func NewPositionRepo(db *sqlx.DB) driverreport.PositionRepo {
	return &PositionRepo{db: db}
}

// AddPosition stores a raw position sample
func (r *PositionRepo) AddPosition(ctx context.Context, position *models.DriverPosition) error {
	query := `
		INSERT INTO driver_positions (driver_id, latitude, longitude, geohash, seen_at)
		VALUES (:driver_id, :latitude, :longitude, :geohash, :seen_at)
		RETURNING id
	`

	rows, err := r.db.NamedQueryContext(ctx, query, position)
	if err != nil {
		return fmt.Errorf("failed to insert driver position: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&position.ID); err != nil {
			return fmt.Errorf("failed to scan position id: %w", err)
		}
	}

	return nil
}

// PositionsInRange returns samples in the inclusive window ordered by
// seen_at, id. The serial id preserves insertion order for same-instant
// samples, which distance accumulation depends on.
func (r *PositionRepo) PositionsInRange(ctx context.Context, driverID string, from, to time.Time) ([]*models.DriverPosition, error) {
	query := `
		SELECT id, driver_id, latitude, longitude, geohash, seen_at
		FROM driver_positions
		WHERE driver_id = $1 AND seen_at >= $2 AND seen_at <= $3
		ORDER BY seen_at, id
	`

	var positions []*models.DriverPosition
	if err := r.db.SelectContext(ctx, &positions, query, driverID, from, to); err != nil {
		return nil, fmt.Errorf("failed to query driver positions: %w", err)
	}

	return positions, nil
}

// SaveAttribute stores a driver report attribute
func (r *PositionRepo) SaveAttribute(ctx context.Context, attribute *models.DriverAttribute) error {
	query := `
		INSERT INTO driver_attributes (driver_id, name, value)
		VALUES (:driver_id, :name, :value)
	`

	if _, err := r.db.NamedExecContext(ctx, query, attribute); err != nil {
		return fmt.Errorf("failed to insert driver attribute: %w", err)
	}

	return nil
}

// AttributesByDriver lists all attributes recorded for a driver
func (r *PositionRepo) AttributesByDriver(ctx context.Context, driverID string) ([]*models.DriverAttribute, error) {
	query := `
		SELECT id, driver_id, name, value
		FROM driver_attributes
		WHERE driver_id = $1
		ORDER BY id
	`

	var attributes []*models.DriverAttribute
	if err := r.db.SelectContext(ctx, &attributes, query, driverID); err != nil {
		return nil, fmt.Errorf("failed to query driver attributes: %w", err)
	}

	return attributes, nil
}
