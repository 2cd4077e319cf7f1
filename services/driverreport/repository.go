package driverreport

import (
	"context"
	"time"

	"github.com/fleetdesk/backoffice/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/fleetdesk/backoffice/services/driverreport PositionRepo,LocationCache

// PositionRepo defines the interface for driver position persistence
type PositionRepo interface {
	// AddPosition stores a raw position sample
	AddPosition(ctx context.Context, position *models.DriverPosition) error

	// PositionsInRange returns all samples for a driver with seen_at in
	// [from, to] inclusive, ordered by seen_at with insertion order
	// breaking ties
	PositionsInRange(ctx context.Context, driverID string, from, to time.Time) ([]*models.DriverPosition, error)

	// Driver attribute operations feeding the driver report
	SaveAttribute(ctx context.Context, attribute *models.DriverAttribute) error
	AttributesByDriver(ctx context.Context, driverID string) ([]*models.DriverAttribute, error)
}

// LocationCache defines the interface for the latest-position cache
type LocationCache interface {
	SetLastPosition(ctx context.Context, position *models.DriverPosition) error
	GetLastPosition(ctx context.Context, driverID string) (*models.DriverPosition, error)
}
