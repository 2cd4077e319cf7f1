package driverreport

import (
	"context"
	"time"

	"github.com/fleetdesk/backoffice/internal/pkg/geo"
	"github.com/fleetdesk/backoffice/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fleetdesk/backoffice/services/driverreport DriverReportUC

// DriverReportUC defines the interface for travelled-distance business logic
type DriverReportUC interface {
	// AddPosition records a new position sample; subsequent
	// CalculateDistance calls observe it
	AddPosition(ctx context.Context, position *models.DriverPosition) error

	// CalculateDistance aggregates the driver's travelled distance over
	// the inclusive [from, to] window
	CalculateDistance(ctx context.Context, driverID string, from, to time.Time) (geo.Distance, error)

	// SaveAttribute attaches a report attribute to a driver
	SaveAttribute(ctx context.Context, attribute *models.DriverAttribute) error
}
