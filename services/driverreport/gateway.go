package driverreport

import (
	"context"

	"github.com/fleetdesk/backoffice/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/fleetdesk/backoffice/services/driverreport DriverReportGW

// DriverReportGW defines the interface for driver report event publishing
type DriverReportGW interface {
	// PublishPositionAdded publishes a position-added event to NATS
	PublishPositionAdded(ctx context.Context, event models.PositionAddedEvent) error
}
