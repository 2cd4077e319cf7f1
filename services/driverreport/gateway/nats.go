package gateway

import (
	"context"

	natspkg "github.com/fleetdesk/backoffice/internal/pkg/nats"
	"github.com/fleetdesk/backoffice/internal/pkg/models"
	"github.com/fleetdesk/backoffice/services/driverreport"
)

type driverReportGW struct {
	natsClient *natspkg.Client
}

// NewDriverReportGW creates a new driver report gateway
func NewDriverReportGW(natsClient *natspkg.Client) driverreport.DriverReportGW {
	return &driverReportGW{natsClient: natsClient}
}

// PublishPositionAdded publishes a position-added event to NATS
func (g *driverReportGW) PublishPositionAdded(ctx context.Context, event models.PositionAddedEvent) error {
	return g.natsClient.PublishJSON(natspkg.SubjectPositionAdded, event)
}
