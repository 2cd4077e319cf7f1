package gateway

import (
	"context"

	"github.com/fleetdesk/backoffice/internal/pkg/models"
	natspkg "github.com/fleetdesk/backoffice/internal/pkg/nats"
	"github.com/fleetdesk/backoffice/services/driverfee"
)

type feeGW struct {
	natsClient *natspkg.Client
}

// NewFeeGW creates a new driver fee gateway
func NewFeeGW(natsClient *natspkg.Client) driverfee.FeeGW {
	return &feeGW{natsClient: natsClient}
}

// PublishFeeCalculated publishes a fee-calculated event to NATS
func (g *feeGW) PublishFeeCalculated(ctx context.Context, event models.FeeCalculatedEvent) error {
	return g.natsClient.PublishJSON(natspkg.SubjectFeeCalculated, event)
}
