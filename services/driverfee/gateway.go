package driverfee

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks -source=gateway.go

import (
	"context"

	"github.com/fleetdesk/backoffice/internal/pkg/models"
)

// FeeGW publishes fee calculation events
type FeeGW interface {
	PublishFeeCalculated(ctx context.Context, event models.FeeCalculatedEvent) error
}
