package driverfee

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks -source=usecase.go

import (
	"context"

	"github.com/fleetdesk/backoffice/internal/pkg/models"
)

// FeeUC calculates the driver's payable share of a transit price
type FeeUC interface {
	// CalculateDriverFee returns the fee in minor units for the transit
	CalculateDriverFee(ctx context.Context, transitID int64) (int64, error)
	// SetDriverFee creates or replaces the driver's fee policy
	SetDriverFee(ctx context.Context, fee *models.DriverFee) error
}
