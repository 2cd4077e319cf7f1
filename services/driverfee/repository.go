package driverfee

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks -source=repository.go

import (
	"context"

	"github.com/fleetdesk/backoffice/internal/pkg/models"
)

// TransitRepo provides access to fee-relevant transit data
type TransitRepo interface {
	// GetTransit returns (nil, nil) when the transit does not exist
	GetTransit(ctx context.Context, transitID int64) (*models.Transit, error)
	// SaveDriversFee memoizes a freshly computed fee on the transit
	SaveDriversFee(ctx context.Context, transitID int64, fee int64) error
}

// DriverFeeRepo provides access to per-driver fee policies
type DriverFeeRepo interface {
	// FindByDriverID returns (nil, nil) when the driver has no policy
	FindByDriverID(ctx context.Context, driverID string) (*models.DriverFee, error)
	Save(ctx context.Context, fee *models.DriverFee) error
}
