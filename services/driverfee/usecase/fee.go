package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/fleetdesk/backoffice/internal/pkg/logger"
	"github.com/fleetdesk/backoffice/internal/pkg/models"
	"github.com/fleetdesk/backoffice/internal/pkg/money"
	"github.com/fleetdesk/backoffice/services/driverfee"
)

const percentageDivisor = 100

// FeeService implements the driverfee.FeeUC interface
type FeeService struct {
	transitRepo driverfee.TransitRepo
	feeRepo     driverfee.DriverFeeRepo
	gw          driverfee.FeeGW
}

// NewFeeService creates a new driver fee use case
func NewFeeService(
	transitRepo driverfee.TransitRepo,
	feeRepo driverfee.DriverFeeRepo,
	gw driverfee.FeeGW,
) driverfee.FeeUC {
	return &FeeService{
		transitRepo: transitRepo,
		feeRepo:     feeRepo,
		gw:          gw,
	}
}

// CalculateDriverFee returns the driver's payable fee for a transit in minor
// units. A fee already memoized on the transit is returned as-is without
// consulting the policy; otherwise the fee derives from the driver's policy
// and is clamped to the policy minimum.
func (s *FeeService) CalculateDriverFee(ctx context.Context, transitID int64) (int64, error) {
	transit, err := s.transitRepo.GetTransit(ctx, transitID)
	if err != nil {
		return 0, err
	}
	if transit == nil {
		return 0, driverfee.ErrTransitNotFound
	}

	if transit.DriversFee != nil {
		return *transit.DriversFee, nil
	}

	policy, err := s.feeRepo.FindByDriverID(ctx, transit.DriverID)
	if err != nil {
		return 0, err
	}
	if policy == nil {
		return 0, driverfee.ErrFeeNotDefined
	}

	price := money.New(transit.Price)

	var fee money.Money
	switch policy.FeeType {
	case models.FeeTypeFlat:
		fee = price.Sub(money.New(policy.Amount))
	case models.FeeTypePercentage:
		fee = price.Mul(policy.Amount).Div(percentageDivisor)
	default:
		return 0, fmt.Errorf("unknown fee type %q", policy.FeeType)
	}

	floor := money.Zero
	if policy.Min != nil && *policy.Min != 0 {
		floor = money.New(*policy.Min)
	}
	fee = money.Max(fee, floor)

	// The computed fee is not written back onto the transit; memoization
	// is the caller's concern via TransitRepo.SaveDriversFee.
	result := fee.ToInt()

	event := models.FeeCalculatedEvent{
		TransitID: transitID,
		DriverID:  transit.DriverID,
		Fee:       result,
	}
	if err := s.gw.PublishFeeCalculated(ctx, event); err != nil {
		logger.Warn("failed to publish fee calculated event",
			logger.Int64("transit_id", transitID),
			logger.Err(err))
	}

	return result, nil
}

// SetDriverFee creates or replaces the driver's fee policy
func (s *FeeService) SetDriverFee(ctx context.Context, fee *models.DriverFee) error {
	if fee == nil {
		return errors.New("fee policy cannot be nil")
	}
	if fee.DriverID == "" {
		return errors.New("driver id is required")
	}
	if fee.FeeType != models.FeeTypeFlat && fee.FeeType != models.FeeTypePercentage {
		return fmt.Errorf("unknown fee type %q", fee.FeeType)
	}
	if fee.Amount < 0 {
		return errors.New("amount cannot be negative")
	}
	return s.feeRepo.Save(ctx, fee)
}
