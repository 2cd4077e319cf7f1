package usecase

import (
	"context"
	"errors"

	"github.com/fleetdesk/backoffice/internal/pkg/models"
	"github.com/fleetdesk/backoffice/internal/pkg/money"
	"github.com/fleetdesk/backoffice/services/repairs"
)

// RepairService implements the repairs.RepairUC interface with extended
// insurance coverage: every part is covered free of charge except paint.
type RepairService struct{}

// NewRepairService creates a new repair use case
func NewRepairService() repairs.RepairUC {
	return &RepairService{}
}

// ResolveRepair accepts all requested parts except PAINT at zero cost to
// the requester
func (s *RepairService) ResolveRepair(ctx context.Context, request models.RepairRequest) (models.RepairingResult, error) {
	if request.PartyID == 0 {
		return models.RepairingResult{}, errors.New("party id is required")
	}
	if len(request.PartsToRepair) == 0 {
		return models.RepairingResult{}, errors.New("at least one part is required")
	}

	accepted := make([]models.Part, 0, len(request.PartsToRepair))
	seen := make(map[models.Part]bool)
	for _, part := range request.PartsToRepair {
		if part == models.PartPaint || seen[part] {
			continue
		}
		seen[part] = true
		accepted = append(accepted, part)
	}

	return models.RepairingResult{
		HandlingPartyID: request.PartyID,
		TotalCost:       money.Zero,
		AcceptedParts:   accepted,
	}, nil
}
