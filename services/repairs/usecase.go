package repairs

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks -source=usecase.go

import (
	"context"

	"github.com/fleetdesk/backoffice/internal/pkg/models"
)

// RepairUC resolves repair requests against coverage rules
type RepairUC interface {
	// ResolveRepair returns which of the requested parts are covered and at
	// what cost to the requester
	ResolveRepair(ctx context.Context, request models.RepairRequest) (models.RepairingResult, error)
}
