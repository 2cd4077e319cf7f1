package claims

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks -source=usecase.go

import (
	"context"

	"github.com/fleetdesk/backoffice/internal/pkg/models"
)

// ClaimUC drives the claim lifecycle
type ClaimUC interface {
	// CreateClaim registers a new claim in NEW status with a generated claim number
	CreateClaim(ctx context.Context, claim *models.Claim) error
	// EscalateClaim moves the claim to ESCALATED for manual handling
	EscalateClaim(ctx context.Context, claimID int64) (*models.Claim, error)
	// RefundClaim closes the claim as automatically refunded
	RefundClaim(ctx context.Context, claimID int64) (*models.Claim, error)
	ListClaims(ctx context.Context, ownerID int64) ([]*models.Claim, error)
}
