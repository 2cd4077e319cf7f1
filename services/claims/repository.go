package claims

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks -source=repository.go

import (
	"context"

	"github.com/fleetdesk/backoffice/internal/pkg/models"
)

// ClaimRepo provides access to customer claims
type ClaimRepo interface {
	// GetClaim returns (nil, nil) when the claim does not exist
	GetClaim(ctx context.Context, claimID int64) (*models.Claim, error)
	Create(ctx context.Context, claim *models.Claim) error
	Update(ctx context.Context, claim *models.Claim) error
	ListByOwner(ctx context.Context, ownerID int64) ([]*models.Claim, error)
}
