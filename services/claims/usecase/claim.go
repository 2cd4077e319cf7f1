package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/fleetdesk/backoffice/internal/pkg/models"
	"github.com/fleetdesk/backoffice/services/claims"
)

// ClaimService implements the claims.ClaimUC interface
type ClaimService struct {
	repo claims.ClaimRepo
}

// NewClaimService creates a new claim use case
func NewClaimService(repo claims.ClaimRepo) claims.ClaimUC {
	return &ClaimService{repo: repo}
}

// CreateClaim registers a new claim. The claim number is generated here and
// the claim always starts in NEW status regardless of the request payload.
func (s *ClaimService) CreateClaim(ctx context.Context, claim *models.Claim) error {
	if claim == nil {
		return errors.New("claim cannot be nil")
	}
	if claim.OwnerID == 0 {
		return errors.New("owner id is required")
	}
	if claim.TransitID == 0 {
		return errors.New("transit id is required")
	}
	if claim.Reason == "" {
		return errors.New("reason is required")
	}

	claim.ClaimNo = uuid.NewString()
	claim.Status = models.ClaimStatusNew
	claim.CreationDate = time.Now()
	claim.CompletionMode = nil
	claim.CompletionDate = nil
	claim.ChangeDate = nil

	return s.repo.Create(ctx, claim)
}

// EscalateClaim moves the claim to ESCALATED for manual handling
func (s *ClaimService) EscalateClaim(ctx context.Context, claimID int64) (*models.Claim, error) {
	claim, err := s.loadOpenClaim(ctx, claimID)
	if err != nil {
		return nil, err
	}

	claim.Escalate()
	if err := s.repo.Update(ctx, claim); err != nil {
		return nil, err
	}

	return claim, nil
}

// RefundClaim closes the claim as automatically refunded
func (s *ClaimService) RefundClaim(ctx context.Context, claimID int64) (*models.Claim, error) {
	claim, err := s.loadOpenClaim(ctx, claimID)
	if err != nil {
		return nil, err
	}

	claim.Refund()
	if err := s.repo.Update(ctx, claim); err != nil {
		return nil, err
	}

	return claim, nil
}

// ListClaims returns the owner's claims
func (s *ClaimService) ListClaims(ctx context.Context, ownerID int64) ([]*models.Claim, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *ClaimService) loadOpenClaim(ctx context.Context, claimID int64) (*models.Claim, error) {
	claim, err := s.repo.GetClaim(ctx, claimID)
	if err != nil {
		return nil, err
	}
	if claim == nil {
		return nil, claims.ErrClaimNotFound
	}

	switch claim.Status {
	case models.ClaimStatusRefunded, models.ClaimStatusEscalated, models.ClaimStatusRejected:
		return nil, claims.ErrClaimCompleted
	}

	return claim, nil
}
