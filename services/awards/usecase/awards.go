package usecase

import (
	"context"
	"time"

	"github.com/fleetdesk/backoffice/internal/pkg/models"
	"github.com/fleetdesk/backoffice/services/awards"
)

// AwardsService implements the awards.AwardsUC interface
type AwardsService struct {
	repo awards.AccountRepo
}

// NewAwardsService creates a new awards use case
func NewAwardsService(repo awards.AccountRepo) awards.AwardsUC {
	return &AwardsService{repo: repo}
}

// RegisterAccount opens an inactive miles account for the client
func (s *AwardsService) RegisterAccount(ctx context.Context, clientID int64) (*models.AwardsAccount, error) {
	existing, err := s.repo.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, awards.ErrAccountExists
	}

	account := &models.AwardsAccount{
		ClientID: clientID,
		IsActive: false,
		Date:     time.Now(),
	}
	if err := s.repo.Save(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// ActivateAccount switches the client's account active
func (s *AwardsService) ActivateAccount(ctx context.Context, clientID int64) error {
	account, err := s.repo.FindByClientID(ctx, clientID)
	if err != nil {
		return err
	}
	if account == nil {
		return awards.ErrAccountNotFound
	}

	account.IsActive = true
	return s.repo.Save(ctx, account)
}

// CalculateBalance sums miles that have not expired. Special miles never
// expire; regular miles count while expires_at is in the future or unset.
func (s *AwardsService) CalculateBalance(ctx context.Context, clientID int64) (int, error) {
	account, err := s.repo.FindByClientID(ctx, clientID)
	if err != nil {
		return 0, err
	}
	if account == nil {
		return 0, awards.ErrAccountNotFound
	}

	allMiles, err := s.repo.FindAllMilesBy(ctx, clientID)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	balance := 0
	for _, m := range allMiles {
		if m.Special || m.ExpiresAt == nil || m.ExpiresAt.After(now) {
			balance += m.Miles
		}
	}

	return balance, nil
}

// ListMiles returns the client's miles grants
func (s *AwardsService) ListMiles(ctx context.Context, clientID int64) ([]*models.AwardedMiles, error) {
	return s.repo.FindAllMilesBy(ctx, clientID)
}
