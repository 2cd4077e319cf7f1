package awards

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks -source=usecase.go

import (
	"context"

	"github.com/fleetdesk/backoffice/internal/pkg/models"
)

// AwardsUC manages client miles accounts
type AwardsUC interface {
	// RegisterAccount opens an inactive miles account for the client
	RegisterAccount(ctx context.Context, clientID int64) (*models.AwardsAccount, error)
	// ActivateAccount switches the account active
	ActivateAccount(ctx context.Context, clientID int64) error
	// CalculateBalance sums non-expired miles on the client's account
	CalculateBalance(ctx context.Context, clientID int64) (int, error)
	ListMiles(ctx context.Context, clientID int64) ([]*models.AwardedMiles, error)
}
