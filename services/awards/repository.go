package awards

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks -source=repository.go

import (
	"context"

	"github.com/fleetdesk/backoffice/internal/pkg/models"
)

// AccountRepo provides access to awards accounts and their miles
type AccountRepo interface {
	// FindByClientID returns (nil, nil) when the client has no account
	FindByClientID(ctx context.Context, clientID int64) (*models.AwardsAccount, error)
	Save(ctx context.Context, account *models.AwardsAccount) error
	// FindAllMilesBy lists every miles grant on the client's account
	FindAllMilesBy(ctx context.Context, clientID int64) ([]*models.AwardedMiles, error)
	SaveMiles(ctx context.Context, miles *models.AwardedMiles) error
}
