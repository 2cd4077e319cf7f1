package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/fleetdesk/backoffice/internal/pkg/geo"
	"github.com/fleetdesk/backoffice/internal/pkg/logger"
	"github.com/fleetdesk/backoffice/internal/pkg/models"
	"github.com/fleetdesk/backoffice/services/driverreport"
)

// DriverReportService implements the driverreport.DriverReportUC interface
type DriverReportService struct {
	repo  driverreport.PositionRepo
	cache driverreport.LocationCache
	gw    driverreport.DriverReportGW
}

// NewDriverReportService creates a new driver report use case
func NewDriverReportService(
	repo driverreport.PositionRepo,
	cache driverreport.LocationCache,
	gw driverreport.DriverReportGW,
) driverreport.DriverReportUC {
	return &DriverReportService{
		repo:  repo,
		cache: cache,
		gw:    gw,
	}
}

// AddPosition validates and persists a new position sample, refreshes the
// latest-position cache and publishes the position event
func (s *DriverReportService) AddPosition(ctx context.Context, position *models.DriverPosition) error {
	if err := validatePosition(position); err != nil {
		return err
	}

	if position.SeenAt.IsZero() {
		position.SeenAt = time.Now()
	}
	if position.Geohash == "" {
		position.Geohash = geo.EncodePosition(position.Latitude, position.Longitude)
	}

	if err := s.repo.AddPosition(ctx, position); err != nil {
		return err
	}

	// Cache and event publication are best effort; the persisted sample is
	// the source of truth for distance calculation
	if err := s.cache.SetLastPosition(ctx, position); err != nil {
		logger.Warn("failed to cache last position",
			logger.String("driver_id", position.DriverID),
			logger.Err(err))
	}

	event := models.PositionAddedEvent{
		DriverID:  position.DriverID,
		Latitude:  position.Latitude,
		Longitude: position.Longitude,
		Geohash:   position.Geohash,
		SeenAt:    position.SeenAt,
	}
	if err := s.gw.PublishPositionAdded(ctx, event); err != nil {
		logger.Warn("failed to publish position added event",
			logger.String("driver_id", position.DriverID),
			logger.Err(err))
	}

	return nil
}

// CalculateDistance sums the great-circle segments between consecutive
// samples in the window. Samples recorded at the same instant still
// contribute segments, and batches recorded minutes apart concatenate into
// one continuous path.
func (s *DriverReportService) CalculateDistance(ctx context.Context, driverID string, from, to time.Time) (geo.Distance, error) {
	positions, err := s.repo.PositionsInRange(ctx, driverID, from, to)
	if err != nil {
		return geo.Distance{}, err
	}

	if len(positions) < 2 {
		return geo.OfKm(0), nil
	}

	totalKm := 0.0
	for i := 1; i < len(positions); i++ {
		totalKm += geo.GreatCircleDistance(
			positions[i-1].Latitude,
			positions[i-1].Longitude,
			positions[i].Latitude,
			positions[i].Longitude,
		)
	}

	return geo.OfKm(totalKm), nil
}

// SaveAttribute attaches a report attribute to a driver
func (s *DriverReportService) SaveAttribute(ctx context.Context, attribute *models.DriverAttribute) error {
	if attribute.DriverID == "" {
		return errors.New("driver id is required")
	}
	if attribute.Name == "" {
		return errors.New("attribute name is required")
	}
	return s.repo.SaveAttribute(ctx, attribute)
}

func validatePosition(position *models.DriverPosition) error {
	if position == nil {
		return errors.New("position cannot be nil")
	}
	if position.DriverID == "" {
		return errors.New("driver id is required")
	}
	if position.Latitude < -90 || position.Latitude > 90 {
		return errors.New("latitude must be between -90 and 90")
	}
	if position.Longitude < -180 || position.Longitude > 180 {
		return errors.New("longitude must be between -180 and 180")
	}
	return nil
}
