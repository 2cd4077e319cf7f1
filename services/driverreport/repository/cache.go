package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/fleetdesk/backoffice/internal/pkg/database"
	"github.com/fleetdesk/backoffice/internal/pkg/models"
	"github.com/fleetdesk/backoffice/services/driverreport"
)

const (
	// lastPositionTTL keeps the latest sample around long enough for
	// end-of-day report generation
	lastPositionTTL = 24 * time.Hour

	keyDriverLastPosition = "driver:%s:last_position"
	keyDriverGeoSet       = "drivers:geo"

	fieldLatitude  = "latitude"
	fieldLongitude = "longitude"
	fieldSeenAt    = "seen_at"
)

// LocationCache implements driverreport.LocationCache on Redis
type LocationCache struct {
	redisClient *database.RedisClient
}

// NewLocationCache creates a new Redis-backed location cache
func NewLocationCache(redisClient *database.RedisClient) driverreport.LocationCache {
	return &LocationCache{redisClient: redisClient}
}

// SetLastPosition stores the driver's latest sample in a hash and refreshes
// the shared geo set
func (c *LocationCache) SetLastPosition(ctx context.Context, position *models.DriverPosition) error {
	key := fmt.Sprintf(keyDriverLastPosition, position.DriverID)
	fields := map[string]interface{}{
		fieldLatitude:  strconv.FormatFloat(position.Latitude, 'f', -1, 64),
		fieldLongitude: strconv.FormatFloat(position.Longitude, 'f', -1, 64),
		fieldSeenAt:    strconv.FormatInt(position.SeenAt.Unix(), 10),
	}

	if err := c.redisClient.HSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to store last position: %w", err)
	}
	if err := c.redisClient.Expire(ctx, key, lastPositionTTL); err != nil {
		return fmt.Errorf("failed to set last position TTL: %w", err)
	}

	if err := c.redisClient.GeoAdd(ctx, keyDriverGeoSet, position.Longitude, position.Latitude, position.DriverID); err != nil {
		return fmt.Errorf("failed to update driver geo set: %w", err)
	}

	return nil
}

// GetLastPosition returns the driver's latest cached sample
func (c *LocationCache) GetLastPosition(ctx context.Context, driverID string) (*models.DriverPosition, error) {
	key := fmt.Sprintf(keyDriverLastPosition, driverID)

	values, err := c.redisClient.HMGet(ctx, key, fieldLatitude, fieldLongitude, fieldSeenAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get last position: %w", err)
	}

	strValues := make([]string, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok || s == "" {
			return nil, fmt.Errorf("no cached position for driver %s", driverID)
		}
		strValues[i] = s
	}

	lat, err := strconv.ParseFloat(strValues[0], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(strValues[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}
	ts, err := strconv.ParseInt(strValues[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	return &models.DriverPosition{
		DriverID:  driverID,
		Latitude:  lat,
		Longitude: lng,
		SeenAt:    time.Unix(ts, 0),
	}, nil
}
