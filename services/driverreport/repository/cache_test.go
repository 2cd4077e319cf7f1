package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdesk/backoffice/internal/pkg/database"
	"github.com/fleetdesk/backoffice/internal/pkg/models"
)

func setupCacheTest(t *testing.T) (*miniredis.Miniredis, *LocationCache) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	redisClient := database.NewRedisClientFromClient(client)

	cache := NewLocationCache(redisClient).(*LocationCache)
	return mr, cache
}

func TestSetLastPosition(t *testing.T) {
	mr, cache := setupCacheTest(t)

	seenAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	position := &models.DriverPosition{
		DriverID:  "driver-1",
		Latitude:  53.32,
		Longitude: -1.72,
		SeenAt:    seenAt,
	}

	err := cache.SetLastPosition(context.Background(), position)

	require.NoError(t, err)
	assert.Equal(t, "53.32", mr.HGet("driver:driver-1:last_position", "latitude"))
	assert.Equal(t, "-1.72", mr.HGet("driver:driver-1:last_position", "longitude"))
	assert.True(t, mr.TTL("driver:driver-1:last_position") > 0)
}

func TestGetLastPosition_RoundTrip(t *testing.T) {
	_, cache := setupCacheTest(t)

	seenAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	original := &models.DriverPosition{
		DriverID:  "driver-1",
		Latitude:  53.32055555555556,
		Longitude: -1.7297222222222221,
		SeenAt:    seenAt,
	}

	require.NoError(t, cache.SetLastPosition(context.Background(), original))

	cached, err := cache.GetLastPosition(context.Background(), "driver-1")

	require.NoError(t, err)
	assert.Equal(t, original.Latitude, cached.Latitude)
	assert.Equal(t, original.Longitude, cached.Longitude)
	assert.Equal(t, seenAt.Unix(), cached.SeenAt.Unix())
}

func TestGetLastPosition_NotCached(t *testing.T) {
	_, cache := setupCacheTest(t)

	_, err := cache.GetLastPosition(context.Background(), "driver-unknown")

	assert.Error(t, err)
}
