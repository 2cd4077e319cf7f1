package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdesk/backoffice/internal/pkg/models"
	"github.com/fleetdesk/backoffice/services/driverreport/mocks"
)

var (
	noon     = time.Date(1989, 12, 12, 12, 12, 0, 0, time.UTC)
	noonFive = noon.Add(5 * time.Minute)
	noonTen  = noonFive.Add(5 * time.Minute)
)

// Triangle corners used across the travelled distance scenarios: out to a
// point roughly 2km away and back to the start.
const (
	startLat = 53.32055555555556
	startLon = -1.7297222222222221
	turnLat  = 53.31861111111111
	turnLon  = -1.6997222222222223
)

func triangleBatch(driverID string, seenAt time.Time) []*models.DriverPosition {
	return []*models.DriverPosition{
		{DriverID: driverID, Latitude: startLat, Longitude: startLon, SeenAt: seenAt},
		{DriverID: driverID, Latitude: turnLat, Longitude: turnLon, SeenAt: seenAt},
		{DriverID: driverID, Latitude: startLat, Longitude: startLon, SeenAt: seenAt},
	}
}

func setupReportTest(t *testing.T) (*gomock.Controller, *mocks.MockPositionRepo, *mocks.MockLocationCache, *mocks.MockDriverReportGW, *DriverReportService) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockPositionRepo(ctrl)
	mockCache := mocks.NewMockLocationCache(ctrl)
	mockGW := mocks.NewMockDriverReportGW(ctrl)

	uc := NewDriverReportService(mockRepo, mockCache, mockGW).(*DriverReportService)
	return ctrl, mockRepo, mockCache, mockGW, uc
}

func TestCalculateDistance_ZeroPositions(t *testing.T) {
	ctrl, mockRepo, _, _, uc := setupReportTest(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().
		PositionsInRange(gomock.Any(), "driver-1", noon, noonFive).
		Return(nil, nil)

	distance, err := uc.CalculateDistance(context.Background(), "driver-1", noon, noonFive)

	require.NoError(t, err)
	printed, err := distance.PrintIn("km")
	require.NoError(t, err)
	assert.Equal(t, "0km", printed)
}

func TestCalculateDistance_SinglePosition(t *testing.T) {
	ctrl, mockRepo, _, _, uc := setupReportTest(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().
		PositionsInRange(gomock.Any(), "driver-1", noon, noonFive).
		Return(triangleBatch("driver-1", noon)[:1], nil)

	distance, err := uc.CalculateDistance(context.Background(), "driver-1", noon, noonFive)

	require.NoError(t, err)
	printed, err := distance.PrintIn("km")
	require.NoError(t, err)
	assert.Equal(t, "0km", printed)
}

func TestCalculateDistance_ShortTransit(t *testing.T) {
	ctrl, mockRepo, _, _, uc := setupReportTest(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().
		PositionsInRange(gomock.Any(), "driver-1", noon, noonFive).
		Return(triangleBatch("driver-1", noon), nil)

	distance, err := uc.CalculateDistance(context.Background(), "driver-1", noon, noonFive)

	require.NoError(t, err)
	printed, err := distance.PrintIn("km")
	require.NoError(t, err)
	assert.Equal(t, "4.009km", printed)
}

func TestCalculateDistance_LongTransit(t *testing.T) {
	ctrl, mockRepo, _, _, uc := setupReportTest(t)
	defer ctrl.Finish()

	// Two triangle batches five minutes apart concatenate into one
	// continuous path; the boundary segment start->start contributes zero.
	positions := append(
		triangleBatch("driver-1", noon),
		triangleBatch("driver-1", noonFive)...,
	)

	mockRepo.EXPECT().
		PositionsInRange(gomock.Any(), "driver-1", noon, noonFive).
		Return(positions, nil)

	distance, err := uc.CalculateDistance(context.Background(), "driver-1", noon, noonFive)

	require.NoError(t, err)
	printed, err := distance.PrintIn("km")
	require.NoError(t, err)
	assert.Equal(t, "8.017km", printed)
}

func TestCalculateDistance_MultipleBreaks(t *testing.T) {
	ctrl, mockRepo, _, _, uc := setupReportTest(t)
	defer ctrl.Finish()

	positions := append(
		triangleBatch("driver-1", noon),
		triangleBatch("driver-1", noonFive)...,
	)
	positions = append(positions, triangleBatch("driver-1", noonTen)...)

	mockRepo.EXPECT().
		PositionsInRange(gomock.Any(), "driver-1", noon, noonTen).
		Return(positions, nil)

	distance, err := uc.CalculateDistance(context.Background(), "driver-1", noon, noonTen)

	require.NoError(t, err)
	printed, err := distance.PrintIn("km")
	require.NoError(t, err)
	assert.Equal(t, "12.026km", printed)
}

func TestCalculateDistance_RepositoryError(t *testing.T) {
	ctrl, mockRepo, _, _, uc := setupReportTest(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().
		PositionsInRange(gomock.Any(), "driver-1", noon, noonFive).
		Return(nil, errors.New("connection refused"))

	_, err := uc.CalculateDistance(context.Background(), "driver-1", noon, noonFive)

	assert.Error(t, err)
}

func TestAddPosition_Success(t *testing.T) {
	ctrl, mockRepo, mockCache, mockGW, uc := setupReportTest(t)
	defer ctrl.Finish()

	position := &models.DriverPosition{
		DriverID:  "driver-1",
		Latitude:  startLat,
		Longitude: startLon,
		SeenAt:    noon,
	}

	mockRepo.EXPECT().
		AddPosition(gomock.Any(), position).
		Return(nil)

	mockCache.EXPECT().
		SetLastPosition(gomock.Any(), position).
		Return(nil)

	mockGW.EXPECT().
		PublishPositionAdded(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.PositionAddedEvent) error {
			assert.Equal(t, "driver-1", event.DriverID)
			assert.Equal(t, startLat, event.Latitude)
			assert.NotEmpty(t, event.Geohash)
			return nil
		})

	err := uc.AddPosition(context.Background(), position)

	require.NoError(t, err)
	assert.NotEmpty(t, position.Geohash)
}

func TestAddPosition_CacheFailureIsNotFatal(t *testing.T) {
	ctrl, mockRepo, mockCache, mockGW, uc := setupReportTest(t)
	defer ctrl.Finish()

	position := &models.DriverPosition{
		DriverID:  "driver-1",
		Latitude:  startLat,
		Longitude: startLon,
		SeenAt:    noon,
	}

	mockRepo.EXPECT().AddPosition(gomock.Any(), position).Return(nil)
	mockCache.EXPECT().SetLastPosition(gomock.Any(), position).Return(errors.New("redis down"))
	mockGW.EXPECT().PublishPositionAdded(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.AddPosition(context.Background(), position)

	assert.NoError(t, err)
}

func TestAddPosition_InvalidLatitude(t *testing.T) {
	ctrl, _, _, _, uc := setupReportTest(t)
	defer ctrl.Finish()

	err := uc.AddPosition(context.Background(), &models.DriverPosition{
		DriverID: "driver-1",
		Latitude: 91,
	})

	assert.Error(t, err)
}
