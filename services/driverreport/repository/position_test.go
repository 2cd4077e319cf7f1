package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdesk/backoffice/internal/pkg/models"
)

func setupPositionRepoTest(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, *PositionRepo) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewPositionRepo(sqlxDB).(*PositionRepo)
	return sqlxDB, mock, repo
}

func TestAddPosition(t *testing.T) {
	db, mock, repo := setupPositionRepoTest(t)
	defer db.Close()

	seenAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	position := &models.DriverPosition{
		DriverID:  "driver-1",
		Latitude:  53.32,
		Longitude: -1.72,
		Geohash:   "gcqyeyzsp",
		SeenAt:    seenAt,
	}

	mock.ExpectQuery("INSERT INTO driver_positions").
		WithArgs(position.DriverID, position.Latitude, position.Longitude, position.Geohash, position.SeenAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	err := repo.AddPosition(context.Background(), position)

	require.NoError(t, err)
	assert.Equal(t, int64(42), position.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPositionsInRange(t *testing.T) {
	db, mock, repo := setupPositionRepoTest(t)
	defer db.Close()

	from := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	to := from.Add(10 * time.Minute)

	rows := sqlmock.NewRows([]string{"id", "driver_id", "latitude", "longitude", "geohash", "seen_at"}).
		AddRow(int64(1), "driver-1", 53.32, -1.72, "gcqyeyzsp", from).
		AddRow(int64(2), "driver-1", 53.31, -1.69, "gcqyezzzz", from).
		AddRow(int64(3), "driver-1", 53.32, -1.72, "gcqyeyzsp", to)

	mock.ExpectQuery("SELECT id, driver_id, latitude, longitude, geohash, seen_at").
		WithArgs("driver-1", from, to).
		WillReturnRows(rows)

	positions, err := repo.PositionsInRange(context.Background(), "driver-1", from, to)

	require.NoError(t, err)
	require.Len(t, positions, 3)
	assert.Equal(t, int64(1), positions[0].ID)
	assert.Equal(t, int64(3), positions[2].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPositionsInRange_QueryError(t *testing.T) {
	db, mock, repo := setupPositionRepoTest(t)
	defer db.Close()

	from := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	to := from.Add(10 * time.Minute)

	mock.ExpectQuery("SELECT id, driver_id, latitude, longitude, geohash, seen_at").
		WithArgs("driver-1", from, to).
		WillReturnError(assert.AnError)

	_, err := repo.PositionsInRange(context.Background(), "driver-1", from, to)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveAttribute(t *testing.T) {
	db, mock, repo := setupPositionRepoTest(t)
	defer db.Close()

	attribute := &models.DriverAttribute{
		DriverID: "driver-1",
		Name:     "MEDICAL_EXAMINATION_EXPIRATION_DATE",
		Value:    "2027-01-01",
	}

	mock.ExpectExec("INSERT INTO driver_attributes").
		WithArgs(attribute.DriverID, attribute.Name, attribute.Value).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveAttribute(context.Background(), attribute)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttributesByDriver(t *testing.T) {
	db, mock, repo := setupPositionRepoTest(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "driver_id", "name", "value"}).
		AddRow(int64(1), "driver-1", "PENALTY_POINTS", "4").
		AddRow(int64(2), "driver-1", "NATIONALITY", "PL")

	mock.ExpectQuery("SELECT id, driver_id, name, value").
		WithArgs("driver-1").
		WillReturnRows(rows)

	attributes, err := repo.AttributesByDriver(context.Background(), "driver-1")

	require.NoError(t, err)
	require.Len(t, attributes, 2)
	assert.Equal(t, "PENALTY_POINTS", attributes[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
