package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTransitRepoTest(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, *TransitRepo) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewTransitRepo(sqlxDB).(*TransitRepo)
	return sqlxDB, mock, repo
}

func TestGetTransit(t *testing.T) {
	db, mock, repo := setupTransitRepoTest(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "driver_id", "price", "drivers_fee"}).
		AddRow(int64(1), "driver-1", int64(1000), nil)

	mock.ExpectQuery("SELECT id, driver_id, price, drivers_fee").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	transit, err := repo.GetTransit(context.Background(), 1)

	require.NoError(t, err)
	require.NotNil(t, transit)
	assert.Equal(t, "driver-1", transit.DriverID)
	assert.Equal(t, int64(1000), transit.Price)
	assert.Nil(t, transit.DriversFee)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTransit_NotFound(t *testing.T) {
	db, mock, repo := setupTransitRepoTest(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, driver_id, price, drivers_fee").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "driver_id", "price", "drivers_fee"}))

	transit, err := repo.GetTransit(context.Background(), 99)

	require.NoError(t, err)
	assert.Nil(t, transit)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveDriversFee(t *testing.T) {
	db, mock, repo := setupTransitRepoTest(t)
	defer db.Close()

	mock.ExpectExec("UPDATE transits").
		WithArgs(int64(1), int64(800)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveDriversFee(context.Background(), 1, 800)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByDriverID_NoPolicy(t *testing.T) {
	db, mock, _ := setupTransitRepoTest(t)
	defer db.Close()

	feeRepo := NewDriverFeeRepo(db).(*DriverFeeRepo)

	mock.ExpectQuery("SELECT id, driver_id, fee_type, amount, min").
		WithArgs("driver-unknown").
		WillReturnRows(sqlmock.NewRows([]string{"id", "driver_id", "fee_type", "amount", "min"}))

	fee, err := feeRepo.FindByDriverID(context.Background(), "driver-unknown")

	require.NoError(t, err)
	assert.Nil(t, fee)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByDriverID(t *testing.T) {
	db, mock, _ := setupTransitRepoTest(t)
	defer db.Close()

	feeRepo := NewDriverFeeRepo(db).(*DriverFeeRepo)

	min := int64(50)
	rows := sqlmock.NewRows([]string{"id", "driver_id", "fee_type", "amount", "min"}).
		AddRow(int64(7), "driver-1", "PERCENTAGE", int64(10), min)

	mock.ExpectQuery("SELECT id, driver_id, fee_type, amount, min").
		WithArgs("driver-1").
		WillReturnRows(rows)

	fee, err := feeRepo.FindByDriverID(context.Background(), "driver-1")

	require.NoError(t, err)
	require.NotNil(t, fee)
	assert.Equal(t, int64(10), fee.Amount)
	require.NotNil(t, fee.Min)
	assert.Equal(t, min, *fee.Min)
	assert.NoError(t, mock.ExpectationsWereMet())
}
