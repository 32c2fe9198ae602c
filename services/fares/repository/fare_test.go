package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spinr-app/dispatch/services/fares/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func areaColumns() []string {
	return []string{
		"id", "name", "city", "polygon", "is_active", "is_airport", "airport_fee",
		"surge_active", "surge_multiplier",
		"gst_enabled", "gst_rate", "pst_enabled", "pst_rate", "hst_enabled", "hst_rate",
		"created_at",
	}
}

func TestActiveServiceAreas_DecodesPolygon(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewFareRepository(db)

	areaID := uuid.New()
	polygon := []byte(`[{"lat":49.28,"lng":-123.12},{"lat":49.30,"lng":-123.12},{"lat":49.30,"lng":-123.02}]`)

	rows := sqlmock.NewRows(areaColumns()).
		AddRow(areaID, "Downtown Vancouver", "Vancouver", polygon, true, false, 0.0,
			false, 1.0,
			true, 0.05, false, 0.0, false, 0.0,
			time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM service_areas")).WillReturnRows(rows)

	areas, err := repo.ActiveServiceAreas(context.Background())
	require.NoError(t, err)
	require.Len(t, areas, 1)
	assert.Equal(t, areaID, areas[0].ID)
	require.Len(t, areas[0].Polygon, 3)
	assert.Equal(t, 49.28, areas[0].Polygon[0].Lat)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActiveServiceAreas_BadPolygonFails(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewFareRepository(db)

	rows := sqlmock.NewRows(areaColumns()).
		AddRow(uuid.New(), "Broken", "Vancouver", []byte(`{not json`), true, false, 0.0,
			false, 1.0,
			true, 0.05, false, 0.0, false, 0.0,
			time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM service_areas")).WillReturnRows(rows)

	_, err := repo.ActiveServiceAreas(context.Background())
	assert.Error(t, err)
}

func TestAirportAreas_FiltersOnFlag(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewFareRepository(db)

	rows := sqlmock.NewRows(areaColumns()).
		AddRow(uuid.New(), "YVR", "Richmond", []byte(`[]`), true, true, 5.0,
			false, 1.0,
			true, 0.05, false, 0.0, false, 0.0,
			time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("is_airport = true")).WillReturnRows(rows)

	areas, err := repo.AirportAreas(context.Background())
	require.NoError(t, err)
	require.Len(t, areas, 1)
	assert.True(t, areas[0].IsAirport)
	assert.Equal(t, 5.0, areas[0].AirportFee)
}

func TestFareConfig_NoRowIsNil(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewFareRepository(db)

	areaID, vehicleTypeID := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM fare_configs")).
		WithArgs(areaID, vehicleTypeID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	cfg, err := repo.FareConfig(context.Background(), areaID, vehicleTypeID)
	assert.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestFareConfig_Found(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewFareRepository(db)

	areaID, vehicleTypeID := uuid.New(), uuid.New()

	rows := sqlmock.NewRows([]string{
		"id", "service_area_id", "vehicle_type_id", "base_fare", "per_km_rate",
		"per_minute_rate", "minimum_fare", "booking_fee", "is_active",
	}).AddRow(uuid.New(), areaID, vehicleTypeID, 3.50, 1.50, 0.25, 8.00, 2.00, true)
	mock.ExpectQuery(regexp.QuoteMeta("FROM fare_configs")).
		WithArgs(areaID, vehicleTypeID).
		WillReturnRows(rows)

	cfg, err := repo.FareConfig(context.Background(), areaID, vehicleTypeID)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 3.50, cfg.BaseFare)
	assert.Equal(t, 1.50, cfg.PerKmRate)
}

func TestActiveAreaFees(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewFareRepository(db)

	areaID := uuid.New()

	rows := sqlmock.NewRows([]string{
		"id", "service_area_id", "fee_name", "fee_type", "calc_mode", "amount",
		"start_hour", "end_hour", "is_active", "created_at",
	}).AddRow(uuid.New(), areaID, "Night surcharge", "night", "flat", 2.00, 22, 6, true, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM area_fees")).
		WithArgs(areaID).
		WillReturnRows(rows)

	fees, err := repo.ActiveAreaFees(context.Background(), areaID)
	require.NoError(t, err)
	require.Len(t, fees, 1)
	assert.Equal(t, "Night surcharge", fees[0].FeeName)
}
