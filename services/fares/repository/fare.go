package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/spinr-app/dispatch/internal/pkg/models"
)

// FareRepo implements the fare repository interface
type FareRepo struct {
	db *sqlx.DB
}

// NewFareRepository creates a new fare repository
func NewFareRepository(db *sqlx.DB) *FareRepo {
	return &FareRepo{db: db}
}

// serviceAreaRow mirrors the service_areas table; the polygon column is
// JSONB and decoded separately
type serviceAreaRow struct {
	models.ServiceArea
	PolygonJSON []byte `db:"polygon"`
}

func (r *FareRepo) queryAreas(ctx context.Context, query string, args ...interface{}) ([]*models.ServiceArea, error) {
	var rows []serviceAreaRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query service areas: %w", err)
	}

	areas := make([]*models.ServiceArea, 0, len(rows))
	for i := range rows {
		area := rows[i].ServiceArea
		if len(rows[i].PolygonJSON) > 0 {
			if err := json.Unmarshal(rows[i].PolygonJSON, &area.Polygon); err != nil {
				return nil, fmt.Errorf("failed to decode polygon for area %s: %w", area.ID, err)
			}
		}
		areas = append(areas, &area)
	}
	return areas, nil
}

// ActiveServiceAreas returns every active service area with its polygon
func (r *FareRepo) ActiveServiceAreas(ctx context.Context) ([]*models.ServiceArea, error) {
	query := `
		SELECT id, name, city, polygon, is_active, is_airport, airport_fee,
		       surge_active, surge_multiplier,
		       gst_enabled, gst_rate, pst_enabled, pst_rate, hst_enabled, hst_rate,
		       created_at
		FROM service_areas
		WHERE is_active = true
		ORDER BY created_at ASC
	`
	return r.queryAreas(ctx, query)
}

// AirportAreas returns every active airport-flagged service area
func (r *FareRepo) AirportAreas(ctx context.Context) ([]*models.ServiceArea, error) {
	query := `
		SELECT id, name, city, polygon, is_active, is_airport, airport_fee,
		       surge_active, surge_multiplier,
		       gst_enabled, gst_rate, pst_enabled, pst_rate, hst_enabled, hst_rate,
		       created_at
		FROM service_areas
		WHERE is_active = true AND is_airport = true
		ORDER BY created_at ASC
	`
	return r.queryAreas(ctx, query)
}

// ActiveAreaFees returns the active conditional fees of a service area
func (r *FareRepo) ActiveAreaFees(ctx context.Context, serviceAreaID uuid.UUID) ([]*models.AreaFee, error) {
	query := `
		SELECT id, service_area_id, fee_name, fee_type, calc_mode, amount,
		       start_hour, end_hour, is_active, created_at
		FROM area_fees
		WHERE service_area_id = $1 AND is_active = true
		ORDER BY created_at ASC
	`
	var fees []*models.AreaFee
	if err := r.db.SelectContext(ctx, &fees, query, serviceAreaID); err != nil {
		return nil, fmt.Errorf("failed to query area fees: %w", err)
	}
	return fees, nil
}

// FareConfig returns the active pricing row for an area and vehicle type,
// or nil when none exists
func (r *FareRepo) FareConfig(ctx context.Context, serviceAreaID, vehicleTypeID uuid.UUID) (*models.FareConfig, error) {
	query := `
		SELECT id, service_area_id, vehicle_type_id, base_fare, per_km_rate,
		       per_minute_rate, minimum_fare, booking_fee, is_active
		FROM fare_configs
		WHERE service_area_id = $1 AND vehicle_type_id = $2 AND is_active = true
	`
	var cfg models.FareConfig
	err := r.db.GetContext(ctx, &cfg, query, serviceAreaID, vehicleTypeID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query fare config: %w", err)
	}
	return &cfg, nil
}

// VehicleTypes returns every active vehicle type
func (r *FareRepo) VehicleTypes(ctx context.Context) ([]*models.VehicleType, error) {
	query := `
		SELECT id, name, seats, is_active
		FROM vehicle_types
		WHERE is_active = true
		ORDER BY name ASC
	`
	var types []*models.VehicleType
	if err := r.db.SelectContext(ctx, &types, query); err != nil {
		return nil, fmt.Errorf("failed to query vehicle types: %w", err)
	}
	return types, nil
}
