package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/spinr-app/dispatch/internal/pkg/constants"
	"github.com/spinr-app/dispatch/internal/pkg/database"
	"github.com/spinr-app/dispatch/internal/pkg/logger"
	"github.com/spinr-app/dispatch/internal/pkg/models"
)

// locationCacheTTL bounds how long a stale last-known position survives
const locationCacheTTL = 30 * time.Minute

// LocationRepo implements the location repository interface
type LocationRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *sqlx.DB, redisClient *database.RedisClient) *LocationRepo {
	return &LocationRepo{
		db:          db,
		redisClient: redisClient,
	}
}

// UpsertDriverGeo writes the driver position to the online geo index and
// the last-known-location hash
func (r *LocationRepo) UpsertDriverGeo(ctx context.Context, driverID uuid.UUID, lat, lng float64) error {
	if err := r.redisClient.GeoAdd(ctx, constants.KeyDriverGeo, lng, lat, driverID.String()); err != nil {
		return fmt.Errorf("failed to update geo index: %w", err)
	}

	key := fmt.Sprintf(constants.KeyDriverLocation, driverID)
	fields := map[string]interface{}{
		constants.FieldLatitude:  lat,
		constants.FieldLongitude: lng,
		constants.FieldTimestamp: time.Now().UTC().Unix(),
	}
	if err := r.redisClient.HMSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to cache driver location: %w", err)
	}
	if err := r.redisClient.Expire(ctx, key, locationCacheTTL); err != nil {
		logger.Warn("failed to set location cache ttl",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
	}
	return nil
}

// RemoveDriver takes a driver out of the online geo index
func (r *LocationRepo) RemoveDriver(ctx context.Context, driverID uuid.UUID) error {
	if err := r.redisClient.ZRem(ctx, constants.KeyDriverGeo, driverID.String()); err != nil {
		return fmt.Errorf("failed to remove driver from geo index: %w", err)
	}
	if err := r.redisClient.Delete(ctx, fmt.Sprintf(constants.KeyDriverLocation, driverID)); err != nil {
		logger.Warn("failed to drop driver location cache",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
	}
	return nil
}

const insertBreadcrumbQuery = `
	INSERT INTO location_breadcrumbs (
		id, driver_id, ride_id, lat, lng,
		speed, heading, accuracy, altitude,
		tracking_phase, geohash, timestamp
	) VALUES (
		:id, :driver_id, :ride_id, :lat, :lng,
		:speed, :heading, :accuracy, :altitude,
		:tracking_phase, :geohash, :timestamp
	)
`

// InsertBreadcrumb persists one GPS sample
func (r *LocationRepo) InsertBreadcrumb(ctx context.Context, crumb *models.Breadcrumb) error {
	if _, err := r.db.NamedExecContext(ctx, insertBreadcrumbQuery, crumb); err != nil {
		return fmt.Errorf("failed to insert breadcrumb: %w", err)
	}
	return nil
}

// InsertBreadcrumbs persists a batch of GPS samples in one transaction
func (r *LocationRepo) InsertBreadcrumbs(ctx context.Context, crumbs []*models.Breadcrumb) error {
	if len(crumbs) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, crumb := range crumbs {
		if _, err := tx.NamedExecContext(ctx, insertBreadcrumbQuery, crumb); err != nil {
			return fmt.Errorf("failed to insert breadcrumb batch: %w", err)
		}
	}
	return tx.Commit()
}

// NearbyDrivers returns online, available drivers within the radius,
// nearest first
func (r *LocationRepo) NearbyDrivers(ctx context.Context, lat, lng, radiusKm float64) ([]models.NearbyDriver, error) {
	locations, err := r.redisClient.GeoRadius(ctx, constants.KeyDriverGeo, lng, lat, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to query geo index: %w", err)
	}
	if len(locations) == 0 {
		return nil, nil
	}

	hits := make([]geoHit, 0, len(locations))
	ids := make([]uuid.UUID, 0, len(locations))
	for _, loc := range locations {
		driverID, err := uuid.Parse(loc.Name)
		if err != nil {
			logger.Warn("geo index member is not a driver id",
				logger.String("member", loc.Name))
			continue
		}
		// the index holds the live position; the driver row only has the
		// registration-time coordinates
		hits = append(hits, geoHit{
			driverID:   driverID,
			lat:        loc.Latitude,
			lng:        loc.Longitude,
			distanceKm: loc.Dist,
		})
		ids = append(ids, driverID)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, vehicle_type_id
		FROM drivers
		WHERE id IN (?) AND is_online = true AND is_available = true
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build nearby driver query: %w", err)
	}

	var rows []nearbyDriverRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to hydrate nearby drivers: %w", err)
	}
	return assembleNearby(hits, rows), nil
}

// geoHit is one GEORADIUS result with its live coordinates
type geoHit struct {
	driverID   uuid.UUID
	lat, lng   float64
	distanceKm float64
}

type nearbyDriverRow struct {
	ID            uuid.UUID `db:"id"`
	VehicleTypeID uuid.UUID `db:"vehicle_type_id"`
}

// assembleNearby merges geo hits with the hydrated rows, keeping the index
// ordering (nearest first) and the index coordinates
func assembleNearby(hits []geoHit, rows []nearbyDriverRow) []models.NearbyDriver {
	byID := make(map[uuid.UUID]nearbyDriverRow, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}

	nearby := make([]models.NearbyDriver, 0, len(rows))
	for _, hit := range hits {
		row, ok := byID[hit.driverID]
		if !ok {
			continue
		}
		nearby = append(nearby, models.NearbyDriver{
			ID:            row.ID,
			Lat:           hit.lat,
			Lng:           hit.lng,
			VehicleTypeID: row.VehicleTypeID,
			DistanceKm:    hit.distanceKm,
		})
	}
	return nearby
}
