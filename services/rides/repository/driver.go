package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/spinr-app/dispatch/internal/pkg/constants"
	"github.com/spinr-app/dispatch/internal/pkg/database"
	"github.com/spinr-app/dispatch/internal/pkg/logger"
	"github.com/spinr-app/dispatch/internal/pkg/models"
	"github.com/spinr-app/dispatch/services/rides"
)

// DriverRepo implements the driver repository interface
type DriverRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewDriverRepository creates a new driver repository
func NewDriverRepository(db *sqlx.DB, redisClient *database.RedisClient) *DriverRepo {
	return &DriverRepo{
		db:          db,
		redisClient: redisClient,
	}
}

const driverColumns = `
	id, user_id, name, vehicle_type_id, lat, lng,
	is_online, is_available, rating, total_rides, created_at, updated_at
`

// GetDriver returns a driver by id, or nil when not found
func (r *DriverRepo) GetDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE id = $1`

	var driver models.Driver
	err := r.db.GetContext(ctx, &driver, query, driverID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query driver: %w", err)
	}
	return &driver, nil
}

// DriverByUserID returns the driver profile owned by a user, or nil
func (r *DriverRepo) DriverByUserID(ctx context.Context, userID uuid.UUID) (*models.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE user_id = $1`

	var driver models.Driver
	err := r.db.GetContext(ctx, &driver, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query driver by user: %w", err)
	}
	return &driver, nil
}

// NearbyDriverIDs queries the online-driver geo index, nearest first
func (r *DriverRepo) NearbyDriverIDs(ctx context.Context, lat, lng, radiusKm float64) ([]rides.NearbyDriverID, error) {
	locations, err := r.redisClient.GeoRadius(ctx, constants.KeyDriverGeo, lng, lat, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to query geo index: %w", err)
	}

	hits := make([]rides.NearbyDriverID, 0, len(locations))
	for _, loc := range locations {
		driverID, err := uuid.Parse(loc.Name)
		if err != nil {
			logger.Warn("geo index member is not a driver id",
				logger.String("member", loc.Name))
			continue
		}
		hits = append(hits, rides.NearbyDriverID{
			DriverID:   driverID,
			DistanceKm: loc.Dist,
		})
	}
	return hits, nil
}

// LastKnownLocation reads the cached GPS sample the location service
// writes on every update; nil means the entry expired or never existed
func (r *DriverRepo) LastKnownLocation(ctx context.Context, driverID uuid.UUID) (*models.LatLng, error) {
	key := fmt.Sprintf(constants.KeyDriverLocation, driverID)
	values, err := r.redisClient.HMGet(ctx, key, constants.FieldLatitude, constants.FieldLongitude)
	if err != nil {
		return nil, fmt.Errorf("failed to read location cache: %w", err)
	}
	if len(values) != 2 || values[0] == nil || values[1] == nil {
		return nil, nil
	}

	lat, latErr := parseCachedCoord(values[0])
	lng, lngErr := parseCachedCoord(values[1])
	if latErr != nil || lngErr != nil {
		logger.Warn("location cache entry is malformed",
			logger.String("driver_id", driverID.String()))
		return nil, nil
	}
	return &models.LatLng{Lat: lat, Lng: lng}, nil
}

func parseCachedCoord(v interface{}) (float64, error) {
	s, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("unexpected cache field type %T", v)
	}
	return strconv.ParseFloat(s, 64)
}

// CandidatesByIDs hydrates geo hits, keeping online, available drivers of
// the requested vehicle type
func (r *DriverRepo) CandidatesByIDs(ctx context.Context, driverIDs []uuid.UUID, vehicleTypeID uuid.UUID) ([]*models.Driver, error) {
	if len(driverIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT `+driverColumns+`
		FROM drivers
		WHERE id IN (?) AND vehicle_type_id = ? AND is_online = true AND is_available = true
	`, driverIDs, vehicleTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to build candidate query: %w", err)
	}

	var drivers []*models.Driver
	if err := r.db.SelectContext(ctx, &drivers, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to hydrate candidates: %w", err)
	}
	return drivers, nil
}

// TryClaim flips is_available from true to false in a single conditional
// update; zero rows affected means another claim won
func (r *DriverRepo) TryClaim(ctx context.Context, driverID uuid.UUID) (bool, error) {
	query := `
		UPDATE drivers
		SET is_available = false, updated_at = now()
		WHERE id = $1 AND is_available = true
	`
	res, err := r.db.ExecContext(ctx, query, driverID)
	if err != nil {
		return false, fmt.Errorf("failed to claim driver: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Release restores a driver's availability
func (r *DriverRepo) Release(ctx context.Context, driverID uuid.UUID) error {
	query := `
		UPDATE drivers
		SET is_available = true, updated_at = now()
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, driverID); err != nil {
		return fmt.Errorf("failed to release driver: %w", err)
	}
	return nil
}

// CompleteRideStats restores availability and bumps the ride count
func (r *DriverRepo) CompleteRideStats(ctx context.Context, driverID uuid.UUID) error {
	query := `
		UPDATE drivers
		SET is_available = true, total_rides = total_rides + 1, updated_at = now()
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, driverID); err != nil {
		return fmt.Errorf("failed to update driver stats: %w", err)
	}
	return nil
}
