package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/spinr-app/dispatch/internal/pkg/models"
)

// rideColumns is the select list shared by every ride query
const rideColumns = `
	id, rider_id, driver_id, vehicle_type_id,
	pickup_address, pickup_lat, pickup_lng,
	dropoff_address, dropoff_lat, dropoff_lng,
	distance_km, duration_minutes,
	base_fare, distance_fare, time_fare, booking_fee,
	area_fees_total, tax_amount, tip_amount, total_fare,
	driver_earnings, admin_earnings,
	cancellation_fee_admin, cancellation_fee_driver,
	status, pickup_otp, is_scheduled, scheduled_time,
	shared_trip_token, shared_trip_contacts,
	rider_rating, driver_rating, cancellation_reason,
	requested_at, driver_notified_at, driver_accepted_at, driver_arrived_at,
	started_at, completed_at, cancelled_at, created_at, updated_at
`

// RideRepo implements the ride repository interface
type RideRepo struct {
	db *sqlx.DB
}

// NewRideRepository creates a new ride repository
func NewRideRepository(db *sqlx.DB) *RideRepo {
	return &RideRepo{db: db}
}

// rideRow mirrors the rides table; share contacts are JSONB
type rideRow struct {
	models.Ride
	ContactsJSON []byte `db:"shared_trip_contacts"`
}

func (r *RideRepo) rideFromRow(ctx context.Context, row *rideRow) (*models.Ride, error) {
	ride := row.Ride
	if len(row.ContactsJSON) > 0 {
		if err := json.Unmarshal(row.ContactsJSON, &ride.SharedTripContacts); err != nil {
			return nil, fmt.Errorf("failed to decode share contacts: %w", err)
		}
	}

	stops, err := r.StopsForRide(ctx, ride.ID)
	if err != nil {
		return nil, err
	}
	ride.Stops = stops
	return &ride, nil
}

func (r *RideRepo) getRideWhere(ctx context.Context, where string, arg interface{}) (*models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE ` + where

	var row rideRow
	err := r.db.GetContext(ctx, &row, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query ride: %w", err)
	}
	return r.rideFromRow(ctx, &row)
}

// CreateRide inserts a new ride with its stops in one transaction
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO rides (
			id, rider_id, driver_id, vehicle_type_id,
			pickup_address, pickup_lat, pickup_lng,
			dropoff_address, dropoff_lat, dropoff_lng,
			distance_km, duration_minutes,
			base_fare, distance_fare, time_fare, booking_fee,
			area_fees_total, tax_amount, tip_amount, total_fare,
			driver_earnings, admin_earnings,
			cancellation_fee_admin, cancellation_fee_driver,
			status, pickup_otp, is_scheduled, scheduled_time,
			requested_at, created_at, updated_at
		) VALUES (
			:id, :rider_id, :driver_id, :vehicle_type_id,
			:pickup_address, :pickup_lat, :pickup_lng,
			:dropoff_address, :dropoff_lat, :dropoff_lng,
			:distance_km, :duration_minutes,
			:base_fare, :distance_fare, :time_fare, :booking_fee,
			:area_fees_total, :tax_amount, :tip_amount, :total_fare,
			:driver_earnings, :admin_earnings,
			:cancellation_fee_admin, :cancellation_fee_driver,
			:status, :pickup_otp, :is_scheduled, :scheduled_time,
			:requested_at, :created_at, :updated_at
		)
	`
	if _, err := tx.NamedExecContext(ctx, query, ride); err != nil {
		return fmt.Errorf("failed to insert ride: %w", err)
	}

	for i := range ride.Stops {
		if ride.Stops[i].ID == uuid.Nil {
			ride.Stops[i].ID = uuid.New()
		}
		ride.Stops[i].Order = i + 1
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO ride_stops (id, ride_id, address, lat, lng, stop_order)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, ride.Stops[i].ID, ride.ID, ride.Stops[i].Address, ride.Stops[i].Lat, ride.Stops[i].Lng, ride.Stops[i].Order); err != nil {
			return fmt.Errorf("failed to insert ride stop: %w", err)
		}
	}

	return tx.Commit()
}

// GetRide returns a ride with its stops, or nil when not found
func (r *RideRepo) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	return r.getRideWhere(ctx, "id = $1", rideID)
}

// GetRideByShareToken returns a ride by its public share token
func (r *RideRepo) GetRideByShareToken(ctx context.Context, token string) (*models.Ride, error) {
	return r.getRideWhere(ctx, "shared_trip_token = $1", token)
}

// execConditional runs a guarded update and reports whether a row matched
func (r *RideRepo) execConditional(ctx context.Context, query string, args ...interface{}) (bool, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// AssignDriver binds a driver to a searching ride
func (r *RideRepo) AssignDriver(ctx context.Context, rideID, driverID uuid.UUID) (bool, error) {
	query := `
		UPDATE rides
		SET driver_id = $2, status = $3, driver_notified_at = now(), updated_at = now()
		WHERE id = $1 AND status = $4
	`
	ok, err := r.execConditional(ctx, query, rideID, driverID, models.RideStatusDriverAssigned, models.RideStatusSearching)
	if err != nil {
		return false, fmt.Errorf("failed to assign driver: %w", err)
	}
	return ok, nil
}

// MarkAccepted moves driver_assigned to driver_accepted for the bound driver
func (r *RideRepo) MarkAccepted(ctx context.Context, rideID, driverID uuid.UUID) (bool, error) {
	query := `
		UPDATE rides
		SET status = $3, driver_accepted_at = now(), updated_at = now()
		WHERE id = $1 AND driver_id = $2 AND status = $4
	`
	ok, err := r.execConditional(ctx, query, rideID, driverID, models.RideStatusDriverAccepted, models.RideStatusDriverAssigned)
	if err != nil {
		return false, fmt.Errorf("failed to mark ride accepted: %w", err)
	}
	return ok, nil
}

// MarkArrived moves driver_accepted to driver_arrived for the bound driver
func (r *RideRepo) MarkArrived(ctx context.Context, rideID, driverID uuid.UUID) (bool, error) {
	query := `
		UPDATE rides
		SET status = $3, driver_arrived_at = now(), updated_at = now()
		WHERE id = $1 AND driver_id = $2 AND status = $4
	`
	ok, err := r.execConditional(ctx, query, rideID, driverID, models.RideStatusDriverArrived, models.RideStatusDriverAccepted)
	if err != nil {
		return false, fmt.Errorf("failed to mark ride arrived: %w", err)
	}
	return ok, nil
}

// MarkStarted moves driver_arrived to in_progress and stamps started_at
func (r *RideRepo) MarkStarted(ctx context.Context, rideID, driverID uuid.UUID) (bool, error) {
	query := `
		UPDATE rides
		SET status = $3, started_at = now(), updated_at = now()
		WHERE id = $1 AND driver_id = $2 AND status = $4
	`
	ok, err := r.execConditional(ctx, query, rideID, driverID, models.RideStatusInProgress, models.RideStatusDriverArrived)
	if err != nil {
		return false, fmt.Errorf("failed to mark ride started: %w", err)
	}
	return ok, nil
}

// MarkCompleted moves in_progress to completed and stamps completed_at
func (r *RideRepo) MarkCompleted(ctx context.Context, rideID, driverID uuid.UUID) (bool, error) {
	query := `
		UPDATE rides
		SET status = $3, completed_at = now(), updated_at = now()
		WHERE id = $1 AND driver_id = $2 AND status = $4
	`
	ok, err := r.execConditional(ctx, query, rideID, driverID, models.RideStatusCompleted, models.RideStatusInProgress)
	if err != nil {
		return false, fmt.Errorf("failed to mark ride completed: %w", err)
	}
	return ok, nil
}

// ResetToSearching clears the driver binding after a decline
func (r *RideRepo) ResetToSearching(ctx context.Context, rideID, driverID uuid.UUID) (bool, error) {
	query := `
		UPDATE rides
		SET driver_id = NULL, status = $3,
		    driver_notified_at = NULL, driver_accepted_at = NULL, updated_at = now()
		WHERE id = $1 AND driver_id = $2 AND status IN ($4, $5)
	`
	ok, err := r.execConditional(ctx, query, rideID, driverID, models.RideStatusSearching,
		models.RideStatusDriverAssigned, models.RideStatusDriverAccepted)
	if err != nil {
		return false, fmt.Errorf("failed to reset ride to searching: %w", err)
	}
	return ok, nil
}

// CancelRide cancels a ride from one of the allowed source states,
// recording the fee split and reason
func (r *RideRepo) CancelRide(ctx context.Context, rideID uuid.UUID, from []models.RideStatus, feeAdmin, feeDriver float64, reason string) (bool, error) {
	query, args, err := sqlx.In(`
		UPDATE rides
		SET status = ?, cancellation_fee_admin = ?, cancellation_fee_driver = ?,
		    cancellation_reason = ?, cancelled_at = now(), updated_at = now()
		WHERE id = ? AND status IN (?)
	`, models.RideStatusCancelled, feeAdmin, feeDriver, reason, rideID, from)
	if err != nil {
		return false, fmt.Errorf("failed to build cancel query: %w", err)
	}

	ok, err := r.execConditional(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return false, fmt.Errorf("failed to cancel ride: %w", err)
	}
	return ok, nil
}

// AddTip atomically increases the tip, total and driver earnings of a
// completed ride
func (r *RideRepo) AddTip(ctx context.Context, rideID, riderID uuid.UUID, amount float64) (bool, error) {
	query := `
		UPDATE rides
		SET tip_amount = tip_amount + $3,
		    total_fare = total_fare + $3,
		    driver_earnings = driver_earnings + $3,
		    updated_at = now()
		WHERE id = $1 AND rider_id = $2 AND status = $4
	`
	ok, err := r.execConditional(ctx, query, rideID, riderID, amount, models.RideStatusCompleted)
	if err != nil {
		return false, fmt.Errorf("failed to add tip: %w", err)
	}
	return ok, nil
}

// SetDriverRating stores the rider's rating of the driver
func (r *RideRepo) SetDriverRating(ctx context.Context, rideID, riderID uuid.UUID, rating int) (bool, error) {
	query := `
		UPDATE rides
		SET driver_rating = $3, updated_at = now()
		WHERE id = $1 AND rider_id = $2 AND status = $4
	`
	ok, err := r.execConditional(ctx, query, rideID, riderID, rating, models.RideStatusCompleted)
	if err != nil {
		return false, fmt.Errorf("failed to set driver rating: %w", err)
	}
	return ok, nil
}

// SetRiderRating stores the driver's rating of the rider
func (r *RideRepo) SetRiderRating(ctx context.Context, rideID, driverID uuid.UUID, rating int) (bool, error) {
	query := `
		UPDATE rides
		SET rider_rating = $3, updated_at = now()
		WHERE id = $1 AND driver_id = $2 AND status = $4
	`
	ok, err := r.execConditional(ctx, query, rideID, driverID, rating, models.RideStatusCompleted)
	if err != nil {
		return false, fmt.Errorf("failed to set rider rating: %w", err)
	}
	return ok, nil
}

// ListDueScheduled returns scheduled rides due before the cutoff
func (r *RideRepo) ListDueScheduled(ctx context.Context, cutoff time.Time) ([]*models.Ride, error) {
	query := `SELECT ` + rideColumns + `
		FROM rides
		WHERE status = $1 AND scheduled_time <= $2
		ORDER BY scheduled_time ASC
	`
	return r.listRides(ctx, query, models.RideStatusScheduled, cutoff)
}

// PromoteScheduled conditionally moves a scheduled ride into searching
func (r *RideRepo) PromoteScheduled(ctx context.Context, rideID uuid.UUID, now time.Time) (bool, error) {
	query := `
		UPDATE rides
		SET status = $2, requested_at = $3, updated_at = now()
		WHERE id = $1 AND status = $4
	`
	ok, err := r.execConditional(ctx, query, rideID, models.RideStatusSearching, now, models.RideStatusScheduled)
	if err != nil {
		return false, fmt.Errorf("failed to promote scheduled ride: %w", err)
	}
	return ok, nil
}

// ListScheduledForRider returns a rider's upcoming scheduled rides
func (r *RideRepo) ListScheduledForRider(ctx context.Context, riderID uuid.UUID) ([]*models.Ride, error) {
	query := `SELECT ` + rideColumns + `
		FROM rides
		WHERE rider_id = $1 AND status = $2
		ORDER BY scheduled_time ASC
	`
	return r.listRides(ctx, query, riderID, models.RideStatusScheduled)
}

func (r *RideRepo) listRides(ctx context.Context, query string, args ...interface{}) ([]*models.Ride, error) {
	var rows []rideRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list rides: %w", err)
	}

	result := make([]*models.Ride, 0, len(rows))
	for i := range rows {
		ride, err := r.rideFromRow(ctx, &rows[i])
		if err != nil {
			return nil, err
		}
		result = append(result, ride)
	}
	return result, nil
}

// ActiveRideForDriver returns the driver's single active ride, or nil
func (r *RideRepo) ActiveRideForDriver(ctx context.Context, driverID uuid.UUID) (*models.Ride, error) {
	rides, err := r.ActiveRidesForDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if len(rides) == 0 {
		return nil, nil
	}
	return rides[0], nil
}

// ActiveRidesForDriver returns every ride currently binding the driver
func (r *RideRepo) ActiveRidesForDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Ride, error) {
	query, args, err := sqlx.In(`SELECT `+rideColumns+`
		FROM rides
		WHERE driver_id = ? AND status IN (?)
		ORDER BY updated_at DESC
	`, driverID, models.ActiveRideStatuses)
	if err != nil {
		return nil, fmt.Errorf("failed to build active rides query: %w", err)
	}
	return r.listRides(ctx, r.db.Rebind(query), args...)
}

// LastAssignedDriverID returns the driver of the most recently created
// ride with a driver bound, used as the round-robin anchor
func (r *RideRepo) LastAssignedDriverID(ctx context.Context) (*uuid.UUID, error) {
	query := `
		SELECT driver_id FROM rides
		WHERE driver_id IS NOT NULL
		ORDER BY created_at DESC
		LIMIT 1
	`
	var driverID uuid.UUID
	err := r.db.GetContext(ctx, &driverID, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query last assigned driver: %w", err)
	}
	return &driverID, nil
}

// AddStop appends a waypoint row
func (r *RideRepo) AddStop(ctx context.Context, rideID uuid.UUID, stop *models.RideStop) error {
	query := `
		INSERT INTO ride_stops (id, ride_id, address, lat, lng, stop_order)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := r.db.ExecContext(ctx, query, stop.ID, rideID, stop.Address, stop.Lat, stop.Lng, stop.Order); err != nil {
		return fmt.Errorf("failed to insert stop: %w", err)
	}
	return nil
}

// CompleteStop stamps a waypoint as reached
func (r *RideRepo) CompleteStop(ctx context.Context, rideID, stopID uuid.UUID, now time.Time) (bool, error) {
	query := `
		UPDATE ride_stops
		SET arrived_at = COALESCE(arrived_at, $3), completed_at = $3
		WHERE id = $1 AND ride_id = $2 AND completed_at IS NULL
	`
	ok, err := r.execConditional(ctx, query, stopID, rideID, now)
	if err != nil {
		return false, fmt.Errorf("failed to complete stop: %w", err)
	}
	return ok, nil
}

// StopsForRide returns a ride's waypoints in order
func (r *RideRepo) StopsForRide(ctx context.Context, rideID uuid.UUID) ([]models.RideStop, error) {
	query := `
		SELECT id, address, lat, lng, stop_order, arrived_at, completed_at
		FROM ride_stops
		WHERE ride_id = $1
		ORDER BY stop_order ASC
	`
	type stopRow struct {
		ID          uuid.UUID  `db:"id"`
		Address     string     `db:"address"`
		Lat         float64    `db:"lat"`
		Lng         float64    `db:"lng"`
		StopOrder   int        `db:"stop_order"`
		ArrivedAt   *time.Time `db:"arrived_at"`
		CompletedAt *time.Time `db:"completed_at"`
	}

	var rows []stopRow
	if err := r.db.SelectContext(ctx, &rows, query, rideID); err != nil {
		return nil, fmt.Errorf("failed to query ride stops: %w", err)
	}

	stops := make([]models.RideStop, 0, len(rows))
	for _, row := range rows {
		stops = append(stops, models.RideStop{
			ID:          row.ID,
			Address:     row.Address,
			Lat:         row.Lat,
			Lng:         row.Lng,
			Order:       row.StopOrder,
			ArrivedAt:   row.ArrivedAt,
			CompletedAt: row.CompletedAt,
		})
	}
	return stops, nil
}

// SetShareToken stores the public share token
func (r *RideRepo) SetShareToken(ctx context.Context, rideID uuid.UUID, token string) error {
	query := `UPDATE rides SET shared_trip_token = $2, updated_at = now() WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, rideID, token); err != nil {
		return fmt.Errorf("failed to set share token: %w", err)
	}
	return nil
}

// AddShareContacts appends contacts to the ride's share list
func (r *RideRepo) AddShareContacts(ctx context.Context, rideID uuid.UUID, contacts []models.TripShareContact) error {
	payload, err := json.Marshal(contacts)
	if err != nil {
		return fmt.Errorf("failed to encode share contacts: %w", err)
	}
	query := `
		UPDATE rides
		SET shared_trip_contacts = COALESCE(shared_trip_contacts, '[]'::jsonb) || $2::jsonb,
		    updated_at = now()
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, rideID, payload); err != nil {
		return fmt.Errorf("failed to append share contacts: %w", err)
	}
	return nil
}
