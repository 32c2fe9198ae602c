package rides

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spinr-app/dispatch/internal/pkg/models"
)

// NearbyDriverID is one hit from the online-driver geo index
type NearbyDriverID struct {
	DriverID   uuid.UUID
	DistanceKm float64
}

// RideRepo defines the interface for ride data access operations. Every
// state transition is a single conditional update; the boolean result is
// false when the guard did not match (lost race or invalid transition).
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) error
	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	GetRideByShareToken(ctx context.Context, token string) (*models.Ride, error)

	AssignDriver(ctx context.Context, rideID, driverID uuid.UUID) (bool, error)
	MarkAccepted(ctx context.Context, rideID, driverID uuid.UUID) (bool, error)
	MarkArrived(ctx context.Context, rideID, driverID uuid.UUID) (bool, error)
	MarkStarted(ctx context.Context, rideID, driverID uuid.UUID) (bool, error)
	MarkCompleted(ctx context.Context, rideID, driverID uuid.UUID) (bool, error)
	ResetToSearching(ctx context.Context, rideID, driverID uuid.UUID) (bool, error)
	CancelRide(ctx context.Context, rideID uuid.UUID, from []models.RideStatus, feeAdmin, feeDriver float64, reason string) (bool, error)

	AddTip(ctx context.Context, rideID, riderID uuid.UUID, amount float64) (bool, error)
	SetDriverRating(ctx context.Context, rideID, riderID uuid.UUID, rating int) (bool, error)
	SetRiderRating(ctx context.Context, rideID, driverID uuid.UUID, rating int) (bool, error)

	ListDueScheduled(ctx context.Context, cutoff time.Time) ([]*models.Ride, error)
	PromoteScheduled(ctx context.Context, rideID uuid.UUID, now time.Time) (bool, error)
	ListScheduledForRider(ctx context.Context, riderID uuid.UUID) ([]*models.Ride, error)

	ActiveRideForDriver(ctx context.Context, driverID uuid.UUID) (*models.Ride, error)
	ActiveRidesForDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Ride, error)
	LastAssignedDriverID(ctx context.Context) (*uuid.UUID, error)

	AddStop(ctx context.Context, rideID uuid.UUID, stop *models.RideStop) error
	CompleteStop(ctx context.Context, rideID, stopID uuid.UUID, now time.Time) (bool, error)
	StopsForRide(ctx context.Context, rideID uuid.UUID) ([]models.RideStop, error)

	SetShareToken(ctx context.Context, rideID uuid.UUID, token string) error
	AddShareContacts(ctx context.Context, rideID uuid.UUID, contacts []models.TripShareContact) error
}

// DriverRepo defines the interface for driver data access operations
type DriverRepo interface {
	GetDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error)
	DriverByUserID(ctx context.Context, userID uuid.UUID) (*models.Driver, error)

	// NearbyDriverIDs queries the online-driver geo index, nearest first
	NearbyDriverIDs(ctx context.Context, lat, lng, radiusKm float64) ([]NearbyDriverID, error)

	// LastKnownLocation reads the driver's most recent GPS sample from
	// the location cache, or nil when none is fresh enough
	LastKnownLocation(ctx context.Context, driverID uuid.UUID) (*models.LatLng, error)

	// CandidatesByIDs hydrates geo hits, keeping only online, available
	// drivers of the requested vehicle type
	CandidatesByIDs(ctx context.Context, driverIDs []uuid.UUID, vehicleTypeID uuid.UUID) ([]*models.Driver, error)

	// TryClaim flips is_available from true to false; false means the
	// driver was already claimed
	TryClaim(ctx context.Context, driverID uuid.UUID) (bool, error)
	Release(ctx context.Context, driverID uuid.UUID) error
	CompleteRideStats(ctx context.Context, driverID uuid.UUID) error
}

// SettingsRepo reads the admin-tunable dispatch settings row
type SettingsRepo interface {
	// DispatchSettings falls back to defaults when no row exists
	DispatchSettings(ctx context.Context) (*models.DispatchSettings, error)
}
