package rides

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spinr-app/dispatch/internal/pkg/models"
)

// CreateRideRequest carries a ride request from the routing layer
type CreateRideRequest struct {
	RiderID        uuid.UUID
	VehicleTypeID  uuid.UUID
	PickupAddress  string
	PickupLat      float64
	PickupLng      float64
	DropoffAddress string
	DropoffLat     float64
	DropoffLng     float64
	ScheduledTime  *time.Time
	Stops          []models.RideStop
}

// SharedTripView is the public safe subset exposed by a share token
type SharedTripView struct {
	RideID         uuid.UUID         `json:"ride_id"`
	Status         models.RideStatus `json:"status"`
	PickupAddress  string            `json:"pickup_address"`
	DropoffAddress string            `json:"dropoff_address"`
	StartedAt      *time.Time        `json:"started_at"`
	CompletedAt    *time.Time        `json:"completed_at"`
	DriverLocation *models.LatLng    `json:"driver_location,omitempty"`
}

// RideUC defines the interface for ride dispatch business logic
type RideUC interface {
	CreateRide(ctx context.Context, req CreateRideRequest) (*models.Ride, error)
	ScheduleRide(ctx context.Context, req CreateRideRequest) (*models.Ride, error)
	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	ListScheduledRides(ctx context.Context, riderID uuid.UUID) ([]*models.Ride, error)
	DriverForUser(ctx context.Context, userID uuid.UUID) (*models.Driver, error)

	MatchDriver(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)

	AcceptRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error)
	DeclineRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error)
	MarkArrived(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error)
	VerifyPickupOTP(ctx context.Context, rideID, driverID uuid.UUID, otp string) (*models.Ride, error)
	StartRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error)
	CompleteRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error)
	CancelRideByDriver(ctx context.Context, rideID, driverID uuid.UUID, reason string) (*models.Ride, error)

	CancelRideByRider(ctx context.Context, rideID, riderID uuid.UUID, reason string) (*models.Ride, error)
	AddTip(ctx context.Context, rideID, riderID uuid.UUID, amount float64) (*models.Ride, error)
	RateDriver(ctx context.Context, rideID, riderID uuid.UUID, rating int) error
	RateRider(ctx context.Context, rideID, driverID uuid.UUID, rating int) error

	AddStop(ctx context.Context, rideID, riderID uuid.UUID, stop models.RideStop) (*models.Ride, error)
	CompleteStop(ctx context.Context, rideID, driverID, stopID uuid.UUID) (*models.Ride, error)

	ShareTrip(ctx context.Context, rideID, riderID uuid.UUID, contacts []models.TripShareContact) (string, error)
	SharedTrip(ctx context.Context, token string) (*SharedTripView, error)

	PromoteDueScheduledRides(ctx context.Context)
}
