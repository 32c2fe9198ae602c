package models

import (
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the lifecycle state of a ride
type RideStatus string

const (
	RideStatusScheduled      RideStatus = "scheduled"
	RideStatusSearching      RideStatus = "searching"
	RideStatusDriverAssigned RideStatus = "driver_assigned"
	RideStatusDriverAccepted RideStatus = "driver_accepted"
	RideStatusDriverArrived  RideStatus = "driver_arrived"
	RideStatusInProgress     RideStatus = "in_progress"
	RideStatusCompleted      RideStatus = "completed"
	RideStatusCancelled      RideStatus = "cancelled"
)

// ActiveRideStatuses are the states in which a ride binds a driver.
var ActiveRideStatuses = []RideStatus{
	RideStatusDriverAssigned,
	RideStatusDriverAccepted,
	RideStatusDriverArrived,
	RideStatusInProgress,
}

// Ride represents a trip record moving through the dispatch lifecycle
type Ride struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	RiderID       uuid.UUID  `json:"rider_id" db:"rider_id"`
	DriverID      *uuid.UUID `json:"driver_id" db:"driver_id"`
	VehicleTypeID uuid.UUID  `json:"vehicle_type_id" db:"vehicle_type_id"`

	PickupAddress  string  `json:"pickup_address" db:"pickup_address"`
	PickupLat      float64 `json:"pickup_lat" db:"pickup_lat"`
	PickupLng      float64 `json:"pickup_lng" db:"pickup_lng"`
	DropoffAddress string  `json:"dropoff_address" db:"dropoff_address"`
	DropoffLat     float64 `json:"dropoff_lat" db:"dropoff_lat"`
	DropoffLng     float64 `json:"dropoff_lng" db:"dropoff_lng"`

	DistanceKm      float64 `json:"distance_km" db:"distance_km"`
	DurationMinutes int     `json:"duration_minutes" db:"duration_minutes"`

	BaseFare      float64 `json:"base_fare" db:"base_fare"`
	DistanceFare  float64 `json:"distance_fare" db:"distance_fare"`
	TimeFare      float64 `json:"time_fare" db:"time_fare"`
	BookingFee    float64 `json:"booking_fee" db:"booking_fee"`
	AreaFeesTotal float64 `json:"area_fees_total" db:"area_fees_total"`
	TaxAmount     float64 `json:"tax_amount" db:"tax_amount"`
	TipAmount     float64 `json:"tip_amount" db:"tip_amount"`
	TotalFare     float64 `json:"total_fare" db:"total_fare"`

	DriverEarnings        float64 `json:"driver_earnings" db:"driver_earnings"`
	AdminEarnings         float64 `json:"admin_earnings" db:"admin_earnings"`
	CancellationFeeAdmin  float64 `json:"cancellation_fee_admin" db:"cancellation_fee_admin"`
	CancellationFeeDriver float64 `json:"cancellation_fee_driver" db:"cancellation_fee_driver"`

	Status    RideStatus `json:"status" db:"status"`
	PickupOTP string     `json:"pickup_otp" db:"pickup_otp"`

	IsScheduled   bool       `json:"is_scheduled" db:"is_scheduled"`
	ScheduledTime *time.Time `json:"scheduled_time" db:"scheduled_time"`

	Stops []RideStop `json:"stops" db:"-"`

	SharedTripToken    *string            `json:"shared_trip_token,omitempty" db:"shared_trip_token"`
	SharedTripContacts []TripShareContact `json:"shared_trip_contacts,omitempty" db:"-"`

	RiderRating  *int    `json:"rider_rating" db:"rider_rating"`
	DriverRating *int    `json:"driver_rating" db:"driver_rating"`
	CancelReason *string `json:"cancellation_reason" db:"cancellation_reason"`

	RequestedAt      time.Time  `json:"requested_at" db:"requested_at"`
	DriverNotifiedAt *time.Time `json:"driver_notified_at" db:"driver_notified_at"`
	DriverAcceptedAt *time.Time `json:"driver_accepted_at" db:"driver_accepted_at"`
	DriverArrivedAt  *time.Time `json:"driver_arrived_at" db:"driver_arrived_at"`
	StartedAt        *time.Time `json:"started_at" db:"started_at"`
	CompletedAt      *time.Time `json:"completed_at" db:"completed_at"`
	CancelledAt      *time.Time `json:"cancelled_at" db:"cancelled_at"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}

// RideStop is an intermediate waypoint on a multi-stop ride
type RideStop struct {
	ID          uuid.UUID  `json:"id"`
	Address     string     `json:"address"`
	Lat         float64    `json:"lat"`
	Lng         float64    `json:"lng"`
	Order       int        `json:"order"`
	ArrivedAt   *time.Time `json:"arrived_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

// TripShareContact is a contact a live trip has been shared with
type TripShareContact struct {
	Name     string    `json:"name"`
	Phone    string    `json:"phone"`
	SharedAt time.Time `json:"shared_at"`
}

// IsTerminal reports whether the ride can no longer change state
func (s RideStatus) IsTerminal() bool {
	return s == RideStatusCompleted || s == RideStatusCancelled
}
