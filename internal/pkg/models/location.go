package models

import (
	"time"

	"github.com/google/uuid"
)

// Tracking phases describe why a driver position is being recorded.
const (
	PhaseOnlineIdle         = "online_idle"
	PhaseNavigatingToPickup = "navigating_to_pickup"
	PhaseArrivedAtPickup    = "arrived_at_pickup"
	PhaseTripInProgress     = "trip_in_progress"
)

// DriverLocation is a driver's last known position
type DriverLocation struct {
	DriverID  uuid.UUID `json:"driver_id"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Breadcrumb is a single persisted GPS sample, tagged with the trip phase
// it was recorded in and a geohash cell for spatial aggregation
type Breadcrumb struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	DriverID      uuid.UUID  `json:"driver_id" db:"driver_id"`
	RideID        *uuid.UUID `json:"ride_id" db:"ride_id"`
	Lat           float64    `json:"lat" db:"lat"`
	Lng           float64    `json:"lng" db:"lng"`
	Speed         *float64   `json:"speed" db:"speed"`
	Heading       *float64   `json:"heading" db:"heading"`
	Accuracy      *float64   `json:"accuracy" db:"accuracy"`
	Altitude      *float64   `json:"altitude" db:"altitude"`
	TrackingPhase string     `json:"tracking_phase" db:"tracking_phase"`
	Geohash       string     `json:"geohash" db:"geohash"`
	Timestamp     time.Time  `json:"timestamp" db:"timestamp"`
}

// NearbyDriver is the payload entry for a get_nearby_drivers query
type NearbyDriver struct {
	ID            uuid.UUID `json:"id"`
	Lat           float64   `json:"lat"`
	Lng           float64   `json:"lng"`
	VehicleTypeID uuid.UUID `json:"vehicle_type_id"`
	DistanceKm    float64   `json:"distance_km"`
}
