package models

import (
	"time"

	"github.com/google/uuid"
)

// Driver represents a worker entity capable of serving rides
type Driver struct {
	ID            uuid.UUID `json:"id" db:"id"`
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	Name          string    `json:"name" db:"name"`
	VehicleTypeID uuid.UUID `json:"vehicle_type_id" db:"vehicle_type_id"`
	Lat           float64   `json:"lat" db:"lat"`
	Lng           float64   `json:"lng" db:"lng"`
	IsOnline      bool      `json:"is_online" db:"is_online"`
	IsAvailable   bool      `json:"is_available" db:"is_available"`
	Rating        float64   `json:"rating" db:"rating"`
	TotalRides    int       `json:"total_rides" db:"total_rides"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// Candidate pairs a driver with its distance from a pickup point
type Candidate struct {
	Driver     *Driver
	DistanceKm float64
}

// DispatchSettings is the admin-tunable matching policy, read per match
// attempt from the settings row. Missing row falls back to these defaults.
type DispatchSettings struct {
	MatchingAlgorithm     string  `json:"driver_matching_algorithm" db:"driver_matching_algorithm"`
	MinDriverRating       float64 `json:"min_driver_rating" db:"min_driver_rating"`
	SearchRadiusKm        float64 `json:"search_radius_km" db:"search_radius_km"`
	CancellationFeeAdmin  float64 `json:"cancellation_fee_admin" db:"cancellation_fee_admin"`
	CancellationFeeDriver float64 `json:"cancellation_fee_driver" db:"cancellation_fee_driver"`
}

// Matching algorithm names
const (
	AlgorithmNearest     = "nearest"
	AlgorithmRatingBased = "rating_based"
	AlgorithmRoundRobin  = "round_robin"
	AlgorithmCombined    = "combined"
)

// DefaultDispatchSettings mirror the seeded settings row.
func DefaultDispatchSettings() *DispatchSettings {
	return &DispatchSettings{
		MatchingAlgorithm:     AlgorithmNearest,
		MinDriverRating:       4.0,
		SearchRadiusKm:        10.0,
		CancellationFeeAdmin:  0.50,
		CancellationFeeDriver: 2.50,
	}
}
