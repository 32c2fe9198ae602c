package models

import (
	"time"

	"github.com/google/uuid"
)

// LatLng is a single polygon vertex or coordinate pair
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ServiceArea is a named polygon used for pricing, tax, surge and
// airport-zone resolution
type ServiceArea struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	City            string    `json:"city" db:"city"`
	Polygon         []LatLng  `json:"polygon" db:"-"`
	IsActive        bool      `json:"is_active" db:"is_active"`
	IsAirport       bool      `json:"is_airport" db:"is_airport"`
	AirportFee      float64   `json:"airport_fee" db:"airport_fee"`
	SurgeActive     bool      `json:"surge_active" db:"surge_active"`
	SurgeMultiplier float64   `json:"surge_multiplier" db:"surge_multiplier"`
	GSTEnabled      bool      `json:"gst_enabled" db:"gst_enabled"`
	GSTRate         float64   `json:"gst_rate" db:"gst_rate"`
	PSTEnabled      bool      `json:"pst_enabled" db:"pst_enabled"`
	PSTRate         float64   `json:"pst_rate" db:"pst_rate"`
	HSTEnabled      bool      `json:"hst_enabled" db:"hst_enabled"`
	HSTRate         float64   `json:"hst_rate" db:"hst_rate"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// Area fee types
const (
	FeeTypeNight   = "night"
	FeeTypeAirport = "airport"
	FeeTypeToll    = "toll"
	FeeTypeEvent   = "event"
	FeeTypeCustom  = "custom"
)

// Area fee calculation modes
const (
	CalcModeFlat       = "flat"
	CalcModePerKm      = "per_km"
	CalcModePercentage = "percentage"
)

// AreaFee is a conditional surcharge attached to a service area
type AreaFee struct {
	ID            uuid.UUID `json:"id" db:"id"`
	ServiceAreaID uuid.UUID `json:"service_area_id" db:"service_area_id"`
	FeeName       string    `json:"fee_name" db:"fee_name"`
	FeeType       string    `json:"fee_type" db:"fee_type"`
	CalcMode      string    `json:"calc_mode" db:"calc_mode"`
	Amount        float64   `json:"amount" db:"amount"`
	StartHour     int       `json:"start_hour" db:"start_hour"`
	EndHour       int       `json:"end_hour" db:"end_hour"`
	IsActive      bool      `json:"is_active" db:"is_active"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// VehicleType is a bookable vehicle class
type VehicleType struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Name     string    `json:"name" db:"name"`
	Seats    int       `json:"seats" db:"seats"`
	IsActive bool      `json:"is_active" db:"is_active"`
}

// FareConfig holds per-area, per-vehicle-type pricing
type FareConfig struct {
	ID            uuid.UUID `json:"id" db:"id"`
	ServiceAreaID uuid.UUID `json:"service_area_id" db:"service_area_id"`
	VehicleTypeID uuid.UUID `json:"vehicle_type_id" db:"vehicle_type_id"`
	BaseFare      float64   `json:"base_fare" db:"base_fare"`
	PerKmRate     float64   `json:"per_km_rate" db:"per_km_rate"`
	PerMinuteRate float64   `json:"per_minute_rate" db:"per_minute_rate"`
	MinimumFare   float64   `json:"minimum_fare" db:"minimum_fare"`
	BookingFee    float64   `json:"booking_fee" db:"booking_fee"`
	IsActive      bool      `json:"is_active" db:"is_active"`
}
