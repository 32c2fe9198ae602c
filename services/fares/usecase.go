package fares

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spinr-app/dispatch/internal/pkg/models"
)

// EstimateRequest carries everything the fare pipeline needs
type EstimateRequest struct {
	Pickup          models.LatLng
	Dropoff         models.LatLng
	DistanceKm      float64
	DurationMinutes float64
	VehicleTypeID   uuid.UUID
	At              time.Time
}

// FareUC defines the interface for fare and geofence business logic
type FareUC interface {
	EstimateFare(ctx context.Context, req EstimateRequest) (*models.FareEstimate, error)
	VehicleFares(ctx context.Context, pickup models.LatLng) ([]*models.VehicleFare, string, error)
	CheckAirportFee(ctx context.Context, pickup, dropoff models.LatLng) (*models.AirportFeeCheck, error)
	ResolveServiceArea(ctx context.Context, point models.LatLng) (*models.ServiceArea, error)
}
