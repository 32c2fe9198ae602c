package fares

import (
	"context"

	"github.com/google/uuid"

	"github.com/spinr-app/dispatch/internal/pkg/models"
)

// FareRepo defines the interface for pricing data access operations
type FareRepo interface {
	ActiveServiceAreas(ctx context.Context) ([]*models.ServiceArea, error)
	AirportAreas(ctx context.Context) ([]*models.ServiceArea, error)
	ActiveAreaFees(ctx context.Context, serviceAreaID uuid.UUID) ([]*models.AreaFee, error)

	// FareConfig returns nil without error when no config row matches;
	// callers fall back to the default rate table.
	FareConfig(ctx context.Context, serviceAreaID, vehicleTypeID uuid.UUID) (*models.FareConfig, error)
	VehicleTypes(ctx context.Context) ([]*models.VehicleType, error)
}
