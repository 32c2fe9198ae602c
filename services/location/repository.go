package location

import (
	"context"

	"github.com/google/uuid"

	"github.com/spinr-app/dispatch/internal/pkg/models"
)

// LocationRepo defines the interface for location data access operations
type LocationRepo interface {
	// UpsertDriverGeo writes the driver's position to the online geo
	// index and the last-known-location cache
	UpsertDriverGeo(ctx context.Context, driverID uuid.UUID, lat, lng float64) error

	// RemoveDriver takes the driver out of the online geo index
	RemoveDriver(ctx context.Context, driverID uuid.UUID) error

	InsertBreadcrumb(ctx context.Context, crumb *models.Breadcrumb) error
	InsertBreadcrumbs(ctx context.Context, crumbs []*models.Breadcrumb) error

	// NearbyDrivers returns online, available drivers within the radius,
	// nearest first
	NearbyDrivers(ctx context.Context, lat, lng, radiusKm float64) ([]models.NearbyDriver, error)
}
