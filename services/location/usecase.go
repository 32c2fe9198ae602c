package location

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spinr-app/dispatch/internal/pkg/models"
)

// Update is a single GPS sample from a driver's device
type Update struct {
	Lat       float64
	Lng       float64
	Speed     *float64
	Heading   *float64
	Accuracy  *float64
	Altitude  *float64
	RideID    *uuid.UUID
	Timestamp time.Time
}

// LocationUC defines the interface for location business logic
type LocationUC interface {
	// DriverForUser resolves a driver profile from an authenticated user
	DriverForUser(ctx context.Context, userID uuid.UUID) (*models.Driver, error)

	// UpdateDriverLocation records one sample: geo index, breadcrumb,
	// and fanout to the riders of the driver's active rides
	UpdateDriverLocation(ctx context.Context, driver *models.Driver, upd Update) error

	// IngestBatch stores buffered samples and returns the accepted count
	IngestBatch(ctx context.Context, driver *models.Driver, points []Update) (int, error)

	NearbyDrivers(ctx context.Context, lat, lng, radiusKm float64) ([]models.NearbyDriver, error)

	// RelayRideStatus forwards a driver's status label to the rider
	RelayRideStatus(ctx context.Context, driver *models.Driver, rideID uuid.UUID, status string) error

	// RelayChat forwards free text to the other party of the ride
	RelayChat(ctx context.Context, senderRole string, senderUserID, rideID uuid.UUID, text string) error

	// DriverOffline removes the driver from the online geo index
	DriverOffline(ctx context.Context, driverID uuid.UUID) error
}
