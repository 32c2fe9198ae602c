package usecase

import (
	"github.com/spinr-app/dispatch/internal/pkg/models"
	"github.com/spinr-app/dispatch/internal/pkg/websocket"
	"github.com/spinr-app/dispatch/services/location"
	"github.com/spinr-app/dispatch/services/rides"
)

// LocationUC implements the location use case interface
type LocationUC struct {
	cfg          *models.Config
	locationRepo location.LocationRepo
	rideRepo     rides.RideRepo
	driverRepo   rides.DriverRepo
	hub          *websocket.Hub
}

// NewLocationUC creates a new location use case
func NewLocationUC(
	cfg *models.Config,
	locationRepo location.LocationRepo,
	rideRepo rides.RideRepo,
	driverRepo rides.DriverRepo,
	hub *websocket.Hub,
) *LocationUC {
	return &LocationUC{
		cfg:          cfg,
		locationRepo: locationRepo,
		rideRepo:     rideRepo,
		driverRepo:   driverRepo,
		hub:          hub,
	}
}
