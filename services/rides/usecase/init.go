package usecase

import (
	"github.com/spinr-app/dispatch/internal/pkg/models"
	"github.com/spinr-app/dispatch/services/fares"
	"github.com/spinr-app/dispatch/services/rides"
)

// RideUC implements the ride dispatch use case interface
type RideUC struct {
	cfg          *models.Config
	rideRepo     rides.RideRepo
	driverRepo   rides.DriverRepo
	settingsRepo rides.SettingsRepo
	fareUC       fares.FareUC
	rideGW       rides.RideGW
}

// NewRideUC creates a new ride use case
func NewRideUC(
	cfg *models.Config,
	rideRepo rides.RideRepo,
	driverRepo rides.DriverRepo,
	settingsRepo rides.SettingsRepo,
	fareUC fares.FareUC,
	rideGW rides.RideGW,
) *RideUC {
	return &RideUC{
		cfg:          cfg,
		rideRepo:     rideRepo,
		driverRepo:   driverRepo,
		settingsRepo: settingsRepo,
		fareUC:       fareUC,
		rideGW:       rideGW,
	}
}
