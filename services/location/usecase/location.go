package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spinr-app/dispatch/internal/pkg/constants"
	"github.com/spinr-app/dispatch/internal/pkg/logger"
	"github.com/spinr-app/dispatch/internal/pkg/models"
	"github.com/spinr-app/dispatch/internal/pkg/websocket"
	"github.com/spinr-app/dispatch/internal/utils"
	"github.com/spinr-app/dispatch/services/location"
)

// defaultBatchCap bounds a location_batch upload when no cap is configured
const defaultBatchCap = 500

var (
	// ErrInvalidCoordinates is returned for samples outside valid ranges
	ErrInvalidCoordinates = errors.New("coordinates out of range")

	// ErrDriverNotFound is returned when no driver profile exists for a user
	ErrDriverNotFound = errors.New("driver not found")

	// ErrRideNotFound is returned when a relay names an unknown ride
	ErrRideNotFound = errors.New("ride not found")

	// ErrNotRideParty is returned when a relay comes from neither side of
	// the ride
	ErrNotRideParty = errors.New("sender is not a party of this ride")
)

func validateCoordinates(lat, lng float64) error {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return ErrInvalidCoordinates
	}
	return nil
}

// trackingPhase maps an active ride status to the breadcrumb phase label
func trackingPhase(rides []*models.Ride) (string, *uuid.UUID) {
	for _, ride := range rides {
		switch ride.Status {
		case models.RideStatusInProgress:
			return models.PhaseTripInProgress, &ride.ID
		case models.RideStatusDriverArrived:
			return models.PhaseArrivedAtPickup, &ride.ID
		case models.RideStatusDriverAssigned, models.RideStatusDriverAccepted:
			return models.PhaseNavigatingToPickup, &ride.ID
		}
	}
	return models.PhaseOnlineIdle, nil
}

// DriverForUser resolves a driver profile from an authenticated user id
func (uc *LocationUC) DriverForUser(ctx context.Context, userID uuid.UUID) (*models.Driver, error) {
	driver, err := uc.driverRepo.DriverByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, ErrDriverNotFound
	}
	return driver, nil
}

// UpdateDriverLocation records one GPS sample. The geo index and the hub
// cache always move; a failed breadcrumb insert is logged and swallowed.
func (uc *LocationUC) UpdateDriverLocation(ctx context.Context, driver *models.Driver, upd location.Update) error {
	if err := validateCoordinates(upd.Lat, upd.Lng); err != nil {
		return err
	}
	if upd.Timestamp.IsZero() {
		upd.Timestamp = time.Now().UTC()
	}

	if err := uc.locationRepo.UpsertDriverGeo(ctx, driver.ID, upd.Lat, upd.Lng); err != nil {
		return fmt.Errorf("failed to update driver geo index: %w", err)
	}
	uc.hub.UpdateDriverLocation(driver.ID, upd.Lat, upd.Lng)

	activeRides, err := uc.rideRepo.ActiveRidesForDriver(ctx, driver.ID)
	if err != nil {
		logger.Warn("failed to load active rides for location update",
			logger.String("driver_id", driver.ID.String()),
			logger.Err(err))
		activeRides = nil
	}

	phase, phaseRideID := trackingPhase(activeRides)
	rideID := upd.RideID
	if rideID == nil {
		rideID = phaseRideID
	}

	if err := uc.locationRepo.InsertBreadcrumb(ctx, uc.breadcrumb(driver.ID, rideID, phase, upd)); err != nil {
		logger.Warn("failed to persist breadcrumb",
			logger.String("driver_id", driver.ID.String()),
			logger.Err(err))
	}

	for _, ride := range activeRides {
		uc.hub.Send(websocket.Key(models.RoleRider, ride.RiderID), models.WSDriverLocationUpdate{
			Type:     constants.TypeDriverLocationUpdate,
			DriverID: driver.ID,
			Lat:      upd.Lat,
			Lng:      upd.Lng,
			Speed:    upd.Speed,
			Heading:  upd.Heading,
		})
	}
	return nil
}

func (uc *LocationUC) breadcrumb(driverID uuid.UUID, rideID *uuid.UUID, phase string, upd location.Update) *models.Breadcrumb {
	return &models.Breadcrumb{
		ID:            uuid.New(),
		DriverID:      driverID,
		RideID:        rideID,
		Lat:           upd.Lat,
		Lng:           upd.Lng,
		Speed:         upd.Speed,
		Heading:       upd.Heading,
		Accuracy:      upd.Accuracy,
		Altitude:      upd.Altitude,
		TrackingPhase: phase,
		Geohash:       utils.EncodeLocation(upd.Lat, upd.Lng, utils.BreadcrumbGeohashPrecision),
		Timestamp:     upd.Timestamp,
	}
}

// IngestBatch stores buffered samples from a driver that was offline or
// throttling. Samples beyond the cap and samples with bad coordinates are
// dropped; the ack carries the accepted count.
func (uc *LocationUC) IngestBatch(ctx context.Context, driver *models.Driver, points []location.Update) (int, error) {
	batchCap := uc.cfg.Dispatch.LocationBatchCap
	if batchCap <= 0 {
		batchCap = defaultBatchCap
	}
	if len(points) > batchCap {
		logger.Warn("location batch truncated",
			logger.String("driver_id", driver.ID.String()),
			logger.Int("received", len(points)),
			logger.Int("cap", batchCap))
		points = points[:batchCap]
	}

	activeRides, err := uc.rideRepo.ActiveRidesForDriver(ctx, driver.ID)
	if err != nil {
		activeRides = nil
	}
	phase, phaseRideID := trackingPhase(activeRides)

	crumbs := make([]*models.Breadcrumb, 0, len(points))
	var last *location.Update
	for i := range points {
		p := points[i]
		if validateCoordinates(p.Lat, p.Lng) != nil {
			continue
		}
		if p.Timestamp.IsZero() {
			p.Timestamp = time.Now().UTC()
		}
		rideID := p.RideID
		if rideID == nil {
			rideID = phaseRideID
		}
		crumbs = append(crumbs, uc.breadcrumb(driver.ID, rideID, phase, p))
		last = &p
	}

	if len(crumbs) == 0 {
		return 0, nil
	}
	if err := uc.locationRepo.InsertBreadcrumbs(ctx, crumbs); err != nil {
		return 0, fmt.Errorf("failed to persist breadcrumb batch: %w", err)
	}

	// the newest sample also refreshes the live position
	if last != nil {
		if err := uc.locationRepo.UpsertDriverGeo(ctx, driver.ID, last.Lat, last.Lng); err != nil {
			logger.Warn("failed to refresh geo index from batch",
				logger.String("driver_id", driver.ID.String()),
				logger.Err(err))
		} else {
			uc.hub.UpdateDriverLocation(driver.ID, last.Lat, last.Lng)
		}
	}
	return len(crumbs), nil
}

// NearbyDrivers answers a rider's get_nearby_drivers query
func (uc *LocationUC) NearbyDrivers(ctx context.Context, lat, lng, radiusKm float64) ([]models.NearbyDriver, error) {
	if err := validateCoordinates(lat, lng); err != nil {
		return nil, err
	}
	if radiusKm <= 0 {
		radiusKm = 5.0
	}
	return uc.locationRepo.NearbyDrivers(ctx, lat, lng, radiusKm)
}

// RelayRideStatus forwards a driver's free-form status label to the rider
func (uc *LocationUC) RelayRideStatus(ctx context.Context, driver *models.Driver, rideID uuid.UUID, status string) error {
	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return err
	}
	if ride == nil {
		return ErrRideNotFound
	}
	if ride.DriverID == nil || *ride.DriverID != driver.ID {
		return ErrNotRideParty
	}

	uc.hub.Send(websocket.Key(models.RoleRider, ride.RiderID), models.WSRideStatus{
		Type:   constants.TypeRideStatusChanged,
		RideID: rideID,
		Status: status,
	})
	return nil
}

// RelayChat forwards free text to the other party of the ride
func (uc *LocationUC) RelayChat(ctx context.Context, senderRole string, senderUserID, rideID uuid.UUID, text string) error {
	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return err
	}
	if ride == nil {
		return ErrRideNotFound
	}

	msg := models.WSChatMessage{
		Type:      constants.TypeChatMessage,
		ID:        uuid.New(),
		RideID:    rideID,
		Text:      text,
		Sender:    senderRole,
		Timestamp: time.Now().UTC(),
	}

	switch senderRole {
	case models.RoleRider:
		if ride.RiderID != senderUserID {
			return ErrNotRideParty
		}
		if ride.DriverID == nil {
			return ErrNotRideParty
		}
		driver, err := uc.driverRepo.GetDriver(ctx, *ride.DriverID)
		if err != nil || driver == nil {
			return ErrNotRideParty
		}
		uc.hub.Send(websocket.Key(models.RoleDriver, driver.UserID), msg)
	case models.RoleDriver:
		driver, err := uc.driverRepo.DriverByUserID(ctx, senderUserID)
		if err != nil || driver == nil {
			return ErrNotRideParty
		}
		if ride.DriverID == nil || *ride.DriverID != driver.ID {
			return ErrNotRideParty
		}
		uc.hub.Send(websocket.Key(models.RoleRider, ride.RiderID), msg)
	default:
		return ErrNotRideParty
	}
	return nil
}

// DriverOffline removes a disconnected driver from the online geo index
func (uc *LocationUC) DriverOffline(ctx context.Context, driverID uuid.UUID) error {
	if err := uc.locationRepo.RemoveDriver(ctx, driverID); err != nil {
		return fmt.Errorf("failed to remove driver from geo index: %w", err)
	}
	return nil
}
