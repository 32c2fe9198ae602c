package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/spinr-app/dispatch/internal/pkg/constants"
	"github.com/spinr-app/dispatch/internal/pkg/logger"
	"github.com/spinr-app/dispatch/internal/pkg/models"
	"github.com/spinr-app/dispatch/internal/utils"
	"github.com/spinr-app/dispatch/services/fares"
	"github.com/spinr-app/dispatch/services/rides"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// buildRide prices the trip and assembles the persistable record
func (uc *RideUC) buildRide(ctx context.Context, req rides.CreateRideRequest) (*models.Ride, error) {
	pickup := models.LatLng{Lat: req.PickupLat, Lng: req.PickupLng}
	dropoff := models.LatLng{Lat: req.DropoffLat, Lng: req.DropoffLng}

	distanceKm := utils.CalculateDistance(pickup, dropoff)
	durationMin := utils.EstimateDurationMinutes(distanceKm)

	at := time.Now().UTC()
	if req.ScheduledTime != nil {
		at = req.ScheduledTime.UTC()
	}

	estimate, err := uc.fareUC.EstimateFare(ctx, fares.EstimateRequest{
		Pickup:          pickup,
		Dropoff:         dropoff,
		DistanceKm:      distanceKm,
		DurationMinutes: durationMin,
		VehicleTypeID:   req.VehicleTypeID,
		At:              at,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to estimate fare: %w", err)
	}

	otp, err := utils.GeneratePickupOTP()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	ride := &models.Ride{
		ID:             uuid.New(),
		RiderID:        req.RiderID,
		VehicleTypeID:  req.VehicleTypeID,
		PickupAddress:  req.PickupAddress,
		PickupLat:      req.PickupLat,
		PickupLng:      req.PickupLng,
		DropoffAddress: req.DropoffAddress,
		DropoffLat:     req.DropoffLat,
		DropoffLng:     req.DropoffLng,

		DistanceKm:      round2(distanceKm),
		DurationMinutes: int(math.Round(durationMin)),

		BaseFare:      estimate.BaseFare,
		DistanceFare:  estimate.DistanceFare,
		TimeFare:      estimate.TimeFare,
		BookingFee:    estimate.BookingFee,
		AreaFeesTotal: estimate.AreaFeesTotal,
		TaxAmount:     estimate.TaxAmount,
		TotalFare:     estimate.GrandTotal,

		// driver keeps the ride subtotal, the platform keeps the booking fee
		DriverEarnings: round2(estimate.Subtotal - estimate.BookingFee),
		AdminEarnings:  estimate.BookingFee,

		Status:      models.RideStatusSearching,
		PickupOTP:   otp,
		Stops:       req.Stops,
		RequestedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return ride, nil
}

// CreateRide prices, persists and immediately tries to match a new ride.
// A failed match leaves the ride in searching; creation still succeeds.
func (uc *RideUC) CreateRide(ctx context.Context, req rides.CreateRideRequest) (*models.Ride, error) {
	ride, err := uc.buildRide(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := uc.rideRepo.CreateRide(ctx, ride); err != nil {
		return nil, fmt.Errorf("failed to create ride: %w", err)
	}

	matched, err := uc.MatchDriver(ctx, ride.ID)
	if err != nil {
		logger.Info("ride created without a driver",
			logger.String("ride_id", ride.ID.String()),
			logger.Err(err))
		return ride, nil
	}
	return matched, nil
}

// ScheduleRide persists a pre-booked ride; the promoter moves it into
// active dispatch near its target time
func (uc *RideUC) ScheduleRide(ctx context.Context, req rides.CreateRideRequest) (*models.Ride, error) {
	if req.ScheduledTime == nil {
		return nil, ErrScheduleTooSoon
	}
	lead := time.Duration(uc.cfg.Dispatch.ScheduleMinLeadMin) * time.Minute
	if req.ScheduledTime.Before(time.Now().UTC().Add(lead)) {
		return nil, ErrScheduleTooSoon
	}

	ride, err := uc.buildRide(ctx, req)
	if err != nil {
		return nil, err
	}
	ride.Status = models.RideStatusScheduled
	ride.IsScheduled = true
	scheduled := req.ScheduledTime.UTC()
	ride.ScheduledTime = &scheduled

	if err := uc.rideRepo.CreateRide(ctx, ride); err != nil {
		return nil, fmt.Errorf("failed to create scheduled ride: %w", err)
	}
	return ride, nil
}

// GetRide returns a ride with its stops
func (uc *RideUC) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride == nil {
		return nil, ErrRideNotFound
	}
	return ride, nil
}

// ListScheduledRides lists a rider's upcoming scheduled rides
func (uc *RideUC) ListScheduledRides(ctx context.Context, riderID uuid.UUID) ([]*models.Ride, error) {
	return uc.rideRepo.ListScheduledForRider(ctx, riderID)
}

// DriverForUser resolves a driver profile from an authenticated user id
func (uc *RideUC) DriverForUser(ctx context.Context, userID uuid.UUID) (*models.Driver, error) {
	driver, err := uc.driverRepo.DriverByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, ErrDriverNotFound
	}
	return driver, nil
}

// loadRideForDriver fetches a ride and verifies the acting driver is bound
func (uc *RideUC) loadRideForDriver(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID == nil || *ride.DriverID != driverID {
		return nil, ErrNotRideDriver
	}
	return ride, nil
}

// AcceptRide moves driver_assigned to driver_accepted for the bound driver
func (uc *RideUC) AcceptRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.loadRideForDriver(ctx, rideID, driverID)
	if err != nil {
		return nil, err
	}
	if ride.Status != models.RideStatusDriverAssigned {
		return nil, ErrInvalidTransition
	}

	ok, err := uc.rideRepo.MarkAccepted(ctx, rideID, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to accept ride: %w", err)
	}
	if !ok {
		return nil, ErrInvalidTransition
	}

	uc.rideGW.NotifyRider(ctx, ride.RiderID, models.WSRideEvent{
		Type:   constants.TypeDriverAccepted,
		RideID: rideID,
	}, &models.PushNotification{
		UserID: ride.RiderID.String(),
		Title:  "Driver on the way",
		Body:   "Your driver accepted the ride and is heading to the pickup point.",
	})

	return uc.GetRide(ctx, rideID)
}

// DeclineRide releases the driver and puts the ride back into searching,
// then triggers a fresh matching pass
func (uc *RideUC) DeclineRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.loadRideForDriver(ctx, rideID, driverID)
	if err != nil {
		return nil, err
	}
	if ride.Status != models.RideStatusDriverAssigned && ride.Status != models.RideStatusDriverAccepted {
		return nil, ErrInvalidTransition
	}

	ok, err := uc.rideRepo.ResetToSearching(ctx, rideID, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to decline ride: %w", err)
	}
	if !ok {
		return nil, ErrInvalidTransition
	}

	if err := uc.driverRepo.Release(ctx, driverID); err != nil {
		logger.Error("failed to release driver after decline",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
	}

	if matched, err := uc.MatchDriver(ctx, rideID); err == nil {
		return matched, nil
	}
	return uc.GetRide(ctx, rideID)
}

// MarkArrived moves driver_accepted to driver_arrived
func (uc *RideUC) MarkArrived(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.loadRideForDriver(ctx, rideID, driverID)
	if err != nil {
		return nil, err
	}
	if ride.Status != models.RideStatusDriverAccepted {
		return nil, ErrInvalidTransition
	}

	ok, err := uc.rideRepo.MarkArrived(ctx, rideID, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark arrival: %w", err)
	}
	if !ok {
		return nil, ErrInvalidTransition
	}

	uc.rideGW.NotifyRider(ctx, ride.RiderID, models.WSRideEvent{
		Type:   constants.TypeDriverArrived,
		RideID: rideID,
	}, &models.PushNotification{
		UserID: ride.RiderID.String(),
		Title:  "Driver arrived",
		Body:   "Your driver is waiting at the pickup point.",
	})

	return uc.GetRide(ctx, rideID)
}

// startTrip moves driver_arrived to in_progress and stamps started_at
func (uc *RideUC) startTrip(ctx context.Context, ride *models.Ride, driverID uuid.UUID) (*models.Ride, error) {
	ok, err := uc.rideRepo.MarkStarted(ctx, ride.ID, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to start ride: %w", err)
	}
	if !ok {
		return nil, ErrInvalidTransition
	}

	uc.rideGW.NotifyRider(ctx, ride.RiderID, models.WSRideEvent{
		Type:   constants.TypeRideStarted,
		RideID: ride.ID,
	}, nil)

	return uc.GetRide(ctx, ride.ID)
}

// VerifyPickupOTP starts the trip when the rider's code matches
func (uc *RideUC) VerifyPickupOTP(ctx context.Context, rideID, driverID uuid.UUID, otp string) (*models.Ride, error) {
	ride, err := uc.loadRideForDriver(ctx, rideID, driverID)
	if err != nil {
		return nil, err
	}
	if ride.Status != models.RideStatusDriverArrived {
		return nil, ErrInvalidTransition
	}
	if ride.PickupOTP != otp {
		return nil, ErrOTPMismatch
	}
	return uc.startTrip(ctx, ride, driverID)
}

// StartRide starts the trip without an OTP check (explicit bypass action)
func (uc *RideUC) StartRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.loadRideForDriver(ctx, rideID, driverID)
	if err != nil {
		return nil, err
	}
	if ride.Status != models.RideStatusDriverArrived {
		return nil, ErrInvalidTransition
	}
	return uc.startTrip(ctx, ride, driverID)
}

// CompleteRide finishes an in-progress trip, restores the driver's
// availability and bumps their ride count
func (uc *RideUC) CompleteRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.loadRideForDriver(ctx, rideID, driverID)
	if err != nil {
		return nil, err
	}
	if ride.Status != models.RideStatusInProgress {
		return nil, ErrInvalidTransition
	}

	ok, err := uc.rideRepo.MarkCompleted(ctx, rideID, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to complete ride: %w", err)
	}
	if !ok {
		return nil, ErrInvalidTransition
	}

	if err := uc.driverRepo.CompleteRideStats(ctx, driverID); err != nil {
		logger.Error("failed to update driver stats after completion",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
	}

	uc.rideGW.NotifyRider(ctx, ride.RiderID, models.WSRideEvent{
		Type:   constants.TypeRideCompleted,
		RideID: rideID,
		Data: map[string]interface{}{
			"total_fare": ride.TotalFare,
		},
	}, &models.PushNotification{
		UserID: ride.RiderID.String(),
		Title:  "Ride completed",
		Body:   fmt.Sprintf("Your trip is complete. Total: $%.2f", ride.TotalFare),
	})

	return uc.GetRide(ctx, rideID)
}

// cancellationFees returns the fee split to apply when cancelling from
// the given status
func (uc *RideUC) cancellationFees(ctx context.Context, status models.RideStatus) (float64, float64) {
	if status != models.RideStatusDriverArrived {
		return 0, 0
	}
	settings, err := uc.settingsRepo.DispatchSettings(ctx)
	if err != nil {
		logger.Warn("falling back to default cancellation fees", logger.Err(err))
		settings = models.DefaultDispatchSettings()
	}
	return settings.CancellationFeeAdmin, settings.CancellationFeeDriver
}

// cancelRide applies the shared cancellation path for either party
func (uc *RideUC) cancelRide(ctx context.Context, ride *models.Ride, reason string) (*models.Ride, error) {
	switch ride.Status {
	case models.RideStatusInProgress, models.RideStatusCompleted, models.RideStatusCancelled:
		return nil, ErrInvalidTransition
	}

	feeAdmin, feeDriver := uc.cancellationFees(ctx, ride.Status)

	ok, err := uc.rideRepo.CancelRide(ctx, ride.ID, []models.RideStatus{ride.Status}, feeAdmin, feeDriver, reason)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel ride: %w", err)
	}
	if !ok {
		return nil, ErrInvalidTransition
	}

	if ride.DriverID != nil {
		if err := uc.driverRepo.Release(ctx, *ride.DriverID); err != nil {
			logger.Error("failed to release driver after cancellation",
				logger.String("driver_id", ride.DriverID.String()),
				logger.Err(err))
		}
	}

	return uc.GetRide(ctx, ride.ID)
}

// CancelRideByRider cancels the rider's own ride. Cancellation at
// driver_arrived applies the configured fee split; earlier states apply
// none; in-progress rides cannot be cancelled.
func (uc *RideUC) CancelRideByRider(ctx context.Context, rideID, riderID uuid.UUID, reason string) (*models.Ride, error) {
	ride, err := uc.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.RiderID != riderID {
		return nil, ErrNotRideRider
	}

	cancelled, err := uc.cancelRide(ctx, ride, reason)
	if err != nil {
		return nil, err
	}

	if ride.DriverID != nil {
		if driver, derr := uc.driverRepo.GetDriver(ctx, *ride.DriverID); derr == nil && driver != nil {
			uc.rideGW.NotifyDriver(ctx, driver.UserID, models.WSRideEvent{
				Type:   constants.TypeRideCancelled,
				RideID: rideID,
			}, &models.PushNotification{
				UserID: driver.UserID.String(),
				Title:  "Ride cancelled",
				Body:   "The rider cancelled the trip.",
			})
		}
	}
	return cancelled, nil
}

// CancelRideByDriver handles a driver backing out. Before arrival the
// ride goes back to searching; at the pickup point it becomes a fee-bearing
// cancellation.
func (uc *RideUC) CancelRideByDriver(ctx context.Context, rideID, driverID uuid.UUID, reason string) (*models.Ride, error) {
	ride, err := uc.loadRideForDriver(ctx, rideID, driverID)
	if err != nil {
		return nil, err
	}

	switch ride.Status {
	case models.RideStatusDriverAssigned, models.RideStatusDriverAccepted:
		return uc.DeclineRide(ctx, rideID, driverID)
	case models.RideStatusDriverArrived:
		cancelled, err := uc.cancelRide(ctx, ride, reason)
		if err != nil {
			return nil, err
		}
		uc.rideGW.NotifyRider(ctx, ride.RiderID, models.WSRideEvent{
			Type:   constants.TypeRideCancelled,
			RideID: rideID,
		}, &models.PushNotification{
			UserID: ride.RiderID.String(),
			Title:  "Ride cancelled",
			Body:   "Your driver had to cancel the trip.",
		})
		return cancelled, nil
	default:
		return nil, ErrInvalidTransition
	}
}

// AddTip adds a tip to a completed ride, atomically increasing the tip
// amount and the driver's earnings
func (uc *RideUC) AddTip(ctx context.Context, rideID, riderID uuid.UUID, amount float64) (*models.Ride, error) {
	if amount <= 0 {
		return nil, ErrInvalidTip
	}

	ride, err := uc.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.RiderID != riderID {
		return nil, ErrNotRideRider
	}
	if ride.Status != models.RideStatusCompleted {
		return nil, ErrTipNotAllowed
	}

	ok, err := uc.rideRepo.AddTip(ctx, rideID, riderID, round2(amount))
	if err != nil {
		return nil, fmt.Errorf("failed to add tip: %w", err)
	}
	if !ok {
		return nil, ErrTipNotAllowed
	}
	return uc.GetRide(ctx, rideID)
}

// RateDriver stores the rider's rating for a completed ride
func (uc *RideUC) RateDriver(ctx context.Context, rideID, riderID uuid.UUID, rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	ride, err := uc.GetRide(ctx, rideID)
	if err != nil {
		return err
	}
	if ride.RiderID != riderID {
		return ErrNotRideRider
	}
	ok, err := uc.rideRepo.SetDriverRating(ctx, rideID, riderID, rating)
	if err != nil {
		return fmt.Errorf("failed to rate driver: %w", err)
	}
	if !ok {
		return ErrInvalidTransition
	}
	return nil
}

// RateRider stores the driver's rating for a completed ride
func (uc *RideUC) RateRider(ctx context.Context, rideID, driverID uuid.UUID, rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	if _, err := uc.loadRideForDriver(ctx, rideID, driverID); err != nil {
		return err
	}
	ok, err := uc.rideRepo.SetRiderRating(ctx, rideID, driverID, rating)
	if err != nil {
		return fmt.Errorf("failed to rate rider: %w", err)
	}
	if !ok {
		return ErrInvalidTransition
	}
	return nil
}
