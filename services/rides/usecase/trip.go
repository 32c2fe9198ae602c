package usecase

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spinr-app/dispatch/internal/pkg/models"
	"github.com/spinr-app/dispatch/services/rides"
)

func newShareToken() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate share token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// AddStop appends a waypoint to a ride that has not finished
func (uc *RideUC) AddStop(ctx context.Context, rideID, riderID uuid.UUID, stop models.RideStop) (*models.Ride, error) {
	ride, err := uc.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.RiderID != riderID {
		return nil, ErrNotRideRider
	}
	if ride.Status.IsTerminal() {
		return nil, ErrStopNotAllowed
	}

	stop.ID = uuid.New()
	stop.Order = len(ride.Stops) + 1
	if err := uc.rideRepo.AddStop(ctx, rideID, &stop); err != nil {
		return nil, fmt.Errorf("failed to add stop: %w", err)
	}
	return uc.GetRide(ctx, rideID)
}

// CompleteStop stamps a waypoint as reached and completed
func (uc *RideUC) CompleteStop(ctx context.Context, rideID, driverID, stopID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.loadRideForDriver(ctx, rideID, driverID)
	if err != nil {
		return nil, err
	}
	if ride.Status != models.RideStatusInProgress {
		return nil, ErrInvalidTransition
	}

	ok, err := uc.rideRepo.CompleteStop(ctx, rideID, stopID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to complete stop: %w", err)
	}
	if !ok {
		return nil, ErrRideNotFound
	}
	return uc.GetRide(ctx, rideID)
}

// ShareTrip issues (or reuses) a share token and appends the contacts
func (uc *RideUC) ShareTrip(ctx context.Context, rideID, riderID uuid.UUID, contacts []models.TripShareContact) (string, error) {
	ride, err := uc.GetRide(ctx, rideID)
	if err != nil {
		return "", err
	}
	if ride.RiderID != riderID {
		return "", ErrNotRideRider
	}
	if ride.Status.IsTerminal() || ride.Status == models.RideStatusScheduled {
		return "", ErrShareNotAllowed
	}

	token := ""
	if ride.SharedTripToken != nil {
		token = *ride.SharedTripToken
	} else {
		token, err = newShareToken()
		if err != nil {
			return "", err
		}
		if err := uc.rideRepo.SetShareToken(ctx, rideID, token); err != nil {
			return "", fmt.Errorf("failed to store share token: %w", err)
		}
	}

	if len(contacts) > 0 {
		now := time.Now().UTC()
		for i := range contacts {
			contacts[i].SharedAt = now
		}
		if err := uc.rideRepo.AddShareContacts(ctx, rideID, contacts); err != nil {
			return "", fmt.Errorf("failed to store share contacts: %w", err)
		}
	}
	return token, nil
}

// SharedTrip resolves a share token to the public safe subset of the ride
func (uc *RideUC) SharedTrip(ctx context.Context, token string) (*rides.SharedTripView, error) {
	ride, err := uc.rideRepo.GetRideByShareToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if ride == nil {
		return nil, ErrRideNotFound
	}

	view := &rides.SharedTripView{
		RideID:         ride.ID,
		Status:         ride.Status,
		PickupAddress:  ride.PickupAddress,
		DropoffAddress: ride.DropoffAddress,
		StartedAt:      ride.StartedAt,
		CompletedAt:    ride.CompletedAt,
	}

	if ride.DriverID != nil {
		// live position comes from the location cache; the driver row only
		// holds the registration-time coordinates
		if loc, lerr := uc.driverRepo.LastKnownLocation(ctx, *ride.DriverID); lerr == nil && loc != nil {
			view.DriverLocation = loc
		} else if driver, derr := uc.driverRepo.GetDriver(ctx, *ride.DriverID); derr == nil && driver != nil {
			view.DriverLocation = &models.LatLng{Lat: driver.Lat, Lng: driver.Lng}
		}
	}
	return view, nil
}
