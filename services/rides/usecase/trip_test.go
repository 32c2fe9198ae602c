package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spinr-app/dispatch/internal/pkg/models"
)

func TestAddStopAssignsNextOrder(t *testing.T) {
	f := newUCFixture(t)
	ctx := context.Background()

	driverID := uuid.New()
	ride := testRide(models.RideStatusInProgress, &driverID)
	ride.Stops = []models.RideStop{{ID: uuid.New(), Order: 1}}

	f.rideRepo.EXPECT().GetRide(ctx, ride.ID).Return(ride, nil)
	f.rideRepo.EXPECT().AddStop(ctx, ride.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, stop *models.RideStop) error {
			assert.Equal(t, 2, stop.Order)
			assert.NotEqual(t, uuid.Nil, stop.ID)
			return nil
		})
	f.rideRepo.EXPECT().GetRide(ctx, ride.ID).Return(ride, nil)

	_, err := f.uc.AddStop(ctx, ride.ID, ride.RiderID, models.RideStop{
		Address: "789 Pine Rd",
		Lat:     49.21,
		Lng:     -123.05,
	})
	require.NoError(t, err)
}

func TestAddStopRejectsFinishedRide(t *testing.T) {
	f := newUCFixture(t)
	ctx := context.Background()

	ride := testRide(models.RideStatusCompleted, nil)
	f.rideRepo.EXPECT().GetRide(ctx, ride.ID).Return(ride, nil)

	_, err := f.uc.AddStop(ctx, ride.ID, ride.RiderID, models.RideStop{Address: "anywhere"})
	assert.ErrorIs(t, err, ErrStopNotAllowed)
}

func TestShareTripIssuesToken(t *testing.T) {
	f := newUCFixture(t)
	ctx := context.Background()

	driverID := uuid.New()
	ride := testRide(models.RideStatusInProgress, &driverID)

	f.rideRepo.EXPECT().GetRide(ctx, ride.ID).Return(ride, nil)
	f.rideRepo.EXPECT().SetShareToken(ctx, ride.ID, gomock.Any()).Return(nil)
	f.rideRepo.EXPECT().AddShareContacts(ctx, ride.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, contacts []models.TripShareContact) error {
			require.Len(t, contacts, 1)
			assert.False(t, contacts[0].SharedAt.IsZero())
			return nil
		})

	token, err := f.uc.ShareTrip(ctx, ride.ID, ride.RiderID, []models.TripShareContact{
		{Name: "Jordan", Phone: "+16045550123"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestShareTripReusesExistingToken(t *testing.T) {
	f := newUCFixture(t)
	ctx := context.Background()

	existing := "already-issued-token"
	driverID := uuid.New()
	ride := testRide(models.RideStatusInProgress, &driverID)
	ride.SharedTripToken = &existing

	f.rideRepo.EXPECT().GetRide(ctx, ride.ID).Return(ride, nil)

	token, err := f.uc.ShareTrip(ctx, ride.ID, ride.RiderID, nil)
	require.NoError(t, err)
	assert.Equal(t, existing, token)
}

func TestShareTripRejectsInactiveRides(t *testing.T) {
	for _, status := range []models.RideStatus{
		models.RideStatusScheduled,
		models.RideStatusCompleted,
		models.RideStatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			f := newUCFixture(t)
			ctx := context.Background()

			ride := testRide(status, nil)
			f.rideRepo.EXPECT().GetRide(ctx, ride.ID).Return(ride, nil)

			_, err := f.uc.ShareTrip(ctx, ride.ID, ride.RiderID, nil)
			assert.ErrorIs(t, err, ErrShareNotAllowed)
		})
	}
}

func TestSharedTripExposesSafeSubset(t *testing.T) {
	f := newUCFixture(t)
	ctx := context.Background()

	driverID := uuid.New()
	ride := testRide(models.RideStatusInProgress, &driverID)

	f.rideRepo.EXPECT().GetRideByShareToken(ctx, "tok").Return(ride, nil)
	f.drivers.EXPECT().LastKnownLocation(ctx, driverID).
		Return(&models.LatLng{Lat: 49.25, Lng: -123.10}, nil)

	view, err := f.uc.SharedTrip(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, ride.ID, view.RideID)
	assert.Equal(t, ride.PickupAddress, view.PickupAddress)
	require.NotNil(t, view.DriverLocation)
	assert.InDelta(t, 49.25, view.DriverLocation.Lat, 1e-9)
}

func TestSharedTripTracksLatestLocationUpdate(t *testing.T) {
	f := newUCFixture(t)
	ctx := context.Background()

	driverID := uuid.New()
	ride := testRide(models.RideStatusInProgress, &driverID)

	f.rideRepo.EXPECT().GetRideByShareToken(ctx, "tok").Return(ride, nil).Times(2)
	gomock.InOrder(
		f.drivers.EXPECT().LastKnownLocation(ctx, driverID).
			Return(&models.LatLng{Lat: 49.2500, Lng: -123.1000}, nil),
		f.drivers.EXPECT().LastKnownLocation(ctx, driverID).
			Return(&models.LatLng{Lat: 49.2611, Lng: -123.1139}, nil),
	)

	first, err := f.uc.SharedTrip(ctx, "tok")
	require.NoError(t, err)
	second, err := f.uc.SharedTrip(ctx, "tok")
	require.NoError(t, err)

	assert.InDelta(t, 49.2500, first.DriverLocation.Lat, 1e-9)
	assert.InDelta(t, 49.2611, second.DriverLocation.Lat, 1e-9)
	assert.InDelta(t, -123.1139, second.DriverLocation.Lng, 1e-9)
}

func TestSharedTripFallsBackToDriverRow(t *testing.T) {
	f := newUCFixture(t)
	ctx := context.Background()

	driverID := uuid.New()
	ride := testRide(models.RideStatusInProgress, &driverID)
	driver := &models.Driver{ID: driverID, Lat: 49.20, Lng: -123.00}

	f.rideRepo.EXPECT().GetRideByShareToken(ctx, "tok").Return(ride, nil)
	// cache entry expired, the registration-time position is all that's left
	f.drivers.EXPECT().LastKnownLocation(ctx, driverID).Return(nil, nil)
	f.drivers.EXPECT().GetDriver(ctx, driverID).Return(driver, nil)

	view, err := f.uc.SharedTrip(ctx, "tok")
	require.NoError(t, err)
	require.NotNil(t, view.DriverLocation)
	assert.InDelta(t, 49.20, view.DriverLocation.Lat, 1e-9)
}

func TestSharedTripUnknownToken(t *testing.T) {
	f := newUCFixture(t)
	ctx := context.Background()

	f.rideRepo.EXPECT().GetRideByShareToken(ctx, "missing").Return(nil, nil)

	_, err := f.uc.SharedTrip(ctx, "missing")
	assert.ErrorIs(t, err, ErrRideNotFound)
}
