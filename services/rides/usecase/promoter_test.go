package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/spinr-app/dispatch/internal/pkg/models"
)

func TestPromoteDueScheduledRides(t *testing.T) {
	f := newUCFixture(t)
	ctx := context.Background()

	due := testRide(models.RideStatusScheduled, nil)
	target := time.Now().UTC().Add(3 * time.Minute)
	due.IsScheduled = true
	due.ScheduledTime = &target

	f.rideRepo.EXPECT().ListDueScheduled(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, cutoff time.Time) ([]*models.Ride, error) {
			// the lookahead window covers rides due within 5 minutes
			assert.WithinDuration(t, time.Now().UTC().Add(5*time.Minute), cutoff, 2*time.Second)
			return []*models.Ride{due}, nil
		})
	f.rideRepo.EXPECT().PromoteScheduled(ctx, due.ID, gomock.Any()).Return(true, nil)
	f.gw.EXPECT().NotifyRider(ctx, due.RiderID, gomock.Any(), gomock.Any())

	// the follow-on matching pass finds nobody, which is not a failure
	promoted := withStatus(due, models.RideStatusSearching)
	f.rideRepo.EXPECT().GetRide(ctx, due.ID).Return(promoted, nil)
	f.settings.EXPECT().DispatchSettings(ctx).Return(models.DefaultDispatchSettings(), nil)
	f.drivers.EXPECT().NearbyDriverIDs(ctx, due.PickupLat, due.PickupLng, 10.0).Return(nil, nil)

	f.uc.PromoteDueScheduledRides(ctx)
}

func TestPromoteSkipsLostRace(t *testing.T) {
	f := newUCFixture(t)
	ctx := context.Background()

	due := testRide(models.RideStatusScheduled, nil)

	f.rideRepo.EXPECT().ListDueScheduled(ctx, gomock.Any()).Return([]*models.Ride{due}, nil)
	// another pass already promoted it; no notification, no matching
	f.rideRepo.EXPECT().PromoteScheduled(ctx, due.ID, gomock.Any()).Return(false, nil)

	f.uc.PromoteDueScheduledRides(ctx)
}

func TestPromoteContinuesPastFailures(t *testing.T) {
	f := newUCFixture(t)
	ctx := context.Background()

	broken := testRide(models.RideStatusScheduled, nil)
	healthy := testRide(models.RideStatusScheduled, nil)

	f.rideRepo.EXPECT().ListDueScheduled(ctx, gomock.Any()).
		Return([]*models.Ride{broken, healthy}, nil)
	f.rideRepo.EXPECT().PromoteScheduled(ctx, broken.ID, gomock.Any()).
		Return(false, errors.New("connection reset"))
	f.rideRepo.EXPECT().PromoteScheduled(ctx, healthy.ID, gomock.Any()).Return(false, nil)

	f.uc.PromoteDueScheduledRides(ctx)
}

func TestNewPromoterDefaultInterval(t *testing.T) {
	uc := &RideUC{}

	p := NewPromoter(uc, &models.Config{})
	assert.Equal(t, time.Minute, p.interval)

	p = NewPromoter(uc, &models.Config{
		Dispatch: models.DispatchConfig{PromoterIntervalSeconds: 15},
	})
	assert.Equal(t, 15*time.Second, p.interval)
}
