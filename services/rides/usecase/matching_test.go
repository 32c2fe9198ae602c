package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spinr-app/dispatch/internal/pkg/models"
	"github.com/spinr-app/dispatch/services/rides"
)

func candidate(name string, distanceKm, rating float64) models.Candidate {
	return models.Candidate{
		Driver: &models.Driver{
			ID:     uuid.New(),
			UserID: uuid.New(),
			Name:   name,
			Rating: rating,
		},
		DistanceKm: distanceKm,
	}
}

func names(candidates []models.Candidate) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.Driver.Name)
	}
	return out
}

func TestRankCandidatesNearest(t *testing.T) {
	input := []models.Candidate{
		candidate("far", 8.0, 4.5),
		candidate("close", 1.2, 3.0),
		candidate("mid", 4.0, 5.0),
	}

	ranked := rankCandidates(input, models.AlgorithmNearest, 0, nil)
	assert.Equal(t, []string{"close", "mid", "far"}, names(ranked))
	// input order is untouched
	assert.Equal(t, []string{"far", "close", "mid"}, names(input))
}

func TestRankCandidatesUnknownFallsBackToNearest(t *testing.T) {
	input := []models.Candidate{
		candidate("far", 8.0, 4.5),
		candidate("close", 1.2, 3.0),
	}

	ranked := rankCandidates(input, "genetic_simplex", 0, nil)
	assert.Equal(t, []string{"close", "far"}, names(ranked))
}

func TestRankCandidatesRatingBased(t *testing.T) {
	input := []models.Candidate{
		candidate("threeStar", 1.0, 3.0),
		candidate("fiveStar", 9.0, 5.0),
		candidate("fourStarA", 2.0, 4.0),
		candidate("fourStarB", 3.0, 4.0),
	}

	ranked := rankCandidates(input, models.AlgorithmRatingBased, 0, nil)
	// ties keep their original relative order
	assert.Equal(t, []string{"fiveStar", "fourStarA", "fourStarB", "threeStar"}, names(ranked))
}

func TestRankCandidatesRatingBasedDropsBelowMinimum(t *testing.T) {
	input := []models.Candidate{
		candidate("lowRated", 0.5, 3.0),
		candidate("topRated", 9.0, 4.8),
		candidate("midRated", 2.0, 4.2),
	}

	ranked := rankCandidates(input, models.AlgorithmRatingBased, 4.0, nil)
	assert.Equal(t, []string{"topRated", "midRated"}, names(ranked))
}

func TestRankCandidatesRoundRobin(t *testing.T) {
	a := candidate("a", 1.0, 4.0)
	b := candidate("b", 2.0, 4.0)
	c := candidate("c", 3.0, 4.0)
	input := []models.Candidate{a, b, c}

	anchor := b.Driver.ID
	ranked := rankCandidates(input, models.AlgorithmRoundRobin, 0, &anchor)
	assert.Equal(t, []string{"c", "a", "b"}, names(ranked))
}

func TestRankCandidatesRoundRobinNoAnchor(t *testing.T) {
	input := []models.Candidate{
		candidate("a", 1.0, 4.0),
		candidate("b", 2.0, 4.0),
	}

	ranked := rankCandidates(input, models.AlgorithmRoundRobin, 0, nil)
	assert.Equal(t, []string{"a", "b"}, names(ranked))

	absent := uuid.New()
	ranked = rankCandidates(input, models.AlgorithmRoundRobin, 0, &absent)
	assert.Equal(t, []string{"a", "b"}, names(ranked))
}

func TestRankCandidatesCombined(t *testing.T) {
	input := []models.Candidate{
		candidate("lowRated", 0.5, 3.2),
		candidate("farGood", 6.0, 4.8),
		candidate("closeGood", 2.0, 4.1),
	}

	ranked := rankCandidates(input, models.AlgorithmCombined, 4.0, nil)
	assert.Equal(t, []string{"closeGood", "farGood"}, names(ranked))
}

func TestMatchDriverAssignsNearest(t *testing.T) {
	f := newUCFixture(t)
	ctx := context.Background()

	ride := testRide(models.RideStatusSearching, nil)
	near := candidate("near", 0.8, 4.9)
	far := candidate("far", 3.5, 4.2)
	near.Driver.VehicleTypeID = ride.VehicleTypeID
	far.Driver.VehicleTypeID = ride.VehicleTypeID

	f.rideRepo.EXPECT().GetRide(ctx, ride.ID).Return(ride, nil)
	f.settings.EXPECT().DispatchSettings(ctx).Return(models.DefaultDispatchSettings(), nil)
	f.drivers.EXPECT().NearbyDriverIDs(ctx, ride.PickupLat, ride.PickupLng, 10.0).
		Return([]rides.NearbyDriverID{
			{DriverID: near.Driver.ID, DistanceKm: near.DistanceKm},
			{DriverID: far.Driver.ID, DistanceKm: far.DistanceKm},
		}, nil)
	f.drivers.EXPECT().CandidatesByIDs(ctx, gomock.Any(), ride.VehicleTypeID).
		Return([]*models.Driver{near.Driver, far.Driver}, nil)
	f.drivers.EXPECT().TryClaim(ctx, near.Driver.ID).Return(true, nil)
	f.rideRepo.EXPECT().AssignDriver(ctx, ride.ID, near.Driver.ID).Return(true, nil)
	f.gw.EXPECT().NotifyDriver(ctx, near.Driver.UserID, gomock.Any(), gomock.Any())
	f.gw.EXPECT().NotifyRider(ctx, ride.RiderID, gomock.Any(), gomock.Nil())

	assigned := withStatus(ride, models.RideStatusDriverAssigned)
	assigned.DriverID = &near.Driver.ID
	f.rideRepo.EXPECT().GetRide(ctx, ride.ID).Return(assigned, nil)

	got, err := f.uc.MatchDriver(ctx, ride.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DriverID)
	assert.Equal(t, near.Driver.ID, *got.DriverID)
}

func TestMatchDriverClaimFallsThrough(t *testing.T) {
	f := newUCFixture(t)
	ctx := context.Background()

	ride := testRide(models.RideStatusSearching, nil)
	first := candidate("first", 0.8, 4.9)
	second := candidate("second", 1.5, 4.5)

	f.rideRepo.EXPECT().GetRide(ctx, ride.ID).Return(ride, nil)
	f.settings.EXPECT().DispatchSettings(ctx).Return(models.DefaultDispatchSettings(), nil)
	f.drivers.EXPECT().NearbyDriverIDs(ctx, ride.PickupLat, ride.PickupLng, 10.0).
		Return([]rides.NearbyDriverID{
			{DriverID: first.Driver.ID, DistanceKm: first.DistanceKm},
			{DriverID: second.Driver.ID, DistanceKm: second.DistanceKm},
		}, nil)
	f.drivers.EXPECT().CandidatesByIDs(ctx, gomock.Any(), ride.VehicleTypeID).
		Return([]*models.Driver{first.Driver, second.Driver}, nil)

	// first claim lost to a concurrent match, fall through to second
	f.drivers.EXPECT().TryClaim(ctx, first.Driver.ID).Return(false, nil)
	f.drivers.EXPECT().TryClaim(ctx, second.Driver.ID).Return(true, nil)
	f.rideRepo.EXPECT().AssignDriver(ctx, ride.ID, second.Driver.ID).Return(true, nil)
	f.gw.EXPECT().NotifyDriver(ctx, second.Driver.UserID, gomock.Any(), gomock.Any())
	f.gw.EXPECT().NotifyRider(ctx, ride.RiderID, gomock.Any(), gomock.Nil())

	assigned := withStatus(ride, models.RideStatusDriverAssigned)
	assigned.DriverID = &second.Driver.ID
	f.rideRepo.EXPECT().GetRide(ctx, ride.ID).Return(assigned, nil)

	got, err := f.uc.MatchDriver(ctx, ride.ID)
	require.NoError(t, err)
	assert.Equal(t, second.Driver.ID, *got.DriverID)
}

func TestMatchDriverNotSearching(t *testing.T) {
	f := newUCFixture(t)
	ctx := context.Background()

	driverID := uuid.New()
	ride := testRide(models.RideStatusDriverAssigned, &driverID)
	f.rideRepo.EXPECT().GetRide(ctx, ride.ID).Return(ride, nil)

	_, err := f.uc.MatchDriver(ctx, ride.ID)
	assert.ErrorIs(t, err, ErrRideNotSearching)
}

func TestMatchDriverNoCandidates(t *testing.T) {
	f := newUCFixture(t)
	ctx := context.Background()

	ride := testRide(models.RideStatusSearching, nil)

	f.rideRepo.EXPECT().GetRide(ctx, ride.ID).Return(ride, nil)
	f.settings.EXPECT().DispatchSettings(ctx).Return(models.DefaultDispatchSettings(), nil)
	f.drivers.EXPECT().NearbyDriverIDs(ctx, ride.PickupLat, ride.PickupLng, 10.0).
		Return(nil, nil)

	_, err := f.uc.MatchDriver(ctx, ride.ID)
	assert.ErrorIs(t, err, ErrNoDriversAvailable)
}

func TestMatchDriverReleasesClaimOnLostBind(t *testing.T) {
	f := newUCFixture(t)
	ctx := context.Background()

	ride := testRide(models.RideStatusSearching, nil)
	only := candidate("only", 0.8, 4.9)

	f.rideRepo.EXPECT().GetRide(ctx, ride.ID).Return(ride, nil)
	f.settings.EXPECT().DispatchSettings(ctx).Return(models.DefaultDispatchSettings(), nil)
	f.drivers.EXPECT().NearbyDriverIDs(ctx, ride.PickupLat, ride.PickupLng, 10.0).
		Return([]rides.NearbyDriverID{{DriverID: only.Driver.ID, DistanceKm: only.DistanceKm}}, nil)
	f.drivers.EXPECT().CandidatesByIDs(ctx, gomock.Any(), ride.VehicleTypeID).
		Return([]*models.Driver{only.Driver}, nil)
	f.drivers.EXPECT().TryClaim(ctx, only.Driver.ID).Return(true, nil)

	// ride left searching between the status check and the bind
	f.rideRepo.EXPECT().AssignDriver(ctx, ride.ID, only.Driver.ID).Return(false, nil)
	f.drivers.EXPECT().Release(ctx, only.Driver.ID).Return(nil)

	_, err := f.uc.MatchDriver(ctx, ride.ID)
	assert.ErrorIs(t, err, ErrRideNotSearching)
}

func TestMatchDriverSkipsHitsBeyondRadius(t *testing.T) {
	f := newUCFixture(t)
	ctx := context.Background()

	ride := testRide(models.RideStatusSearching, nil)
	beyond := candidate("beyond", 14.0, 4.9)

	f.rideRepo.EXPECT().GetRide(ctx, ride.ID).Return(ride, nil)
	f.settings.EXPECT().DispatchSettings(ctx).Return(models.DefaultDispatchSettings(), nil)
	f.drivers.EXPECT().NearbyDriverIDs(ctx, ride.PickupLat, ride.PickupLng, 10.0).
		Return([]rides.NearbyDriverID{{DriverID: beyond.Driver.ID, DistanceKm: beyond.DistanceKm}}, nil)
	f.drivers.EXPECT().CandidatesByIDs(ctx, gomock.Any(), ride.VehicleTypeID).
		Return([]*models.Driver{beyond.Driver}, nil)

	_, err := f.uc.MatchDriver(ctx, ride.ID)
	assert.ErrorIs(t, err, ErrNoDriversAvailable)
}

// claimRaceDriverRepo is an in-memory DriverRepo whose TryClaim mimics the
// conditional-update semantics: only the first caller per driver wins.
type claimRaceDriverRepo struct {
	mu      sync.Mutex
	claimed map[uuid.UUID]bool
}

func newClaimRaceDriverRepo() *claimRaceDriverRepo {
	return &claimRaceDriverRepo{claimed: make(map[uuid.UUID]bool)}
}

func (r *claimRaceDriverRepo) TryClaim(_ context.Context, driverID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.claimed[driverID] {
		return false, nil
	}
	r.claimed[driverID] = true
	return true, nil
}

func (r *claimRaceDriverRepo) GetDriver(context.Context, uuid.UUID) (*models.Driver, error) {
	return nil, nil
}

func (r *claimRaceDriverRepo) DriverByUserID(context.Context, uuid.UUID) (*models.Driver, error) {
	return nil, nil
}

func (r *claimRaceDriverRepo) NearbyDriverIDs(context.Context, float64, float64, float64) ([]rides.NearbyDriverID, error) {
	return nil, nil
}

func (r *claimRaceDriverRepo) CandidatesByIDs(context.Context, []uuid.UUID, uuid.UUID) ([]*models.Driver, error) {
	return nil, nil
}

func (r *claimRaceDriverRepo) LastKnownLocation(context.Context, uuid.UUID) (*models.LatLng, error) {
	return nil, nil
}

func (r *claimRaceDriverRepo) Release(context.Context, uuid.UUID) error { return nil }

func (r *claimRaceDriverRepo) CompleteRideStats(context.Context, uuid.UUID) error { return nil }

func TestClaimFirstConcurrentSingleWinner(t *testing.T) {
	repo := newClaimRaceDriverRepo()
	uc := NewRideUC(&models.Config{}, nil, repo, nil, nil, nil)

	only := candidate("only", 0.5, 4.8)
	ranked := []models.Candidate{only}

	const racers = 16
	var wg sync.WaitGroup
	results := make(chan error, racers)

	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.claimFirst(context.Background(), ranked)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	wins, losses := 0, 0
	for err := range results {
		if err == nil {
			wins++
		} else {
			require.ErrorIs(t, err, ErrNoDriversAvailable)
			losses++
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, racers-1, losses)
}

func TestClaimFirstExhaustsPoolExactlyOnce(t *testing.T) {
	repo := newClaimRaceDriverRepo()
	uc := NewRideUC(&models.Config{}, nil, repo, nil, nil, nil)

	ranked := []models.Candidate{
		candidate("a", 0.5, 4.8),
		candidate("b", 1.0, 4.6),
		candidate("c", 2.0, 4.4),
	}

	const racers = 12
	var wg sync.WaitGroup
	winners := make(chan uuid.UUID, racers)

	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if claimed, err := uc.claimFirst(context.Background(), ranked); err == nil {
				winners <- claimed.Driver.ID
			}
		}()
	}
	wg.Wait()
	close(winners)

	seen := make(map[uuid.UUID]bool)
	for id := range winners {
		assert.False(t, seen[id], "driver %s claimed twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, len(ranked))
}
