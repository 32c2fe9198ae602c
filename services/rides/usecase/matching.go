package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/spinr-app/dispatch/internal/pkg/constants"
	"github.com/spinr-app/dispatch/internal/pkg/logger"
	"github.com/spinr-app/dispatch/internal/pkg/models"
)

// findCandidates runs the geo index query and hydrates the hits, keeping
// online, available drivers of the right vehicle type within the radius
func (uc *RideUC) findCandidates(ctx context.Context, ride *models.Ride, radiusKm float64) ([]models.Candidate, error) {
	hits, err := uc.driverRepo.NearbyDriverIDs(ctx, ride.PickupLat, ride.PickupLng, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to query driver geo index: %w", err)
	}
	if len(hits) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(hits))
	distances := make(map[uuid.UUID]float64, len(hits))
	for _, hit := range hits {
		ids = append(ids, hit.DriverID)
		distances[hit.DriverID] = hit.DistanceKm
	}

	drivers, err := uc.driverRepo.CandidatesByIDs(ctx, ids, ride.VehicleTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to hydrate candidates: %w", err)
	}

	byID := make(map[uuid.UUID]*models.Driver, len(drivers))
	for _, d := range drivers {
		byID[d.ID] = d
	}

	// preserve the geo index ordering, nearest first
	candidates := make([]models.Candidate, 0, len(drivers))
	for _, hit := range hits {
		driver, ok := byID[hit.DriverID]
		if !ok {
			continue
		}
		if hit.DistanceKm > radiusKm {
			continue
		}
		candidates = append(candidates, models.Candidate{
			Driver:     driver,
			DistanceKm: hit.DistanceKm,
		})
	}
	return candidates, nil
}

// rankCandidates orders candidates under the configured algorithm. Pure:
// the round-robin anchor is passed in rather than re-derived here.
func rankCandidates(candidates []models.Candidate, algorithm string, minRating float64, lastAssigned *uuid.UUID) []models.Candidate {
	ranked := make([]models.Candidate, len(candidates))
	copy(ranked, candidates)

	// rating-aware algorithms drop drivers below the minimum before ordering
	if algorithm == models.AlgorithmRatingBased || algorithm == models.AlgorithmCombined {
		filtered := ranked[:0]
		for _, c := range ranked {
			if c.Driver.Rating >= minRating {
				filtered = append(filtered, c)
			}
		}
		ranked = filtered
	}

	switch algorithm {
	case models.AlgorithmRatingBased:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Driver.Rating > ranked[j].Driver.Rating
		})
	case models.AlgorithmRoundRobin:
		if lastAssigned == nil {
			return ranked
		}
		start := -1
		for i, c := range ranked {
			if c.Driver.ID == *lastAssigned {
				start = i
				break
			}
		}
		if start < 0 {
			return ranked
		}
		rotated := make([]models.Candidate, 0, len(ranked))
		for i := 1; i <= len(ranked); i++ {
			rotated = append(rotated, ranked[(start+i)%len(ranked)])
		}
		return rotated
	case models.AlgorithmCombined:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].DistanceKm < ranked[j].DistanceKm
		})
	default:
		// nearest, also the fallback for unknown algorithm names
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].DistanceKm < ranked[j].DistanceKm
		})
	}
	return ranked
}

// claimFirst walks the preference list issuing conditional availability
// updates; zero rows affected means a lost race and the loop moves on
func (uc *RideUC) claimFirst(ctx context.Context, ranked []models.Candidate) (*models.Candidate, error) {
	for i := range ranked {
		candidate := ranked[i]
		won, err := uc.driverRepo.TryClaim(ctx, candidate.Driver.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to claim driver %s: %w", candidate.Driver.ID, err)
		}
		if !won {
			logger.Debug("lost claim race, trying next candidate",
				logger.String("driver_id", candidate.Driver.ID.String()))
			continue
		}
		return &candidate, nil
	}
	return nil, ErrNoDriversAvailable
}

// MatchDriver runs the full matching pass for a searching ride: locate
// candidates, rank them under the configured algorithm, claim the first
// available driver and bind it to the ride
func (uc *RideUC) MatchDriver(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.Status != models.RideStatusSearching {
		return nil, ErrRideNotSearching
	}

	settings, err := uc.settingsRepo.DispatchSettings(ctx)
	if err != nil {
		logger.Warn("falling back to default dispatch settings", logger.Err(err))
		settings = models.DefaultDispatchSettings()
	}

	candidates, err := uc.findCandidates(ctx, ride, settings.SearchRadiusKm)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrNoDriversAvailable
	}

	var lastAssigned *uuid.UUID
	if settings.MatchingAlgorithm == models.AlgorithmRoundRobin {
		lastAssigned, err = uc.rideRepo.LastAssignedDriverID(ctx)
		if err != nil {
			logger.Warn("failed to load round-robin anchor", logger.Err(err))
		}
	}

	ranked := rankCandidates(candidates, settings.MatchingAlgorithm, settings.MinDriverRating, lastAssigned)

	claimed, err := uc.claimFirst(ctx, ranked)
	if err != nil {
		return nil, err
	}
	driver := claimed.Driver

	bound, err := uc.rideRepo.AssignDriver(ctx, rideID, driver.ID)
	if err != nil {
		uc.releaseAfterFailedBind(ctx, driver.ID)
		return nil, fmt.Errorf("failed to assign driver: %w", err)
	}
	if !bound {
		// another matching pass won the ride; give the driver back
		uc.releaseAfterFailedBind(ctx, driver.ID)
		return nil, ErrRideNotSearching
	}

	logger.Info("driver assigned",
		logger.String("ride_id", rideID.String()),
		logger.String("driver_id", driver.ID.String()))

	uc.rideGW.NotifyDriver(ctx, driver.UserID, models.WSRideEvent{
		Type:   constants.TypeNewRideAssignment,
		RideID: rideID,
		Data: map[string]interface{}{
			"pickup_address":  ride.PickupAddress,
			"pickup_lat":      ride.PickupLat,
			"pickup_lng":      ride.PickupLng,
			"dropoff_address": ride.DropoffAddress,
			"distance_km":     ride.DistanceKm,
			"driver_earnings": ride.DriverEarnings,
		},
	}, &models.PushNotification{
		UserID: driver.UserID.String(),
		Title:  "New ride request",
		Body:   fmt.Sprintf("Pickup at %s", ride.PickupAddress),
	})

	uc.rideGW.NotifyRider(ctx, ride.RiderID, models.WSRideEvent{
		Type:   constants.TypeDriverAssigned,
		RideID: rideID,
		Data: map[string]interface{}{
			"driver_id":     driver.ID,
			"driver_name":   driver.Name,
			"driver_rating": driver.Rating,
			"distance_km":   claimed.DistanceKm,
		},
	}, nil)

	return uc.GetRide(ctx, rideID)
}

func (uc *RideUC) releaseAfterFailedBind(ctx context.Context, driverID uuid.UUID) {
	if err := uc.driverRepo.Release(ctx, driverID); err != nil {
		logger.Error("failed to release driver after failed bind",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
	}
}
