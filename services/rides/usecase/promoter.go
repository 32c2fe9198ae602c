package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/spinr-app/dispatch/internal/pkg/constants"
	"github.com/spinr-app/dispatch/internal/pkg/logger"
	"github.com/spinr-app/dispatch/internal/pkg/models"
)

// PromoteDueScheduledRides moves scheduled rides whose target time falls
// within the lookahead window into active search. Per-ride failures are
// logged and never stop the remaining rides or subsequent ticks.
func (uc *RideUC) PromoteDueScheduledRides(ctx context.Context) {
	lookahead := time.Duration(uc.cfg.Dispatch.PromoterLookaheadMin) * time.Minute
	cutoff := time.Now().UTC().Add(lookahead)

	due, err := uc.rideRepo.ListDueScheduled(ctx, cutoff)
	if err != nil {
		logger.Error("failed to list due scheduled rides", logger.Err(err))
		return
	}

	for _, ride := range due {
		if err := uc.promoteOne(ctx, ride); err != nil {
			logger.Error("failed to promote scheduled ride",
				logger.String("ride_id", ride.ID.String()),
				logger.Err(err))
		}
	}
}

func (uc *RideUC) promoteOne(ctx context.Context, ride *models.Ride) error {
	now := time.Now().UTC()

	// conditional update; the request-driven path may have raced us
	promoted, err := uc.rideRepo.PromoteScheduled(ctx, ride.ID, now)
	if err != nil {
		return err
	}
	if !promoted {
		return nil
	}

	logger.Info("scheduled ride promoted to searching",
		logger.String("ride_id", ride.ID.String()))

	uc.rideGW.NotifyRider(ctx, ride.RiderID, models.WSRideEvent{
		Type:   constants.TypeScheduledDispatch,
		RideID: ride.ID,
	}, &models.PushNotification{
		UserID: ride.RiderID.String(),
		Title:  "Finding your driver",
		Body:   "Your scheduled ride is being dispatched now.",
	})

	if _, err := uc.MatchDriver(ctx, ride.ID); err != nil && !errors.Is(err, ErrNoDriversAvailable) {
		return err
	}
	return nil
}

// Promoter drives the scheduled-ride promotion loop on a fixed interval
type Promoter struct {
	uc       *RideUC
	interval time.Duration
}

// NewPromoter creates a promoter ticking at the configured interval
func NewPromoter(uc *RideUC, cfg *models.Config) *Promoter {
	interval := time.Duration(cfg.Dispatch.PromoterIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}
	return &Promoter{uc: uc, interval: interval}
}

// Run blocks, ticking until the context is cancelled
func (p *Promoter) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	logger.Info("scheduled-ride promoter started",
		logger.Duration("interval", p.interval))

	for {
		select {
		case <-ctx.Done():
			logger.Info("scheduled-ride promoter stopped")
			return
		case <-ticker.C:
			p.uc.PromoteDueScheduledRides(ctx)
		}
	}
}
