package rides

import (
	"context"

	"github.com/google/uuid"

	"github.com/spinr-app/dispatch/internal/pkg/models"
)

// RideGW defines the notification gateway for ride lifecycle events.
// Delivery is best effort: the realtime connection first, then the push
// topic when one is supplied and no live connection exists.
type RideGW interface {
	NotifyRider(ctx context.Context, riderID uuid.UUID, msg interface{}, push *models.PushNotification)
	NotifyDriver(ctx context.Context, driverUserID uuid.UUID, msg interface{}, push *models.PushNotification)
}
