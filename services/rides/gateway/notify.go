package gateway

import (
	"context"

	"github.com/google/uuid"

	"github.com/spinr-app/dispatch/internal/pkg/constants"
	"github.com/spinr-app/dispatch/internal/pkg/logger"
	"github.com/spinr-app/dispatch/internal/pkg/models"
	"github.com/spinr-app/dispatch/internal/pkg/nsq"
	"github.com/spinr-app/dispatch/internal/pkg/websocket"
)

// RideGW delivers ride lifecycle events: the realtime hub first, then the
// push topic for recipients without a live connection
type RideGW struct {
	hub      *websocket.Hub
	producer *nsq.Producer
}

// NewRideGW creates a new ride notification gateway
func NewRideGW(hub *websocket.Hub, producer *nsq.Producer) *RideGW {
	return &RideGW{
		hub:      hub,
		producer: producer,
	}
}

func (g *RideGW) notify(role string, userID uuid.UUID, msg interface{}, push *models.PushNotification) {
	if g.hub.Send(websocket.Key(role, userID), msg) {
		return
	}
	if push == nil {
		return
	}
	if err := g.producer.Publish(constants.TopicPushNotification, push); err != nil {
		logger.Warn("failed to publish push notification",
			logger.String("user_id", userID.String()),
			logger.Err(err))
	}
}

// NotifyRider delivers a message to a rider
func (g *RideGW) NotifyRider(ctx context.Context, riderID uuid.UUID, msg interface{}, push *models.PushNotification) {
	g.notify(models.RoleRider, riderID, msg, push)
}

// NotifyDriver delivers a message to a driver's user
func (g *RideGW) NotifyDriver(ctx context.Context, driverUserID uuid.UUID, msg interface{}, push *models.PushNotification) {
	g.notify(models.RoleDriver, driverUserID, msg, push)
}
