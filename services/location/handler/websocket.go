package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	gorillaws "github.com/gorilla/websocket"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/spinr-app/dispatch/internal/pkg/constants"
	"github.com/spinr-app/dispatch/internal/pkg/jwt"
	"github.com/spinr-app/dispatch/internal/pkg/logger"
	"github.com/spinr-app/dispatch/internal/pkg/models"
	"github.com/spinr-app/dispatch/internal/pkg/websocket"
	"github.com/spinr-app/dispatch/services/location"
	locationuc "github.com/spinr-app/dispatch/services/location/usecase"
)

// authTimeout bounds how long a fresh connection may sit unauthenticated
const authTimeout = 10 * time.Second

// WSHandler owns the realtime endpoint: handshake, message loop, fanout
type WSHandler struct {
	cfg        *models.Config
	hub        *websocket.Hub
	locationUC location.LocationUC
	upgrader   gorillaws.Upgrader
}

// NewWSHandler creates a new realtime connection handler
func NewWSHandler(cfg *models.Config, hub *websocket.Hub, locationUC location.LocationUC) *WSHandler {
	return &WSHandler{
		cfg:        cfg,
		hub:        hub,
		locationUC: locationUC,
		upgrader: gorillaws.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// RegisterRoutes registers the realtime endpoint
func (h *WSHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws", h.HandleConnection)
}

// HandleConnection upgrades the request and runs the connection lifecycle:
// authenticate via the first frame, register on the hub, then serve the
// message loop until the peer disconnects
func (h *WSHandler) HandleConnection(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	client, driver, err := h.authenticate(conn)
	if err != nil {
		// the error frame was already written; nothing for echo to do
		return nil
	}
	defer h.hub.Unregister(client)

	ctx := c.Request().Context()
	if driver != nil {
		defer func() {
			if err := h.locationUC.DriverOffline(context.Background(), driver.ID); err != nil {
				logger.Warn("failed to take driver offline",
					logger.String("driver_id", driver.ID.String()),
					logger.Err(err))
			}
		}()
	}

	logger.Info("realtime client connected",
		logger.String("key", client.Key))

	h.readLoop(ctx, client, driver)

	logger.Info("realtime client disconnected",
		logger.String("key", client.Key))
	return nil
}

// authenticate enforces the first-frame handshake: the client must send
// {"type":"auth","token":...} before anything else. The registry key is
// computed server-side from the validated claims.
func (h *WSHandler) authenticate(conn *gorillaws.Conn) (*websocket.Client, *models.Driver, error) {
	conn.SetReadDeadline(time.Now().Add(authTimeout))
	defer conn.SetReadDeadline(time.Time{})

	var frame models.WSInbound
	if err := conn.ReadJSON(&frame); err != nil {
		return nil, nil, err
	}
	if frame.Type != constants.TypeAuth || frame.Token == "" {
		writeError(conn, constants.ErrAuthenticationRequired)
		return nil, nil, errors.New("handshake frame is not auth")
	}

	claims, err := jwt.ValidateToken(frame.Token, h.cfg.JWT.Secret)
	if err != nil {
		writeError(conn, constants.ErrInvalidToken)
		return nil, nil, err
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		writeError(conn, constants.ErrInvalidToken)
		return nil, nil, err
	}
	if claims.Role != models.RoleRider && claims.Role != models.RoleDriver {
		writeError(conn, constants.ErrInvalidToken)
		return nil, nil, errors.New("unknown role in claims")
	}

	var driver *models.Driver
	if claims.Role == models.RoleDriver {
		driver, err = h.locationUC.DriverForUser(context.Background(), userID)
		if err != nil {
			writeError(conn, constants.ErrNotADriver)
			return nil, nil, err
		}
	}

	client := h.hub.Register(claims.Role, userID, conn)
	return client, driver, nil
}

func (h *WSHandler) readLoop(ctx context.Context, client *websocket.Client, driver *models.Driver) {
	for {
		var msg models.WSInbound
		if err := client.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Type {
		case constants.TypeDriverLocation, constants.TypeLocationUpdate:
			h.handleLocationUpdate(ctx, client, driver, msg)
		case constants.TypeLocationBatch:
			h.handleLocationBatch(ctx, client, driver, msg)
		case constants.TypeGetNearbyDrivers:
			h.handleNearbyDrivers(ctx, client, msg)
		case constants.TypeRideStatusUpdate:
			h.handleRideStatus(ctx, client, driver, msg)
		case constants.TypeChatMessage:
			h.handleChat(ctx, client, msg)
		default:
			clientError(client, constants.ErrInvalidFormat)
		}
	}
}

func (h *WSHandler) handleLocationUpdate(ctx context.Context, client *websocket.Client, driver *models.Driver, msg models.WSInbound) {
	if driver == nil {
		clientError(client, constants.ErrNotADriver)
		return
	}

	upd := location.Update{
		Lat:      msg.Lat,
		Lng:      msg.Lng,
		Speed:    msg.Speed,
		Heading:  msg.Heading,
		Accuracy: msg.Accuracy,
		Altitude: msg.Altitude,
		RideID:   parseOptionalID(msg.RideID),
	}
	if err := h.locationUC.UpdateDriverLocation(ctx, driver, upd); err != nil {
		if errors.Is(err, locationuc.ErrInvalidCoordinates) {
			clientError(client, constants.ErrInvalidFormat)
			return
		}
		logger.Error("failed to process location update",
			logger.String("driver_id", driver.ID.String()),
			logger.Err(err))
	}
}

func (h *WSHandler) handleLocationBatch(ctx context.Context, client *websocket.Client, driver *models.Driver, msg models.WSInbound) {
	if driver == nil {
		clientError(client, constants.ErrNotADriver)
		return
	}

	points := make([]location.Update, 0, len(msg.Points))
	for _, p := range msg.Points {
		points = append(points, location.Update{
			Lat:       p.Lat,
			Lng:       p.Lng,
			Speed:     p.Speed,
			Heading:   p.Heading,
			Accuracy:  p.Accuracy,
			Altitude:  p.Altitude,
			RideID:    parseOptionalID(p.RideID),
			Timestamp: parseTimestamp(p.Timestamp),
		})
	}

	count, err := h.locationUC.IngestBatch(ctx, driver, points)
	if err != nil {
		logger.Error("failed to ingest location batch",
			logger.String("driver_id", driver.ID.String()),
			logger.Err(err))
		clientError(client, constants.ErrInvalidFormat)
		return
	}

	if err := client.WriteJSON(models.WSBatchAck{
		Type:  constants.TypeLocationBatchAck,
		Count: count,
	}); err != nil {
		logger.Warn("failed to ack location batch", logger.Err(err))
	}
}

func (h *WSHandler) handleNearbyDrivers(ctx context.Context, client *websocket.Client, msg models.WSInbound) {
	drivers, err := h.locationUC.NearbyDrivers(ctx, msg.Lat, msg.Lng, msg.RadiusKm)
	if err != nil {
		clientError(client, constants.ErrInvalidFormat)
		return
	}
	if drivers == nil {
		drivers = []models.NearbyDriver{}
	}
	if err := client.WriteJSON(models.WSNearbyDrivers{
		Type:    constants.TypeNearbyDrivers,
		Drivers: drivers,
	}); err != nil {
		logger.Warn("failed to answer nearby query", logger.Err(err))
	}
}

func (h *WSHandler) handleRideStatus(ctx context.Context, client *websocket.Client, driver *models.Driver, msg models.WSInbound) {
	if driver == nil {
		clientError(client, constants.ErrNotADriver)
		return
	}
	rideID, err := uuid.Parse(msg.RideID)
	if err != nil {
		clientError(client, constants.ErrInvalidFormat)
		return
	}
	if err := h.locationUC.RelayRideStatus(ctx, driver, rideID, msg.Status); err != nil {
		clientError(client, constants.ErrInvalidFormat)
	}
}

func (h *WSHandler) handleChat(ctx context.Context, client *websocket.Client, msg models.WSInbound) {
	rideID, err := uuid.Parse(msg.RideID)
	if err != nil || msg.Text == "" {
		clientError(client, constants.ErrInvalidFormat)
		return
	}
	if err := h.locationUC.RelayChat(ctx, client.Role, client.UserID, rideID, msg.Text); err != nil {
		clientError(client, constants.ErrInvalidFormat)
	}
}

func parseOptionalID(raw string) *uuid.UUID {
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

func parseTimestamp(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return ts.UTC()
}

func writeError(conn *gorillaws.Conn, message string) {
	conn.WriteJSON(models.WSError{Type: constants.TypeError, Message: message})
}

func clientError(client *websocket.Client, message string) {
	if err := client.WriteJSON(models.WSError{Type: constants.TypeError, Message: message}); err != nil {
		logger.Warn("failed to write error frame", logger.Err(err))
	}
}
