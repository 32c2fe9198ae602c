package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Connection roles
const (
	RoleRider  = "rider"
	RoleDriver = "driver"
)

// WebSocketClaims are the JWT claims carried by the handshake credential
type WebSocketClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// WSInbound is the loosely-typed envelope for all inbound realtime
// messages; Type selects which fields are meaningful
type WSInbound struct {
	Type     string  `json:"type"`
	Token    string  `json:"token,omitempty"`
	DriverID string  `json:"driver_id,omitempty"`
	RideID   string  `json:"ride_id,omitempty"`
	Status   string  `json:"status,omitempty"`
	Text     string  `json:"text,omitempty"`
	Sender   string  `json:"sender,omitempty"`
	Lat      float64 `json:"lat,omitempty"`
	Lng      float64 `json:"lng,omitempty"`
	RadiusKm float64 `json:"radius,omitempty"`

	Speed    *float64 `json:"speed,omitempty"`
	Heading  *float64 `json:"heading,omitempty"`
	Accuracy *float64 `json:"accuracy,omitempty"`
	Altitude *float64 `json:"altitude,omitempty"`

	Points []WSLocationPoint `json:"points,omitempty"`
}

// WSLocationPoint is one buffered GPS sample in a location_batch upload
type WSLocationPoint struct {
	RideID        string   `json:"ride_id,omitempty"`
	Lat           float64  `json:"lat"`
	Lng           float64  `json:"lng"`
	Speed         *float64 `json:"speed,omitempty"`
	Heading       *float64 `json:"heading,omitempty"`
	Accuracy      *float64 `json:"accuracy,omitempty"`
	Altitude      *float64 `json:"altitude,omitempty"`
	TrackingPhase string   `json:"tracking_phase,omitempty"`
	Timestamp     string   `json:"timestamp,omitempty"`
}

// WSError is an outbound error frame
type WSError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// WSDriverLocationUpdate fans a driver position out to riders
type WSDriverLocationUpdate struct {
	Type     string    `json:"type"`
	DriverID uuid.UUID `json:"driver_id"`
	Lat      float64   `json:"lat"`
	Lng      float64   `json:"lng"`
	Speed    *float64  `json:"speed,omitempty"`
	Heading  *float64  `json:"heading,omitempty"`
}

// WSBatchAck acknowledges a location_batch upload
type WSBatchAck struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// WSRideStatus relays a ride status label to the rider
type WSRideStatus struct {
	Type   string    `json:"type"`
	RideID uuid.UUID `json:"ride_id"`
	Status string    `json:"status"`
}

// WSNearbyDrivers answers a get_nearby_drivers query
type WSNearbyDrivers struct {
	Type    string         `json:"type"`
	Drivers []NearbyDriver `json:"drivers"`
}

// WSChatMessage relays free text between the parties of a ride
type WSChatMessage struct {
	Type      string    `json:"type"`
	ID        uuid.UUID `json:"id"`
	RideID    uuid.UUID `json:"ride_id"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// WSRideEvent is a generic lifecycle notification for either party
type WSRideEvent struct {
	Type   string                 `json:"type"`
	RideID uuid.UUID              `json:"ride_id"`
	Data   map[string]interface{} `json:"data,omitempty"`
}
