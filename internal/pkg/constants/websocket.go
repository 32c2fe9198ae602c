package constants

// Inbound realtime message types
const (
	TypeAuth             = "auth"
	TypeDriverLocation   = "driver_location"
	TypeLocationUpdate   = "location_update"
	TypeLocationBatch    = "location_batch"
	TypeRideStatusUpdate = "ride_status_update"
	TypeGetNearbyDrivers = "get_nearby_drivers"
	TypeChatMessage      = "chat_message"
)

// Outbound realtime message types
const (
	TypeError                = "error"
	TypeLocationBatchAck     = "location_batch_ack"
	TypeNearbyDrivers        = "nearby_drivers"
	TypeDriverLocationUpdate = "driver_location_update"
	TypeRideStatusChanged    = "ride_status_changed"

	TypeDriverAssigned    = "driver_assigned"
	TypeNewRideAssignment = "new_ride_assignment"
	TypeDriverAccepted    = "driver_accepted"
	TypeDriverArrived     = "driver_arrived"
	TypeRideStarted       = "ride_started"
	TypeRideCompleted     = "ride_completed"
	TypeRideCancelled     = "ride_cancelled"
	TypeScheduledDispatch = "scheduled_ride_dispatched"
)

// Realtime error messages
const (
	ErrAuthenticationRequired = "authentication_required"
	ErrInvalidToken           = "invalid_token_or_user_not_found"
	ErrNotADriver             = "user_is_not_a_driver"
	ErrInvalidFormat          = "invalid_format"
)
