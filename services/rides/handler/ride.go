package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/spinr-app/dispatch/internal/pkg/models"
	"github.com/spinr-app/dispatch/internal/utils"
	"github.com/spinr-app/dispatch/services/rides"
	"github.com/spinr-app/dispatch/services/rides/usecase"
)

// RideHandler handles HTTP requests for ride operations
type RideHandler struct {
	rideUC rides.RideUC
}

// NewRideHandler creates a new ride handler
func NewRideHandler(rideUC rides.RideUC) *RideHandler {
	return &RideHandler{
		rideUC: rideUC,
	}
}

// RegisterRoutes registers the ride handler routes. The group is expected
// to carry the JWT middleware.
func (h *RideHandler) RegisterRoutes(g *echo.Group, public *echo.Echo) {
	g.POST("/rides", h.CreateRide)
	g.POST("/rides/schedule", h.ScheduleRide)
	g.GET("/rides/scheduled", h.ListScheduledRides)
	g.GET("/rides/:rideID", h.GetRide)
	g.POST("/rides/:rideID/match", h.MatchDriver)

	g.POST("/rides/:rideID/accept", h.AcceptRide)
	g.POST("/rides/:rideID/decline", h.DeclineRide)
	g.POST("/rides/:rideID/arrive", h.MarkArrived)
	g.POST("/rides/:rideID/verify-otp", h.VerifyPickupOTP)
	g.POST("/rides/:rideID/start", h.StartRide)
	g.POST("/rides/:rideID/complete", h.CompleteRide)
	g.POST("/rides/:rideID/driver-cancel", h.CancelRideByDriver)
	g.POST("/rides/:rideID/rate-rider", h.RateRider)

	g.POST("/rides/:rideID/cancel", h.CancelRideByRider)
	g.POST("/rides/:rideID/tip", h.AddTip)
	g.POST("/rides/:rideID/rate", h.RateDriver)

	g.POST("/rides/:rideID/stops", h.AddStop)
	g.POST("/rides/:rideID/stops/:stopID/complete", h.CompleteStop)
	g.POST("/rides/:rideID/share", h.ShareTrip)

	// share links are served without auth
	public.GET("/api/shared/:token", h.SharedTrip)
}

func userIDFromContext(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	return userID, ok
}

func rideIDFromPath(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("rideID"))
}

// respondError maps usecase errors onto HTTP responses
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, usecase.ErrRideNotFound), errors.Is(err, usecase.ErrDriverNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, usecase.ErrNotRideDriver), errors.Is(err, usecase.ErrNotRideRider):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, usecase.ErrInvalidTransition),
		errors.Is(err, usecase.ErrOTPMismatch),
		errors.Is(err, usecase.ErrTipNotAllowed),
		errors.Is(err, usecase.ErrScheduleTooSoon),
		errors.Is(err, usecase.ErrInvalidTip),
		errors.Is(err, usecase.ErrInvalidRating),
		errors.Is(err, usecase.ErrStopNotAllowed),
		errors.Is(err, usecase.ErrShareNotAllowed),
		errors.Is(err, usecase.ErrRideNotSearching):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, usecase.ErrNoDriversAvailable):
		return utils.SuccessResponse(c, http.StatusAccepted, "No drivers available yet, still searching", nil)
	default:
		return utils.InternalServerErrorResponse(c, "Unexpected error")
	}
}

// CreateRideRequest is the request body for ride creation
type CreateRideRequest struct {
	VehicleTypeID  string  `json:"vehicle_type_id"`
	PickupAddress  string  `json:"pickup_address"`
	PickupLat      float64 `json:"pickup_lat"`
	PickupLng      float64 `json:"pickup_lng"`
	DropoffAddress string  `json:"dropoff_address"`
	DropoffLat     float64 `json:"dropoff_lat"`
	DropoffLng     float64 `json:"dropoff_lng"`
	ScheduledTime  *string `json:"scheduled_time,omitempty"`

	Stops []struct {
		Address string  `json:"address"`
		Lat     float64 `json:"lat"`
		Lng     float64 `json:"lng"`
	} `json:"stops,omitempty"`
}

func (h *RideHandler) bindCreateRequest(c echo.Context) (rides.CreateRideRequest, error) {
	var body CreateRideRequest
	if err := c.Bind(&body); err != nil {
		return rides.CreateRideRequest{}, errors.New("invalid request body")
	}

	riderID, ok := userIDFromContext(c)
	if !ok {
		return rides.CreateRideRequest{}, errors.New("missing authenticated user")
	}

	vehicleTypeID, err := uuid.Parse(body.VehicleTypeID)
	if err != nil {
		return rides.CreateRideRequest{}, errors.New("vehicle_type_id must be a valid UUID")
	}

	req := rides.CreateRideRequest{
		RiderID:        riderID,
		VehicleTypeID:  vehicleTypeID,
		PickupAddress:  body.PickupAddress,
		PickupLat:      body.PickupLat,
		PickupLng:      body.PickupLng,
		DropoffAddress: body.DropoffAddress,
		DropoffLat:     body.DropoffLat,
		DropoffLng:     body.DropoffLng,
	}
	for _, s := range body.Stops {
		req.Stops = append(req.Stops, models.RideStop{
			Address: s.Address,
			Lat:     s.Lat,
			Lng:     s.Lng,
		})
	}

	if body.ScheduledTime != nil {
		t, err := parseRFC3339(*body.ScheduledTime)
		if err != nil {
			return rides.CreateRideRequest{}, errors.New("scheduled_time must be RFC3339")
		}
		req.ScheduledTime = &t
	}
	return req, nil
}

// CreateRide prices, persists and dispatches a new ride
func (h *RideHandler) CreateRide(c echo.Context) error {
	req, err := h.bindCreateRequest(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	ride, err := h.rideUC.CreateRide(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Ride created", ride)
}

// ScheduleRide persists a pre-booked ride
func (h *RideHandler) ScheduleRide(c echo.Context) error {
	req, err := h.bindCreateRequest(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	if req.ScheduledTime == nil {
		return utils.BadRequestResponse(c, "scheduled_time is required")
	}

	ride, err := h.rideUC.ScheduleRide(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Ride scheduled", ride)
}

// ListScheduledRides lists the caller's scheduled rides
func (h *RideHandler) ListScheduledRides(c echo.Context) error {
	riderID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	result, err := h.rideUC.ListScheduledRides(c.Request().Context(), riderID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Scheduled rides", result)
}

// GetRide returns a single ride
func (h *RideHandler) GetRide(c echo.Context) error {
	rideID, err := rideIDFromPath(c)
	if err != nil {
		return utils.BadRequestResponse(c, "ride id must be a valid UUID")
	}

	ride, err := h.rideUC.GetRide(c.Request().Context(), rideID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride", ride)
}

// MatchDriver retries matching for a searching ride
func (h *RideHandler) MatchDriver(c echo.Context) error {
	rideID, err := rideIDFromPath(c)
	if err != nil {
		return utils.BadRequestResponse(c, "ride id must be a valid UUID")
	}

	ride, err := h.rideUC.MatchDriver(c.Request().Context(), rideID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver assigned", ride)
}

// driverAction resolves the caller's driver profile and runs the action
func (h *RideHandler) driverAction(c echo.Context, run func(driver *models.Driver, rideID uuid.UUID) (*models.Ride, error)) error {
	rideID, err := rideIDFromPath(c)
	if err != nil {
		return utils.BadRequestResponse(c, "ride id must be a valid UUID")
	}
	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	driver, err := h.rideUC.DriverForUser(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	ride, err := run(driver, rideID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "OK", ride)
}

// AcceptRide is the driver accepting an assignment
func (h *RideHandler) AcceptRide(c echo.Context) error {
	return h.driverAction(c, func(driver *models.Driver, rideID uuid.UUID) (*models.Ride, error) {
		return h.rideUC.AcceptRide(c.Request().Context(), rideID, driver.ID)
	})
}

// DeclineRide is the driver declining an assignment
func (h *RideHandler) DeclineRide(c echo.Context) error {
	return h.driverAction(c, func(driver *models.Driver, rideID uuid.UUID) (*models.Ride, error) {
		return h.rideUC.DeclineRide(c.Request().Context(), rideID, driver.ID)
	})
}

// MarkArrived is the driver reporting arrival at the pickup point
func (h *RideHandler) MarkArrived(c echo.Context) error {
	return h.driverAction(c, func(driver *models.Driver, rideID uuid.UUID) (*models.Ride, error) {
		return h.rideUC.MarkArrived(c.Request().Context(), rideID, driver.ID)
	})
}

// VerifyPickupOTP starts the trip using the rider's code
func (h *RideHandler) VerifyPickupOTP(c echo.Context) error {
	var body struct {
		OTP string `json:"otp"`
	}
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	return h.driverAction(c, func(driver *models.Driver, rideID uuid.UUID) (*models.Ride, error) {
		return h.rideUC.VerifyPickupOTP(c.Request().Context(), rideID, driver.ID, body.OTP)
	})
}

// StartRide starts the trip without an OTP check
func (h *RideHandler) StartRide(c echo.Context) error {
	return h.driverAction(c, func(driver *models.Driver, rideID uuid.UUID) (*models.Ride, error) {
		return h.rideUC.StartRide(c.Request().Context(), rideID, driver.ID)
	})
}

// CompleteRide finishes the trip
func (h *RideHandler) CompleteRide(c echo.Context) error {
	return h.driverAction(c, func(driver *models.Driver, rideID uuid.UUID) (*models.Ride, error) {
		return h.rideUC.CompleteRide(c.Request().Context(), rideID, driver.ID)
	})
}

// CancelRideByDriver is the driver backing out
func (h *RideHandler) CancelRideByDriver(c echo.Context) error {
	var body struct {
		Reason string `json:"reason"`
	}
	_ = c.Bind(&body)

	return h.driverAction(c, func(driver *models.Driver, rideID uuid.UUID) (*models.Ride, error) {
		return h.rideUC.CancelRideByDriver(c.Request().Context(), rideID, driver.ID, body.Reason)
	})
}

// RateRider stores the driver's rating of the rider
func (h *RideHandler) RateRider(c echo.Context) error {
	var body struct {
		Rating int `json:"rating"`
	}
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	return h.driverAction(c, func(driver *models.Driver, rideID uuid.UUID) (*models.Ride, error) {
		if err := h.rideUC.RateRider(c.Request().Context(), rideID, driver.ID, body.Rating); err != nil {
			return nil, err
		}
		return h.rideUC.GetRide(c.Request().Context(), rideID)
	})
}

// CancelRideByRider cancels the rider's own ride
func (h *RideHandler) CancelRideByRider(c echo.Context) error {
	rideID, err := rideIDFromPath(c)
	if err != nil {
		return utils.BadRequestResponse(c, "ride id must be a valid UUID")
	}
	riderID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var body struct {
		Reason string `json:"reason"`
	}
	_ = c.Bind(&body)

	ride, err := h.rideUC.CancelRideByRider(c.Request().Context(), rideID, riderID, body.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride cancelled", ride)
}

// AddTip adds a tip to a completed ride
func (h *RideHandler) AddTip(c echo.Context) error {
	rideID, err := rideIDFromPath(c)
	if err != nil {
		return utils.BadRequestResponse(c, "ride id must be a valid UUID")
	}
	riderID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var body struct {
		Amount float64 `json:"amount"`
	}
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	ride, err := h.rideUC.AddTip(c.Request().Context(), rideID, riderID, body.Amount)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Tip added", ride)
}

// RateDriver stores the rider's rating of the driver
func (h *RideHandler) RateDriver(c echo.Context) error {
	rideID, err := rideIDFromPath(c)
	if err != nil {
		return utils.BadRequestResponse(c, "ride id must be a valid UUID")
	}
	riderID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var body struct {
		Rating int `json:"rating"`
	}
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.rideUC.RateDriver(c.Request().Context(), rideID, riderID, body.Rating); err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Rating saved", nil)
}

// AddStop appends a waypoint to an active ride
func (h *RideHandler) AddStop(c echo.Context) error {
	rideID, err := rideIDFromPath(c)
	if err != nil {
		return utils.BadRequestResponse(c, "ride id must be a valid UUID")
	}
	riderID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var body struct {
		Address string  `json:"address"`
		Lat     float64 `json:"lat"`
		Lng     float64 `json:"lng"`
	}
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	ride, err := h.rideUC.AddStop(c.Request().Context(), rideID, riderID, models.RideStop{
		Address: body.Address,
		Lat:     body.Lat,
		Lng:     body.Lng,
	})
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Stop added", ride)
}

// CompleteStop stamps a waypoint as reached
func (h *RideHandler) CompleteStop(c echo.Context) error {
	stopID, err := uuid.Parse(c.Param("stopID"))
	if err != nil {
		return utils.BadRequestResponse(c, "stop id must be a valid UUID")
	}

	return h.driverAction(c, func(driver *models.Driver, rideID uuid.UUID) (*models.Ride, error) {
		return h.rideUC.CompleteStop(c.Request().Context(), rideID, driver.ID, stopID)
	})
}

// ShareTrip issues a share token for a live trip
func (h *RideHandler) ShareTrip(c echo.Context) error {
	rideID, err := rideIDFromPath(c)
	if err != nil {
		return utils.BadRequestResponse(c, "ride id must be a valid UUID")
	}
	riderID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var body struct {
		Contacts []models.TripShareContact `json:"contacts"`
	}
	_ = c.Bind(&body)

	token, err := h.rideUC.ShareTrip(c.Request().Context(), rideID, riderID, body.Contacts)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip shared", echo.Map{"token": token})
}

// SharedTrip resolves a public share token
func (h *RideHandler) SharedTrip(c echo.Context) error {
	view, err := h.rideUC.SharedTrip(c.Request().Context(), c.Param("token"))
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Shared trip", view)
}
