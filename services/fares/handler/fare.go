package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/spinr-app/dispatch/internal/pkg/models"
	"github.com/spinr-app/dispatch/internal/utils"
	"github.com/spinr-app/dispatch/services/fares"
)

// FareHandler handles HTTP requests for fare operations
type FareHandler struct {
	fareUC fares.FareUC
}

// NewFareHandler creates a new fare handler
func NewFareHandler(fareUC fares.FareUC) *FareHandler {
	return &FareHandler{
		fareUC: fareUC,
	}
}

// RegisterRoutes registers the fare handler routes
func (h *FareHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/fares", h.GetVehicleFares)
	e.POST("/api/fares/estimate", h.EstimateFare)
	e.GET("/api/rides/airport-fee", h.CheckAirportFee)
}

func parseCoord(c echo.Context, name string) (float64, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// GetVehicleFares returns effective per-vehicle-type rates at a pickup point
func (h *FareHandler) GetVehicleFares(c echo.Context) error {
	lat, okLat := parseCoord(c, "lat")
	lng, okLng := parseCoord(c, "lng")
	if !okLat || !okLng {
		return utils.BadRequestResponse(c, "lat and lng query parameters are required")
	}

	vehicleFares, areaName, err := h.fareUC.VehicleFares(c.Request().Context(), models.LatLng{Lat: lat, Lng: lng})
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to load fares")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Fares retrieved", echo.Map{
		"service_area": areaName,
		"fares":        vehicleFares,
	})
}

// EstimateFareRequest is the request structure for fare estimation
type EstimateFareRequest struct {
	PickupLat     float64 `json:"pickup_lat"`
	PickupLng     float64 `json:"pickup_lng"`
	DropoffLat    float64 `json:"dropoff_lat"`
	DropoffLng    float64 `json:"dropoff_lng"`
	VehicleTypeID string  `json:"vehicle_type_id"`
}

// EstimateFare computes a full fare breakdown for a prospective trip
func (h *FareHandler) EstimateFare(c echo.Context) error {
	var req EstimateFareRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	vehicleTypeID, err := uuid.Parse(req.VehicleTypeID)
	if err != nil {
		return utils.BadRequestResponse(c, "vehicle_type_id must be a valid UUID")
	}

	pickup := models.LatLng{Lat: req.PickupLat, Lng: req.PickupLng}
	dropoff := models.LatLng{Lat: req.DropoffLat, Lng: req.DropoffLng}
	distanceKm := utils.CalculateDistance(pickup, dropoff)

	estimate, err := h.fareUC.EstimateFare(c.Request().Context(), fares.EstimateRequest{
		Pickup:          pickup,
		Dropoff:         dropoff,
		DistanceKm:      distanceKm,
		DurationMinutes: utils.EstimateDurationMinutes(distanceKm),
		VehicleTypeID:   vehicleTypeID,
		At:              time.Now(),
	})
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to estimate fare")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Fare estimated", estimate)
}

// CheckAirportFee reports whether a trip touches an airport zone
func (h *FareHandler) CheckAirportFee(c echo.Context) error {
	pickupLat, ok1 := parseCoord(c, "pickup_lat")
	pickupLng, ok2 := parseCoord(c, "pickup_lng")
	dropoffLat, ok3 := parseCoord(c, "dropoff_lat")
	dropoffLng, ok4 := parseCoord(c, "dropoff_lng")
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return utils.BadRequestResponse(c, "pickup and dropoff coordinates are required")
	}

	check, err := h.fareUC.CheckAirportFee(c.Request().Context(),
		models.LatLng{Lat: pickupLat, Lng: pickupLng},
		models.LatLng{Lat: dropoffLat, Lng: dropoffLng})
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to check airport fee")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Airport fee checked", check)
}
