package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/spinr-app/dispatch/internal/pkg/logger"
	"github.com/spinr-app/dispatch/internal/pkg/models"
	"github.com/spinr-app/dispatch/internal/utils"
	"github.com/spinr-app/dispatch/services/fares"
)

// Default rate table, used whenever an area or vehicle type has no
// active fare config. Estimation must always produce a usable number.
const (
	DefaultBaseFare      = 3.50
	DefaultPerKmRate     = 1.50
	DefaultPerMinuteRate = 0.25
	DefaultBookingFee    = 2.00
	DefaultMinimumFare   = 8.00
	DefaultGSTRate       = 5.0
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ResolveServiceArea returns the first active service area containing the
// point, or nil when the point is outside every polygon
func (uc *FareUC) ResolveServiceArea(ctx context.Context, point models.LatLng) (*models.ServiceArea, error) {
	areas, err := uc.fareRepo.ActiveServiceAreas(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load service areas: %w", err)
	}

	for _, area := range areas {
		if utils.PointInPolygon(point, area.Polygon) {
			return area, nil
		}
	}
	return nil, nil
}

// CheckAirportFee reports the surcharge of the first airport zone that
// contains either endpoint of the trip
func (uc *FareUC) CheckAirportFee(ctx context.Context, pickup, dropoff models.LatLng) (*models.AirportFeeCheck, error) {
	zones, err := uc.fareRepo.AirportAreas(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load airport zones: %w", err)
	}

	for _, zone := range zones {
		pickupIn := utils.PointInPolygon(pickup, zone.Polygon)
		dropoffIn := utils.PointInPolygon(dropoff, zone.Polygon)
		if pickupIn || dropoffIn {
			return &models.AirportFeeCheck{
				AirportFee:      zone.AirportFee,
				AirportZoneName: zone.Name,
				IsPickup:        pickupIn,
				IsDropoff:       dropoffIn,
			}, nil
		}
	}
	return &models.AirportFeeCheck{}, nil
}

// effectiveConfig resolves the fare config for an area and vehicle type,
// falling back to the default rate table
func (uc *FareUC) effectiveConfig(ctx context.Context, area *models.ServiceArea, vehicleTypeID uuid.UUID) *models.FareConfig {
	defaults := &models.FareConfig{
		BaseFare:      DefaultBaseFare,
		PerKmRate:     DefaultPerKmRate,
		PerMinuteRate: DefaultPerMinuteRate,
		MinimumFare:   DefaultMinimumFare,
		BookingFee:    DefaultBookingFee,
	}
	if area == nil {
		return defaults
	}

	cfg, err := uc.fareRepo.FareConfig(ctx, area.ID, vehicleTypeID)
	if err != nil {
		logger.Warn("falling back to default fare config",
			logger.String("service_area", area.Name),
			logger.Err(err))
		return defaults
	}
	if cfg == nil {
		return defaults
	}
	return cfg
}

// EstimateFare computes a full fare breakdown. The order is fixed: base
// plus distance and time fares, surge on the distance+time component,
// booking fee, minimum-fare floor, area fees, then tax on subtotal+fees.
func (uc *FareUC) EstimateFare(ctx context.Context, req fares.EstimateRequest) (*models.FareEstimate, error) {
	area, err := uc.ResolveServiceArea(ctx, req.Pickup)
	if err != nil {
		return nil, err
	}

	cfg := uc.effectiveConfig(ctx, area, req.VehicleTypeID)

	baseFare := round2(cfg.BaseFare)
	distanceFare := round2(req.DistanceKm * cfg.PerKmRate)
	timeFare := round2(req.DurationMinutes * cfg.PerMinuteRate)

	surge := 1.0
	variable := round2(distanceFare + timeFare)
	if area != nil && area.SurgeActive && area.SurgeMultiplier > 1 {
		surge = area.SurgeMultiplier
		variable = round2(variable * surge)
	}

	subtotal := round2(baseFare + variable + cfg.BookingFee)
	if subtotal < cfg.MinimumFare {
		subtotal = round2(cfg.MinimumFare)
	}

	lineItems, feesTotal, err := uc.evaluateAreaFees(ctx, area, req, subtotal)
	if err != nil {
		return nil, err
	}

	taxBreakdown, taxAmount := computeTaxes(area, round2(subtotal+feesTotal))

	estimate := &models.FareEstimate{
		BaseFare:        baseFare,
		DistanceFare:    distanceFare,
		TimeFare:        timeFare,
		BookingFee:      round2(cfg.BookingFee),
		SurgeMultiplier: surge,
		Subtotal:        subtotal,
		AreaFees:        lineItems,
		AreaFeesTotal:   feesTotal,
		TaxAmount:       taxAmount,
		TaxBreakdown:    taxBreakdown,
		GrandTotal:      round2(subtotal + feesTotal + taxAmount),
	}
	if area != nil {
		estimate.ServiceAreaName = area.Name
	}
	return estimate, nil
}

// evaluateAreaFees collects the airport surcharge and every applicable
// conditional fee of the matched area
func (uc *FareUC) evaluateAreaFees(ctx context.Context, area *models.ServiceArea, req fares.EstimateRequest, subtotal float64) ([]models.FareLineItem, float64, error) {
	var items []models.FareLineItem
	total := 0.0

	airport, err := uc.CheckAirportFee(ctx, req.Pickup, req.Dropoff)
	if err != nil {
		return nil, 0, err
	}
	if airport.AirportFee > 0 {
		value := round2(airport.AirportFee)
		items = append(items, models.FareLineItem{
			Name:            airport.AirportZoneName,
			Type:            models.FeeTypeAirport,
			CalcMode:        models.CalcModeFlat,
			Amount:          airport.AirportFee,
			CalculatedValue: value,
		})
		total += value
	}

	if area != nil {
		fees, err := uc.fareRepo.ActiveAreaFees(ctx, area.ID)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to load area fees: %w", err)
		}
		for _, fee := range fees {
			if !feeApplies(fee, req, airport) {
				continue
			}
			value := feeValue(fee, req.DistanceKm, subtotal)
			items = append(items, models.FareLineItem{
				Name:            fee.FeeName,
				Type:            fee.FeeType,
				CalcMode:        fee.CalcMode,
				Amount:          fee.Amount,
				CalculatedValue: value,
			})
			total += value
		}
	}

	return items, round2(total), nil
}

// feeApplies evaluates the conditions attached to an area fee
func feeApplies(fee *models.AreaFee, req fares.EstimateRequest, airport *models.AirportFeeCheck) bool {
	switch fee.FeeType {
	case models.FeeTypeNight:
		return hourInWindow(req.At.Hour(), fee.StartHour, fee.EndHour)
	case models.FeeTypeAirport:
		return airport.IsPickup || airport.IsDropoff
	default:
		return true
	}
}

// hourInWindow handles windows that wrap midnight: start 23 end 5 is
// active at hour 23 and hour 0, not at hour 12
func hourInWindow(hour, start, end int) bool {
	if start > end {
		return hour >= start || hour < end
	}
	return hour >= start && hour < end
}

func feeValue(fee *models.AreaFee, distanceKm, subtotal float64) float64 {
	switch fee.CalcMode {
	case models.CalcModePerKm:
		return round2(fee.Amount * distanceKm)
	case models.CalcModePercentage:
		return round2(subtotal * fee.Amount / 100)
	default:
		return round2(fee.Amount)
	}
}

// computeTaxes applies HST exclusively when enabled, otherwise GST and
// PST independently. Outside any area, GST applies at the default rate.
func computeTaxes(area *models.ServiceArea, taxable float64) (map[string]models.TaxLine, float64) {
	breakdown := make(map[string]models.TaxLine)
	total := 0.0

	gstEnabled, gstRate := true, DefaultGSTRate
	pstEnabled, pstRate := false, 0.0
	hstEnabled, hstRate := false, 0.0
	if area != nil {
		gstEnabled, gstRate = area.GSTEnabled, area.GSTRate
		pstEnabled, pstRate = area.PSTEnabled, area.PSTRate
		hstEnabled, hstRate = area.HSTEnabled, area.HSTRate
	}

	if hstEnabled {
		amount := round2(taxable * hstRate / 100)
		breakdown["hst"] = models.TaxLine{Rate: hstRate, Amount: amount}
		return breakdown, amount
	}

	if gstEnabled {
		amount := round2(taxable * gstRate / 100)
		breakdown["gst"] = models.TaxLine{Rate: gstRate, Amount: amount}
		total += amount
	}
	if pstEnabled {
		amount := round2(taxable * pstRate / 100)
		breakdown["pst"] = models.TaxLine{Rate: pstRate, Amount: amount}
		total += amount
	}
	return breakdown, round2(total)
}

// VehicleFares lists every active vehicle type with its effective rates
// at the pickup point
func (uc *FareUC) VehicleFares(ctx context.Context, pickup models.LatLng) ([]*models.VehicleFare, string, error) {
	area, err := uc.ResolveServiceArea(ctx, pickup)
	if err != nil {
		return nil, "", err
	}

	types, err := uc.fareRepo.VehicleTypes(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load vehicle types: %w", err)
	}

	areaName := ""
	if area != nil {
		areaName = area.Name
	}

	result := make([]*models.VehicleFare, 0, len(types))
	for _, vt := range types {
		cfg := uc.effectiveConfig(ctx, area, vt.ID)
		result = append(result, &models.VehicleFare{
			VehicleType:   vt,
			BaseFare:      cfg.BaseFare,
			PerKmRate:     cfg.PerKmRate,
			PerMinuteRate: cfg.PerMinuteRate,
			MinimumFare:   cfg.MinimumFare,
			BookingFee:    cfg.BookingFee,
		})
	}
	return result, areaName, nil
}
