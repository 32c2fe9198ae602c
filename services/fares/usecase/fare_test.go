package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spinr-app/dispatch/internal/pkg/models"
	"github.com/spinr-app/dispatch/services/fares"
	"github.com/spinr-app/dispatch/services/fares/mocks"
)

var downtownPolygon = []models.LatLng{
	{Lat: 49.0, Lng: -123.5},
	{Lat: 49.0, Lng: -122.5},
	{Lat: 49.5, Lng: -122.5},
	{Lat: 49.5, Lng: -123.5},
}

func insidePoint() models.LatLng  { return models.LatLng{Lat: 49.25, Lng: -123.0} }
func outsidePoint() models.LatLng { return models.LatLng{Lat: 50.5, Lng: -123.0} }

func standardConfig(areaID, vehicleTypeID uuid.UUID) *models.FareConfig {
	return &models.FareConfig{
		ID:            uuid.New(),
		ServiceAreaID: areaID,
		VehicleTypeID: vehicleTypeID,
		BaseFare:      3.50,
		PerKmRate:     1.50,
		PerMinuteRate: 0.25,
		MinimumFare:   8.00,
		BookingFee:    2.00,
		IsActive:      true,
	}
}

func TestEstimateFareAirportScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockFareRepo(ctrl)
	uc := NewFareUC(repo)

	vehicleTypeID := uuid.New()
	area := &models.ServiceArea{
		ID:         uuid.New(),
		Name:       "Airport Zone",
		Polygon:    downtownPolygon,
		IsActive:   true,
		IsAirport:  true,
		AirportFee: 5.00,
		GSTEnabled: true,
		GSTRate:    5.0,
	}

	repo.EXPECT().ActiveServiceAreas(gomock.Any()).Return([]*models.ServiceArea{area}, nil)
	repo.EXPECT().FareConfig(gomock.Any(), area.ID, vehicleTypeID).Return(standardConfig(area.ID, vehicleTypeID), nil)
	repo.EXPECT().AirportAreas(gomock.Any()).Return([]*models.ServiceArea{area}, nil)
	repo.EXPECT().ActiveAreaFees(gomock.Any(), area.ID).Return(nil, nil)

	// base 3.50 + 7km*1.50 + 16min*0.25 + booking 2.00 = subtotal 20.00
	estimate, err := uc.EstimateFare(context.Background(), fares.EstimateRequest{
		Pickup:          insidePoint(),
		Dropoff:         outsidePoint(),
		DistanceKm:      7.0,
		DurationMinutes: 16.0,
		VehicleTypeID:   vehicleTypeID,
		At:              time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.InDelta(t, 20.00, estimate.Subtotal, 1e-9)
	assert.InDelta(t, 5.00, estimate.AreaFeesTotal, 1e-9)
	assert.InDelta(t, 1.25, estimate.TaxAmount, 1e-9)
	assert.InDelta(t, 26.25, estimate.GrandTotal, 1e-9)
	assert.Equal(t, "Airport Zone", estimate.ServiceAreaName)
	require.Contains(t, estimate.TaxBreakdown, "gst")
	assert.InDelta(t, 1.25, estimate.TaxBreakdown["gst"].Amount, 1e-9)
}

func TestEstimateFareGrandTotalIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockFareRepo(ctrl)
	uc := NewFareUC(repo)

	vehicleTypeID := uuid.New()
	area := &models.ServiceArea{
		ID:         uuid.New(),
		Name:       "Downtown",
		Polygon:    downtownPolygon,
		IsActive:   true,
		GSTEnabled: true,
		GSTRate:    5.0,
		PSTEnabled: true,
		PSTRate:    7.0,
	}

	repo.EXPECT().ActiveServiceAreas(gomock.Any()).Return([]*models.ServiceArea{area}, nil).Times(2)
	repo.EXPECT().FareConfig(gomock.Any(), area.ID, vehicleTypeID).Return(standardConfig(area.ID, vehicleTypeID), nil).Times(2)
	repo.EXPECT().AirportAreas(gomock.Any()).Return(nil, nil).Times(2)
	repo.EXPECT().ActiveAreaFees(gomock.Any(), area.ID).Return(nil, nil).Times(2)

	req := fares.EstimateRequest{
		Pickup:          insidePoint(),
		Dropoff:         outsidePoint(),
		DistanceKm:      12.345,
		DurationMinutes: 29.7,
		VehicleTypeID:   vehicleTypeID,
		At:              time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
	}

	first, err := uc.EstimateFare(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.EstimateFare(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.InDelta(t, first.Subtotal+first.AreaFeesTotal+first.TaxAmount, first.GrandTotal, 1e-9)
}

func TestEstimateFareNightWindowWrapsMidnight(t *testing.T) {
	nightFee := &models.AreaFee{
		FeeName:   "Night Surcharge",
		FeeType:   models.FeeTypeNight,
		CalcMode:  models.CalcModeFlat,
		Amount:    2.00,
		StartHour: 23,
		EndHour:   5,
		IsActive:  true,
	}

	cases := []struct {
		hour   int
		active bool
	}{
		{0, true},
		{4, true},
		{23, true},
		{5, false},
		{12, false},
		{22, false},
	}

	for _, tc := range cases {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockFareRepo(ctrl)
		uc := NewFareUC(repo)

		vehicleTypeID := uuid.New()
		area := &models.ServiceArea{
			ID:         uuid.New(),
			Name:       "Downtown",
			Polygon:    downtownPolygon,
			IsActive:   true,
			GSTEnabled: true,
			GSTRate:    5.0,
		}
		nightFee.ServiceAreaID = area.ID

		repo.EXPECT().ActiveServiceAreas(gomock.Any()).Return([]*models.ServiceArea{area}, nil)
		repo.EXPECT().FareConfig(gomock.Any(), area.ID, vehicleTypeID).Return(standardConfig(area.ID, vehicleTypeID), nil)
		repo.EXPECT().AirportAreas(gomock.Any()).Return(nil, nil)
		repo.EXPECT().ActiveAreaFees(gomock.Any(), area.ID).Return([]*models.AreaFee{nightFee}, nil)

		estimate, err := uc.EstimateFare(context.Background(), fares.EstimateRequest{
			Pickup:          insidePoint(),
			Dropoff:         outsidePoint(),
			DistanceKm:      7.0,
			DurationMinutes: 16.0,
			VehicleTypeID:   vehicleTypeID,
			At:              time.Date(2026, 3, 10, tc.hour, 30, 0, 0, time.UTC),
		})
		require.NoError(t, err)

		if tc.active {
			assert.InDelta(t, 2.00, estimate.AreaFeesTotal, 1e-9, "hour %d", tc.hour)
		} else {
			assert.InDelta(t, 0.00, estimate.AreaFeesTotal, 1e-9, "hour %d", tc.hour)
		}
		ctrl.Finish()
	}
}

func TestEstimateFareHSTExclusive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockFareRepo(ctrl)
	uc := NewFareUC(repo)

	vehicleTypeID := uuid.New()
	area := &models.ServiceArea{
		ID:         uuid.New(),
		Name:       "Toronto",
		Polygon:    downtownPolygon,
		IsActive:   true,
		GSTEnabled: true,
		GSTRate:    5.0,
		PSTEnabled: true,
		PSTRate:    8.0,
		HSTEnabled: true,
		HSTRate:    13.0,
	}

	repo.EXPECT().ActiveServiceAreas(gomock.Any()).Return([]*models.ServiceArea{area}, nil)
	repo.EXPECT().FareConfig(gomock.Any(), area.ID, vehicleTypeID).Return(standardConfig(area.ID, vehicleTypeID), nil)
	repo.EXPECT().AirportAreas(gomock.Any()).Return(nil, nil)
	repo.EXPECT().ActiveAreaFees(gomock.Any(), area.ID).Return(nil, nil)

	estimate, err := uc.EstimateFare(context.Background(), fares.EstimateRequest{
		Pickup:          insidePoint(),
		Dropoff:         outsidePoint(),
		DistanceKm:      7.0,
		DurationMinutes: 16.0,
		VehicleTypeID:   vehicleTypeID,
		At:              time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// HST replaces GST and PST entirely
	require.Contains(t, estimate.TaxBreakdown, "hst")
	assert.NotContains(t, estimate.TaxBreakdown, "gst")
	assert.NotContains(t, estimate.TaxBreakdown, "pst")
	assert.InDelta(t, 2.60, estimate.TaxAmount, 1e-9)
}

func TestEstimateFareMinimumFloor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockFareRepo(ctrl)
	uc := NewFareUC(repo)

	vehicleTypeID := uuid.New()
	area := &models.ServiceArea{
		ID:         uuid.New(),
		Name:       "Downtown",
		Polygon:    downtownPolygon,
		IsActive:   true,
		GSTEnabled: true,
		GSTRate:    5.0,
	}

	repo.EXPECT().ActiveServiceAreas(gomock.Any()).Return([]*models.ServiceArea{area}, nil)
	repo.EXPECT().FareConfig(gomock.Any(), area.ID, vehicleTypeID).Return(standardConfig(area.ID, vehicleTypeID), nil)
	repo.EXPECT().AirportAreas(gomock.Any()).Return(nil, nil)
	repo.EXPECT().ActiveAreaFees(gomock.Any(), area.ID).Return(nil, nil)

	// 0.5km trip comes to 3.50 + 0.75 + 0.25 + 2.00 = 6.50, under the 8.00 minimum
	estimate, err := uc.EstimateFare(context.Background(), fares.EstimateRequest{
		Pickup:          insidePoint(),
		Dropoff:         insidePoint(),
		DistanceKm:      0.5,
		DurationMinutes: 1.0,
		VehicleTypeID:   vehicleTypeID,
		At:              time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.InDelta(t, 8.00, estimate.Subtotal, 1e-9)
}

func TestEstimateFareSurgeOnVariableComponentOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockFareRepo(ctrl)
	uc := NewFareUC(repo)

	vehicleTypeID := uuid.New()
	area := &models.ServiceArea{
		ID:              uuid.New(),
		Name:            "Downtown",
		Polygon:         downtownPolygon,
		IsActive:        true,
		SurgeActive:     true,
		SurgeMultiplier: 2.0,
		GSTEnabled:      true,
		GSTRate:         5.0,
	}

	repo.EXPECT().ActiveServiceAreas(gomock.Any()).Return([]*models.ServiceArea{area}, nil)
	repo.EXPECT().FareConfig(gomock.Any(), area.ID, vehicleTypeID).Return(standardConfig(area.ID, vehicleTypeID), nil)
	repo.EXPECT().AirportAreas(gomock.Any()).Return(nil, nil)
	repo.EXPECT().ActiveAreaFees(gomock.Any(), area.ID).Return(nil, nil)

	// distance 10.50 + time 4.00 doubled to 29.00; base and booking untouched
	estimate, err := uc.EstimateFare(context.Background(), fares.EstimateRequest{
		Pickup:          insidePoint(),
		Dropoff:         outsidePoint(),
		DistanceKm:      7.0,
		DurationMinutes: 16.0,
		VehicleTypeID:   vehicleTypeID,
		At:              time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, 2.0, estimate.SurgeMultiplier)
	assert.InDelta(t, 34.50, estimate.Subtotal, 1e-9)
}

func TestEstimateFareOutsideAnyAreaUsesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockFareRepo(ctrl)
	uc := NewFareUC(repo)

	repo.EXPECT().ActiveServiceAreas(gomock.Any()).Return(nil, nil)
	repo.EXPECT().AirportAreas(gomock.Any()).Return(nil, nil)

	estimate, err := uc.EstimateFare(context.Background(), fares.EstimateRequest{
		Pickup:          outsidePoint(),
		Dropoff:         outsidePoint(),
		DistanceKm:      7.0,
		DurationMinutes: 16.0,
		VehicleTypeID:   uuid.New(),
		At:              time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// default rates and default-on GST still produce a usable number
	assert.InDelta(t, 20.00, estimate.Subtotal, 1e-9)
	assert.InDelta(t, 1.00, estimate.TaxAmount, 1e-9)
	assert.InDelta(t, 21.00, estimate.GrandTotal, 1e-9)
	assert.Empty(t, estimate.ServiceAreaName)
}

func TestEstimateFarePerKmAndPercentageFees(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockFareRepo(ctrl)
	uc := NewFareUC(repo)

	vehicleTypeID := uuid.New()
	area := &models.ServiceArea{
		ID:         uuid.New(),
		Name:       "Downtown",
		Polygon:    downtownPolygon,
		IsActive:   true,
		GSTEnabled: true,
		GSTRate:    5.0,
	}

	fees := []*models.AreaFee{
		{FeeName: "Toll", FeeType: models.FeeTypeToll, CalcMode: models.CalcModePerKm, Amount: 0.10, IsActive: true},
		{FeeName: "Event", FeeType: models.FeeTypeEvent, CalcMode: models.CalcModePercentage, Amount: 10.0, IsActive: true},
	}

	repo.EXPECT().ActiveServiceAreas(gomock.Any()).Return([]*models.ServiceArea{area}, nil)
	repo.EXPECT().FareConfig(gomock.Any(), area.ID, vehicleTypeID).Return(standardConfig(area.ID, vehicleTypeID), nil)
	repo.EXPECT().AirportAreas(gomock.Any()).Return(nil, nil)
	repo.EXPECT().ActiveAreaFees(gomock.Any(), area.ID).Return(fees, nil)

	estimate, err := uc.EstimateFare(context.Background(), fares.EstimateRequest{
		Pickup:          insidePoint(),
		Dropoff:         outsidePoint(),
		DistanceKm:      7.0,
		DurationMinutes: 16.0,
		VehicleTypeID:   vehicleTypeID,
		At:              time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// subtotal 20.00: per-km toll 0.70, percentage event fee 2.00
	require.Len(t, estimate.AreaFees, 2)
	assert.InDelta(t, 0.70, estimate.AreaFees[0].CalculatedValue, 1e-9)
	assert.InDelta(t, 2.00, estimate.AreaFees[1].CalculatedValue, 1e-9)
	assert.InDelta(t, 2.70, estimate.AreaFeesTotal, 1e-9)
}

func TestVehicleFaresFallsBackPerType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockFareRepo(ctrl)
	uc := NewFareUC(repo)

	area := &models.ServiceArea{
		ID:       uuid.New(),
		Name:     "Downtown",
		Polygon:  downtownPolygon,
		IsActive: true,
	}
	sedan := &models.VehicleType{ID: uuid.New(), Name: "Sedan", Seats: 4, IsActive: true}
	suv := &models.VehicleType{ID: uuid.New(), Name: "SUV", Seats: 6, IsActive: true}

	configured := standardConfig(area.ID, sedan.ID)
	configured.BaseFare = 4.25

	repo.EXPECT().ActiveServiceAreas(gomock.Any()).Return([]*models.ServiceArea{area}, nil)
	repo.EXPECT().VehicleTypes(gomock.Any()).Return([]*models.VehicleType{sedan, suv}, nil)
	repo.EXPECT().FareConfig(gomock.Any(), area.ID, sedan.ID).Return(configured, nil)
	repo.EXPECT().FareConfig(gomock.Any(), area.ID, suv.ID).Return(nil, nil)

	result, areaName, err := uc.VehicleFares(context.Background(), insidePoint())
	require.NoError(t, err)

	assert.Equal(t, "Downtown", areaName)
	require.Len(t, result, 2)
	assert.InDelta(t, 4.25, result[0].BaseFare, 1e-9)
	assert.InDelta(t, DefaultBaseFare, result[1].BaseFare, 1e-9)
}

func TestCheckAirportFeeFirstMatchingZone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockFareRepo(ctrl)
	uc := NewFareUC(repo)

	first := &models.ServiceArea{
		ID: uuid.New(), Name: "YVR", Polygon: downtownPolygon,
		IsAirport: true, AirportFee: 5.00,
	}
	second := &models.ServiceArea{
		ID: uuid.New(), Name: "Other Airport", Polygon: downtownPolygon,
		IsAirport: true, AirportFee: 9.00,
	}

	repo.EXPECT().AirportAreas(gomock.Any()).Return([]*models.ServiceArea{first, second}, nil)

	check, err := uc.CheckAirportFee(context.Background(), insidePoint(), outsidePoint())
	require.NoError(t, err)

	assert.Equal(t, "YVR", check.AirportZoneName)
	assert.InDelta(t, 5.00, check.AirportFee, 1e-9)
	assert.True(t, check.IsPickup)
	assert.False(t, check.IsDropoff)
}
