package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spinr-app/dispatch/internal/pkg/models"
)

func TestCalculateDistance(t *testing.T) {
	vancouver := models.LatLng{Lat: 49.2827, Lng: -123.1207}
	richmond := models.LatLng{Lat: 49.1666, Lng: -123.1336}

	d := CalculateDistance(vancouver, richmond)

	// roughly 13 km between downtown Vancouver and Richmond
	assert.InDelta(t, 13.0, d, 1.0)
}

func TestCalculateDistanceZero(t *testing.T) {
	p := models.LatLng{Lat: 49.2827, Lng: -123.1207}
	assert.Equal(t, 0.0, CalculateDistance(p, p))
}

func TestCalculateDistanceSymmetric(t *testing.T) {
	a := models.LatLng{Lat: 49.28, Lng: -123.12}
	b := models.LatLng{Lat: 49.19, Lng: -122.85}
	assert.InDelta(t, CalculateDistance(a, b), CalculateDistance(b, a), 1e-9)
}

func TestEstimateDurationMinutes(t *testing.T) {
	// 15 km at 30 km/h is 30 minutes, plus the 5 minute buffer
	assert.InDelta(t, 35.0, EstimateDurationMinutes(15.0), 1e-9)
	assert.InDelta(t, 5.0, EstimateDurationMinutes(0.0), 1e-9)
}

func TestPointInPolygon(t *testing.T) {
	square := []models.LatLng{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 10},
		{Lat: 10, Lng: 10},
		{Lat: 10, Lng: 0},
	}

	assert.True(t, PointInPolygon(models.LatLng{Lat: 5, Lng: 5}, square))
	assert.False(t, PointInPolygon(models.LatLng{Lat: 15, Lng: 5}, square))
	assert.False(t, PointInPolygon(models.LatLng{Lat: 5, Lng: -1}, square))
}

func TestPointInPolygonVertexOrderInvariant(t *testing.T) {
	square := []models.LatLng{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 10},
		{Lat: 10, Lng: 10},
		{Lat: 10, Lng: 0},
	}
	inside := models.LatLng{Lat: 2.5, Lng: 7.5}

	// rotating the vertex list must not change containment
	for shift := 0; shift < len(square); shift++ {
		rotated := append(append([]models.LatLng{}, square[shift:]...), square[:shift]...)
		assert.True(t, PointInPolygon(inside, rotated), "shift %d", shift)
	}

	// reversing the winding must not change containment either
	reversed := make([]models.LatLng, len(square))
	for i, p := range square {
		reversed[len(square)-1-i] = p
	}
	assert.True(t, PointInPolygon(inside, reversed))
}

func TestPointInPolygonDegenerate(t *testing.T) {
	assert.False(t, PointInPolygon(models.LatLng{Lat: 1, Lng: 1}, nil))
	assert.False(t, PointInPolygon(models.LatLng{Lat: 1, Lng: 1}, []models.LatLng{
		{Lat: 0, Lng: 0},
		{Lat: 2, Lng: 2},
	}))
}

func TestPointInPolygonConcave(t *testing.T) {
	// an L shape; the notch is outside
	lShape := []models.LatLng{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 10},
		{Lat: 4, Lng: 10},
		{Lat: 4, Lng: 4},
		{Lat: 10, Lng: 4},
		{Lat: 10, Lng: 0},
	}

	assert.True(t, PointInPolygon(models.LatLng{Lat: 2, Lng: 8}, lShape))
	assert.True(t, PointInPolygon(models.LatLng{Lat: 8, Lng: 2}, lShape))
	assert.False(t, PointInPolygon(models.LatLng{Lat: 8, Lng: 8}, lShape))
}

func TestEncodeDecodeGeohash(t *testing.T) {
	hash := EncodeLocation(49.2827, -123.1207, BreadcrumbGeohashPrecision)
	require.Len(t, hash, BreadcrumbGeohashPrecision)

	lat, lng := DecodeGeohash(hash)
	assert.InDelta(t, 49.2827, lat, 0.01)
	assert.InDelta(t, -123.1207, lng, 0.01)
}

func TestGeneratePickupOTPFormat(t *testing.T) {
	for i := 0; i < 50; i++ {
		otp, err := GeneratePickupOTP()
		require.NoError(t, err)
		require.Len(t, otp, 4)
		for _, ch := range otp {
			assert.True(t, ch >= '0' && ch <= '9')
		}
	}
}
