package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/spinr-app/dispatch/internal/pkg/models"
)

// BreadcrumbGeohashPrecision is the cell size used to tag persisted GPS
// samples. Precision 7 cells are roughly 150m across.
const BreadcrumbGeohashPrecision = 7

// CalculateDistance calculates the distance between two points in
// kilometers using the Haversine formula
func CalculateDistance(p1, p2 models.LatLng) float64 {
	// Earth's radius in kilometers
	const earthRadius = 6371.0

	lat1 := p1.Lat * math.Pi / 180.0
	lon1 := p1.Lng * math.Pi / 180.0
	lat2 := p2.Lat * math.Pi / 180.0
	lon2 := p2.Lng * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// EstimateDurationMinutes predicts trip duration from distance assuming an
// average urban speed of 30 km/h, plus a fixed 5 minute buffer
func EstimateDurationMinutes(distanceKm float64) float64 {
	return distanceKm/30.0*60.0 + 5.0
}

// PointInPolygon reports whether the point lies inside the polygon using
// ray casting. Polygons with fewer than three vertices contain nothing.
func PointInPolygon(point models.LatLng, polygon []models.LatLng) bool {
	n := len(polygon)
	if n < 3 {
		return false
	}

	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		pi := polygon[i]
		pj := polygon[j]
		if (pi.Lng > point.Lng) != (pj.Lng > point.Lng) {
			atLat := (pj.Lat-pi.Lat)*(point.Lng-pi.Lng)/(pj.Lng-pi.Lng) + pi.Lat
			if point.Lat < atLat {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// EncodeLocation converts a position to a geohash cell string
func EncodeLocation(lat, lng float64, precision uint) string {
	return geohash.EncodeWithPrecision(lat, lng, precision)
}

// DecodeGeohash converts a geohash string to latitude and longitude
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}
