package constants

// Redis key formats
const (
	// GeoHash set of all online driver locations
	KeyDriverGeo = "driver:geo"

	KeyDriverLocation = "driver:location:%s" // Format: driver:location:{driver_id}
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldTimestamp = "ts"
)
