package models

// FareLineItem is one evaluated area fee on an estimate
type FareLineItem struct {
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	CalcMode        string  `json:"calc_mode"`
	Amount          float64 `json:"amount"`
	CalculatedValue float64 `json:"calculated_value"`
}

// TaxLine is one applied tax on an estimate
type TaxLine struct {
	Rate   float64 `json:"rate"`
	Amount float64 `json:"amount"`
}

// FareEstimate is the full fare breakdown for a prospective ride
type FareEstimate struct {
	BaseFare        float64            `json:"base_fare"`
	DistanceFare    float64            `json:"distance_fare"`
	TimeFare        float64            `json:"time_fare"`
	BookingFee      float64            `json:"booking_fee"`
	SurgeMultiplier float64            `json:"surge_multiplier"`
	Subtotal        float64            `json:"subtotal"`
	AreaFees        []FareLineItem     `json:"area_fees"`
	AreaFeesTotal   float64            `json:"area_fees_total"`
	TaxAmount       float64            `json:"tax_amount"`
	TaxBreakdown    map[string]TaxLine `json:"tax_breakdown"`
	GrandTotal      float64            `json:"grand_total"`
	ServiceAreaName string             `json:"service_area,omitempty"`
}

// VehicleFare pairs a vehicle type with its effective fare config
type VehicleFare struct {
	VehicleType   *VehicleType `json:"vehicle_type"`
	BaseFare      float64      `json:"base_fare"`
	PerKmRate     float64      `json:"per_km_rate"`
	PerMinuteRate float64      `json:"per_minute_rate"`
	MinimumFare   float64      `json:"minimum_fare"`
	BookingFee    float64      `json:"booking_fee"`
}

// AirportFeeCheck reports whether a trip touches an airport zone
type AirportFeeCheck struct {
	AirportFee      float64 `json:"airport_fee"`
	AirportZoneName string  `json:"airport_zone_name,omitempty"`
	IsPickup        bool    `json:"is_pickup"`
	IsDropoff       bool    `json:"is_dropoff"`
}
