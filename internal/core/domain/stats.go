package domain

// FuelStats aggregates a bike's (or a user's) fuel history. AvgMileage only
// averages fills where mileage could be computed; nil when none could.
type FuelStats struct {
	TotalFuel  float64  `json:"total_fuel"`
	TotalCost  float64  `json:"total_cost"`
	AvgPrice   float64  `json:"avg_price_per_liter"`
	AvgMileage *float64 `json:"avg_mileage,omitempty"`
	TotalFills int      `json:"total_fills"`
}

type ServiceStats struct {
	TotalCost     float64 `json:"total_cost"`
	TotalServices int     `json:"total_services"`
}

type TripStats struct {
	TotalTrips     int      `json:"total_trips"`
	LoggedDistance int      `json:"logged_distance"`
	AvgDistance    *float64 `json:"avg_distance,omitempty"`
}

// MonthlyFuel is one month of fuel aggregates, month formatted as YYYY-MM.
type MonthlyFuel struct {
	Month      string   `json:"month"`
	TotalFuel  float64  `json:"total_fuel"`
	TotalCost  float64  `json:"total_cost"`
	AvgMileage *float64 `json:"avg_mileage,omitempty"`
}

type TripPurposeStat struct {
	Purpose  TripPurpose `json:"purpose"`
	Count    int         `json:"count"`
	Distance int         `json:"distance"`
}

// BikeReport is the full dashboard/report projection for one bike or for a
// user's whole garage. TotalDistance is odometer based (current - baseline);
// DistanceAnomaly flags a negative total caused by inconsistent readings;
// the value is reported as-is, never clamped.
type BikeReport struct {
	TotalDistance   int               `json:"total_distance"`
	DistanceAnomaly bool              `json:"distance_anomaly,omitempty"`
	Fuel            FuelStats         `json:"fuel"`
	Service         ServiceStats      `json:"service"`
	Trips           TripStats         `json:"trips"`
	MonthlyFuel     []MonthlyFuel     `json:"monthly_fuel"`
	TripPurposes    []TripPurposeStat `json:"trip_purposes"`
	CostPerKM       *float64          `json:"cost_per_km,omitempty"`
}

// ComputeCostPerKM fills CostPerKM from the fuel and service totals; left
// nil when no distance has been driven.
func (r *BikeReport) ComputeCostPerKM() {
	if r.TotalDistance <= 0 {
		return
	}
	v := (r.Fuel.TotalCost + r.Service.TotalCost) / float64(r.TotalDistance)
	r.CostPerKM = &v
}
