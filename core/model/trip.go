package model

import "math"

// TripRequest is the input of a single cost computation.
type TripRequest struct {
	Engine     EngineType
	HP         int
	SpeedKnots float64
	Seats      int
	DistanceKm float64
	FuelPrice  float64 // currency per liter
}

// CostResult is the outcome of a cost computation.
type CostResult struct {
	CostPerKm float64 `json:"cost_per_km"`
	CostTotal float64 `json:"cost_total"`
}

// Validate checks the engine type first and then every numeric field.
func (r TripRequest) Validate() error {
	if !r.Engine.Valid() {
		return &InputError{Field: "engine_type", Value: string(r.Engine), Err: ErrUnknownEngine}
	}
	checks := []struct {
		field string
		value float64
	}{
		{"hp", float64(r.HP)},
		{"speed_knots", r.SpeedKnots},
		{"seats", float64(r.Seats)},
		{"distance_km", r.DistanceKm},
		{"fuel_price", r.FuelPrice},
	}
	for _, c := range checks {
		if !positiveFinite(c.value) {
			return &InputError{Field: c.field, Value: c.value, Err: ErrDomain}
		}
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
