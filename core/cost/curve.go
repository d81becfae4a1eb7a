package cost

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/kilianp07/boater/core/model"
)

// CurveSpec describes a boat configuration plotted against distance.
type CurveSpec struct {
	Name       string           `json:"name"`
	Engine     model.EngineType `json:"engine_type"`
	HP         int              `json:"hp"`
	SpeedKnots float64          `json:"speed_knots"`
	Seats      int              `json:"seats"`
	FuelPrice  float64          `json:"fuel_price"`
}

// CurvePoint is the cost of one trip length.
type CurvePoint struct {
	DistanceKm  float64 `json:"distance_km"`
	CostTotal   float64 `json:"cost_total"`
	CostPerSeat float64 `json:"cost_per_seat"`
}

// Curve is a named series of costs ordered by distance.
type Curve struct {
	Name   string       `json:"name"`
	Points []CurvePoint `json:"points"`
}

// Distances returns n evenly spaced distances from first to last inclusive.
func Distances(first, last float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 distances, got %d", n)
	}
	if first <= 0 || last <= first {
		return nil, fmt.Errorf("invalid distance range [%v, %v]", first, last)
	}
	return floats.Span(make([]float64, n), first, last), nil
}

// DefaultDistances returns 10, 20, ..., 100 km.
func DefaultDistances() []float64 {
	d, _ := Distances(10, 100, 10)
	return d
}

// Curve computes the total cost and the cost per seat at each distance.
func (m *Model) Curve(spec CurveSpec, distances []float64) (Curve, error) {
	c := Curve{Name: spec.Name, Points: make([]CurvePoint, 0, len(distances))}
	for _, d := range distances {
		res, err := m.Compute(model.TripRequest{
			Engine:     spec.Engine,
			HP:         spec.HP,
			SpeedKnots: spec.SpeedKnots,
			Seats:      spec.Seats,
			DistanceKm: d,
			FuelPrice:  spec.FuelPrice,
		})
		if err != nil {
			return Curve{}, fmt.Errorf("curve %q at %v km: %w", spec.Name, d, err)
		}
		c.Points = append(c.Points, CurvePoint{
			DistanceKm:  d,
			CostTotal:   res.CostTotal,
			CostPerSeat: res.CostTotal / float64(spec.Seats),
		})
	}
	return c, nil
}
