package cost

import (
	"fmt"
	"math"

	"github.com/kilianp07/boater/core/model"
)

const (
	// KnotsToKmh converts a speed in knots to km/h.
	KnotsToKmh = 1.852
	// ConsumptionMultiplier is the empirical scale applied to the
	// power-to-speed consumption rate.
	ConsumptionMultiplier = 3.0
)

// Breakdown exposes the intermediate values of a computation.
type Breakdown struct {
	Consumption float64
	HPBand      float64
	HPFactor    float64
	SeatBand    float64
	SeatFactor  float64
}

// Model computes trip costs from coefficient tables.
type Model struct {
	src TableSource
}

// NewModel returns a model reading its tables from src.
func NewModel(src TableSource) *Model {
	return &Model{src: src}
}

// Compute returns the per-kilometer and total cost of the trip.
func (m *Model) Compute(req model.TripRequest) (model.CostResult, error) {
	res, _, err := m.ComputeDetailed(req)
	return res, err
}

// ComputeDetailed is Compute plus the resolved bands and factors.
// Inputs are validated before the tables are read.
func (m *Model) ComputeDetailed(req model.TripRequest) (model.CostResult, Breakdown, error) {
	if err := req.Validate(); err != nil {
		return model.CostResult{}, Breakdown{}, err
	}
	tables, err := m.src.Tables()
	if err != nil {
		return model.CostResult{}, Breakdown{}, fmt.Errorf("load coefficient tables: %w", err)
	}

	var b Breakdown
	b.HPBand, b.HPFactor, err = tables.HP.Lookup(req.Engine, float64(req.HP))
	if err != nil {
		return model.CostResult{}, Breakdown{}, err
	}
	b.SeatBand, b.SeatFactor, err = tables.Seats.Lookup(req.Engine, float64(req.Seats))
	if err != nil {
		return model.CostResult{}, Breakdown{}, err
	}

	b.Consumption = Consumption(req.Engine, req.HP, req.SpeedKnots)
	perKm := b.Consumption * ConsumptionMultiplier * req.FuelPrice * b.HPFactor * b.SeatFactor
	res := model.CostResult{CostPerKm: perKm, CostTotal: perKm * req.DistanceKm}
	if !finiteNonNegative(res.CostPerKm) || !finiteNonNegative(res.CostTotal) {
		return model.CostResult{}, Breakdown{}, &model.InputError{Field: "cost", Value: res.CostTotal, Err: model.ErrDomain}
	}
	return res, b, nil
}

// Consumption returns the fuel consumption rate for the engine at the given
// power and cruise speed.
func Consumption(e model.EngineType, hp int, speedKnots float64) float64 {
	return (float64(hp) * e.Coefficient()) / (speedKnots * KnotsToKmh)
}

func finiteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
