package config

import (
	"fmt"

	"github.com/kilianp07/boater/core/cost"
	"github.com/kilianp07/boater/core/model"
)

// CurvesConfig lists the boat configurations plotted by the curve command.
type CurvesConfig struct {
	FirstKm float64          `json:"first_km"`
	LastKm  float64          `json:"last_km"`
	Points  int              `json:"points"`
	Specs   []cost.CurveSpec `json:"specs"`
}

// SetDefaults applies the 10 to 100 km range in 10 km steps.
func (c *CurvesConfig) SetDefaults() {
	if c.FirstKm == 0 && c.LastKm == 0 {
		c.FirstKm, c.LastKm = 10, 100
	}
	if c.Points == 0 {
		c.Points = 10
	}
}

// Validate checks the distance range and that every spec is named, and
// normalizes each engine type to its canonical name.
func (c *CurvesConfig) Validate() error {
	if _, err := c.Distances(); err != nil {
		return fmt.Errorf("curves: %w", err)
	}
	for i := range c.Specs {
		s := &c.Specs[i]
		if s.Name == "" {
			return fmt.Errorf("curves: spec %d has no name", i)
		}
		e, err := model.ParseEngineType(string(s.Engine))
		if err != nil {
			return fmt.Errorf("curves: spec %q: %w", s.Name, err)
		}
		s.Engine = e
	}
	return nil
}

// Distances returns the configured distance grid.
func (c CurvesConfig) Distances() ([]float64, error) {
	return cost.Distances(c.FirstKm, c.LastKm, c.Points)
}
