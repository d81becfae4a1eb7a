package cost

import (
	"math"

	"github.com/kilianp07/boater/core/model"
)

// CoefficientTable maps each engine type to one multiplicative factor per
// band. Bands keep the column order of the source table.
type CoefficientTable struct {
	Name    string
	Bands   []float64
	Factors map[model.EngineType][]float64
}

// Tables groups the horsepower and seat coefficient tables.
type Tables struct {
	HP    CoefficientTable
	Seats CoefficientTable
}

// Validate checks that the table has bands and a complete row for every
// engine type.
func (t CoefficientTable) Validate() error {
	if len(t.Bands) == 0 {
		return model.DataError("%s table has no bands", t.Name)
	}
	for _, e := range model.EngineTypes {
		row, ok := t.Factors[e]
		if !ok {
			return model.DataError("%s table has no row for %s", t.Name, e)
		}
		if len(row) != len(t.Bands) {
			return model.DataError("%s table row %s has %d factors for %d bands", t.Name, e, len(row), len(t.Bands))
		}
		for i, f := range row {
			if !(f > 0) || math.IsInf(f, 0) {
				return model.DataError("%s table factor for %s at band %v is %v, want a positive number", t.Name, e, t.Bands[i], f)
			}
		}
	}
	return nil
}

// Lookup resolves the band nearest to v and returns it with the engine's
// factor for that band.
func (t CoefficientTable) Lookup(e model.EngineType, v float64) (band, factor float64, err error) {
	i := NearestBand(t.Bands, v)
	if i < 0 {
		return 0, 0, model.DataError("%s table has no bands", t.Name)
	}
	row, ok := t.Factors[e]
	if !ok || i >= len(row) {
		return 0, 0, model.DataError("%s table has no factor for %s", t.Name, e)
	}
	return t.Bands[i], row[i], nil
}

// Validate checks both tables.
func (t *Tables) Validate() error {
	if t == nil {
		return model.DataError("no coefficient tables")
	}
	if err := t.HP.Validate(); err != nil {
		return err
	}
	return t.Seats.Validate()
}

// UniformTables returns tables whose factors are all 1 at the given bands.
// They make the cost depend only on the consumption formula.
func UniformTables(hpBands, seatBands []float64) *Tables {
	return &Tables{
		HP:    uniform("hp", hpBands),
		Seats: uniform("seats", seatBands),
	}
}

func uniform(name string, bands []float64) CoefficientTable {
	t := CoefficientTable{Name: name, Bands: append([]float64(nil), bands...), Factors: map[model.EngineType][]float64{}}
	for _, e := range model.EngineTypes {
		row := make([]float64, len(bands))
		for i := range row {
			row[i] = 1
		}
		t.Factors[e] = row
	}
	return t
}
