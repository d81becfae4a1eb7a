package fuel

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kilianp07/boater/core/model"
)

// Line offsets of the price records relative to the region anchor.
const (
	DieselOffset   = 2
	GasolineOffset = 3
)

// ExtractRegionalPrices scans the text of each page for a line containing
// region and decodes the diesel and gasoline records that follow it. When an
// occurrence is followed by a malformed record the scan moves on to the next
// occurrence. It reports false when no occurrence yields both prices.
func ExtractRegionalPrices(pages []string, region string) (model.FuelPrices, bool) {
	if region == "" {
		return model.FuelPrices{}, false
	}
	for _, page := range pages {
		lines := strings.Split(page, "\n")
		for i, line := range lines {
			if !strings.Contains(line, region) {
				continue
			}
			diesel, err := recordValue(lines, i+DieselOffset)
			if err != nil {
				continue
			}
			gasoline, err := recordValue(lines, i+GasolineOffset)
			if err != nil {
				continue
			}
			return model.FuelPrices{Gasoline: gasoline, Diesel: diesel}, true
		}
	}
	return model.FuelPrices{}, false
}

// recordValue decodes the trailing number of a "<label> <value>" line. The
// value uses a comma as decimal separator.
func recordValue(lines []string, idx int) (float64, error) {
	if idx >= len(lines) {
		return 0, fmt.Errorf("line %d out of range", idx)
	}
	fields := strings.Fields(lines[idx])
	if len(fields) == 0 {
		return 0, fmt.Errorf("line %d is empty", idx)
	}
	raw := strings.ReplaceAll(fields[len(fields)-1], ",", ".")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: %w", idx, err)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("line %d: non-finite price %v", idx, v)
	}
	return v, nil
}
