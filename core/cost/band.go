package cost

import "math"

// NearestBand returns the index of the band closest to v by absolute
// distance. On ties the first band in slice order wins. It returns -1 for an
// empty slice.
func NearestBand(bands []float64, v float64) int {
	best := -1
	bestDist := math.Inf(1)
	for i, b := range bands {
		if d := math.Abs(b - v); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
