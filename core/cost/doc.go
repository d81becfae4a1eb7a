// Package cost implements the trip cost model.
//
// A computation resolves the nearest horsepower band and the nearest seat band
// in two engine-indexed coefficient tables, derives an hourly-to-distance fuel
// consumption from power and cruise speed, and scales it by the fuel price and
// both table factors. Tables come from a TableSource so that callers can load
// them once per process or inject fixtures.
package cost
