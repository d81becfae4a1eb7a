package metrics

import (
	"errors"
	"time"

	"github.com/kilianp07/boater/core/model"
)

// Price sources.
const (
	SourceBulletin = "bulletin"
	SourceDefault  = "default"
)

// Estimate outcomes.
const (
	OutcomeOK            = "ok"
	OutcomeUnknownEngine = "unknown_engine"
	OutcomeDomain        = "domain"
	OutcomeDataIntegrity = "data_integrity"
	OutcomeError         = "error"
)

// PriceEvent records one fuel price acquisition.
type PriceEvent struct {
	Region string
	Source string
	Prices model.FuelPrices
	Time   time.Time
}

// EstimateEvent records one cost computation.
type EstimateEvent struct {
	Engine     model.EngineType
	HP         int
	Seats      int
	DistanceKm float64
	FuelPrice  float64
	Result     model.CostResult
	Outcome    string
	Time       time.Time
}

// MetricsSink records acquisitions and estimates for observability purposes.
type MetricsSink interface {
	RecordPriceAcquisition(ev PriceEvent) error
	RecordEstimate(ev EstimateEvent) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordPriceAcquisition(PriceEvent) error { return nil }
func (NopSink) RecordEstimate(EstimateEvent) error      { return nil }

// OutcomeFor classifies the error returned by a cost computation.
func OutcomeFor(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, model.ErrUnknownEngine):
		return OutcomeUnknownEngine
	case errors.Is(err, model.ErrDomain):
		return OutcomeDomain
	case errors.Is(err, model.ErrDataIntegrity):
		return OutcomeDataIntegrity
	default:
		return OutcomeError
	}
}
