package metrics

import (
	"io"

	coremetrics "github.com/kilianp07/boater/core/metrics"
)

// MultiSink fans events out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordPriceAcquisition forwards the event to all sinks, returning the
// first error encountered.
func (m *MultiSink) RecordPriceAcquisition(ev coremetrics.PriceEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordPriceAcquisition(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordEstimate forwards the event to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordEstimate(ev coremetrics.EstimateEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordEstimate(ev); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every sink that holds resources and returns the first error.
func (m *MultiSink) Close() error {
	var first error
	for _, s := range m.Sinks {
		if c, ok := s.(io.Closer); ok {
			if err := c.Close(); err != nil && first == nil {
				first = err
			}
		}
	}
	return first
}
