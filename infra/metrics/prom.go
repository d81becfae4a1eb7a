package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/boater/core/metrics"
)

// PromSink records price acquisitions and estimates in Prometheus metrics.
type PromSink struct {
	acquisitions *prometheus.CounterVec
	prices       *prometheus.GaugeVec
	estimates    *prometheus.CounterVec
	tripCost     *prometheus.HistogramVec
}

// NewPromSink registers the metrics on the default Prometheus registerer.
// The metrics endpoint is served separately by StartPromServer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	acquisitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "boater_price_acquisitions_total",
		Help: "Fuel price acquisitions by price source",
	}, []string{"source"})
	prices := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "boater_fuel_price_eur_per_liter",
		Help: "Last acquired fuel price in EUR per liter",
	}, []string{"fuel"})
	estimates := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "boater_estimates_total",
		Help: "Trip cost estimates by engine type and outcome",
	}, []string{"engine", "outcome"})
	tripCost := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "boater_estimate_cost_total",
		Help:    "Total cost of successful trip estimates",
		Buckets: prometheus.ExponentialBuckets(5, 2, 10),
	}, []string{"engine"})

	var err error
	if acquisitions, err = register(reg, acquisitions); err != nil {
		return nil, err
	}
	if prices, err = register(reg, prices); err != nil {
		return nil, err
	}
	if estimates, err = register(reg, estimates); err != nil {
		return nil, err
	}
	if tripCost, err = register(reg, tripCost); err != nil {
		return nil, err
	}
	return &PromSink{acquisitions: acquisitions, prices: prices, estimates: estimates, tripCost: tripCost}, nil
}

// register adds c to reg, reusing an identical collector that is already
// registered.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordPriceAcquisition counts the acquisition and exposes the prices.
func (s *PromSink) RecordPriceAcquisition(ev coremetrics.PriceEvent) error {
	s.acquisitions.WithLabelValues(ev.Source).Inc()
	s.prices.WithLabelValues("gasoline").Set(ev.Prices.Gasoline)
	s.prices.WithLabelValues("diesel").Set(ev.Prices.Diesel)
	return nil
}

// RecordEstimate counts the estimate and observes its total cost.
func (s *PromSink) RecordEstimate(ev coremetrics.EstimateEvent) error {
	s.estimates.WithLabelValues(string(ev.Engine), ev.Outcome).Inc()
	if ev.Outcome == coremetrics.OutcomeOK {
		s.tripCost.WithLabelValues(string(ev.Engine)).Observe(ev.Result.CostTotal)
	}
	return nil
}
