package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/kilianp07/boater/core/metrics"
	"github.com/kilianp07/boater/core/model"
)

func TestPromSink_RecordPriceAcquisition(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	ev := coremetrics.PriceEvent{
		Source: coremetrics.SourceDefault,
		Prices: model.FuelPrices{Gasoline: 1.84, Diesel: 1.75},
	}
	require.NoError(t, sink.RecordPriceAcquisition(ev))
	require.NoError(t, sink.RecordPriceAcquisition(ev))

	assert.Equal(t, 2.0, testutil.ToFloat64(sink.acquisitions.WithLabelValues("default")))
	assert.Equal(t, 1.84, testutil.ToFloat64(sink.prices.WithLabelValues("gasoline")))
	assert.Equal(t, 1.75, testutil.ToFloat64(sink.prices.WithLabelValues("diesel")))
}

func TestPromSink_RecordEstimate(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	require.NoError(t, sink.RecordEstimate(coremetrics.EstimateEvent{
		Engine:  model.EngineInboardDiesel,
		Outcome: coremetrics.OutcomeOK,
		Result:  model.CostResult{CostTotal: 42},
	}))
	require.NoError(t, sink.RecordEstimate(coremetrics.EstimateEvent{
		Engine:  model.EngineInboardDiesel,
		Outcome: coremetrics.OutcomeDomain,
	}))

	assert.Equal(t, 1.0, testutil.ToFloat64(sink.estimates.WithLabelValues("inboard-diesel", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.estimates.WithLabelValues("inboard-diesel", "domain")))
	assert.Equal(t, 1, testutil.CollectAndCount(sink.tripCost, "boater_estimate_cost_total"))
}

func TestPromSink_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
	second, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	require.NoError(t, second.RecordPriceAcquisition(coremetrics.PriceEvent{Source: coremetrics.SourceBulletin}))
	assert.Equal(t, 1.0, testutil.ToFloat64(first.acquisitions.WithLabelValues("bulletin")))
}

func TestNewSink(t *testing.T) {
	sink, err := NewSink(coremetrics.Config{}, prometheus.NewRegistry())
	require.NoError(t, err)
	assert.IsType(t, coremetrics.NopSink{}, sink)

	sink, err = NewSink(coremetrics.Config{PrometheusEnabled: true}, prometheus.NewRegistry())
	require.NoError(t, err)
	assert.IsType(t, &PromSink{}, sink)
}
