package bulletin

import (
	"github.com/kilianp07/boater/core/fuel"
	"github.com/kilianp07/boater/core/metrics"
	"github.com/kilianp07/boater/core/model"
	"github.com/kilianp07/boater/infra/logger"
)

// NewProvider wires an HTTP fetcher and the PDF extractor into a fuel
// price provider configured from cfg.
func NewProvider(cfg Config, sink metrics.MetricsSink) *fuel.Provider {
	cfg.SetDefaults()
	return fuel.NewProvider(NewHTTPFetcher(cfg), PDFExtractor{},
		fuel.WithRegion(cfg.Region),
		fuel.WithDefaults(model.FuelPrices{Gasoline: cfg.DefaultGasoline, Diesel: cfg.DefaultDiesel}),
		fuel.WithLogger(logger.New("fuel-provider")),
		fuel.WithSink(sink),
	)
}
