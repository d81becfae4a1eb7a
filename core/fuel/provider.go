package fuel

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kilianp07/boater/core/logger"
	"github.com/kilianp07/boater/core/metrics"
	"github.com/kilianp07/boater/core/model"
)

// Defaults used when no live price can be obtained.
var DefaultPrices = model.FuelPrices{Gasoline: 1.84, Diesel: 1.75}

// DefaultRegion is the region looked up in the bulletin.
const DefaultRegion = "Lombardia"

// ErrRegionNotFound is reported when the bulletin holds no well-formed price
// records for the region.
var ErrRegionNotFound = errors.New("no price records for region")

// DocumentFetcher retrieves the raw bulletin document.
type DocumentFetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// TextExtractor turns a bulletin document into the text of each page.
type TextExtractor interface {
	Pages(doc []byte) ([]string, error)
}

// Quote is the result of a price acquisition.
type Quote struct {
	Prices model.FuelPrices
	Region string
	Source string // metrics.SourceBulletin or metrics.SourceDefault
	// Warning explains why the defaults were used. It is nil for live prices.
	Warning   error
	FetchedAt time.Time
}

// Fallback reports whether the quote carries default prices.
func (q Quote) Fallback() bool { return q.Source == metrics.SourceDefault }

// Provider acquires regional prices from a bulletin.
type Provider struct {
	fetcher   DocumentFetcher
	extractor TextExtractor
	region    string
	defaults  model.FuelPrices
	log       logger.Logger
	sink      metrics.MetricsSink
	now       func() time.Time
}

// Option configures a Provider.
type Option func(*Provider)

// WithRegion sets the region anchor searched in the bulletin.
func WithRegion(region string) Option {
	return func(p *Provider) {
		if region != "" {
			p.region = region
		}
	}
}

// WithDefaults overrides the fallback prices. Non-positive values are ignored.
func WithDefaults(d model.FuelPrices) Option {
	return func(p *Provider) {
		if d.Gasoline > 0 {
			p.defaults.Gasoline = d.Gasoline
		}
		if d.Diesel > 0 {
			p.defaults.Diesel = d.Diesel
		}
	}
}

// WithLogger sets the logger used for fallback warnings.
func WithLogger(l logger.Logger) Option {
	return func(p *Provider) {
		if l != nil {
			p.log = l
		}
	}
}

// WithSink records every acquisition on s.
func WithSink(s metrics.MetricsSink) Option {
	return func(p *Provider) {
		if s != nil {
			p.sink = s
		}
	}
}

// NewProvider creates a Provider reading documents from f and text from x.
func NewProvider(f DocumentFetcher, x TextExtractor, opts ...Option) *Provider {
	p := &Provider{
		fetcher:   f,
		extractor: x,
		region:    DefaultRegion,
		defaults:  DefaultPrices,
		log:       logger.Nop{},
		sink:      metrics.NopSink{},
		now:       time.Now,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Acquire returns the current regional prices. It never fails: any fetch or
// parse problem yields the default prices with a warning.
func (p *Provider) Acquire(ctx context.Context) Quote {
	q := Quote{Region: p.region, FetchedAt: p.now()}
	prices, err := p.fetchPrices(ctx)
	if err != nil {
		q.Prices = p.defaults
		q.Source = metrics.SourceDefault
		q.Warning = err
		p.log.Warnf("could not obtain current %s prices, using defaults gasoline=%.3f diesel=%.3f: %v",
			p.region, p.defaults.Gasoline, p.defaults.Diesel, err)
	} else {
		q.Prices = prices
		q.Source = metrics.SourceBulletin
		p.log.Infof("%s prices gasoline=%.3f diesel=%.3f", p.region, prices.Gasoline, prices.Diesel)
	}
	if err := p.sink.RecordPriceAcquisition(metrics.PriceEvent{
		Region: q.Region,
		Source: q.Source,
		Prices: q.Prices,
		Time:   q.FetchedAt,
	}); err != nil {
		p.log.Errorf("record price acquisition: %v", err)
	}
	return q
}

func (p *Provider) fetchPrices(ctx context.Context) (model.FuelPrices, error) {
	if p.fetcher == nil || p.extractor == nil {
		return model.FuelPrices{}, fmt.Errorf("bulletin source not configured")
	}
	doc, err := p.fetcher.Fetch(ctx)
	if err != nil {
		return model.FuelPrices{}, fmt.Errorf("fetch bulletin: %w", err)
	}
	pages, err := p.extractor.Pages(doc)
	if err != nil {
		return model.FuelPrices{}, fmt.Errorf("extract bulletin text: %w", err)
	}
	prices, ok := ExtractRegionalPrices(pages, p.region)
	if !ok {
		return model.FuelPrices{}, fmt.Errorf("%w %q", ErrRegionNotFound, p.region)
	}
	return prices, nil
}
