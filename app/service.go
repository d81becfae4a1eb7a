package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/boater/config"
	"github.com/kilianp07/boater/core/cost"
	"github.com/kilianp07/boater/core/fuel"
	coremetrics "github.com/kilianp07/boater/core/metrics"
	"github.com/kilianp07/boater/core/model"
	"github.com/kilianp07/boater/infra/bulletin"
	"github.com/kilianp07/boater/infra/coefficients"
	"github.com/kilianp07/boater/infra/logger"
	"github.com/kilianp07/boater/infra/metrics"
	"github.com/kilianp07/boater/infra/mqtt"
)

// PriceSource acquires current fuel prices. Implementations never fail.
type PriceSource interface {
	Acquire(ctx context.Context) fuel.Quote
}

// Trip is a user request for a cost estimate. The fuel price is taken from
// the current quote.
type Trip struct {
	Engine     string  `json:"engine_type"`
	HP         int     `json:"hp"`
	SpeedKnots float64 `json:"speed_knots"`
	Seats      int     `json:"seats"`
	DistanceKm float64 `json:"distance_km"`
}

// Estimate is the priced trip.
type Estimate struct {
	Engine    model.EngineType
	Quote     fuel.Quote
	FuelPrice float64
	Result    model.CostResult
	Breakdown cost.Breakdown
}

// Service combines price acquisition and the cost model.
type Service struct {
	prices PriceSource
	tables cost.TableSource
	model  *cost.Model
	sink   coremetrics.MetricsSink
	log    logger.Logger
	now    func() time.Time

	mqtt        mqtt.Config
	promEnabled bool
	promPort    string
	gatherer    prometheus.Gatherer
}

// NewService creates a Service from its parts. A nil sink or logger is
// replaced by a no-op implementation.
func NewService(prices PriceSource, tables cost.TableSource, sink coremetrics.MetricsSink, log logger.Logger) *Service {
	if sink == nil {
		sink = coremetrics.NopSink{}
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Service{
		prices: prices,
		tables: tables,
		model:  cost.NewModel(tables),
		sink:   sink,
		log:    log,
		now:    time.Now,
	}
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	sink, err := metrics.NewSink(cfg.Metrics, prometheus.DefaultRegisterer)
	if err != nil {
		return nil, err
	}
	svc := NewService(
		bulletin.NewProvider(cfg.Bulletin, sink),
		coefficients.NewSource(cfg.Coefficients),
		sink,
		logger.New("service"),
	)
	svc.mqtt = cfg.MQTT
	svc.promEnabled = cfg.Metrics.PrometheusEnabled
	svc.promPort = cfg.Metrics.PrometheusPort
	svc.gatherer = prometheus.DefaultGatherer
	return svc, nil
}

// Prices returns the current fuel quote.
func (s *Service) Prices(ctx context.Context) fuel.Quote {
	return s.prices.Acquire(ctx)
}

// Estimate prices a trip with the fuel matching its engine. The engine type
// and the trip figures are checked before any price or table is fetched.
func (s *Service) Estimate(ctx context.Context, trip Trip) (Estimate, error) {
	engine, err := model.ParseEngineType(trip.Engine)
	if err != nil {
		s.record(trip, "unknown", 0, model.CostResult{}, err)
		return Estimate{}, err
	}
	req := model.TripRequest{
		Engine:     engine,
		HP:         trip.HP,
		SpeedKnots: trip.SpeedKnots,
		Seats:      trip.Seats,
		DistanceKm: trip.DistanceKm,
		FuelPrice:  1, // replaced by the quoted price below
	}
	if err := req.Validate(); err != nil {
		s.record(trip, engine, 0, model.CostResult{}, err)
		return Estimate{}, err
	}
	q := s.prices.Acquire(ctx)
	est := Estimate{Engine: engine, Quote: q, FuelPrice: q.Prices.PriceFor(engine)}
	req.FuelPrice = est.FuelPrice
	res, bd, err := s.model.ComputeDetailed(req)
	s.record(trip, engine, est.FuelPrice, res, err)
	if err != nil {
		return Estimate{}, err
	}
	est.Result = res
	est.Breakdown = bd
	s.log.Debugw("trip estimated", map[string]any{
		"engine":       string(engine),
		"fuel_price":   est.FuelPrice,
		"price_source": q.Source,
		"cost_total":   res.CostTotal,
	})
	return est, nil
}

func (s *Service) record(trip Trip, engine model.EngineType, price float64, res model.CostResult, err error) {
	ev := coremetrics.EstimateEvent{
		Engine:     engine,
		HP:         trip.HP,
		Seats:      trip.Seats,
		DistanceKm: trip.DistanceKm,
		FuelPrice:  price,
		Result:     res,
		Outcome:    coremetrics.OutcomeFor(err),
		Time:       s.now(),
	}
	if rerr := s.sink.RecordEstimate(ev); rerr != nil {
		s.log.Errorf("record estimate: %v", rerr)
	}
}

// EstimateRequest answers an MQTT estimate request.
func (s *Service) EstimateRequest(ctx context.Context, req mqtt.Request) (mqtt.Response, error) {
	est, err := s.Estimate(ctx, Trip{
		Engine:     req.EngineType,
		HP:         req.HP,
		SpeedKnots: req.SpeedKnots,
		Seats:      req.Seats,
		DistanceKm: req.DistanceKm,
	})
	if err != nil {
		return mqtt.Response{}, err
	}
	return mqtt.Response{
		FuelPrice:   est.FuelPrice,
		PriceSource: est.Quote.Source,
		CostPerKm:   est.Result.CostPerKm,
		CostTotal:   est.Result.CostTotal,
	}, nil
}

// Curves computes a cost curve per spec. Specs without a fuel price use the
// current quote, acquired once.
func (s *Service) Curves(ctx context.Context, specs []cost.CurveSpec, distances []float64) ([]cost.Curve, error) {
	if len(specs) == 0 {
		return nil, errors.New("no curve specs")
	}
	var quote *fuel.Quote
	curves := make([]cost.Curve, 0, len(specs))
	for _, spec := range specs {
		if spec.FuelPrice == 0 {
			if quote == nil {
				q := s.prices.Acquire(ctx)
				quote = &q
			}
			spec.FuelPrice = quote.Prices.PriceFor(spec.Engine)
		}
		c, err := s.model.Curve(spec, distances)
		if err != nil {
			return nil, err
		}
		curves = append(curves, c)
	}
	return curves, nil
}

// Run loads the coefficient tables, starts the metrics endpoint and the MQTT
// responder, and blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if _, err := s.tables.Tables(); err != nil {
		return fmt.Errorf("load coefficient tables: %w", err)
	}
	if s.promEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promPort, s.gatherer); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	if s.mqtt.Enabled() {
		r, err := mqtt.NewResponder(ctx, s.mqtt, s)
		if err != nil {
			return fmt.Errorf("mqtt responder: %w", err)
		}
		defer r.Close()
		s.log.Infof("answering estimate requests on %s", s.mqtt.RequestTopic)
	} else {
		s.log.Warnf("no mqtt broker configured, estimate responder disabled")
	}
	<-ctx.Done()
	return nil
}

// Close releases resources held by the metrics sinks.
func (s *Service) Close() error {
	if c, ok := s.sink.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
