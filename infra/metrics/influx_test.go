package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/kilianp07/boater/core/metrics"
	"github.com/kilianp07/boater/core/model"
)

func captureServer(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var bodies []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		bodies = append(bodies, strings.TrimSpace(string(b)))
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)
	return srv, &bodies
}

func TestInfluxSink_RecordPriceAcquisition(t *testing.T) {
	srv, bodies := captureServer(t)
	sink := NewInfluxSink(srv.URL, "token", "org", "bucket")
	defer sink.Close()

	now := time.Now()
	ev := coremetrics.PriceEvent{
		Region: "Lombardia",
		Source: coremetrics.SourceBulletin,
		Prices: model.FuelPrices{Gasoline: 1.8234, Diesel: 1.712},
		Time:   now,
	}
	if err := sink.RecordPriceAcquisition(ev); err != nil {
		t.Fatalf("record: %v", err)
	}
	p := write.NewPointWithMeasurement("price_acquisition").
		AddTag("region", "Lombardia").
		AddTag("source", "bulletin").
		AddField("gasoline", 1.823).
		AddField("diesel", 1.712).
		SetTime(now)
	exp := strings.TrimSpace(write.PointToLineProtocol(p, time.Nanosecond))
	if len(*bodies) != 1 || (*bodies)[0] != exp {
		t.Errorf("bodies: %#v", *bodies)
	}
}

func TestInfluxSink_RecordEstimate(t *testing.T) {
	srv, bodies := captureServer(t)
	sink := NewInfluxSink(srv.URL+"/api/v2/write", "token", "org", "bucket")
	defer sink.Close()

	now := time.Now()
	ev := coremetrics.EstimateEvent{
		Engine:     model.EngineOutboard,
		HP:         150,
		Seats:      6,
		DistanceKm: 10,
		FuelPrice:  1.84,
		Result:     model.CostResult{CostPerKm: 6.85507, CostTotal: 68.5507},
		Outcome:    coremetrics.OutcomeOK,
		Time:       now,
	}
	if err := sink.RecordEstimate(ev); err != nil {
		t.Fatalf("record: %v", err)
	}
	p := write.NewPointWithMeasurement("trip_estimate").
		AddTag("engine", "outboard").
		AddTag("outcome", "ok").
		AddField("hp", 150).
		AddField("seats", 6).
		AddField("distance_km", 10.0).
		AddField("fuel_price", 1.84).
		AddField("cost_per_km", 6.855).
		AddField("cost_total", 68.551).
		SetTime(now)
	exp := strings.TrimSpace(write.PointToLineProtocol(p, time.Nanosecond))
	if len(*bodies) != 1 || (*bodies)[0] != exp {
		t.Errorf("bodies: %#v", *bodies)
	}
}

func TestNewInfluxSinkWithFallback(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			called = true
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}))
	defer srv.Close()

	cfg := coremetrics.Config{
		InfluxEnabled: true,
		InfluxURL:     srv.URL + "/api/v2/write",
		InfluxToken:   "tok",
		InfluxOrg:     "org",
		InfluxBucket:  "bucket",
	}
	sink := NewInfluxSinkWithFallback(cfg)
	if _, ok := sink.(*InfluxSink); ok {
		t.Fatalf("expected NopSink on failing health check")
	}
	if !called {
		t.Fatalf("health endpoint not called")
	}
}

func TestRound3(t *testing.T) {
	if got := round3(68.5507); got != 68.551 {
		t.Fatalf("round3 = %v", got)
	}
}
