package model

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEngineType(t *testing.T) {
	tests := []struct {
		in   string
		want EngineType
		ok   bool
	}{
		{"outboard", EngineOutboard, true},
		{" Inboard-Gasoline ", EngineInboardGasoline, true},
		{"inboard-diesel", EngineInboardDiesel, true},
		{"motor a vela", "", false},
		{"motor fuera de borda", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, err := ParseEngineType(tt.in)
		if !tt.ok {
			require.Error(t, err, tt.in)
			assert.True(t, errors.Is(err, ErrUnknownEngine))
			var ie *InputError
			require.True(t, errors.As(err, &ie))
			assert.Equal(t, "engine_type", ie.Field)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestEngineTypeFromLabel(t *testing.T) {
	e, ok := EngineTypeFromLabel("Motor Fuera de Borda")
	assert.True(t, ok)
	assert.Equal(t, EngineOutboard, e)

	e, ok = EngineTypeFromLabel("inboard-diesel")
	assert.True(t, ok)
	assert.Equal(t, EngineInboardDiesel, e)

	_, ok = EngineTypeFromLabel("Asientos")
	assert.False(t, ok)
}

func TestCoefficients(t *testing.T) {
	assert.Equal(t, 0.46, EngineOutboard.Coefficient())
	assert.Equal(t, 0.30, EngineInboardGasoline.Coefficient())
	assert.Equal(t, 0.25, EngineInboardDiesel.Coefficient())
	assert.Zero(t, EngineType("sail").Coefficient())
}

func TestPriceFor(t *testing.T) {
	p := FuelPrices{Gasoline: 1.84, Diesel: 1.75}
	assert.Equal(t, 1.84, p.PriceFor(EngineOutboard))
	assert.Equal(t, 1.84, p.PriceFor(EngineInboardGasoline))
	assert.Equal(t, 1.75, p.PriceFor(EngineInboardDiesel))
}

func TestTripRequestValidate(t *testing.T) {
	valid := TripRequest{Engine: EngineOutboard, HP: 100, SpeedKnots: 20, Seats: 6, DistanceKm: 10, FuelPrice: 1.84}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name  string
		edit  func(*TripRequest)
		field string
		want  error
	}{
		{"engine", func(r *TripRequest) { r.Engine = "motor a vela" }, "engine_type", ErrUnknownEngine},
		{"zero speed", func(r *TripRequest) { r.SpeedKnots = 0 }, "speed_knots", ErrDomain},
		{"negative hp", func(r *TripRequest) { r.HP = -5 }, "hp", ErrDomain},
		{"zero seats", func(r *TripRequest) { r.Seats = 0 }, "seats", ErrDomain},
		{"nan distance", func(r *TripRequest) { r.DistanceKm = math.NaN() }, "distance_km", ErrDomain},
		{"inf price", func(r *TripRequest) { r.FuelPrice = math.Inf(1) }, "fuel_price", ErrDomain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.edit(&r)
			err := r.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			var ie *InputError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, tt.field, ie.Field)
		})
	}
}

func TestDataError(t *testing.T) {
	err := DataError("sheet %q missing", "Foglio1")
	assert.ErrorIs(t, err, ErrDataIntegrity)
	assert.Contains(t, err.Error(), "Foglio1")
}
