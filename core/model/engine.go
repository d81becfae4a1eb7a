package model

import (
	"fmt"
	"strings"
)

// EngineType identifies one of the supported propulsion categories.
type EngineType string

const (
	EngineOutboard        EngineType = "outboard"
	EngineInboardGasoline EngineType = "inboard-gasoline"
	EngineInboardDiesel   EngineType = "inboard-diesel"
)

// EngineTypes lists every supported engine type in table row order.
var EngineTypes = []EngineType{EngineOutboard, EngineInboardGasoline, EngineInboardDiesel}

var engineCoefficients = map[EngineType]float64{
	EngineOutboard:        0.46,
	EngineInboardGasoline: 0.30,
	EngineInboardDiesel:   0.25,
}

// Row labels used by the published coefficient workbook.
var workbookLabels = map[string]EngineType{
	"motor fuera de borda": EngineOutboard,
	"motor interno nafta":  EngineInboardGasoline,
	"motor interno diesel": EngineInboardDiesel,
}

// ParseEngineType returns the engine type matching s. Surrounding spaces and
// letter case are ignored; any value outside the closed set is rejected.
func ParseEngineType(s string) (EngineType, error) {
	e := EngineType(strings.ToLower(strings.TrimSpace(s)))
	if !e.Valid() {
		return "", &InputError{Field: "engine_type", Value: s, Err: ErrUnknownEngine}
	}
	return e, nil
}

// EngineTypeFromLabel resolves a coefficient table row label. Besides the
// canonical names it accepts the workbook's own labels.
func EngineTypeFromLabel(label string) (EngineType, bool) {
	l := strings.ToLower(strings.TrimSpace(label))
	if e, ok := workbookLabels[l]; ok {
		return e, true
	}
	e := EngineType(l)
	return e, e.Valid()
}

// Valid reports whether e belongs to the supported set.
func (e EngineType) Valid() bool {
	_, ok := engineCoefficients[e]
	return ok
}

// Coefficient returns the dimensionless efficiency coefficient of the engine.
// It returns 0 for an unknown engine type.
func (e EngineType) Coefficient() float64 {
	return engineCoefficients[e]
}

// UsesDiesel reports whether the engine burns diesel-type fuel.
func (e EngineType) UsesDiesel() bool {
	return e == EngineInboardDiesel
}

func (e EngineType) String() string {
	if !e.Valid() {
		return fmt.Sprintf("unknown(%s)", string(e))
	}
	return string(e)
}
