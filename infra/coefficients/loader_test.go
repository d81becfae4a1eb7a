package coefficients

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/kilianp07/boater/core/cost"
	"github.com/kilianp07/boater/core/model"
)

var workbookRows = [][]any{
	{"Caballos de fuerza", 50, 100, 150, 200},
	{"Motor fuera de borda", 0.9, 1, 1.1, 1.2},
	{"Motor interno nafta", 0.85, 0.95, 1.05, 1.15},
	{"Motor interno diesel", 0.8, 0.9, 1, 1.1},
	nil,
	{"Coeficientes por asientos"},
	{"Asientos", 2, 4, 8, 12},
	{"motor fuera de borda", 1.1, 1, 0.95, 0.9},
	{"motor interno nafta", 1.2, 1.1, 1, 0.95},
	{"motor interno diesel", 1.15, 1.05, 1, 0.9},
}

func buildWorkbook(t *testing.T, sheet string, rows [][]any) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	for i, row := range rows {
		if row == nil {
			continue
		}
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &r))
	}
	return f
}

func workbookBytes(t *testing.T, sheet string, rows [][]any) *bytes.Reader {
	t.Helper()
	f := buildWorkbook(t, sheet, rows)
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func cloneRows() [][]any {
	out := make([][]any, len(workbookRows))
	for i, r := range workbookRows {
		if r != nil {
			out[i] = append([]any(nil), r...)
		}
	}
	return out
}

func TestParseWorkbook(t *testing.T) {
	tables, err := Parse(workbookBytes(t, "Foglio1", workbookRows), DefaultLayout())
	require.NoError(t, err)

	assert.Equal(t, []float64{50, 100, 150, 200}, tables.HP.Bands)
	assert.Equal(t, []float64{0.9, 1, 1.1, 1.2}, tables.HP.Factors[model.EngineOutboard])
	assert.Equal(t, []float64{0.8, 0.9, 1, 1.1}, tables.HP.Factors[model.EngineInboardDiesel])

	assert.Equal(t, []float64{2, 4, 8, 12}, tables.Seats.Bands)
	assert.Equal(t, []float64{1.2, 1.1, 1, 0.95}, tables.Seats.Factors[model.EngineInboardGasoline])
}

func TestLoadFromFileAndCompute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Boater_excel.xlsx")
	f := buildWorkbook(t, "Foglio1", workbookRows)
	require.NoError(t, f.SaveAs(path))

	l := DefaultLayout()
	l.Path = path
	m := cost.NewModel(NewSource(l))
	res, b, err := m.ComputeDetailed(model.TripRequest{
		Engine: model.EngineOutboard, HP: 100, SpeedKnots: 20, Seats: 6, DistanceKm: 10, FuelPrice: 1.84,
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, b.HPBand)
	assert.Equal(t, 4.0, b.SeatBand) // 6 is equidistant from 4 and 8
	assert.Equal(t, 1.0, b.SeatFactor)
	assert.InDelta(t, 68.553, res.CostTotal, 1e-3)
}

func TestParseMissingSheet(t *testing.T) {
	_, err := Parse(workbookBytes(t, "Sheet2", workbookRows), DefaultLayout())
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrDataIntegrity)
}

func TestParseMissingEngineRow(t *testing.T) {
	rows := cloneRows()
	rows[9] = nil
	_, err := Parse(workbookBytes(t, "Foglio1", rows), DefaultLayout())
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrDataIntegrity)
	assert.Contains(t, err.Error(), "inboard-diesel")
}

func TestParseMissingKeyColumn(t *testing.T) {
	rows := cloneRows()
	rows[0][0] = "HP"
	_, err := Parse(workbookBytes(t, "Foglio1", rows), DefaultLayout())
	assert.ErrorIs(t, err, model.ErrDataIntegrity)
}

func TestParseNonNumericFactor(t *testing.T) {
	rows := cloneRows()
	rows[2][3] = "n/a"
	_, err := Parse(workbookBytes(t, "Foglio1", rows), DefaultLayout())
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrDataIntegrity)
	assert.Contains(t, err.Error(), "D3")
}

func TestParseNoBands(t *testing.T) {
	rows := cloneRows()
	rows[6] = []any{"Asientos"}
	_, err := Parse(workbookBytes(t, "Foglio1", rows), DefaultLayout())
	assert.ErrorIs(t, err, model.ErrDataIntegrity)
}

func TestLoadMissingFile(t *testing.T) {
	l := DefaultLayout()
	l.Path = filepath.Join(t.TempDir(), "absent.xlsx")
	_, err := Load(l)
	assert.ErrorIs(t, err, model.ErrDataIntegrity)
}

func TestParseNumber(t *testing.T) {
	v, err := parseNumber(" 1,05 ")
	require.NoError(t, err)
	assert.Equal(t, 1.05, v)
	_, err = parseNumber("NaN")
	assert.Error(t, err)
}

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()
	assert.Equal(t, "Foglio1", l.Sheet)
	assert.Equal(t, 0, l.HPHeaderRow)
	assert.Equal(t, 3, l.HPRows)
	assert.Equal(t, 6, l.SeatHeaderRow)
}
