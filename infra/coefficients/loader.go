package coefficients

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kilianp07/boater/core/cost"
	"github.com/kilianp07/boater/core/model"
)

// Load reads the coefficient tables from the workbook at l.Path.
func Load(l Layout) (*cost.Tables, error) {
	f, err := excelize.OpenFile(l.Path)
	if err != nil {
		return nil, model.DataError("open workbook %s: %v", l.Path, err)
	}
	defer f.Close()
	return parse(f, l)
}

// Parse reads the coefficient tables from a workbook stream.
func Parse(r io.Reader, l Layout) (*cost.Tables, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, model.DataError("open workbook: %v", err)
	}
	defer f.Close()
	return parse(f, l)
}

// NewSource returns a lazily loaded table source backed by the workbook.
func NewSource(l Layout) *cost.LazySource {
	return cost.NewLazySource(func() (*cost.Tables, error) { return Load(l) })
}

func parse(f *excelize.File, l Layout) (*cost.Tables, error) {
	rows, err := f.GetRows(l.Sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, model.DataError("read sheet %q: %v", l.Sheet, err)
	}

	hp, err := readTable(rows, "hp", l.HPHeaderRow, l.HPIndexLabel, l.HPHeaderRow+1, l.HPHeaderRow+1+l.HPRows)
	if err != nil {
		return nil, err
	}
	seats, err := readTable(rows, "seats", l.SeatHeaderRow, l.SeatKeyLabel, l.SeatHeaderRow+1, len(rows))
	if err != nil {
		return nil, err
	}
	t := &cost.Tables{HP: hp, Seats: seats}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// readTable decodes the table whose header sits at headerRow. The key column
// is found by label; every other non-empty header cell is a band. Data rows
// are read from first up to end (exclusive); rows whose key is not an engine
// label are ignored.
func readTable(rows [][]string, name string, headerRow int, keyLabel string, first, end int) (cost.CoefficientTable, error) {
	t := cost.CoefficientTable{Name: name, Factors: map[model.EngineType][]float64{}}
	if headerRow >= len(rows) {
		return t, model.DataError("%s header row %d missing", name, headerRow+1)
	}
	header := rows[headerRow]

	keyCol := -1
	for c, v := range header {
		if strings.EqualFold(strings.TrimSpace(v), keyLabel) {
			keyCol = c
			break
		}
	}
	if keyCol < 0 {
		return t, model.DataError("%s key column %q not found in row %d", name, keyLabel, headerRow+1)
	}

	var bandCols []int
	for c, v := range header {
		if c == keyCol || strings.TrimSpace(v) == "" {
			continue
		}
		b, err := parseNumber(v)
		if err != nil {
			return t, model.DataError("%s band header %q in %s: not a number", name, v, cellName(c, headerRow))
		}
		t.Bands = append(t.Bands, b)
		bandCols = append(bandCols, c)
	}
	if len(t.Bands) == 0 {
		return t, model.DataError("%s table has no bands", name)
	}

	if end > len(rows) {
		end = len(rows)
	}
	for r := first; r < end; r++ {
		e, ok := model.EngineTypeFromLabel(cell(rows, r, keyCol))
		if !ok {
			continue
		}
		if _, dup := t.Factors[e]; dup {
			continue
		}
		factors := make([]float64, len(bandCols))
		for i, c := range bandCols {
			v, err := parseNumber(cell(rows, r, c))
			if err != nil {
				return t, model.DataError("%s factor for %s in %s: not a number", name, e, cellName(c, r))
			}
			factors[i] = v
		}
		t.Factors[e] = factors
	}
	return t, nil
}

func cell(rows [][]string, r, c int) string {
	if r < 0 || r >= len(rows) || c < 0 || c >= len(rows[r]) {
		return ""
	}
	return rows[r][c]
}

func cellName(c, r int) string {
	name, err := excelize.CoordinatesToCellName(c+1, r+1)
	if err != nil {
		return fmt.Sprintf("R%dC%d", r+1, c+1)
	}
	return name
}

// parseNumber accepts a dot or a comma as decimal separator and rejects
// non-finite values.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}
	return v, nil
}
